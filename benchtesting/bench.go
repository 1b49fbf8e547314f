package main

import (
	"fmt"
	"time"

	"github.com/kpfaulkner/colorimetry-go/palette"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

func main() {

	//p := profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	defer p.Stop()

	gen, err := palette.NewGenerator()
	if err != nil {
		log.Errorf("Error creating generator: %v\n", err)
		return
	}

	start := time.Now()
	for count := 0; count < 10; count++ {
		// 1000K to 40000K in 10K steps
		swatches, err := gen.BlackBodyRamp(1000, 10, 3901)
		if err != nil {
			log.Errorf("Error generating ramp: %v\n", err)
			return
		}
		if count == 0 {
			fmt.Printf("first %s last %s\n", swatches[0].Hex(), swatches[len(swatches)-1].Hex())
		}
	}
	fmt.Printf("black body sweep took %d ms\n", time.Since(start).Milliseconds())

	start = time.Now()
	for count := 0; count < 1000; count++ {
		if _, err := gen.NickColors(360); err != nil {
			log.Errorf("Error generating nick colours: %v\n", err)
			return
		}
	}
	fmt.Printf("hue sweep took %d ms\n", time.Since(start).Milliseconds())
}
