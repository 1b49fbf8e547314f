package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/kpfaulkner/colorimetry-go/options"
	"github.com/kpfaulkner/colorimetry-go/palette"
	log "github.com/sirupsen/logrus"
)

func printSwatches(title string, swatches []palette.Swatch) {
	fmt.Printf("%s\n", title)
	for _, s := range swatches {
		fmt.Printf("%s\n", s.Hex())
	}
}

func main() {
	var primaries int64
	if p := os.Getenv("COLORDEMO_PRIMARIES"); p != "" {
		var err error
		if primaries, err = strconv.ParseInt(p, 10, 32); err != nil {
			log.Fatalf("Error parsing COLORDEMO_PRIMARIES: %v", err)
		}
	}

	opts := options.NewPaletteOptions(&options.PaletteOptions{
		Debug:     os.Getenv("COLORDEMO_DEBUG") != "",
		Primaries: int32(primaries),
	})
	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	}

	gen, err := palette.NewGenerator(palette.WithOptions(opts))
	if err != nil {
		log.Fatalf("Error creating generator: %v", err)
	}

	if swatches, err := gen.RainbowName("ABCDEFGHI"); err != nil {
		log.Errorf("Error generating rainbow: %v", err)
	} else {
		printSwatches("rainbow", swatches)
	}

	if swatches, err := gen.NickColors(9); err != nil {
		log.Errorf("Error generating nick colours: %v", err)
	} else {
		printSwatches("nicks", swatches)
	}

	if swatches, err := gen.BlackBodyRamp(1000, 100, 14); err != nil {
		log.Errorf("Error generating black body ramp: %v", err)
	} else {
		printSwatches("black body", swatches)
	}

	if swatches, err := gen.HueWheel(5, 0.2); err != nil {
		log.Errorf("Error generating hue wheel: %v", err)
	} else {
		printSwatches("wheel", swatches)
	}

	for _, hex := range []string{"FFFFFF", "808080", "12C99D"} {
		lum, err := gen.Grayscale(hex)
		if err != nil {
			log.Errorf("Error reading %s: %v", hex, err)
			continue
		}
		fmt.Printf("%s luminance %.4f\n", hex, lum)
	}
}
