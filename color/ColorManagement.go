package color

import (
	"github.com/kpfaulkner/colorimetry-go/util"
)

// Matrix returns the XYZ to linear RGB transform for the space.
//
// Each row is the cross product of the other two primaries' (x, y, z)
// chromaticities, which makes it orthogonal to both, so a pure primary only
// excites its own channel. Rows are then scaled so the white point's XYZ,
// (xw/yw, 1, zw/yw), maps to RGB (1, 1, 1). Collinear primaries give a
// degenerate matrix and are not detected.
func (cs *ColorSpace) Matrix() util.Matrix3x3 {
	r := cs.Red.vector()
	g := cs.Green.vector()
	b := cs.Blue.vector()
	w := cs.White.vector()

	rows := [3]util.Vector3{
		util.Cross(g, b),
		util.Cross(b, r),
		util.Cross(r, g),
	}

	var m util.Matrix3x3
	for i, row := range rows {
		scale := util.Dot(row, w) / w[1]
		m[i] = util.Vector3{row[0] / scale, row[1] / scale, row[2] / scale}
	}
	return m
}

// InverseMatrix returns the linear RGB to XYZ transform.
func (cs *ColorSpace) InverseMatrix() (util.Matrix3x3, error) {
	return util.InvertMatrix3x3(cs.Matrix())
}

// ToRGB builds the space's matrix on every call. Callers converting many
// values should take Matrix once and use Transform.
func (c XYZ) ToRGB(cs *ColorSpace) RGB {
	return c.Transform(cs.Matrix())
}

// Transform applies an XYZ to RGB matrix as returned by ColorSpace.Matrix.
func (c XYZ) Transform(m util.Matrix3x3) RGB {
	v := util.MatrixVectorMultiply(m, util.Vector3{c.X, c.Y, c.Z})
	return RGB{R: v[0], G: v[1], B: v[2]}
}

func (c RGB) ToXYZ(cs *ColorSpace) (XYZ, error) {
	m, err := cs.InverseMatrix()
	if err != nil {
		return XYZ{}, err
	}
	v := util.MatrixVectorMultiply(m, util.Vector3{c.R, c.G, c.B})
	return XYZ{X: v[0], Y: v[1], Z: v[2]}, nil
}
