package util

import (
	"errors"
)

// Matrix3x3 is row major: m[row][col].
type Matrix3x3 [3][3]float64

type Vector3 [3]float64

func MatrixVectorMultiply(m Matrix3x3, v Vector3) Vector3 {
	var res Vector3
	for i := 0; i < 3; i++ {
		res[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return res
}

func Cross(a Vector3, b Vector3) Vector3 {
	return Vector3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func Dot(a Vector3, b Vector3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func Determinant3x3(m Matrix3x3) float64 {
	return Dot(m[0], Cross(m[1], m[2]))
}

// InvertMatrix3x3 uses the adjugate. The cross products of row pairs are the
// columns of the adjugate.
func InvertMatrix3x3(m Matrix3x3) (Matrix3x3, error) {
	det := Determinant3x3(m)
	if det == 0 {
		return Matrix3x3{}, errors.New("matrix is singular")
	}

	c0 := Cross(m[1], m[2])
	c1 := Cross(m[2], m[0])
	c2 := Cross(m[0], m[1])

	invDet := 1.0 / det
	var res Matrix3x3
	for i := 0; i < 3; i++ {
		res[i][0] = c0[i] * invDet
		res[i][1] = c1[i] * invDet
		res[i][2] = c2[i] * invDet
	}
	return res, nil
}
