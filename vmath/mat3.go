package vmath

import (
	"math"
)

// Mat3 is a row-major 3x3 linear map
type Mat3 [3][3]float64

// Mat3Identity returns the identity map
func Mat3Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// RotationY rotates about the vertical axis (spin)
//
//	[ cos  0  sin ]
//	[  0   1   0  ]
//	[-sin  0  cos ]
func RotationY(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotationX rotates about the horizontal axis (tilt)
//
//	[ 1   0    0  ]
//	[ 0  cos -sin ]
//	[ 0  sin  cos ]
func RotationX(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// Mat3Apply computes m * v, row by column
func Mat3Apply(m Mat3, v Vec3F) Vec3F {
	return Vec3F{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mat3Mul returns a * b, so Mat3Apply(Mat3Mul(a, b), v) == Mat3Apply(a, Mat3Apply(b, v))
func Mat3Mul(a, b Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	return out
}

// Mat3Transpose is the inverse for pure rotations
func Mat3Transpose(m Mat3) Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}
