package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector used for body positions and view-space coordinates
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FNormalize returns the unit vector, or zero vector for zero input
func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FCylindrical builds a vector from radius/angle in the XZ plane and height on Y
func V3FCylindrical(radius, angle, height float64) Vec3F {
	return Vec3F{
		X: math.Cos(angle) * radius,
		Y: height,
		Z: math.Sin(angle) * radius,
	}
}

// V3FFinite reports whether all components are neither NaN nor infinite
func V3FFinite(v Vec3F) bool {
	return Finite(v.X) && Finite(v.Y) && Finite(v.Z)
}

// V3FNear compares component-wise within eps
func V3FNear(a, b Vec3F, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}
