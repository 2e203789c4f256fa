// Package astro provides Earth-rotation frame transforms driven by
// Greenwich mean sidereal time.
package astro

import (
	"math"
)

// Vec3 represents a 3D vector in any reference frame.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Scale returns the vector scaled by a factor.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// rotateZ rotates v by angle radians about the Z axis (counter-clockwise
// seen from +Z).
func rotateZ(v Vec3, angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{
		X: c*v.X - s*v.Y,
		Y: s*v.X + c*v.Y,
		Z: v.Z,
	}
}

// ECEFToECI rotates an Earth-fixed vector into the quasi-inertial frame
// whose X axis points at the mean equinox. gmst is in radians.
// Precession, nutation and polar motion are ignored.
func ECEFToECI(v Vec3, gmst float64) Vec3 {
	return rotateZ(v, gmst)
}

// ECIToECEF is the inverse of ECEFToECI.
func ECIToECEF(v Vec3, gmst float64) Vec3 {
	return rotateZ(v, -gmst)
}

// EarthRotationRate is the Earth's mean angular velocity in rad/s.
const EarthRotationRate = 7.2921151467e-5

// ECEFVelocityToECI converts an Earth-fixed position and velocity to an
// inertial velocity, adding the ω×r term of the rotating frame.
func ECEFVelocityToECI(pos, vel Vec3, gmst float64) Vec3 {
	omegaCrossR := Vec3{X: -EarthRotationRate * pos.Y, Y: EarthRotationRate * pos.X}
	return rotateZ(vel.Add(omegaCrossR), gmst)
}
