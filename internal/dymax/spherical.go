package dymax

import "math"

const degToRad = math.Pi / 180.0

// LonLatToSpherical maps geographic degrees to spherical angles on the
// unit sphere: theta is the colatitude measured down from +Z, phi the
// azimuth from +X. Negative longitudes shift into [0,360) first.
// Inputs are not validated; non-finite values flow through as NaN.
func LonLatToSpherical(lng, lat float64) (theta, phi float64) {
	hTheta := 90.0 - lat
	hPhi := lng
	if lng < 0.0 {
		hPhi = lng + 360.0
	}
	return hTheta * degToRad, hPhi * degToRad
}

// SphericalToCartesian maps spherical angles to a unit vector.
func SphericalToCartesian(theta, phi float64) Vec3 {
	return Vec3{
		X: math.Sin(theta) * math.Cos(phi),
		Y: math.Sin(theta) * math.Sin(phi),
		Z: math.Cos(theta),
	}
}

// CartesianToAzimuthPolar extracts spherical angles from a unit vector.
// The pair comes back role-swapped versus SphericalToCartesian's
// arguments: theta is the azimuth atan2(y,x) and phi the polar angle
// acos(z). Project depends on exactly this pairing.
func CartesianToAzimuthPolar(v Vec3) (theta, phi float64) {
	return math.Atan2(v.Y, v.X), math.Acos(v.Z)
}
