package geo

import "math"

// earthRadiusM is the mean spherical earth radius used by the haversine
// formula.
const earthRadiusM = 6371000.0

// DistanceM returns the great-circle distance between two coordinates in
// meters. Inputs are degrees; callers validate ranges.
func DistanceM(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLng := deg2rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
