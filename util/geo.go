package util

import "math"

// EARTH_RADIUS_KM is the mean Earth radius used by the haversine formula.
const EARTH_RADIUS_KM = 6371.0
const KM_PER_MILE = 1.60934

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// HaversineDistance returns the great-circle distance between two lat/lng
// pairs in kilometers, or in miles when isMiles is set.
func HaversineDistance(lat1, lon1, lat2, lon2 float64, isMiles bool) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	d := EARTH_RADIUS_KM * c

	if isMiles {
		d /= KM_PER_MILE
	}

	return d
}
