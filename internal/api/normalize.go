package api

// NormalizeLatitude maps a raw latitude into [-90, 90] by reflecting it off
// the poles: 95 becomes 85, not -85, because walking past a pole lands you
// on the far side still near the pole. Callers bound the input to
// [-360, 360] first; the loop converges within that range.
func NormalizeLatitude(lat float64) float64 {
	for lat > 90 || lat < -90 {
		if lat > 90 {
			lat = 180 - lat
		} else {
			lat = -180 - lat
		}
	}
	return lat
}

// NormalizeLongitude maps a raw longitude into [-180, 180] by shifting whole
// revolutions: 185 becomes -175.
func NormalizeLongitude(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}
	return lon
}
