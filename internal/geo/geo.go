package geo

import (
	"fmt"
	"math"

	"github.com/phygrid/engine/internal/domain"
)

// ProximityToleranceMeters is the maximum allowed distance between an NFC
// tag's recorded location and its building's registered location. A tag at
// exactly the tolerance is accepted.
const ProximityToleranceMeters = 30.0

// earthRadiusMeters is the mean Earth radius used for great-circle distance
const earthRadiusMeters = 6371000.0

// Point is a GPS fix in decimal degrees
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Distance computes the great-circle (haversine) distance between two
// points, in meters.
func Distance(a, b Point) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// VerifyProximity is the acceptance gate for check-in creation and transfer
// claims. When either point lacks GPS data the check is unverifiable and
// passes silently; the caller decides whether to warn. Otherwise the
// distance must be within ProximityToleranceMeters.
func VerifyProximity(tag, anchor *Point) error {
	if tag == nil || anchor == nil {
		return nil
	}

	d := Distance(*tag, *anchor)
	if d > ProximityToleranceMeters {
		return fmt.Errorf("%w: %.2fm exceeds %.0fm tolerance",
			domain.ErrLocationMismatch, d, ProximityToleranceMeters)
	}

	return nil
}
