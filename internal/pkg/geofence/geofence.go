// Package geofence decides whether a coordinate lies within a circular office boundary.
package geofence

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// EarthRadiusMeters is the mean radius used for the spherical-earth approximation.
const EarthRadiusMeters = 6371000

// Fence is a circular boundary centred on an office.
type Fence struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// HaversineDistance returns the great-circle distance between two points in meters.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// IsWithinFence reports whether (lat, lon) is inside fence, boundary included.
// Any non-finite input or a non-positive radius yields false.
func IsWithinFence(lat, lon float64, fence Fence) bool {
	for _, v := range []float64{lat, lon, fence.Latitude, fence.Longitude, fence.RadiusMeters} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	if fence.RadiusMeters <= 0 {
		return false
	}
	return HaversineDistance(lat, lon, fence.Latitude, fence.Longitude) <= fence.RadiusMeters
}

// ErrInvalidCoordinate is returned when a coordinate is neither a number nor a numeric string.
var ErrInvalidCoordinate = errors.New("coordinate must be a number or numeric string")

// Coordinate accepts either a JSON number or a numeric JSON string.
type Coordinate struct {
	Value float64
	Set   bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = Coordinate{}
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ErrInvalidCoordinate
		}
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrInvalidCoordinate
	}
	*c = Coordinate{Value: v, Set: true}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	if !c.Set {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}

// Float is a convenience constructor, mostly for tests and internal callers.
func Float(v float64) Coordinate {
	return Coordinate{Value: v, Set: true}
}
