package office

import (
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/geofence"
)

// DefaultRadiusMeters applies when an office is created without a radius.
const DefaultRadiusMeters = 50

type OfficeLocation struct {
	ID           string
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	Timezone     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Fence returns the office's geofence.
func (o OfficeLocation) Fence() geofence.Fence {
	return geofence.Fence{
		Latitude:     o.Latitude,
		Longitude:    o.Longitude,
		RadiusMeters: o.RadiusMeters,
	}
}

// Location resolves the office timezone, falling back to UTC when it is unset or unknown.
func (o OfficeLocation) Location() *time.Location {
	if o.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(o.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
