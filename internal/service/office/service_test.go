package office

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/geofence"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const officeID = "123e4567-e89b-12d3-a456-426614174000"

type fakeOfficeRepo struct {
	office.OfficeRepository
	offices map[string]office.OfficeLocation
	created office.OfficeLocation
}

func (f *fakeOfficeRepo) Create(_ context.Context, o office.OfficeLocation) (office.OfficeLocation, error) {
	o.ID = officeID
	f.created = o
	return o, nil
}

func (f *fakeOfficeRepo) GetByID(_ context.Context, id string) (office.OfficeLocation, error) {
	o, ok := f.offices[id]
	if !ok {
		return office.OfficeLocation{}, office.ErrOfficeNotFound
	}
	return o, nil
}

func ptr[T any](v T) *T { return &v }

func TestCreate_AppliesDefaults(t *testing.T) {
	repo := &fakeOfficeRepo{}
	svc := NewOfficeService(repo)

	resp, err := svc.Create(context.Background(), office.CreateOfficeRequest{
		Name:      "HQ",
		Latitude:  ptr(-6.175392),
		Longitude: ptr(106.827153),
	})
	require.NoError(t, err)
	assert.Equal(t, officeID, resp.ID)
	assert.Equal(t, float64(office.DefaultRadiusMeters), repo.created.RadiusMeters)
	assert.Equal(t, "UTC", repo.created.Timezone)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewOfficeService(&fakeOfficeRepo{})

	_, err := svc.Create(context.Background(), office.CreateOfficeRequest{
		Name:         "HQ",
		Latitude:     ptr(120.0),
		Longitude:    ptr(106.8),
		RadiusMeters: ptr(-1.0),
		Timezone:     "Nowhere/Land",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	m := verrs.ToMap()
	assert.Contains(t, m, "latitude")
	assert.Contains(t, m, "radius")
	assert.Contains(t, m, "timezone")
}

func TestCheckFence(t *testing.T) {
	repo := &fakeOfficeRepo{offices: map[string]office.OfficeLocation{
		officeID: {ID: officeID, Latitude: -6.175392, Longitude: 106.827153, RadiusMeters: 50},
	}}
	svc := NewOfficeService(repo)

	inside, err := svc.CheckFence(context.Background(), office.CheckFenceRequest{
		OfficeID: officeID, Latitude: geofence.Float(-6.1755), Longitude: geofence.Float(106.8272),
	})
	require.NoError(t, err)
	assert.True(t, inside.Within)
	assert.Less(t, inside.DistanceMeters, 50.0)

	outside, err := svc.CheckFence(context.Background(), office.CheckFenceRequest{
		OfficeID: officeID, Latitude: geofence.Float(-6.18), Longitude: geofence.Float(106.8272),
	})
	require.NoError(t, err)
	assert.False(t, outside.Within)

	_, err = svc.CheckFence(context.Background(), office.CheckFenceRequest{
		OfficeID: "223e4567-e89b-12d3-a456-426614174000", Latitude: geofence.Float(0), Longitude: geofence.Float(0),
	})
	assert.ErrorIs(t, err, office.ErrOfficeNotFound)
}
