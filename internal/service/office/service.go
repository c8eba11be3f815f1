package office

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/geofence"
)

type OfficeServiceImpl struct {
	officeRepo office.OfficeRepository
}

func NewOfficeService(officeRepo office.OfficeRepository) office.OfficeService {
	return &OfficeServiceImpl{officeRepo: officeRepo}
}

func mapOfficeToResponse(o office.OfficeLocation) office.OfficeResponse {
	return office.OfficeResponse{
		ID:           o.ID,
		Name:         o.Name,
		Latitude:     o.Latitude,
		Longitude:    o.Longitude,
		RadiusMeters: o.RadiusMeters,
		Timezone:     o.Timezone,
		CreatedAt:    o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    o.UpdatedAt.Format(time.RFC3339),
	}
}

// Create implements office.OfficeService.
func (s *OfficeServiceImpl) Create(ctx context.Context, req office.CreateOfficeRequest) (office.OfficeResponse, error) {
	if err := req.Validate(); err != nil {
		return office.OfficeResponse{}, err
	}

	radius := float64(office.DefaultRadiusMeters)
	if req.RadiusMeters != nil {
		radius = *req.RadiusMeters
	}
	tz := req.Timezone
	if tz == "" {
		tz = "UTC"
	}

	created, err := s.officeRepo.Create(ctx, office.OfficeLocation{
		Name:         req.Name,
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		RadiusMeters: radius,
		Timezone:     tz,
	})
	if err != nil {
		return office.OfficeResponse{}, fmt.Errorf("failed to create office: %w", err)
	}
	return mapOfficeToResponse(created), nil
}

// Get implements office.OfficeService.
func (s *OfficeServiceImpl) Get(ctx context.Context, id string) (office.OfficeResponse, error) {
	o, err := s.officeRepo.GetByID(ctx, id)
	if err != nil {
		return office.OfficeResponse{}, err
	}
	return mapOfficeToResponse(o), nil
}

// List implements office.OfficeService.
func (s *OfficeServiceImpl) List(ctx context.Context) ([]office.OfficeResponse, error) {
	offices, err := s.officeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list offices: %w", err)
	}
	resp := make([]office.OfficeResponse, 0, len(offices))
	for _, o := range offices {
		resp = append(resp, mapOfficeToResponse(o))
	}
	return resp, nil
}

// Update implements office.OfficeService.
func (s *OfficeServiceImpl) Update(ctx context.Context, req office.UpdateOfficeRequest) (office.OfficeResponse, error) {
	if err := req.Validate(); err != nil {
		return office.OfficeResponse{}, err
	}
	updated, err := s.officeRepo.Update(ctx, req)
	if err != nil {
		return office.OfficeResponse{}, err
	}
	return mapOfficeToResponse(updated), nil
}

// Delete implements office.OfficeService.
func (s *OfficeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.officeRepo.Delete(ctx, id)
}

// CheckFence implements office.OfficeService.
func (s *OfficeServiceImpl) CheckFence(ctx context.Context, req office.CheckFenceRequest) (office.CheckFenceResponse, error) {
	if err := req.Validate(); err != nil {
		return office.CheckFenceResponse{}, err
	}
	o, err := s.officeRepo.GetByID(ctx, req.OfficeID)
	if err != nil {
		return office.CheckFenceResponse{}, err
	}

	fence := o.Fence()
	return office.CheckFenceResponse{
		OfficeID:       o.ID,
		Within:         geofence.IsWithinFence(req.Latitude.Value, req.Longitude.Value, fence),
		DistanceMeters: geofence.HaversineDistance(req.Latitude.Value, req.Longitude.Value, fence.Latitude, fence.Longitude),
		RadiusMeters:   fence.RadiusMeters,
	}, nil
}
