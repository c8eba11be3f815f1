package office

import "context"

type OfficeService interface {
	Create(ctx context.Context, req CreateOfficeRequest) (OfficeResponse, error)
	Get(ctx context.Context, id string) (OfficeResponse, error)
	List(ctx context.Context) ([]OfficeResponse, error)
	Update(ctx context.Context, req UpdateOfficeRequest) (OfficeResponse, error)
	Delete(ctx context.Context, id string) error

	// CheckFence reports whether a point lies inside the office geofence.
	CheckFence(ctx context.Context, req CheckFenceRequest) (CheckFenceResponse, error)
}
