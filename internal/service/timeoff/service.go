package timeoff

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/timeoff"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/jwt"
)

type TimeOffServiceImpl struct {
	timeOffRepo timeoff.TimeOffRepository
}

func NewTimeOffService(timeOffRepo timeoff.TimeOffRepository) timeoff.TimeOffService {
	return &TimeOffServiceImpl{timeOffRepo: timeOffRepo}
}

func mapTimeOffToResponse(t timeoff.TimeOff) timeoff.TimeOffResponse {
	var reviewedAt *string
	if t.ReviewedAt != nil {
		s := t.ReviewedAt.Format(time.RFC3339)
		reviewedAt = &s
	}
	return timeoff.TimeOffResponse{
		ID:         t.ID,
		EmployeeID: t.EmployeeID,
		StartDate:  t.StartDate.Format("2006-01-02"),
		EndDate:    t.EndDate.Format("2006-01-02"),
		Status:     string(t.Status),
		Reason:     t.Reason,
		ReviewedBy: t.ReviewedBy,
		ReviewedAt: reviewedAt,
		CreatedAt:  t.CreatedAt.Format(time.RFC3339),
	}
}

// Request implements timeoff.TimeOffService.
func (s *TimeOffServiceImpl) Request(ctx context.Context, req timeoff.CreateTimeOffRequest) (timeoff.TimeOffResponse, error) {
	if err := req.Validate(); err != nil {
		return timeoff.TimeOffResponse{}, err
	}
	identity, err := jwt.MustEmployee(ctx)
	if err != nil {
		return timeoff.TimeOffResponse{}, err
	}

	overlapping, err := s.timeOffRepo.HasOverlapping(ctx, identity.EmployeeID, req.Start, req.End)
	if err != nil {
		return timeoff.TimeOffResponse{}, fmt.Errorf("failed to check overlapping time off: %w", err)
	}
	if overlapping {
		return timeoff.TimeOffResponse{}, timeoff.ErrOverlappingTimeOff
	}

	created, err := s.timeOffRepo.Create(ctx, timeoff.TimeOff{
		EmployeeID: identity.EmployeeID,
		StartDate:  req.Start,
		EndDate:    req.End,
		Status:     timeoff.StatusPending,
		Reason:     req.Reason,
	})
	if err != nil {
		return timeoff.TimeOffResponse{}, fmt.Errorf("failed to create time off: %w", err)
	}
	return mapTimeOffToResponse(created), nil
}

// Approve implements timeoff.TimeOffService.
func (s *TimeOffServiceImpl) Approve(ctx context.Context, id string) (timeoff.TimeOffResponse, error) {
	return s.review(ctx, id, timeoff.StatusApproved)
}

// Reject implements timeoff.TimeOffService.
func (s *TimeOffServiceImpl) Reject(ctx context.Context, id string) (timeoff.TimeOffResponse, error) {
	return s.review(ctx, id, timeoff.StatusRejected)
}

func (s *TimeOffServiceImpl) review(ctx context.Context, id string, status timeoff.Status) (timeoff.TimeOffResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return timeoff.TimeOffResponse{}, err
	}
	if !identity.Can(user.PermissionTimeOffApprove) {
		return timeoff.TimeOffResponse{}, user.ErrInsufficientPermissions
	}

	updated, err := s.timeOffRepo.UpdateStatus(ctx, id, status, identity.UserID)
	if err != nil {
		return timeoff.TimeOffResponse{}, err
	}
	return mapTimeOffToResponse(updated), nil
}

// List implements timeoff.TimeOffService. Callers who cannot approve requests
// only see their own.
func (s *TimeOffServiceImpl) List(ctx context.Context, filter timeoff.TimeOffFilter) ([]timeoff.TimeOffResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !identity.Can(user.PermissionTimeOffApprove) {
		if identity.EmployeeID == "" {
			return nil, user.ErrEmployeeIDRequired
		}
		filter.EmployeeID = &identity.EmployeeID
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.timeOffRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list time off: %w", err)
	}
	resp := make([]timeoff.TimeOffResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, mapTimeOffToResponse(r))
	}
	return resp, nil
}
