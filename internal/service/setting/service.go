package setting

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/setting"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/database"
)

type SettingServiceImpl struct {
	settingRepo setting.SettingRepository
	transactor  database.Transactor
}

func NewSettingService(settingRepo setting.SettingRepository, transactor database.Transactor) setting.SettingService {
	return &SettingServiceImpl{
		settingRepo: settingRepo,
		transactor:  transactor,
	}
}

func mapHolidayToResponse(h setting.PublicHoliday) setting.PublicHolidayResponse {
	return setting.PublicHolidayResponse{
		ID:   h.ID,
		Date: h.Date.Format("2006-01-02"),
		Name: h.Name,
	}
}

// GetPayRates implements setting.SettingService.
func (s *SettingServiceImpl) GetPayRates(ctx context.Context) (setting.PayRatesResponse, error) {
	settings, err := s.settingRepo.List(ctx)
	if err != nil {
		return setting.PayRatesResponse{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return setting.NewPayRatesResponse(setting.ResolvePayRates(settings)), nil
}

// UpdatePayRates implements setting.SettingService. Only the multipliers present
// in req are written.
func (s *SettingServiceImpl) UpdatePayRates(ctx context.Context, req setting.UpdatePayRatesRequest) (setting.PayRatesResponse, error) {
	if err := req.Validate(); err != nil {
		return setting.PayRatesResponse{}, err
	}

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		for key, value := range req.Values() {
			if err := s.settingRepo.Upsert(ctx, key, value); err != nil {
				return fmt.Errorf("failed to update %s: %w", key, err)
			}
		}
		return nil
	})
	if err != nil {
		return setting.PayRatesResponse{}, err
	}
	return s.GetPayRates(ctx)
}

// ListHolidays implements setting.SettingService.
func (s *SettingServiceImpl) ListHolidays(ctx context.Context, filter setting.HolidayFilter) ([]setting.PublicHolidayResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	from := time.Date(filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(filter.Year, time.December, 31, 0, 0, 0, 0, time.UTC)

	holidays, err := s.settingRepo.ListHolidays(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	resp := make([]setting.PublicHolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		resp = append(resp, mapHolidayToResponse(h))
	}
	return resp, nil
}

// CreateHoliday implements setting.SettingService.
func (s *SettingServiceImpl) CreateHoliday(ctx context.Context, req setting.CreateHolidayRequest) (setting.PublicHolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return setting.PublicHolidayResponse{}, err
	}
	created, err := s.settingRepo.CreateHoliday(ctx, setting.PublicHoliday{Date: req.Day, Name: req.Name})
	if err != nil {
		return setting.PublicHolidayResponse{}, err
	}
	return mapHolidayToResponse(created), nil
}

// DeleteHoliday implements setting.SettingService.
func (s *SettingServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.settingRepo.DeleteHoliday(ctx, id)
}
