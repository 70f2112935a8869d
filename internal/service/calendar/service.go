package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/infra/storage/allocation"
	"github.com/m04kA/SMC-CalendarService/internal/infra/storage/allocationmongo"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendar/models"
)

// Service сервис чтения календаря: точечный запрос дня и проекция месяца
type Service struct {
	allocationRepo AllocationRepository
	logger         Logger
}

// NewService создает новый сервис календаря
func NewService(allocationRepo AllocationRepository, logger Logger) *Service {
	return &Service{
		allocationRepo: allocationRepo,
		logger:         logger,
	}
}

// GetDay возвращает аллокацию на конкретную дату
func (s *Service) GetDay(ctx context.Context, date string) (*models.AllocationView, error) {
	day, err := domain.ParseDayKey(date)
	if err != nil {
		s.logger.Warn("GetDay: invalid date %q: %v", date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	alloc, err := s.allocationRepo.GetByDay(ctx, domain.FormatDayKey(day))
	if err != nil {
		// Бэкенд хранилища выбирается конфигом, учитываем sentinel обоих адаптеров
		if errors.Is(err, allocation.ErrAllocationNotFound) || errors.Is(err, allocationmongo.ErrAllocationNotFound) {
			return nil, ErrDayNotAllocated
		}
		s.logger.Error("GetDay: failed to get allocation for %s: %v", date, err)
		return nil, fmt.Errorf("%w: failed to get allocation: %v", ErrInternal, err)
	}

	return models.FromDomain(alloc), nil
}

// MonthView строит проекцию месяца: по одной записи на каждый день,
// отсутствующие в хранилище дни отдаются со статусом available
func (s *Service) MonthView(ctx context.Context, year int, month time.Month) (*models.MonthView, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month %d is out of range", ErrInvalidMonth, month)
	}
	if year < 1 {
		return nil, fmt.Errorf("%w: year %d is out of range", ErrInvalidMonth, year)
	}

	allocs, err := s.allocationRepo.GetByMonth(ctx, year, month)
	if err != nil {
		s.logger.Error("MonthView: failed to get allocations for %d-%02d: %v", year, month, err)
		return nil, fmt.Errorf("%w: failed to get allocations: %v", ErrInternal, err)
	}

	byDay := make(map[string]*domain.Allocation, len(allocs))
	for _, alloc := range allocs {
		byDay[alloc.DayKey] = alloc
	}

	daysInMonth := domain.DaysInMonth(year, month)
	view := &models.MonthView{
		Year:        year,
		Month:       int(month),
		Days:        make([]models.DayView, 0, daysInMonth),
		Allocations: make([]*models.AllocationView, 0, len(allocs)),
	}

	for dayNum := 1; dayNum <= daysInMonth; dayNum++ {
		date := time.Date(year, month, dayNum, 0, 0, 0, 0, time.Local)
		dayKey := domain.FormatDayKey(date)

		alloc := byDay[dayKey]
		day := models.DayView{
			Date:       dayKey,
			Status:     models.StatusFor(alloc),
			Allocation: models.FromDomain(alloc),
		}
		if alloc != nil {
			day.OccupancyCount = alloc.OccupancyCount
		}

		view.Days = append(view.Days, day)
	}

	// Аллокации возвращаются в хронологическом порядке дней
	for _, alloc := range allocs {
		view.Allocations = append(view.Allocations, models.FromDomain(alloc))
	}

	s.logger.Info("MonthView: %d-%02d has %d allocated days of %d", year, month, len(allocs), daysInMonth)

	return view, nil
}
