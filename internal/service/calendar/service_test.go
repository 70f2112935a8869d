package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/infra/storage/allocation"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendar/models"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

type fakeRepo struct {
	held map[string]*domain.Allocation
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{held: make(map[string]*domain.Allocation)}
}

func (f *fakeRepo) hold(ownerID *string, rng domain.DateRange, occupancy int, kind domain.AllocationKind) {
	for _, key := range rng.Days() {
		f.held[key] = &domain.Allocation{
			DayKey:         key,
			OwnerID:        ownerID,
			RangeStart:     rng.Start,
			RangeEnd:       rng.End,
			OccupancyCount: occupancy,
			Kind:           kind,
		}
	}
}

func (f *fakeRepo) GetByDay(_ context.Context, dayKey string) (*domain.Allocation, error) {
	alloc, ok := f.held[dayKey]
	if !ok {
		return nil, allocation.ErrAllocationNotFound
	}
	return alloc, nil
}

func (f *fakeRepo) GetByMonth(_ context.Context, year int, month time.Month) ([]*domain.Allocation, error) {
	first, next := domain.MonthBounds(year, month)

	result := make([]*domain.Allocation, 0)
	for d := first; d < next; {
		if alloc, ok := f.held[d]; ok {
			result = append(result, alloc)
		}
		parsed, _ := domain.ParseDayKey(d)
		d = domain.FormatDayKey(parsed.AddDate(0, 0, 1))
	}
	return result, nil
}

type fakeLogger struct{}

func (f *fakeLogger) Info(format string, v ...interface{})  {}
func (f *fakeLogger) Warn(format string, v ...interface{})  {}
func (f *fakeLogger) Error(format string, v ...interface{}) {}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.Local)
}

func TestGetDay_ReturnsAllocation(t *testing.T) {
	repo := newFakeRepo()
	repo.hold(ptr.Ptr("booking-42"),
		domain.NewDateRange(day(2025, time.June, 28), day(2025, time.July, 2)), 2, domain.KindBooking)

	svc := NewService(repo, &fakeLogger{})

	result, err := svc.GetDay(context.Background(), "2025-06-30")

	require.NoError(t, err)
	assert.Equal(t, "2025-06-30", result.DayKey)
	require.NotNil(t, result.OwnerID)
	assert.Equal(t, "booking-42", *result.OwnerID)

	// Денормализованные границы показывают всю бронь по одному дню
	assert.Equal(t, "2025-06-28", result.RangeStart)
	assert.Equal(t, "2025-07-02", result.RangeEnd)
}

func TestGetDay_NotAllocated(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeLogger{})

	_, err := svc.GetDay(context.Background(), "2025-06-30")

	assert.ErrorIs(t, err, ErrDayNotAllocated)
}

func TestGetDay_InvalidDate(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeLogger{})

	_, err := svc.GetDay(context.Background(), "30-06-2025")

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestMonthView_BlockedDays(t *testing.T) {
	repo := newFakeRepo()
	repo.hold(nil,
		domain.NewDateRange(day(2025, time.December, 24), day(2025, time.December, 26)), 0, domain.KindBlocked)

	svc := NewService(repo, &fakeLogger{})

	view, err := svc.MonthView(context.Background(), 2025, time.December)

	require.NoError(t, err)
	assert.Equal(t, 2025, view.Year)
	assert.Equal(t, 12, view.Month)

	// Сетка покрывает все дни месяца
	require.Len(t, view.Days, 31)
	assert.Equal(t, "2025-12-01", view.Days[0].Date)
	assert.Equal(t, "2025-12-31", view.Days[30].Date)

	// Два заблокированных дня, день выезда свободен
	require.Len(t, view.Allocations, 2)
	for _, alloc := range view.Allocations {
		assert.Equal(t, string(domain.KindBlocked), alloc.Kind)
		assert.Nil(t, alloc.OwnerID)
	}
	assert.Equal(t, "2025-12-24", view.Allocations[0].DayKey)
	assert.Equal(t, "2025-12-25", view.Allocations[1].DayKey)

	assert.Equal(t, models.StatusBlocked, view.Days[23].Status)
	assert.Equal(t, models.StatusBlocked, view.Days[24].Status)
	assert.Equal(t, models.StatusAvailable, view.Days[25].Status)
}

func TestMonthView_AbsentDaysAreAvailable(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeLogger{})

	view, err := svc.MonthView(context.Background(), 2025, time.June)

	require.NoError(t, err)
	require.Len(t, view.Days, 30)
	assert.Empty(t, view.Allocations)

	for _, d := range view.Days {
		assert.Equal(t, models.StatusAvailable, d.Status)
		assert.Nil(t, d.Allocation)
		assert.Zero(t, d.OccupancyCount)
	}
}

func TestMonthView_BookingStatusAndOccupancy(t *testing.T) {
	repo := newFakeRepo()
	repo.hold(ptr.Ptr("booking-42"),
		domain.NewDateRange(day(2025, time.June, 28), day(2025, time.June, 30)), 3, domain.KindBooking)

	svc := NewService(repo, &fakeLogger{})

	view, err := svc.MonthView(context.Background(), 2025, time.June)

	require.NoError(t, err)
	assert.Equal(t, models.StatusBooked, view.Days[27].Status)
	assert.Equal(t, 3, view.Days[27].OccupancyCount)
	require.NotNil(t, view.Days[27].Allocation)
	assert.Equal(t, "booking-42", *view.Days[27].Allocation.OwnerID)
}

func TestMonthView_InvalidMonth(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeLogger{})

	_, err := svc.MonthView(context.Background(), 2025, time.Month(13))

	assert.ErrorIs(t, err, ErrInvalidMonth)
}
