package check_conflicts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

type fakeRepo struct {
	held []*domain.Allocation
}

func (f *fakeRepo) GetByDays(_ context.Context, dayKeys []string) ([]*domain.Allocation, error) {
	keys := make(map[string]struct{}, len(dayKeys))
	for _, key := range dayKeys {
		keys[key] = struct{}{}
	}

	result := make([]*domain.Allocation, 0)
	for _, alloc := range f.held {
		if _, ok := keys[alloc.DayKey]; ok {
			result = append(result, alloc)
		}
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

func TestExecute_NoAllocations(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, &fakeLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Range: domain.NewDateRange(day(2025, time.June, 28), day(2025, time.July, 2)),
	})

	require.NoError(t, err)
	assert.False(t, resp.HasConflict)
	assert.Empty(t, resp.Conflicts)
}

func TestExecute_ConflictOnHeldDay(t *testing.T) {
	repo := &fakeRepo{
		held: []*domain.Allocation{
			{DayKey: "2025-06-30", OwnerID: ptr.Ptr("booking-7"), Kind: domain.KindBooking},
		},
	}
	uc := NewUseCase(repo, &fakeLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Range: domain.NewDateRange(day(2025, time.June, 28), day(2025, time.July, 2)),
	})

	require.NoError(t, err)
	assert.True(t, resp.HasConflict)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, "2025-06-30", resp.Conflicts[0].DayKey)
}

func TestExecute_ConflictPerCoveredDay(t *testing.T) {
	// Без исключения владельца конфликтом считается каждый занятый день
	repo := &fakeRepo{
		held: []*domain.Allocation{
			{DayKey: "2025-06-28", OwnerID: ptr.Ptr("booking-42"), Kind: domain.KindBooking},
			{DayKey: "2025-06-29", OwnerID: ptr.Ptr("booking-42"), Kind: domain.KindBooking},
		},
	}
	uc := NewUseCase(repo, &fakeLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Range: domain.NewDateRange(day(2025, time.June, 28), day(2025, time.June, 30)),
	})

	require.NoError(t, err)
	assert.True(t, resp.HasConflict)
	require.Len(t, resp.Conflicts, 2)
}

func TestExecute_NonOverlappingRangeNeverConflicts(t *testing.T) {
	repo := &fakeRepo{
		held: []*domain.Allocation{
			{DayKey: "2025-06-28", OwnerID: ptr.Ptr("booking-42"), Kind: domain.KindBooking},
			{DayKey: "2025-06-29", OwnerID: ptr.Ptr("booking-42"), Kind: domain.KindBooking},
		},
	}
	uc := NewUseCase(repo, &fakeLogger{})

	// Заезд в день выезда существующей брони - полуинтервалы не пересекаются
	resp, err := uc.Execute(context.Background(), &Request{
		Range: domain.NewDateRange(day(2025, time.June, 30), day(2025, time.July, 3)),
	})

	require.NoError(t, err)
	assert.False(t, resp.HasConflict)
}

func TestExecute_ExcludeOwnerSkipsOwnDays(t *testing.T) {
	repo := &fakeRepo{
		held: []*domain.Allocation{
			{DayKey: "2025-06-28", OwnerID: ptr.Ptr("booking-42"), Kind: domain.KindBooking},
			{DayKey: "2025-06-29", OwnerID: ptr.Ptr("booking-42"), Kind: domain.KindBooking},
		},
	}
	uc := NewUseCase(repo, &fakeLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Range:          domain.NewDateRange(day(2025, time.June, 28), day(2025, time.June, 30)),
		ExcludeOwnerID: ptr.Ptr("booking-42"),
	})

	require.NoError(t, err)
	assert.False(t, resp.HasConflict)
}

func TestExecute_ExcludeOwnerStillConflictsWithOthers(t *testing.T) {
	repo := &fakeRepo{
		held: []*domain.Allocation{
			{DayKey: "2025-06-28", OwnerID: ptr.Ptr("booking-42"), Kind: domain.KindBooking},
			{DayKey: "2025-06-29", OwnerID: ptr.Ptr("booking-7"), Kind: domain.KindBooking},
		},
	}
	uc := NewUseCase(repo, &fakeLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Range:          domain.NewDateRange(day(2025, time.June, 28), day(2025, time.June, 30)),
		ExcludeOwnerID: ptr.Ptr("booking-42"),
	})

	require.NoError(t, err)
	assert.True(t, resp.HasConflict)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, "2025-06-29", resp.Conflicts[0].DayKey)
}

func TestExecute_AdministrativeBlockAlwaysConflicts(t *testing.T) {
	// Блокировки без владельца не исключаются даже с excludeOwnerId
	repo := &fakeRepo{
		held: []*domain.Allocation{
			{DayKey: "2025-06-29", OwnerID: nil, Kind: domain.KindBlocked},
		},
	}
	uc := NewUseCase(repo, &fakeLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Range:          domain.NewDateRange(day(2025, time.June, 28), day(2025, time.June, 30)),
		ExcludeOwnerID: ptr.Ptr("booking-42"),
	})

	require.NoError(t, err)
	assert.True(t, resp.HasConflict)
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, &fakeLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Range: domain.NewDateRange(day(2025, time.July, 2), day(2025, time.June, 28)),
	})

	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestFilterConflicts_ChronologicalOrder(t *testing.T) {
	allocations := []*domain.Allocation{
		{DayKey: "2025-06-28", OwnerID: ptr.Ptr("booking-7")},
		{DayKey: "2025-06-29", OwnerID: ptr.Ptr("booking-8")},
		{DayKey: "2025-06-30", OwnerID: ptr.Ptr("booking-9")},
	}

	conflicts := FilterConflicts(allocations, nil)

	require.Len(t, conflicts, 3)
	assert.Equal(t, "2025-06-28", conflicts[0].DayKey)
	assert.Equal(t, "2025-06-30", conflicts[2].DayKey)
}
