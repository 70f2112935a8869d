package allocate_range

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/infra/events"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

type fakeRepo struct {
	held    []*domain.Allocation
	created []domain.RangeAllocation
}

func (f *fakeRepo) CreateRange(_ context.Context, alloc domain.RangeAllocation) error {
	f.created = append(f.created, alloc)
	return nil
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

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePublisher struct {
	published []events.AllocationEvent
}

func (f *fakePublisher) Publish(_ context.Context, event events.AllocationEvent) error {
	f.published = append(f.published, event)
	return nil
}

type fakeLogger struct{}

func (f *fakeLogger) Info(format string, v ...interface{})  {}
func (f *fakeLogger) Warn(format string, v ...interface{})  {}
func (f *fakeLogger) Error(format string, v ...interface{}) {}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.Local)
}

func heldDay(key string, ownerID *string, kind domain.AllocationKind) *domain.Allocation {
	return &domain.Allocation{
		DayKey:  key,
		OwnerID: ownerID,
		Kind:    kind,
	}
}

func TestExecute_BookingAllocatesEveryDay(t *testing.T) {
	repo := &fakeRepo{}
	publisher := &fakePublisher{}
	uc := NewUseCase(repo, &fakeTxManager{}, publisher, &fakeLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		OwnerID:        ptr.Ptr("booking-42"),
		Range:          domain.NewDateRange(day(2025, time.June, 28), day(2025, time.July, 2)),
		OccupancyCount: 2,
		Kind:           domain.KindBooking,
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-06-28", resp.RangeStart)
	assert.Equal(t, "2025-07-02", resp.RangeEnd)
	assert.Equal(t, []string{"2025-06-28", "2025-06-29", "2025-06-30", "2025-07-01"}, resp.Days)

	require.Len(t, repo.created, 1)
	assert.Equal(t, 2, repo.created[0].OccupancyCount)
	assert.Equal(t, domain.KindBooking, repo.created[0].Kind)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, events.TypeRangeAllocated, publisher.published[0].Type)
	assert.Equal(t, 4, publisher.published[0].Days)
}

func TestExecute_BlockedRangeWithoutOwner(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, &fakeTxManager{}, &fakePublisher{}, &fakeLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		OwnerID:        nil,
		Range:          domain.NewDateRange(day(2025, time.December, 24), day(2025, time.December, 26)),
		OccupancyCount: 0,
		Kind:           domain.KindBlocked,
	})

	require.NoError(t, err)
	assert.Nil(t, resp.OwnerID)
	assert.Equal(t, []string{"2025-12-24", "2025-12-25"}, resp.Days)

	require.Len(t, repo.created, 1)
	assert.Nil(t, repo.created[0].OwnerID)
	assert.Equal(t, 0, repo.created[0].OccupancyCount)
}

func TestExecute_ConflictWithOtherOwner(t *testing.T) {
	repo := &fakeRepo{
		held: []*domain.Allocation{
			heldDay("2025-06-30", ptr.Ptr("booking-7"), domain.KindBooking),
		},
	}
	publisher := &fakePublisher{}
	uc := NewUseCase(repo, &fakeTxManager{}, publisher, &fakeLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		OwnerID:        ptr.Ptr("booking-42"),
		Range:          domain.NewDateRange(day(2025, time.June, 28), day(2025, time.July, 2)),
		OccupancyCount: 2,
		Kind:           domain.KindBooking,
	})

	assert.ErrorIs(t, err, ErrRangeConflict)
	assert.Empty(t, repo.created)
	assert.Empty(t, publisher.published)
}

func TestExecute_ConflictWithAdministrativeBlock(t *testing.T) {
	// Блокировка без владельца конфликтует с любой бронью
	repo := &fakeRepo{
		held: []*domain.Allocation{
			heldDay("2025-06-29", nil, domain.KindBlocked),
		},
	}
	uc := NewUseCase(repo, &fakeTxManager{}, &fakePublisher{}, &fakeLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		OwnerID:        ptr.Ptr("booking-42"),
		Range:          domain.NewDateRange(day(2025, time.June, 28), day(2025, time.July, 2)),
		OccupancyCount: 2,
		Kind:           domain.KindBooking,
	})

	assert.ErrorIs(t, err, ErrRangeConflict)
}

func TestExecute_SameOwnerRecreateIsIdempotent(t *testing.T) {
	// Повторная запись того же диапазона тем же владельцем - легальный upsert
	repo := &fakeRepo{
		held: []*domain.Allocation{
			heldDay("2025-06-28", ptr.Ptr("booking-42"), domain.KindBooking),
			heldDay("2025-06-29", ptr.Ptr("booking-42"), domain.KindBooking),
		},
	}
	uc := NewUseCase(repo, &fakeTxManager{}, &fakePublisher{}, &fakeLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		OwnerID:        ptr.Ptr("booking-42"),
		Range:          domain.NewDateRange(day(2025, time.June, 28), day(2025, time.June, 30)),
		OccupancyCount: 2,
		Kind:           domain.KindBooking,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-28", "2025-06-29"}, resp.Days)
	require.Len(t, repo.created, 1)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name: "unknown kind",
			req: &Request{
				OwnerID:        ptr.Ptr("booking-42"),
				Range:          domain.NewDateRange(day(2025, time.June, 28), day(2025, time.June, 30)),
				OccupancyCount: 2,
				Kind:           domain.AllocationKind("maintenance"),
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "booking without owner",
			req: &Request{
				Range:          domain.NewDateRange(day(2025, time.June, 28), day(2025, time.June, 30)),
				OccupancyCount: 2,
				Kind:           domain.KindBooking,
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "booking with zero occupancy",
			req: &Request{
				OwnerID:        ptr.Ptr("booking-42"),
				Range:          domain.NewDateRange(day(2025, time.June, 28), day(2025, time.June, 30)),
				OccupancyCount: 0,
				Kind:           domain.KindBooking,
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "booking with too many guests",
			req: &Request{
				OwnerID:        ptr.Ptr("booking-42"),
				Range:          domain.NewDateRange(day(2025, time.June, 28), day(2025, time.June, 30)),
				OccupancyCount: domain.MaxOccupancy + 1,
				Kind:           domain.KindBooking,
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "blocked with owner",
			req: &Request{
				OwnerID:        ptr.Ptr("booking-42"),
				Range:          domain.NewDateRange(day(2025, time.June, 28), day(2025, time.June, 30)),
				OccupancyCount: 0,
				Kind:           domain.KindBlocked,
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "blocked with occupancy",
			req: &Request{
				Range:          domain.NewDateRange(day(2025, time.June, 28), day(2025, time.June, 30)),
				OccupancyCount: 1,
				Kind:           domain.KindBlocked,
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "empty range",
			req: &Request{
				OwnerID:        ptr.Ptr("booking-42"),
				Range:          domain.NewDateRange(day(2025, time.June, 28), day(2025, time.June, 28)),
				OccupancyCount: 2,
				Kind:           domain.KindBooking,
			},
			wantErr: ErrInvalidRange,
		},
		{
			name: "inverted range",
			req: &Request{
				OwnerID:        ptr.Ptr("booking-42"),
				Range:          domain.NewDateRange(day(2025, time.June, 30), day(2025, time.June, 28)),
				OccupancyCount: 2,
				Kind:           domain.KindBooking,
			},
			wantErr: ErrInvalidRange,
		},
		{
			name: "range longer than a year",
			req: &Request{
				OwnerID:        ptr.Ptr("booking-42"),
				Range:          domain.NewDateRange(day(2025, time.January, 1), day(2026, time.June, 1)),
				OccupancyCount: 2,
				Kind:           domain.KindBooking,
			},
			wantErr: ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			uc := NewUseCase(repo, &fakeTxManager{}, &fakePublisher{}, &fakeLogger{})

			_, err := uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.created)
		})
	}
}
