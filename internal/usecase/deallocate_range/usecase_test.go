package deallocate_range

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/infra/events"
)

type fakeRepo struct {
	held    map[string]struct{}
	deleted []domain.DateRange
}

func (f *fakeRepo) DeleteRange(_ context.Context, rng domain.DateRange) (int64, error) {
	f.deleted = append(f.deleted, rng)

	var count int64
	for _, key := range rng.Days() {
		if _, ok := f.held[key]; ok {
			count++
			delete(f.held, key)
		}
	}
	return count, nil
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

func TestExecute_ReleasesHeldDays(t *testing.T) {
	repo := &fakeRepo{
		held: map[string]struct{}{
			"2025-06-28": {},
			"2025-06-29": {},
			"2025-06-30": {},
			"2025-07-01": {},
		},
	}
	publisher := &fakePublisher{}
	uc := NewUseCase(repo, publisher, &fakeLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Range: domain.NewDateRange(day(2025, time.June, 28), day(2025, time.July, 2)),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.DeletedDays)
	assert.Equal(t, "2025-06-28", resp.RangeStart)
	assert.Equal(t, "2025-07-02", resp.RangeEnd)
	assert.Empty(t, repo.held)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, events.TypeRangeDeallocated, publisher.published[0].Type)
}

func TestExecute_MissingDaysAreNoOp(t *testing.T) {
	// Удаление свободного диапазона идемпотентно: ошибки нет, удалено 0 дней
	repo := &fakeRepo{held: map[string]struct{}{}}
	uc := NewUseCase(repo, &fakePublisher{}, &fakeLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Range: domain.NewDateRange(day(2025, time.June, 28), day(2025, time.July, 2)),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.DeletedDays)
}

func TestExecute_PartiallyHeldRange(t *testing.T) {
	repo := &fakeRepo{
		held: map[string]struct{}{
			"2025-06-29": {},
			"2025-07-10": {},
		},
	}
	uc := NewUseCase(repo, &fakePublisher{}, &fakeLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Range: domain.NewDateRange(day(2025, time.June, 28), day(2025, time.July, 2)),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.DeletedDays)

	// Дни вне диапазона не трогаем
	_, stillHeld := repo.held["2025-07-10"]
	assert.True(t, stillHeld)
}

func TestExecute_InvalidRange(t *testing.T) {
	repo := &fakeRepo{held: map[string]struct{}{}}
	uc := NewUseCase(repo, &fakePublisher{}, &fakeLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Range: domain.NewDateRange(day(2025, time.July, 2), day(2025, time.June, 28)),
	})

	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Empty(t, repo.deleted)
}
