package allocation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

var allocationColumns = []string{
	"day_key",
	"owner_id",
	"range_start",
	"range_end",
	"occupancy_count",
	"kind",
	"created_at",
	"updated_at",
}

// Repository PostgreSQL-репозиторий реестра аллокаций
// Одна строка = один календарный день, day_key - первичный ключ
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аллокаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateRange разворачивает диапазон и записывает по одной аллокации на каждый
// день одним multi-row INSERT - батч атомарен в рамках одного стейтмента.
//
// Репозиторий НЕ проверяет конфликты: запись поверх занятого day_key молча
// перезаписывает его (upsert). Проверка конфликтов - обязанность вызывающего
// usecase, который держит conflict scan и запись в одной сериализуемой
// транзакции. Перезапись тем же владельцем - легальный идемпотентный сценарий.
func (r *Repository) CreateRange(ctx context.Context, alloc domain.RangeAllocation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	days := alloc.Range.Days()
	if len(days) == 0 {
		return fmt.Errorf("%w: CreateRange - %s", ErrEmptyRange, alloc.Range)
	}

	insertBuilder := psqlbuilder.Insert("allocations").
		Columns(
			"day_key",
			"owner_id",
			"range_start",
			"range_end",
			"occupancy_count",
			"kind",
		)

	for _, day := range days {
		insertBuilder = insertBuilder.Values(
			day,
			alloc.OwnerID,
			alloc.Range.Start,
			alloc.Range.End,
			alloc.OccupancyCount,
			alloc.Kind,
		)
	}

	query, args, err := insertBuilder.
		Suffix(`ON CONFLICT (day_key) DO UPDATE SET
			owner_id = EXCLUDED.owner_id,
			range_start = EXCLUDED.range_start,
			range_end = EXCLUDED.range_end,
			occupancy_count = EXCLUDED.occupancy_count,
			kind = EXCLUDED.kind,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CreateRange - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateRange - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteRange удаляет все аллокации, чьи day_key попадают в диапазон, одним
// стейтментом. Отсутствующие дни пропускаются молча - операция идемпотентна.
// Возвращает количество удалённых дней.
func (r *Repository) DeleteRange(ctx context.Context, rng domain.DateRange) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	days := rng.Days()
	if len(days) == 0 {
		return 0, fmt.Errorf("%w: DeleteRange - %s", ErrEmptyRange, rng)
	}

	query, args, err := psqlbuilder.Delete("allocations").
		Where(squirrel.Eq{"day_key": days}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteRange - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteRange - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteRange - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// GetByDay получает аллокацию на конкретный календарный день
func (r *Repository) GetByDay(ctx context.Context, dayKey string) (*domain.Allocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(allocationColumns...).
		From("allocations").
		Where(squirrel.Eq{"day_key": dayKey}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - build select query: %v", ErrBuildQuery, err)
	}

	var alloc domain.Allocation
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&alloc.DayKey,
		&alloc.OwnerID,
		&alloc.RangeStart,
		&alloc.RangeEnd,
		&alloc.OccupancyCount,
		&alloc.Kind,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAllocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - scan allocation: %v", ErrScanRow, err)
	}

	alloc.CreatedAt = createdAt.Time
	alloc.UpdatedAt = updatedAt.Time

	return &alloc, nil
}

// GetByDays получает аллокации на перечисленные дни в хронологическом порядке
// Дни без аллокаций в результат не попадают.
//
// Внутри транзакции добавляет FOR UPDATE - так conflict scan в usecase
// блокирует найденные строки до конца транзакции.
func (r *Repository) GetByDays(ctx context.Context, dayKeys []string) ([]*domain.Allocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if len(dayKeys) == 0 {
		return []*domain.Allocation{}, nil
	}

	selectBuilder := psqlbuilder.Select(allocationColumns...).
		From("allocations").
		Where(squirrel.Eq{"day_key": dayKeys}).
		OrderBy("day_key ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAllocations(rows)
}

// GetByMonth получает все аллокации календарного месяца
// Использует лексикографические границы по day_key: формат YYYY-MM-DD
// сортируется так же, как хронологический порядок
func (r *Repository) GetByMonth(ctx context.Context, year int, month time.Month) ([]*domain.Allocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	firstDay, nextMonth := domain.MonthBounds(year, month)

	query, args, err := psqlbuilder.Select(allocationColumns...).
		From("allocations").
		Where(squirrel.GtOrEq{"day_key": firstDay}).
		Where(squirrel.Lt{"day_key": nextMonth}).
		OrderBy("day_key ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByMonth - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMonth - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAllocations(rows)
}

// scanAllocations сканирует результаты запроса в слайс аллокаций
func (r *Repository) scanAllocations(rows *sql.Rows) ([]*domain.Allocation, error) {
	allocations := make([]*domain.Allocation, 0)

	for rows.Next() {
		var alloc domain.Allocation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&alloc.DayKey,
			&alloc.OwnerID,
			&alloc.RangeStart,
			&alloc.RangeEnd,
			&alloc.OccupancyCount,
			&alloc.Kind,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAllocations - scan row: %v", ErrScanRow, err)
		}

		alloc.CreatedAt = createdAt.Time
		alloc.UpdatedAt = updatedAt.Time

		allocations = append(allocations, &alloc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAllocations - rows error: %v", ErrScanRow, err)
	}

	return allocations, nil
}
