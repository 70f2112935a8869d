package allocationmongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

const collectionName = "allocations"

// Repository mongo-адаптер реестра аллокаций
// Один документ = один календарный день, _id = day_key
// Контракт совпадает с postgres-репозиторием, бэкенд выбирается конфигурацией
type Repository struct {
	col *mongo.Collection
}

// NewRepository создает новый экземпляр mongo-репозитория аллокаций
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection(collectionName)}
}

// Connect открывает соединение с mongo и проверяет его ping-ом
func Connect(ctx context.Context, uri, database string) (*mongo.Database, error) {
	opts := options.Client().ApplyURI(uri).SetRetryWrites(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: Connect: %v", ErrExecQuery, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("%w: Connect - ping: %v", ErrExecQuery, err)
	}

	return client.Database(database), nil
}

// allocationDocument схема документа в коллекции allocations
type allocationDocument struct {
	DayKey         string    `bson:"_id"`
	OwnerID        *string   `bson:"owner_id"`
	RangeStart     time.Time `bson:"range_start"`
	RangeEnd       time.Time `bson:"range_end"`
	OccupancyCount int       `bson:"occupancy_count"`
	Kind           string    `bson:"kind"`
	CreatedAt      time.Time `bson:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at"`
}

func (d *allocationDocument) toDomain() *domain.Allocation {
	return &domain.Allocation{
		DayKey:         d.DayKey,
		OwnerID:        d.OwnerID,
		RangeStart:     d.RangeStart,
		RangeEnd:       d.RangeEnd,
		OccupancyCount: d.OccupancyCount,
		Kind:           domain.AllocationKind(d.Kind),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// CreateRange записывает по одному документу на каждый день диапазона
// Батч выполняется в сессионной транзакции - либо весь диапазон, либо ничего
// Перезапись занятого дня - upsert, проверка конфликтов лежит на usecase
func (r *Repository) CreateRange(ctx context.Context, alloc domain.RangeAllocation) error {
	days := alloc.Range.Days()
	if len(days) == 0 {
		return fmt.Errorf("%w: CreateRange - %s", ErrEmptyRange, alloc.Range)
	}

	now := time.Now()

	models := make([]mongo.WriteModel, 0, len(days))
	for _, day := range days {
		update := bson.M{
			"$set": bson.M{
				"owner_id":        alloc.OwnerID,
				"range_start":     alloc.Range.Start,
				"range_end":       alloc.Range.End,
				"occupancy_count": alloc.OccupancyCount,
				"kind":            string(alloc.Kind),
				"updated_at":      now,
			},
			"$setOnInsert": bson.M{
				"created_at": now,
			},
		}
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": day}).
			SetUpdate(update).
			SetUpsert(true))
	}

	return r.inTransaction(ctx, func(txCtx context.Context) error {
		if _, err := r.col.BulkWrite(txCtx, models, options.BulkWrite().SetOrdered(true)); err != nil {
			return fmt.Errorf("%w: CreateRange - bulk write: %v", ErrExecQuery, err)
		}
		return nil
	})
}

// DeleteRange удаляет все документы диапазона одним DeleteMany
// Отсутствующие дни пропускаются молча - операция идемпотентна
func (r *Repository) DeleteRange(ctx context.Context, rng domain.DateRange) (int64, error) {
	days := rng.Days()
	if len(days) == 0 {
		return 0, fmt.Errorf("%w: DeleteRange - %s", ErrEmptyRange, rng)
	}

	res, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": days}})
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteRange - delete many: %v", ErrExecQuery, err)
	}

	return res.DeletedCount, nil
}

// GetByDay получает аллокацию на конкретный календарный день
func (r *Repository) GetByDay(ctx context.Context, dayKey string) (*domain.Allocation, error) {
	var doc allocationDocument

	err := r.col.FindOne(ctx, bson.M{"_id": dayKey}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrAllocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay: %v", ErrDecodeDocument, err)
	}

	return doc.toDomain(), nil
}

// GetByDays получает аллокации на перечисленные дни в хронологическом порядке
func (r *Repository) GetByDays(ctx context.Context, dayKeys []string) ([]*domain.Allocation, error) {
	if len(dayKeys) == 0 {
		return []*domain.Allocation{}, nil
	}

	filter := bson.M{"_id": bson.M{"$in": dayKeys}}
	return r.find(ctx, filter)
}

// GetByMonth получает все аллокации календарного месяца
// Лексикографические границы по _id эквивалентны хронологическим
func (r *Repository) GetByMonth(ctx context.Context, year int, month time.Month) ([]*domain.Allocation, error) {
	firstDay, nextMonth := domain.MonthBounds(year, month)

	filter := bson.M{"_id": bson.M{"$gte": firstDay, "$lt": nextMonth}}
	return r.find(ctx, filter)
}

func (r *Repository) find(ctx context.Context, filter bson.M) ([]*domain.Allocation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: find: %v", ErrExecQuery, err)
	}
	defer cursor.Close(ctx)

	allocations := make([]*domain.Allocation, 0)
	for cursor.Next(ctx) {
		var doc allocationDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: find - decode: %v", ErrDecodeDocument, err)
		}
		allocations = append(allocations, doc.toDomain())
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: find - cursor error: %v", ErrExecQuery, err)
	}

	return allocations, nil
}

// inTransaction выполняет fn в сессионной транзакции
// На standalone-инстансах без replica set сессии недоступны -
// тогда fn выполняется вне транзакции (батч остаётся ordered bulk write)
func (r *Repository) inTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	client := r.col.Database().Client()

	sess, err := client.StartSession()
	if err != nil {
		return fn(ctx)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
