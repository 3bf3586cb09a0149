package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sportops-analytics/internal/analytics"
	"github.com/sportops-analytics/internal/domain"
	"github.com/sportops-analytics/internal/domain/repository"
	"go.uber.org/zap"
)

type eventRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewEventRepository создает новый экземпляр event repository
func NewEventRepository(db *DB, logger *zap.Logger) repository.EventRepository {
	return &eventRepository{
		db:     db,
		logger: logger,
	}
}

// eventRow - строка таблицы events. Поля времени хранятся как пришли от
// платформы (текст); start_at - разобранное время начала для оконных
// запросов, NULL если ни одно поле не разобралось.
type eventRow struct {
	ID          string          `db:"id"`
	Date        sql.NullString  `db:"date"`
	UTCDate     sql.NullString  `db:"utc_date"`
	StartDate   sql.NullString  `db:"start_date"`
	EndDate     sql.NullString  `db:"end_date"`
	Sport       sql.NullString  `db:"sport"`
	Competition sql.NullString  `db:"competition"`
	City        sql.NullString  `db:"city"`
	Region      sql.NullString  `db:"region"`
	Kind        sql.NullString  `db:"kind"`
	Lat         sql.NullFloat64 `db:"lat"`
	Lng         sql.NullFloat64 `db:"lng"`
	StartAt     sql.NullTime    `db:"start_at"`
}

func (r *eventRow) toDomain() domain.Event {
	e := domain.Event{
		ID:          r.ID,
		Date:        r.Date.String,
		UTCDate:     r.UTCDate.String,
		StartDate:   r.StartDate.String,
		EndDate:     r.EndDate.String,
		Sport:       r.Sport.String,
		Competition: r.Competition.String,
		City:        r.City.String,
		Region:      r.Region.String,
		Kind:        r.Kind.String,
	}

	if r.Lat.Valid && r.Lng.Valid {
		e.Location = &domain.Point{Lat: r.Lat.Float64, Lng: r.Lng.Float64}
	}

	return e
}

const eventColumns = `id, date, utc_date, start_date, end_date, sport, competition, city, region, kind, lat, lng, start_at`

// LoadWindow возвращает все события скользящего окна [from, to).
// События без разобранного start_at в окно не попадают: без момента
// начала запись не участвует ни в одной временной агрегации.
func (r *eventRepository) LoadWindow(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE start_at >= $1 AND start_at < $2
		ORDER BY start_at
	`

	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query, from, to); err != nil {
		r.logger.Error("failed to load event window", zap.Error(err))
		return nil, fmt.Errorf("load event window: %w", err)
	}

	events := make([]domain.Event, len(rows))
	for i := range rows {
		events[i] = rows[i].toDomain()
	}

	r.logger.Debug("Event window loaded",
		zap.Time("from", from),
		zap.Time("to", to),
		zap.Int("count", len(events)),
	)

	return events, nil
}

// GetByBounds возвращает события дня внутри bbox с пагинацией
func (r *eventRepository) GetByBounds(ctx context.Context, day time.Time, bounds domain.SpatialBounds, limit, offset int) ([]domain.Event, int, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	countQuery := `
		SELECT COUNT(*)
		FROM events
		WHERE start_at >= $1 AND start_at < $2
		  AND lat BETWEEN $3 AND $4
		  AND lng BETWEEN $5 AND $6
	`

	var total int
	err := r.db.QueryRowContext(ctx, countQuery,
		dayStart, dayEnd, bounds.South, bounds.North, bounds.West, bounds.East,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count events in bounds: %w", err)
	}

	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE start_at >= $1 AND start_at < $2
		  AND lat BETWEEN $3 AND $4
		  AND lng BETWEEN $5 AND $6
		ORDER BY start_at
		LIMIT $7 OFFSET $8
	`

	var rows []eventRow
	err = r.db.SelectContext(ctx, &rows, query,
		dayStart, dayEnd, bounds.South, bounds.North, bounds.West, bounds.East, limit, offset,
	)
	if err != nil {
		r.logger.Error("failed to get events by bounds", zap.Error(err))
		return nil, 0, fmt.Errorf("get events by bounds: %w", err)
	}

	events := make([]domain.Event, len(rows))
	for i := range rows {
		events[i] = rows[i].toDomain()
	}

	return events, total, nil
}

// Insert сохраняет одно событие; start_at вычисляется при записи
func (r *eventRepository) Insert(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES (:id, :date, :utc_date, :start_date, :end_date, :sport, :competition, :city, :region, :kind, :lat, :lng, :start_at)
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := r.db.NamedExecContext(ctx, query, toRow(event)); err != nil {
		r.logger.Error("failed to insert event", zap.String("event_id", event.ID), zap.Error(err))
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

// InsertBatch сохраняет пакет событий в одной транзакции
func (r *eventRepository) InsertBatch(ctx context.Context, events []domain.Event) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES (:id, :date, :utc_date, :start_date, :end_date, :sport, :competition, :city, :region, :kind, :lat, :lng, :start_at)
		ON CONFLICT (id) DO NOTHING
	`

	inserted := 0
	for i := range events {
		res, err := tx.NamedExecContext(ctx, query, toRow(&events[i]))
		if err != nil {
			return 0, fmt.Errorf("insert event %s: %w", events[i].ID, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}

	r.logger.Debug("Event batch inserted",
		zap.Int("received", len(events)),
		zap.Int("inserted", inserted),
	)

	return inserted, nil
}

// toRow готовит map параметров для NamedExec
func toRow(e *domain.Event) map[string]interface{} {
	row := map[string]interface{}{
		"id":          e.ID,
		"date":        nullString(e.Date),
		"utc_date":    nullString(e.UTCDate),
		"start_date":  nullString(e.StartDate),
		"end_date":    nullString(e.EndDate),
		"sport":       nullString(e.Sport),
		"competition": nullString(e.Competition),
		"city":        nullString(e.City),
		"region":      nullString(e.Region),
		"kind":        nullString(e.Kind),
		"lat":         nil,
		"lng":         nil,
		"start_at":    nil,
	}

	if e.Location != nil {
		row["lat"] = e.Location.Lat
		row["lng"] = e.Location.Lng
	}

	if start := analytics.StartOf(*e); start != nil {
		row["start_at"] = *start
	}

	return row
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
