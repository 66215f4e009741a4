package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/carlosRosario19/EventEase-Backend/internal/model"
)

// EventSearchQuery defines filters & pagination for browsing events.
// Title matches as a case-insensitive prefix, Location and Category as
// case-insensitive substrings. Blank filters are not applied. Page is
// zero-based.
type EventSearchQuery struct {
	Title    string
	Location string
	Category string
	Page     int
	Size     int
}

// EventRepo manages persistence for events.
type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

const eventColumns = `event_id, title, description, category, date_time, location,
	total_tickets, tickets_sold, price_per_ticket, COALESCE(image_path, ''), member_id, created_at`

func scanEvent(row interface{ Scan(...any) error }, e *model.Event) error {
	return row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.Category,
		&e.DateTime,
		&e.Location,
		&e.TotalTickets,
		&e.TicketsSold,
		&e.PricePerTicket,
		&e.ImagePath,
		&e.MemberID,
		&e.CreatedAt,
	)
}

// Search returns one page of events matching the query plus the total
// match count. The count and data statements share the same predicate so
// pagination metadata cannot drift from the returned slice. Results are
// always ordered by event date, newest first.
func (r *EventRepo) Search(ctx context.Context, q EventSearchQuery) ([]model.Event, int64, error) {
	where := []string{}
	args := []any{}

	if q.Title != "" {
		where = append(where, "LOWER(title) LIKE ?")
		args = append(args, strings.ToLower(q.Title)+"%")
	}
	if q.Location != "" {
		where = append(where, "LOWER(location) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.Location)+"%")
	}
	if q.Category != "" {
		where = append(where, "LOWER(category) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.Category)+"%")
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	var total int64
	countSQL := `SELECT COUNT(*) FROM events WHERE ` + cond
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := q.Size
	offset := q.Page * q.Size

	dataSQL := `SELECT ` + eventColumns + `
		FROM events
		WHERE ` + cond + `
		ORDER BY date_time DESC
		LIMIT ? OFFSET ?`

	argsData := append(append([]any{}, args...), limit, offset)

	rows, err := r.db.QueryContext(ctx, dataSQL, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]model.Event, 0, limit)
	for rows.Next() {
		var e model.Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// FindByID fetches a single event by primary key.
func (r *EventRepo) FindByID(ctx context.Context, id int) (model.Event, error) {
	var e model.Event
	err := scanEvent(r.db.QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE event_id=? LIMIT 1`, id), &e)
	if err == sql.ErrNoRows {
		return model.Event{}, ErrEventNotFound
	}
	return e, err
}

// FindByDateAndLocation fetches the event occupying an exact (date, location)
// slot, or ErrEventNotFound when the slot is free.
func (r *EventRepo) FindByDateAndLocation(ctx context.Context, dateTime time.Time, location string) (model.Event, error) {
	var e model.Event
	err := scanEvent(r.db.QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE date_time=? AND location=? LIMIT 1`,
		dateTime, location), &e)
	if err == sql.ErrNoRows {
		return model.Event{}, ErrEventNotFound
	}
	return e, err
}

// FindAllByMember returns one page of a member's events plus the total
// count, ordered by event date descending. Page is zero-based.
func (r *EventRepo) FindAllByMember(ctx context.Context, memberID, page, size int) ([]model.Event, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM events WHERE member_id=?`, memberID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE member_id=? ORDER BY date_time DESC LIMIT ? OFFSET ?`,
		memberID, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]model.Event, 0, size)
	for rows.Next() {
		var e model.Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Create inserts a new event and fills in its generated ID. A duplicate
// (date_time, location) key is reported as ErrEventExists so a conflict
// lost to a concurrent writer still surfaces as a conflict.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) error {
	imagePath := sql.NullString{String: e.ImagePath, Valid: e.ImagePath != ""}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO events (title, description, category, date_time, location,
			total_tickets, tickets_sold, price_per_ticket, image_path, member_id, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		e.Title, e.Description, e.Category, e.DateTime, e.Location,
		e.TotalTickets, e.TicketsSold, e.PricePerTicket, imagePath, e.MemberID, e.CreatedAt)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrEventExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = int(id)
	return nil
}
