package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5/pgxpool"

	"gardgear/internal/dto"
	"gardgear/internal/entities"
	apperrors "gardgear/pkg/errors"
	"gardgear/pkg/status"
	"gardgear/pkg/utils"
)

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context, params utils.ListParams) ([]entities.MaintenanceRequest, uint64, error)
	FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO, present map[string]bool) (*entities.MaintenanceRequest, error)
	DeleteRequest(ctx context.Context, id uint64) error
}

type RequestRepository struct {
	storage *pgxpool.Pool
}

func NewRequestRepository(storage *pgxpool.Pool) RequestRepositoryInterface {
	return &RequestRepository{storage: storage}
}

func requestSelect() sq.SelectBuilder {
	return sq.Select(
		"r.id", "r.subject", "r.request_type", "r.equipment_id", "r.team_id",
		"r.technician_id", "r.status", "r.scheduled_date", "r.duration_hours",
		"r.due_date", "r.created_at",
		"e.name", "e.serial_number", "t.team_name",
		"u.first_name", "u.last_name", "u.username",
	).
		From("maintenance_requests r").
		LeftJoin("equipment e ON e.id = r.equipment_id").
		LeftJoin("maintenance_teams t ON t.id = r.team_id").
		LeftJoin("users u ON u.id = r.technician_id").
		PlaceholderFormat(sq.Dollar)
}

func scanRequest(row interface {
	Scan(dest ...any) error
}, m *entities.MaintenanceRequest) error {
	var first, last, username null.String
	err := row.Scan(
		&m.ID, &m.Subject, &m.RequestType, &m.EquipmentID, &m.TeamID,
		&m.TechnicianID, &m.Status, &m.ScheduledDate, &m.DurationHours,
		&m.DueDate, &m.CreatedAt,
		&m.EquipmentName, &m.EquipmentSerial, &m.TeamName,
		&first, &last, &username,
	)
	if err != nil {
		return err
	}
	m.TechnicianName = technicianName(first, last, username)
	return nil
}

// technicianName composes a display name from the joined user columns:
// "First Last" when either part is set, else the username.
func technicianName(first, last, username null.String) null.String {
	if !username.Valid {
		return null.String{}
	}
	full := first.String
	if last.String != "" {
		if full != "" {
			full += " "
		}
		full += last.String
	}
	if full == "" {
		full = username.String
	}
	return null.StringFrom(full)
}

func (r *RequestRepository) GetRequests(ctx context.Context, params utils.ListParams) ([]entities.MaintenanceRequest, uint64, error) {
	ordering := "r.created_at DESC"
	if col, dir, ok := params.OrderingColumn("created_at", "due_date", "scheduled_date", "status", "subject"); ok {
		ordering = "r." + col + " " + dir
	}

	b := requestSelect().OrderBy(ordering)
	countB := sq.Select("COUNT(*)").From("maintenance_requests r").PlaceholderFormat(sq.Dollar)

	for key, col := range map[string]string{
		"status":       "r.status",
		"request_type": "r.request_type",
		"equipment":    "r.equipment_id",
		"team":         "r.team_id",
		"technician":   "r.technician_id",
	} {
		if v, ok := params.Filters[key]; ok {
			b = b.Where(sq.Eq{col: v})
			countB = countB.Where(sq.Eq{col: v})
		}
	}
	if params.Search != "" {
		like := "%" + params.Search + "%"
		cond := sq.Or{
			sq.ILike{"r.subject": like},
			sq.Expr("r.equipment_id IN (SELECT id FROM equipment WHERE name ILIKE ? OR serial_number ILIKE ?)", like, like),
		}
		b = b.Where(cond)
		countB = countB.Where(cond)
	}
	if params.Paginated {
		b = b.Limit(uint64(params.Limit)).Offset(params.Offset())
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []entities.MaintenanceRequest
	for rows.Next() {
		var m entities.MaintenanceRequest
		if err := scanRequest(rows, &m); err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	total := uint64(len(items))
	if params.Paginated {
		query, args, err := countB.ToSql()
		if err != nil {
			return nil, 0, err
		}
		if err := r.storage.QueryRow(ctx, query, args...).Scan(&total); err != nil {
			return nil, 0, err
		}
	}
	return items, total, nil
}

func (r *RequestRepository) FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	query, args, err := requestSelect().Where(sq.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	var m entities.MaintenanceRequest
	if err := scanRequest(r.storage.QueryRow(ctx, query, args...), &m); err != nil {
		return nil, translateNoRows(err)
	}
	return &m, nil
}

func (r *RequestRepository) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error) {
	scheduled, err := nullDate(payload.ScheduledDate)
	if err != nil {
		return nil, err
	}
	due, err := nullDate(payload.DueDate)
	if err != nil {
		return nil, err
	}
	st := status.New
	if payload.Status != nil {
		st = *payload.Status
	}

	query, args, err := sq.Insert("maintenance_requests").
		Columns("subject", "request_type", "equipment_id", "team_id",
			"technician_id", "status", "scheduled_date", "duration_hours", "due_date").
		Values(payload.Subject, payload.RequestType, payload.Equipment, payload.Team,
			null.Uint64FromPtr(payload.Technician), st, scheduled,
			null.Float64FromPtr(payload.DurationHours), due).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var id uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, translateConstraint(err)
	}
	return r.FindRequest(ctx, id)
}

func (r *RequestRepository) UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO, present map[string]bool) (*entities.MaintenanceRequest, error) {
	b := sq.Update("maintenance_requests").Where(sq.Eq{"id": id}).PlaceholderFormat(sq.Dollar)
	touched := false

	set := func(col string, v any) {
		b = b.Set(col, v)
		touched = true
	}

	if present["subject"] && payload.Subject != nil {
		set("subject", *payload.Subject)
	}
	if present["request_type"] && payload.RequestType != nil {
		set("request_type", *payload.RequestType)
	}
	if present["equipment"] && payload.Equipment != nil {
		set("equipment_id", *payload.Equipment)
	}
	if present["team"] && payload.Team != nil {
		set("team_id", *payload.Team)
	}
	if present["technician"] {
		set("technician_id", null.Uint64FromPtr(payload.Technician))
	}
	if present["status"] && payload.Status != nil {
		set("status", *payload.Status)
	}
	if present["scheduled_date"] {
		v, err := nullDate(payload.ScheduledDate)
		if err != nil {
			return nil, err
		}
		set("scheduled_date", v)
	}
	if present["duration_hours"] {
		set("duration_hours", null.Float64FromPtr(payload.DurationHours))
	}
	if present["due_date"] {
		v, err := nullDate(payload.DueDate)
		if err != nil {
			return nil, err
		}
		set("due_date", v)
	}

	if touched {
		query, args, err := b.ToSql()
		if err != nil {
			return nil, err
		}
		tag, err := r.storage.Exec(ctx, query, args...)
		if err != nil {
			return nil, translateConstraint(err)
		}
		if tag.RowsAffected() == 0 {
			return nil, apperrors.ErrNotFound
		}
	}
	return r.FindRequest(ctx, id)
}

func (r *RequestRepository) DeleteRequest(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, "DELETE FROM maintenance_requests WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
