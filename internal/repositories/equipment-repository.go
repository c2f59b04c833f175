package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5/pgxpool"

	"gardgear/internal/dto"
	"gardgear/internal/entities"
	apperrors "gardgear/pkg/errors"
	"gardgear/pkg/utils"
)

type EquipmentRepositoryInterface interface {
	GetEquipment(ctx context.Context, params utils.ListParams) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO, present map[string]bool) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uint64) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func equipmentSelect() sq.SelectBuilder {
	return sq.Select(
		"e.id", "e.name", "e.serial_number", "e.department", "e.owner_name",
		"e.location", "e.purchase_date", "e.warranty_end",
		"e.maintenance_team_id", "e.is_active", "t.team_name",
	).
		From("equipment e").
		LeftJoin("maintenance_teams t ON t.id = e.maintenance_team_id").
		PlaceholderFormat(sq.Dollar)
}

func scanEquipment(rows interface {
	Scan(dest ...any) error
}, e *entities.Equipment) error {
	return rows.Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.Department, &e.OwnerName,
		&e.Location, &e.PurchaseDate, &e.WarrantyEnd,
		&e.TeamID, &e.IsActive, &e.TeamName,
	)
}

func (r *EquipmentRepository) GetEquipment(ctx context.Context, params utils.ListParams) ([]entities.Equipment, uint64, error) {
	b := equipmentSelect().OrderBy("e.name ASC")
	countB := sq.Select("COUNT(*)").From("equipment e").PlaceholderFormat(sq.Dollar)

	for key, col := range map[string]string{
		"maintenance_team": "e.maintenance_team_id",
		"department":       "e.department",
		"is_active":        "e.is_active",
	} {
		if v, ok := params.Filters[key]; ok {
			b = b.Where(sq.Eq{col: v})
			countB = countB.Where(sq.Eq{col: v})
		}
	}
	if params.Search != "" {
		like := "%" + params.Search + "%"
		cond := sq.Or{
			sq.ILike{"e.name": like},
			sq.ILike{"e.serial_number": like},
			sq.ILike{"e.owner_name": like},
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

	var items []entities.Equipment
	for rows.Next() {
		var e entities.Equipment
		if err := scanEquipment(rows, &e); err != nil {
			return nil, 0, err
		}
		items = append(items, e)
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

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query, args, err := equipmentSelect().Where(sq.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	var e entities.Equipment
	if err := scanEquipment(r.storage.QueryRow(ctx, query, args...), &e); err != nil {
		return nil, translateNoRows(err)
	}
	return &e, nil
}

func nullDate(s *string) (null.Time, error) {
	if s == nil || *s == "" {
		return null.Time{}, nil
	}
	t, err := entities.ParseWireDate(*s)
	if err != nil {
		return null.Time{}, err
	}
	return null.TimeFrom(t), nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	purchase, err := nullDate(payload.PurchaseDate)
	if err != nil {
		return nil, err
	}
	warranty, err := nullDate(payload.WarrantyEnd)
	if err != nil {
		return nil, err
	}
	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	query, args, err := sq.Insert("equipment").
		Columns("name", "serial_number", "department", "owner_name", "location",
			"purchase_date", "warranty_end", "maintenance_team_id", "is_active").
		Values(payload.Name, payload.SerialNumber, null.StringFromPtr(payload.Department),
			null.StringFromPtr(payload.OwnerName), null.StringFromPtr(payload.Location),
			purchase, warranty, payload.Team, active).
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
	return r.FindEquipment(ctx, id)
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO, present map[string]bool) (*entities.Equipment, error) {
	b := sq.Update("equipment").Where(sq.Eq{"id": id}).PlaceholderFormat(sq.Dollar)
	touched := false

	set := func(col string, v any) {
		b = b.Set(col, v)
		touched = true
	}

	if present["name"] && payload.Name != nil {
		set("name", *payload.Name)
	}
	if present["serial_number"] && payload.SerialNumber != nil {
		set("serial_number", *payload.SerialNumber)
	}
	if present["department"] {
		set("department", null.StringFromPtr(payload.Department))
	}
	if present["owner_name"] {
		set("owner_name", null.StringFromPtr(payload.OwnerName))
	}
	if present["location"] {
		set("location", null.StringFromPtr(payload.Location))
	}
	if present["purchase_date"] {
		v, err := nullDate(payload.PurchaseDate)
		if err != nil {
			return nil, err
		}
		set("purchase_date", v)
	}
	if present["warranty_end"] {
		v, err := nullDate(payload.WarrantyEnd)
		if err != nil {
			return nil, err
		}
		set("warranty_end", v)
	}
	if present["maintenance_team"] && payload.Team != nil {
		set("maintenance_team_id", *payload.Team)
	}
	if present["is_active"] && payload.IsActive != nil {
		set("is_active", *payload.IsActive)
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
	return r.FindEquipment(ctx, id)
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, "DELETE FROM equipment WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
