package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"gardgear/internal/entities"
	"gardgear/pkg/utils"
)

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, params utils.ListParams) ([]entities.User, uint64, error)
	GetTechnicians(ctx context.Context, teamID uint64) ([]entities.User, error)
	FindUser(ctx context.Context, id uint64) (*entities.User, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &UserRepository{storage: storage}
}

func userSelect() sq.SelectBuilder {
	return sq.Select(
		"u.id", "u.username", "u.first_name", "u.last_name", "u.email",
		"u.role", "u.team_id", "u.avatar_url", "t.team_name",
	).
		From("users u").
		LeftJoin("maintenance_teams t ON t.id = u.team_id").
		PlaceholderFormat(sq.Dollar)
}

func scanUsers(ctx context.Context, pool *pgxpool.Pool, b sq.SelectBuilder) ([]entities.User, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []entities.User
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Email,
			&u.Role, &u.TeamID, &u.AvatarURL, &u.TeamName,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) GetUsers(ctx context.Context, params utils.ListParams) ([]entities.User, uint64, error) {
	b := userSelect().OrderBy("u.username ASC")

	countB := sq.Select("COUNT(*)").From("users u").PlaceholderFormat(sq.Dollar)

	if role, ok := params.Filters["role"]; ok {
		b = b.Where(sq.Eq{"u.role": role})
		countB = countB.Where(sq.Eq{"u.role": role})
	}
	if team, ok := params.Filters["team"]; ok {
		b = b.Where(sq.Eq{"u.team_id": team})
		countB = countB.Where(sq.Eq{"u.team_id": team})
	}
	if params.Search != "" {
		like := "%" + params.Search + "%"
		cond := sq.Or{
			sq.ILike{"u.username": like},
			sq.ILike{"u.first_name": like},
			sq.ILike{"u.last_name": like},
		}
		b = b.Where(cond)
		countB = countB.Where(cond)
	}
	if params.Paginated {
		b = b.Limit(uint64(params.Limit)).Offset(params.Offset())
	}

	users, err := scanUsers(ctx, r.storage, b)
	if err != nil {
		return nil, 0, err
	}

	total := uint64(len(users))
	if params.Paginated {
		query, args, err := countB.ToSql()
		if err != nil {
			return nil, 0, err
		}
		if err := r.storage.QueryRow(ctx, query, args...).Scan(&total); err != nil {
			return nil, 0, err
		}
	}
	return users, total, nil
}

func (r *UserRepository) GetTechnicians(ctx context.Context, teamID uint64) ([]entities.User, error) {
	b := userSelect().
		Where(sq.Eq{"u.role": entities.RoleTechnician}).
		OrderBy("u.username ASC")
	if teamID != 0 {
		b = b.Where(sq.Eq{"u.team_id": teamID})
	}
	return scanUsers(ctx, r.storage, b)
}

func (r *UserRepository) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	b := userSelect().Where(sq.Eq{"u.id": id})
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	var u entities.User
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Email,
		&u.Role, &u.TeamID, &u.AvatarURL, &u.TeamName,
	)
	if err != nil {
		return nil, translateNoRows(err)
	}
	return &u, nil
}
