package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"gardgear/internal/dto"
	"gardgear/internal/entities"
	"gardgear/pkg/utils"
)

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context, params utils.ListParams) ([]entities.MaintenanceTeam, uint64, error)
	FindTeam(ctx context.Context, id uint64) (*entities.MaintenanceTeam, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.MaintenanceTeam, error)
}

type TeamRepository struct {
	storage *pgxpool.Pool
}

func NewTeamRepository(storage *pgxpool.Pool) TeamRepositoryInterface {
	return &TeamRepository{storage: storage}
}

func (r *TeamRepository) GetTeams(ctx context.Context, params utils.ListParams) ([]entities.MaintenanceTeam, uint64, error) {
	b := sq.Select("id", "team_name").
		From("maintenance_teams").
		OrderBy("team_name ASC")

	if params.Search != "" {
		b = b.Where(sq.ILike{"team_name": "%" + params.Search + "%"})
	}
	if params.Paginated {
		b = b.Limit(uint64(params.Limit)).Offset(params.Offset())
	}

	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var teams []entities.MaintenanceTeam
	for rows.Next() {
		var t entities.MaintenanceTeam
		if err := rows.Scan(&t.ID, &t.TeamName); err != nil {
			return nil, 0, err
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	total := uint64(len(teams))
	if params.Paginated {
		if err := r.storage.QueryRow(ctx, "SELECT COUNT(*) FROM maintenance_teams").Scan(&total); err != nil {
			return nil, 0, err
		}
	}
	return teams, total, nil
}

func (r *TeamRepository) FindTeam(ctx context.Context, id uint64) (*entities.MaintenanceTeam, error) {
	var t entities.MaintenanceTeam
	err := r.storage.QueryRow(ctx,
		"SELECT id, team_name FROM maintenance_teams WHERE id = $1", id,
	).Scan(&t.ID, &t.TeamName)
	if err != nil {
		return nil, translateNoRows(err)
	}
	return &t, nil
}

func (r *TeamRepository) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.MaintenanceTeam, error) {
	var t entities.MaintenanceTeam
	err := r.storage.QueryRow(ctx,
		"INSERT INTO maintenance_teams (team_name) VALUES ($1) RETURNING id, team_name",
		payload.TeamName,
	).Scan(&t.ID, &t.TeamName)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
