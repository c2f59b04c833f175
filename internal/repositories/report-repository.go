package repositories

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gardgear/internal/entities"
	"gardgear/pkg/status"
)

type ReportRepositoryInterface interface {
	RequestsReport(ctx context.Context) (*entities.RequestsReport, error)
	RequestRegister(ctx context.Context) ([]entities.RegisterRow, error)
}

type ReportRepository struct {
	storage *pgxpool.Pool
}

func NewReportRepository(storage *pgxpool.Pool) ReportRepositoryInterface {
	return &ReportRepository{storage: storage}
}

type statusCount struct {
	Status string `db:"status"`
	Count  uint64 `db:"count"`
}

type typeCount struct {
	RequestType string `db:"request_type"`
	Count       uint64 `db:"count"`
}

func (r *ReportRepository) RequestsReport(ctx context.Context) (*entities.RequestsReport, error) {
	report := &entities.RequestsReport{
		ByStatus:    map[string]uint64{},
		ByType:      map[string]uint64{},
		GeneratedAt: time.Now(),
	}

	rows, err := r.storage.Query(ctx,
		"SELECT status, COUNT(*) AS count FROM maintenance_requests GROUP BY status")
	if err != nil {
		return nil, err
	}
	byStatus, err := pgx.CollectRows(rows, pgx.RowToStructByName[statusCount])
	if err != nil {
		return nil, err
	}
	for _, sc := range byStatus {
		report.ByStatus[sc.Status] = sc.Count
		report.Total += sc.Count
	}
	// Zero-fill so every column shows up even with no rows behind it.
	for _, s := range status.All {
		if _, ok := report.ByStatus[s]; !ok {
			report.ByStatus[s] = 0
		}
	}

	rows, err = r.storage.Query(ctx,
		"SELECT request_type, COUNT(*) AS count FROM maintenance_requests GROUP BY request_type")
	if err != nil {
		return nil, err
	}
	byType, err := pgx.CollectRows(rows, pgx.RowToStructByName[typeCount])
	if err != nil {
		return nil, err
	}
	for _, tc := range byType {
		report.ByType[tc.RequestType] = tc.Count
	}

	err = r.storage.QueryRow(ctx,
		`SELECT COUNT(*) FROM maintenance_requests
		 WHERE due_date IS NOT NULL
		   AND due_date < CURRENT_DATE
		   AND status NOT IN ($1, $2)`,
		status.Repaired, status.Scrap,
	).Scan(&report.Overdue)
	if err != nil {
		return nil, err
	}

	rows, err = r.storage.Query(ctx,
		`SELECT t.team_name AS group_name, COUNT(*) AS count
		 FROM maintenance_requests r
		 JOIN maintenance_teams t ON t.id = r.team_id
		 GROUP BY t.team_name
		 ORDER BY count DESC, group_name ASC`)
	if err != nil {
		return nil, err
	}
	report.ByTeam, err = pgx.CollectRows(rows, pgx.RowToStructByName[entities.GroupCount])
	if err != nil {
		return nil, err
	}

	rows, err = r.storage.Query(ctx,
		`SELECT COALESCE(e.department, 'Unassigned') AS group_name, COUNT(*) AS count
		 FROM maintenance_requests r
		 JOIN equipment e ON e.id = r.equipment_id
		 GROUP BY COALESCE(e.department, 'Unassigned')
		 ORDER BY count DESC, group_name ASC`)
	if err != nil {
		return nil, err
	}
	report.ByDepartment, err = pgx.CollectRows(rows, pgx.RowToStructByName[entities.GroupCount])
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (r *ReportRepository) RequestRegister(ctx context.Context) ([]entities.RegisterRow, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT r.id, r.subject, r.request_type,
		        e.name, e.serial_number, t.team_name,
		        u.first_name, u.last_name, u.username,
		        r.status, r.scheduled_date, r.due_date, r.duration_hours, r.created_at,
		        (r.due_date IS NOT NULL
		           AND r.due_date < CURRENT_DATE
		           AND r.status NOT IN ($1, $2)) AS overdue
		 FROM maintenance_requests r
		 LEFT JOIN equipment e ON e.id = r.equipment_id
		 LEFT JOIN maintenance_teams t ON t.id = r.team_id
		 LEFT JOIN users u ON u.id = r.technician_id
		 ORDER BY r.created_at DESC`,
		status.Repaired, status.Scrap)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entities.RegisterRow
	for rows.Next() {
		var row entities.RegisterRow
		var first, last, username null.String
		if err := rows.Scan(
			&row.ID, &row.Subject, &row.RequestType,
			&row.EquipmentName, &row.SerialNumber, &row.TeamName,
			&first, &last, &username,
			&row.Status, &row.ScheduledDate, &row.DueDate, &row.DurationHours, &row.CreatedAt,
			&row.Overdue,
		); err != nil {
			return nil, err
		}
		row.TechnicianName = technicianName(first, last, username)
		items = append(items, row)
	}
	return items, rows.Err()
}
