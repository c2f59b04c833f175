package seeders

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// SeedAll populates teams, technicians, equipment and demo requests in
// dependency order. Every seeder is idempotent: existing rows (matched
// by their natural key) are left alone.
func SeedAll(ctx context.Context, db *pgxpool.Pool) error {
	if err := SeedTeams(ctx, db); err != nil {
		return err
	}
	if err := SeedTechnicians(ctx, db); err != nil {
		return err
	}
	if err := SeedEquipment(ctx, db); err != nil {
		return err
	}
	return SeedRequests(ctx, db)
}

func SeedTeams(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("seeding maintenance_teams...")
	for _, name := range teamsData {
		tag, err := db.Exec(ctx,
			`INSERT INTO maintenance_teams (team_name)
			 SELECT $1 WHERE NOT EXISTS (SELECT 1 FROM maintenance_teams WHERE team_name = $1)`,
			name)
		if err != nil {
			return fmt.Errorf("seed team %q: %w", name, err)
		}
		if tag.RowsAffected() > 0 {
			log.Printf("  created team: %s", name)
		}
	}
	return nil
}

func SeedTechnicians(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("seeding technicians...")

	// Same demo password for every seeded account.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	for _, t := range techniciansData {
		teamID, err := teamIDByName(ctx, db, t.TeamName)
		if err != nil {
			return fmt.Errorf("seed technician %q: %w", t.Username, err)
		}
		tag, err := db.Exec(ctx,
			`INSERT INTO users (username, first_name, last_name, email, password, role, team_id)
			 SELECT $1, $2, $3, $4, $5, 'technician', $6
			 WHERE NOT EXISTS (SELECT 1 FROM users WHERE username = $1)`,
			t.Username, t.FirstName, t.LastName, t.Username+"@example.com", string(hash), teamID)
		if err != nil {
			return fmt.Errorf("seed technician %q: %w", t.Username, err)
		}
		if tag.RowsAffected() > 0 {
			log.Printf("  created technician: %s", t.Username)
		}
	}
	return nil
}

func SeedEquipment(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("seeding equipment...")
	for _, e := range equipmentData {
		teamID, err := teamIDByName(ctx, db, e.TeamName)
		if err != nil {
			return fmt.Errorf("seed equipment %q: %w", e.Name, err)
		}

		purchase := time.Now().AddDate(0, 0, -500)
		warranty := purchase.AddDate(2, 0, 0)

		tag, err := db.Exec(ctx,
			`INSERT INTO equipment (name, serial_number, department, location, purchase_date, warranty_end, maintenance_team_id, is_active)
			 SELECT $1, $2, $3, $4, $5, $6, $7, TRUE
			 WHERE NOT EXISTS (SELECT 1 FROM equipment WHERE serial_number = $2)`,
			e.Name, e.Serial, e.Department, e.Location, purchase, warranty, teamID)
		if err != nil {
			return fmt.Errorf("seed equipment %q: %w", e.Name, err)
		}
		if tag.RowsAffected() > 0 {
			log.Printf("  created equipment: %s", e.Name)
		}
	}
	return nil
}

func SeedRequests(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("seeding maintenance_requests...")
	for _, r := range requestsData {
		teamID, err := teamIDByName(ctx, db, r.TeamName)
		if err != nil {
			return fmt.Errorf("seed request %q: %w", r.Subject, err)
		}

		var equipmentID uint64
		err = db.QueryRow(ctx, "SELECT id FROM equipment WHERE name = $1", r.EquipmentName).Scan(&equipmentID)
		if err != nil {
			return fmt.Errorf("seed request %q: equipment %q: %w", r.Subject, r.EquipmentName, err)
		}

		var technicianID *uint64
		if r.Technician != "" {
			var id uint64
			err = db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", r.Technician).Scan(&id)
			if err != nil {
				return fmt.Errorf("seed request %q: technician %q: %w", r.Subject, r.Technician, err)
			}
			technicianID = &id
		}

		due := time.Now().AddDate(0, 0, r.DueInDays)

		tag, err := db.Exec(ctx,
			`INSERT INTO maintenance_requests (subject, request_type, equipment_id, team_id, technician_id, status, due_date)
			 SELECT $1, $2, $3, $4, $5, $6, $7
			 WHERE NOT EXISTS (SELECT 1 FROM maintenance_requests WHERE subject = $1)`,
			r.Subject, r.RequestType, equipmentID, teamID, technicianID, r.Status, due)
		if err != nil {
			return fmt.Errorf("seed request %q: %w", r.Subject, err)
		}
		if tag.RowsAffected() > 0 {
			log.Printf("  created request: %s", r.Subject)
		}
	}
	return nil
}

func teamIDByName(ctx context.Context, db *pgxpool.Pool, name string) (uint64, error) {
	var id uint64
	err := db.QueryRow(ctx, "SELECT id FROM maintenance_teams WHERE team_name = $1", name).Scan(&id)
	if err == pgx.ErrNoRows {
		return 0, fmt.Errorf("team %q not seeded yet", name)
	}
	return id, err
}
