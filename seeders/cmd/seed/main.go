package main

import (
	"context"
	"flag"
	"log"

	"gardgear/pkg/config"
	"gardgear/pkg/database/postgresql"
	applogger "gardgear/pkg/logger"
	"gardgear/seeders"
)

func main() {
	runTeams := flag.Bool("teams", false, "seed maintenance teams")
	runUsers := flag.Bool("technicians", false, "seed technician accounts")
	runEquipment := flag.Bool("equipment", false, "seed equipment")
	runRequests := flag.Bool("requests", false, "seed demo maintenance requests")
	runAll := flag.Bool("all", false, "seed everything in dependency order")
	flag.Parse()

	if !*runTeams && !*runUsers && !*runEquipment && !*runRequests && !*runAll {
		log.Println("no seeder selected; available flags:")
		flag.PrintDefaults()
		return
	}

	ctx := context.Background()
	cfg := config.New()
	logger := applogger.NewLogger()
	defer logger.Sync()

	db, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, logger)
	if err != nil {
		log.Fatalf("connect to postgres: %v", err)
	}
	defer db.Close()

	if *runAll {
		if err := seeders.SeedAll(ctx, db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		log.Println("seeding complete")
		return
	}

	// Individual seeders still run in dependency order.
	if *runTeams {
		must(seeders.SeedTeams(ctx, db))
	}
	if *runUsers {
		must(seeders.SeedTechnicians(ctx, db))
	}
	if *runEquipment {
		must(seeders.SeedEquipment(ctx, db))
	}
	if *runRequests {
		must(seeders.SeedRequests(ctx, db))
	}
	log.Println("seeding complete")
}

func must(err error) {
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}
