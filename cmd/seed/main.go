// Command seed populates the global exercise catalog. It is an
// administrative tool: the HTTP API never writes to the exercises table, so
// a fresh deployment runs this once (it is safe to re-run; existing names
// are skipped).
package main

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/avelez/workout-tracker/internal/config"
	"github.com/avelez/workout-tracker/internal/database"
	"github.com/avelez/workout-tracker/internal/logger"
	"github.com/avelez/workout-tracker/internal/model"
	"github.com/avelez/workout-tracker/internal/repository"
)

func str(s string) *string { return &s }

var catalog = []model.Exercise{
	{Name: "Barbell Curl", Description: str("Standing curl with a straight or EZ bar"), Type: model.TypeBiceps},
	{Name: "Hammer Curl", Description: str("Dumbbell curl with a neutral grip"), Type: model.TypeBiceps},
	{Name: "Chin-Up", Description: str("Underhand-grip pull to the chin"), Type: model.TypeBiceps},
	{Name: "Cable Pushdown", Description: str("Triceps pushdown on a high pulley"), Type: model.TypeTriceps},
	{Name: "Skull Crusher", Description: str("Lying triceps extension"), Type: model.TypeTriceps},
	{Name: "Close-Grip Bench Press", Type: model.TypeTriceps},
	{Name: "Barbell Bench Press", Description: str("Flat bench press"), Type: model.TypeChest},
	{Name: "Incline Dumbbell Press", Type: model.TypeChest},
	{Name: "Cable Fly", Description: str("Standing cable crossover"), Type: model.TypeChest},
	{Name: "Deadlift", Description: str("Conventional barbell deadlift"), Type: model.TypeBack},
	{Name: "Pull-Up", Description: str("Overhand-grip pull over the bar"), Type: model.TypeBack},
	{Name: "Bent-Over Row", Description: str("Barbell row at hip hinge"), Type: model.TypeBack},
	{Name: "Back Squat", Description: str("High-bar barbell squat"), Type: model.TypeLegs},
	{Name: "Romanian Deadlift", Description: str("Hip hinge targeting hamstrings"), Type: model.TypeLegs},
	{Name: "Leg Press", Type: model.TypeLegs},
	{Name: "Walking Lunge", Type: model.TypeLegs},
	{Name: "Overhead Press", Description: str("Standing barbell press"), Type: model.TypeShoulders},
	{Name: "Lateral Raise", Description: str("Dumbbell raise to shoulder height"), Type: model.TypeShoulders},
	{Name: "Face Pull", Description: str("Rope pull to the face on a high pulley"), Type: model.TypeShoulders},
}

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Env); err != nil {
		panic(err)
	}
	log := logger.L()
	defer func() { _ = log.Sync() }()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal("database open failed", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatal("schema migration failed", zap.Error(err))
	}

	repo := repository.NewExerciseRepo(db)
	seeded := 0
	for i := range catalog {
		e := catalog[i]
		if err := repo.Create(ctx, &e); err != nil {
			// Names are unique; an exercise seeded on a previous run is skipped.
			if errors.Is(err, repository.ErrConflict) {
				continue
			}
			log.Fatal("seed insert failed", zap.String("name", e.Name), zap.Error(err))
		}
		seeded++
	}
	log.Info("exercise catalog seeded", zap.Int("inserted", seeded), zap.Int("total", len(catalog)))
}
