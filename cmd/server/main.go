package main // Entry point package

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/avelez/workout-tracker/internal/config"
	"github.com/avelez/workout-tracker/internal/database"
	"github.com/avelez/workout-tracker/internal/handler"
	"github.com/avelez/workout-tracker/internal/logger"
	"github.com/avelez/workout-tracker/internal/queue"
	"github.com/avelez/workout-tracker/internal/repository"
	"github.com/avelez/workout-tracker/internal/router"
)

func main() {
	cfg := config.Load() // load .env + environment config

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(ctx, db); err != nil {
		cancel()
		log.Fatal("schema migration failed", zap.Error(err))
	}
	cancel()

	// Redis is optional; without it the cache and rate limiter pass through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn("redis unavailable, response cache and rate limiting disabled")
	}

	exerciseRepo := repository.NewExerciseRepo(db)
	presetRepo := repository.NewPresetRepo(db)
	workoutRepo := repository.NewWorkoutRepo(db)
	logRepo := repository.NewLogRepo(db)

	h := router.Handlers{
		Exercises: handler.NewExerciseHandler(exerciseRepo),
		Presets:   handler.NewPresetHandler(presetRepo),
		Workouts:  handler.NewWorkoutHandler(workoutRepo, presetRepo),
		Logs:      handler.NewLogHandler(logRepo, exerciseRepo),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	router.RegisterRoutes(e)
	router.RegisterAPI(e, cfg, h, rdb)

	// The activity consumer keeps its own reconnect loop; a broker outage
	// only costs feed lines, never API availability.
	go func() {
		if err := queue.StartActivityConsumer(); err != nil {
			log.Warn("activity consumer stopped", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
