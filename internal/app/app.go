package app

import (
	"context"
	"log/slog"
	"time"

	"team-calendar/internal/app/rest"
	"team-calendar/internal/clients/nager"
	"team-calendar/internal/config"
	v1 "team-calendar/internal/http/v1"
	"team-calendar/internal/lib/migrator"
	"team-calendar/internal/repo"
	"team-calendar/internal/service"
	"team-calendar/internal/storage/postgresql"
)

type App struct {
	log     *slog.Logger
	storage *postgresql.Storage
	restApp *rest.App
}

func MustNew(log *slog.Logger) *App {
	cfg := config.MustLoad()

	if err := migrator.RunMigrations(cfg.DatabaseURL, log); err != nil {
		log.Error("failed to run migrations", "error", err)
		panic(err)
	}

	storage := postgresql.Init(cfg.DatabaseURL)

	memberRepo := repo.NewMemberRepo(storage.GetDB())
	timeOffRepo := repo.NewTimeOffRepo(storage.GetDB())
	rotationRepo := repo.NewRotationRepo(storage.GetDB())

	holidayClient := nager.New(cfg.Holidays.BaseURL, cfg.Holidays.Timeout)

	memberService := service.NewMemberService(log, memberRepo)
	timeOffService := service.NewTimeOffService(log, timeOffRepo)
	rotationService := service.NewRotationService(log, rotationRepo)
	holidayService := service.NewHolidayService(log, holidayClient)

	routerDependencies := v1.RouterDependencies{
		MemberService:   memberService,
		TimeOffService:  timeOffService,
		RotationService: rotationService,
		HolidayService:  holidayService,
		StaticDir:       cfg.StaticDir,
	}

	restApp := rest.New(
		log,
		&routerDependencies,
		cfg.Server.Port,
	)

	return &App{
		log:     log,
		storage: storage,
		restApp: restApp,
	}
}

func (a *App) MustRun() {
	const op = "app.MustRun"
	a.log.With(slog.String("op", op)).Info("starting application")

	if err := a.restApp.Run(); err != nil {
		panic(err)
	}
}

func (a *App) GracefulShutdown() {
	const op = "app.GracefulShutdown"
	a.log.With(slog.String("op", op)).Info("shutting down application")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.restApp.Stop(ctx); err != nil {
		a.log.Error("failed to stop HTTP server", "error", err)
	}

	if a.storage != nil {
		a.storage.Close()
		a.log.Info("database connection closed")
	}
}
