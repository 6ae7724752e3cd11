package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/example/extension-assistant/internal/application"
	"github.com/example/extension-assistant/internal/clock"
	"github.com/example/extension-assistant/internal/config"
	"github.com/example/extension-assistant/internal/discord"
	"github.com/example/extension-assistant/internal/logengine"
	"github.com/example/extension-assistant/internal/persistence/flatfile"
	reportpdf "github.com/example/extension-assistant/internal/report/pdf"
	"github.com/example/extension-assistant/internal/scheduler"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, err := flatfile.Open(cfg.DataDir)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}

	idGenerator := uuid.NewString
	clk := clock.SystemClock{}
	renderer := reportpdf.NewRenderer()

	registrationService := application.NewRegistrationService(store, store, store, idGenerator, logger)
	participationService := application.NewParticipationService(store, store, store, idGenerator, logger)
	attendanceService := application.NewAttendanceService(store, clk, idGenerator, logger)
	terminationService := application.NewTerminationService(store, clk, logger)
	reportService := application.NewReportService(store, store, store, store, clk, logger)
	logEngine := logengine.New(store, store, store, store, clk, logger)
	accessService := application.NewAccessService(store, store, store, store, logger)

	handlers := discord.NewHandlers(discord.HandlersConfig{
		Registrations:  registrationService,
		Participations: participationService,
		Attendances:    attendanceService,
		Terminations:   terminationService,
		Reports:        reportService,
		Logs:           logEngine,
		Access:         accessService,
		Renderer:       renderer,
		Logger:         logger,
	})

	gateway, err := discord.NewGateway(discord.GatewayConfig{
		Token:           cfg.DiscordBotToken,
		Handlers:        handlers,
		Engine:          logEngine,
		Renderer:        renderer,
		Clock:           clk,
		Logger:          logger,
		CommandTimeout:  cfg.CommandTimeout,
		DocumentTimeout: cfg.DocumentTimeout,
	})
	if err != nil {
		logger.Error("failed to build discord gateway", "error", err)
		os.Exit(1)
	}

	sheetService := application.NewSheetService(store, store, store, gateway, clk, logger)
	daily := scheduler.NewDaily(cfg.SheetHour, sheetService.MaybeEmitSheets, clk, logger)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error { return gateway.Run(groupCtx) })
	group.Go(func() error { return daily.Run(groupCtx) })

	logger.Info("extension assistant running", "data_dir", cfg.DataDir)
	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("assistant stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("extension assistant stopped")
}
