// Local JSON API of the hydration tracker.
//
// Routes under /api/v1 mirror the two screens of the app: "Home" records
// water and caffeine intake, "WaterInfo" shows the calendar of marked days.
// State lives in memory only and is lost on exit.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/hydration/internal/api"
	"github.com/limbo/hydration/internal/service"
	"github.com/limbo/hydration/internal/tracker"
	"github.com/limbo/hydration/pkg/cleanup"
	"github.com/limbo/hydration/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.GetLogLevel(),
	})))

	state := tracker.New(tracker.WithDayPressHook(func(date string) {
		slog.Info("calendar day pressed", slog.String("date", date))
	}))
	serv := api.New(&api.ServicesList{
		IntakeService:      service.NewIntakeService(state),
		CORSAllowedOrigins: cfg.GetList("CORS_ALLOWED_ORIGINS"),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	errCh := make(chan error, 1)
	go func() {
		errCh <- serv.Run(cfg.GetString("API_ADDRESS"), cfg.GetDuration("SHUTDOWN_TIMEOUT"))
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			slog.Error("server error", slog.String("error", err.Error()))
			exitCode = 1
		}
	}
	if failed := cleanup.CleanUp(); failed > 0 {
		exitCode = 1
	}
	stop()
	os.Exit(exitCode)
}
