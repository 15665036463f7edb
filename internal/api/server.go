package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/hydration/internal/service"
	"github.com/limbo/hydration/pkg/cleanup"
	"github.com/rs/cors"
)

type Server struct {
	mx            *chi.Mux
	intakeService service.IntakeServiceI
	corsOrigins   []string
}

type ServicesList struct {
	IntakeService service.IntakeServiceI
	// Origins allowed to call the API from a browser. Empty allows any.
	CORSAllowedOrigins []string
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:            chi.NewMux(),
		intakeService: servicesOptions.IntakeService,
		corsOrigins:   servicesOptions.CORSAllowedOrigins,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(cors.New(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	s.mx.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/screens/{name}", s.Navigate)
		r.Route("/home", func(r chi.Router) {
			r.Get("/", s.GetHome)
			r.Put("/water", s.SetWaterInput)
			r.Post("/drinks", s.AddDrink)
			r.Post("/drinks/{index}/select", s.SelectDrink)
			r.Post("/records", s.RecordIntake)
			r.Delete("/records", s.ResetAll)
			r.Put("/weight", s.SetWeightInput)
			r.Post("/target", s.CalculateWaterTarget)
			r.Get("/water-needed", s.GetWaterNeeded)
		})
		r.Route("/calendar", func(r chi.Router) {
			r.Get("/", s.GetCalendar)
			r.Put("/selected", s.SelectDate)
			r.Post("/press", s.PressDay)
		})
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves until the server is shut down by the registered cleanup job.
func (s *Server) Run(address string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	cleanup.Register(&cleanup.Job{
		Name: "shutting down http server",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
	slog.Info("server started", slog.String("address", address))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
