package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/internal/service"
	"github.com/limbo/hydration/pkg/httputil"
)

const requestTimeout = 5 * time.Second

type TextInputRequest struct {
	Text string `json:"text"`
}

type AddDrinkRequest struct {
	Name     string `json:"name"`
	Caffeine string `json:"caffeine"`
}

type DateRequest struct {
	Date string `json:"date"`
}

type WaterNeededResponse struct {
	WaterNeededMl int `json:"water_needed_ml"`
}

func (s *Server) Navigate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	view, err := s.intakeService.Navigate(ctx, &service.NavigateRequest{Screen: chi.URLParam(r, "name")})
	if err != nil {
		if errors.Is(err, errorvalues.ErrScreenNotFound) {
			logger.Error("navigation error: unknown screen")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "screen doesn't exist", nil)
			return
		}
		logger.Error("navigation error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while opening screen", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
	logger.Info("screen provided", slog.String("screen", view.Screen))
}

func (s *Server) GetHome(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	view, err := s.intakeService.Home(ctx)
	if err != nil {
		logger.Error("getting home error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting home screen", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
	logger.Info("home screen provided")
}

func (s *Server) SetWaterInput(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req TextInputRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("water input error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	view, err := s.intakeService.SetWaterInput(ctx, req.Text)
	if err != nil {
		logger.Error("water input error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while setting water input", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
	logger.Info("water input set", slog.String("water_input", view.WaterInput))
}

func (s *Server) SelectDrink(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		logger.Error("drink selection error: invalid index in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid drink index in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	view, err := s.intakeService.SelectDrink(ctx, index)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrDrinkNotFound):
			logger.Error("drink selection error: unexist drink", slog.Int("index", index))
			httputil.WriteErrorResponse(w, http.StatusNotFound, "drink doesn't exist", nil)
		default:
			logger.Error("drink selection error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while selecting drink", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
	logger.Info("drink selected", slog.Int("index", index))
}

func (s *Server) AddDrink(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req AddDrinkRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("add drink error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	drink, err := s.intakeService.AddDrink(ctx, &service.AddDrinkRequest{
		Name:     req.Name,
		Caffeine: req.Caffeine,
	})
	if err != nil {
		logger.Error("add drink error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while adding drink", nil)
		return
	}
	if !drink.Caffeine.Known {
		logger.Warn("drink added with unknown caffeine", slog.String("caffeine_text", req.Caffeine))
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, drink)
	logger.Info("drink added", slog.String("name", drink.Name))
}

func (s *Server) RecordIntake(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	record, err := s.intakeService.RecordIntake(ctx)
	if err != nil {
		logger.Error("recording intake error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while recording intake", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, record)
	logger.Info("intake recorded", slog.String("record_id", record.ID.String()), slog.Int("water_ml", record.WaterMl))
}

func (s *Server) ResetAll(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.intakeService.Reset(ctx); err != nil {
		logger.Error("reset error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while resetting records", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusNoContent, nil)
	logger.Info("records reset")
}

func (s *Server) SetWeightInput(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req TextInputRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("weight input error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	view, err := s.intakeService.SetWeightInput(ctx, req.Text)
	if err != nil {
		logger.Error("weight input error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while setting weight input", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
	logger.Info("weight input set")
}

func (s *Server) CalculateWaterTarget(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	target, err := s.intakeService.CalculateWaterTarget(ctx)
	if err != nil {
		logger.Error("water target error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while calculating water target", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, target)
	logger.Info("water target calculated", slog.Int("target_ml", target.TargetMl), slog.Bool("changed", target.Changed))
}

func (s *Server) GetWaterNeeded(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	needed, err := s.intakeService.WaterNeeded(ctx)
	if err != nil {
		logger.Error("water needed error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while calculating water needed", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, WaterNeededResponse{WaterNeededMl: needed})
}

func (s *Server) GetCalendar(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	view, err := s.intakeService.Calendar(ctx)
	if err != nil {
		logger.Error("getting calendar error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting calendar", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
	logger.Info("calendar provided", slog.Int("marked_dates", len(view.MarkedDates)))
}

func (s *Server) SelectDate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req DateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("date selection error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	view, err := s.intakeService.SelectDate(ctx, &service.SelectDateRequest{Date: req.Date})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidDate):
			logger.Error("date selection error: invalid date", slog.String("date", req.Date))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD", err)
		default:
			logger.Error("date selection error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while selecting date", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
	logger.Info("date selected", slog.String("date", req.Date))
}

func (s *Server) PressDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req DateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("day press error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err := s.intakeService.PressDay(ctx, &service.SelectDateRequest{Date: req.Date})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidDate):
			logger.Error("day press error: invalid date", slog.String("date", req.Date))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD", err)
		default:
			logger.Error("day press error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while pressing day", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusNoContent, nil)
}
