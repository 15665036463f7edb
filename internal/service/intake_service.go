package service

import (
	"context"
	"errors"
	"log"
	"sync"

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/internal/tracker"
	"github.com/limbo/hydration/pkg/entity"
)

// IntakeService owns the single tracker state. Every method holds the lock
// for the whole transition, so callers see one action at a time.
type IntakeService struct {
	mu    sync.Mutex
	state *tracker.State
}

func NewIntakeService(state *tracker.State) *IntakeService {
	if state == nil {
		log.Fatal("provided nil tracker state")
	}
	return &IntakeService{
		state: state,
	}
}

func (is *IntakeService) Navigate(ctx context.Context, req *NavigateRequest) (*entity.ScreenView, error) {
	if err := validateRequest(req); err != nil {
		return nil, errors.Join(errorvalues.ErrScreenNotFound, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	screen, err := tracker.ParseScreen(req.Screen)
	if err != nil {
		return nil, err
	}
	is.mu.Lock()
	defer is.mu.Unlock()
	view := &entity.ScreenView{Screen: string(screen)}
	switch screen {
	case tracker.ScreenWaterInfo:
		calendar := is.state.CalendarView()
		view.Calendar = &calendar
	default:
		home := is.state.HomeView()
		view.Home = &home
	}
	return view, nil
}

func (is *IntakeService) Home(ctx context.Context) (*entity.HomeView, error) {
	return is.homeAfter(ctx, func() {})
}

func (is *IntakeService) SetWaterInput(ctx context.Context, text string) (*entity.HomeView, error) {
	return is.homeAfter(ctx, func() {
		is.state.SetWaterInput(text)
	})
}

func (is *IntakeService) SelectDrink(ctx context.Context, index int) (*entity.HomeView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	is.mu.Lock()
	defer is.mu.Unlock()
	if err := is.state.SelectDrink(index); err != nil {
		return nil, err
	}
	view := is.state.HomeView()
	return &view, nil
}

func (is *IntakeService) AddDrink(ctx context.Context, req *AddDrinkRequest) (*entity.DrinkOption, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	is.mu.Lock()
	defer is.mu.Unlock()
	is.state.SetDrinkForm(req.Name, req.Caffeine)
	drink := is.state.SubmitDrinkForm()
	return &drink, nil
}

func (is *IntakeService) RecordIntake(ctx context.Context) (*entity.IntakeRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	is.mu.Lock()
	defer is.mu.Unlock()
	record := is.state.RecordIntake()
	return &record, nil
}

func (is *IntakeService) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	is.mu.Lock()
	defer is.mu.Unlock()
	is.state.ResetAll()
	return nil
}

func (is *IntakeService) SetWeightInput(ctx context.Context, text string) (*entity.HomeView, error) {
	return is.homeAfter(ctx, func() {
		is.state.SetWeightInput(text)
	})
}

func (is *IntakeService) CalculateWaterTarget(ctx context.Context) (*entity.WaterTarget, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	is.mu.Lock()
	defer is.mu.Unlock()
	changed := is.state.CalculateWaterTarget()
	return &entity.WaterTarget{
		WeightInput: is.state.WeightInput(),
		TargetMl:    is.state.WaterTarget(),
		Changed:     changed,
	}, nil
}

func (is *IntakeService) WaterNeeded(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	is.mu.Lock()
	defer is.mu.Unlock()
	return is.state.WaterNeeded(), nil
}

func (is *IntakeService) Calendar(ctx context.Context) (*entity.CalendarView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	is.mu.Lock()
	defer is.mu.Unlock()
	view := is.state.CalendarView()
	return &view, nil
}

func (is *IntakeService) SelectDate(ctx context.Context, req *SelectDateRequest) (*entity.CalendarView, error) {
	if err := validateRequest(req); err != nil {
		return nil, errors.Join(errorvalues.ErrInvalidDate, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	is.mu.Lock()
	defer is.mu.Unlock()
	is.state.SelectCalendarDate(req.Date)
	view := is.state.CalendarView()
	return &view, nil
}

func (is *IntakeService) PressDay(ctx context.Context, req *SelectDateRequest) error {
	if err := validateRequest(req); err != nil {
		return errors.Join(errorvalues.ErrInvalidDate, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	is.mu.Lock()
	defer is.mu.Unlock()
	is.state.PressDay(req.Date)
	return nil
}

func (is *IntakeService) homeAfter(ctx context.Context, action func()) (*entity.HomeView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	is.mu.Lock()
	defer is.mu.Unlock()
	action()
	view := is.state.HomeView()
	return &view, nil
}
