package service

import (
	"context"

	"github.com/limbo/hydration/pkg/entity"
)

type NavigateRequest struct {
	Screen string `validate:"required,screen"`
}

type SelectDateRequest struct {
	Date string `validate:"required,datetime=2006-01-02"`
}

type AddDrinkRequest struct {
	Name     string
	Caffeine string
}

//go:generate mockgen -destination=mocks/intake_service_mock.go -package=mocks . IntakeServiceI

type IntakeServiceI interface {
	// Returns the view of the requested screen: "Home" or "WaterInfo"
	Navigate(ctx context.Context, req *NavigateRequest) (*entity.ScreenView, error)
	Home(ctx context.Context) (*entity.HomeView, error)
	// Stores pending water volume parsed from text, 0 when it isn't a number
	SetWaterInput(ctx context.Context, text string) (*entity.HomeView, error)
	// Selects catalog entry by its position
	SelectDrink(ctx context.Context, index int) (*entity.HomeView, error)
	// Appends a drink to the catalog and selects it
	AddDrink(ctx context.Context, req *AddDrinkRequest) (*entity.DrinkOption, error)
	// Logs pending water with selected drink and marks the selected date
	RecordIntake(ctx context.Context) (*entity.IntakeRecord, error)
	// Clears records and totals
	Reset(ctx context.Context) error
	SetWeightInput(ctx context.Context, text string) (*entity.HomeView, error)
	// Recomputes daily water target from the weight input
	CalculateWaterTarget(ctx context.Context) (*entity.WaterTarget, error)
	WaterNeeded(ctx context.Context) (int, error)
	Calendar(ctx context.Context) (*entity.CalendarView, error)
	// Sets the date that later records will mark
	SelectDate(ctx context.Context, req *SelectDateRequest) (*entity.CalendarView, error)
	PressDay(ctx context.Context, req *SelectDateRequest) error
}
