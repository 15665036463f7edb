// Package tracker holds the hydration tracker state and the transitions
// triggered by user actions. A State has a single writer and no locking;
// callers sharing one across goroutines must serialize access.
package tracker

import (
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/pkg/entity"
)

const noSelection = -1

var recordedMarker = entity.DateMarker{Selected: true, Marked: true, DotColor: "green"}

type State struct {
	now     func() time.Time
	newID   func() uuid.UUID
	onPress func(date string)

	waterInput   int
	selected     int
	catalog      []entity.DrinkOption
	records      []entity.IntakeRecord
	totals       entity.RunningTotals
	weightInput  string
	waterTarget  int
	selectedDate string
	markedDates  map[string]entity.DateMarker
	drinkForm    entity.DrinkForm
}

type Option func(*State)

// WithClock replaces time.Now as the source of record timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *State) {
		s.now = now
	}
}

func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *State) {
		s.newID = newID
	}
}

// WithDayPressHook is called by PressDay. The hook must not mutate the State.
func WithDayPressHook(hook func(date string)) Option {
	return func(s *State) {
		s.onPress = hook
	}
}

func New(opts ...Option) *State {
	s := &State{
		now:         time.Now,
		newID:       uuid.New,
		selected:    noSelection,
		catalog:     SeedCatalog(),
		records:     []entity.IntakeRecord{},
		totals:      entity.RunningTotals{TotalCaffeine: entity.Mg(0)},
		markedDates: map[string]entity.DateMarker{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetWaterInput stores the pending water volume. Text that does not start
// with an integer, and zero, leave the pending volume at 0.
func (s *State) SetWaterInput(text string) {
	amount, ok := ParseLeadingInt(text)
	if !ok {
		amount = 0
	}
	s.waterInput = amount
}

// SelectDrink selects the catalog entry at index. Selecting the already
// selected entry keeps it selected.
func (s *State) SelectDrink(index int) error {
	if index < 0 || index >= len(s.catalog) {
		return errorvalues.ErrDrinkNotFound
	}
	s.selected = index
	return nil
}

func (s *State) RecordIntake() entity.IntakeRecord {
	record := entity.IntakeRecord{
		ID:         s.newID(),
		WaterMl:    s.waterInput,
		DrinkName:  NoDrinkName,
		Caffeine:   entity.Mg(0),
		RecordedAt: s.now(),
	}
	if drink, ok := s.selectedDrink(); ok {
		record.DrinkName = drink.Name
		record.Caffeine = drink.Caffeine
	}
	s.records = slices.Insert(s.records, 0, record)
	s.waterInput = 0
	s.selected = noSelection
	s.totals.TotalWaterMl += record.WaterMl
	s.totals.TotalCaffeine = s.totals.TotalCaffeine.Add(record.Caffeine)
	if s.selectedDate != "" {
		s.markedDates[s.selectedDate] = recordedMarker
	}
	return record
}

// ResetAll drops every record and zeroes the totals. Marked dates, the
// selected date and the catalog survive.
func (s *State) ResetAll() {
	s.records = []entity.IntakeRecord{}
	s.totals = entity.RunningTotals{TotalCaffeine: entity.Mg(0)}
}

func (s *State) SetWeightInput(text string) {
	s.weightInput = text
}

// CalculateWaterTarget derives the daily target from the weight input and
// reports whether it changed. Unparsable weight keeps the previous target.
func (s *State) CalculateWaterTarget() bool {
	kg, ok := ParseLeadingFloat(s.weightInput)
	if !ok {
		return false
	}
	target, ok := WaterTarget(kg)
	if !ok {
		return false
	}
	s.waterTarget = target
	return true
}

// SelectCalendarDate only affects later RecordIntake calls.
func (s *State) SelectCalendarDate(date string) {
	s.selectedDate = date
}

func (s *State) SetDrinkForm(name, caffeineText string) {
	s.drinkForm = entity.DrinkForm{Name: name, Caffeine: caffeineText}
}

// AddCatalogDrink appends a drink and selects it. Caffeine text that is not
// a number is kept as an unknown amount.
func (s *State) AddCatalogDrink(name, caffeineText string) entity.DrinkOption {
	drink := entity.DrinkOption{Name: name}
	if mg, ok := ParseLeadingInt(caffeineText); ok {
		drink.Caffeine = entity.Mg(mg)
	}
	s.catalog = append(s.catalog, drink)
	s.selected = len(s.catalog) - 1
	s.drinkForm = entity.DrinkForm{}
	return drink
}

// SubmitDrinkForm adds the drink currently typed into the form.
func (s *State) SubmitDrinkForm() entity.DrinkOption {
	return s.AddCatalogDrink(s.drinkForm.Name, s.drinkForm.Caffeine)
}

// PressDay forwards a calendar day press to the hook, if any.
func (s *State) PressDay(date string) {
	if s.onPress != nil {
		s.onPress(date)
	}
}

func (s *State) WaterInput() int {
	return s.waterInput
}

func (s *State) SelectedDrink() (entity.DrinkOption, int, bool) {
	drink, ok := s.selectedDrink()
	return drink, s.selected, ok
}

func (s *State) Catalog() []entity.DrinkOption {
	return slices.Clone(s.catalog)
}

func (s *State) Records() []entity.IntakeRecord {
	return slices.Clone(s.records)
}

func (s *State) Totals() entity.RunningTotals {
	return s.totals
}

func (s *State) WeightInput() string {
	return s.weightInput
}

func (s *State) WaterTarget() int {
	return s.waterTarget
}

func (s *State) SelectedDate() string {
	return s.selectedDate
}

func (s *State) MarkedDates() map[string]entity.DateMarker {
	return maps.Clone(s.markedDates)
}

func (s *State) DrinkForm() entity.DrinkForm {
	return s.drinkForm
}

// WaterNeeded applies the caffeine offset to the pending volume.
func (s *State) WaterNeeded() int {
	if drink, ok := s.selectedDrink(); ok {
		return WaterNeeded(s.waterInput, &drink)
	}
	return WaterNeeded(s.waterInput, nil)
}

func (s *State) HomeView() entity.HomeView {
	view := entity.HomeView{
		WaterInput:    strconv.Itoa(s.waterInput),
		Catalog:       s.Catalog(),
		Records:       s.Records(),
		RecordLines:   make([]string, 0, len(s.records)),
		Totals:        s.totals,
		WeightInput:   s.weightInput,
		WaterTargetMl: s.waterTarget,
		WaterNeededMl: s.WaterNeeded(),
		DrinkForm:     s.drinkForm,
	}
	if drink, ok := s.selectedDrink(); ok {
		idx := s.selected
		view.SelectedIndex = &idx
		view.SelectedDrink = &drink
	}
	for _, r := range s.records {
		view.RecordLines = append(view.RecordLines, r.String())
	}
	if len(view.RecordLines) == 0 {
		view.RecordLines = append(view.RecordLines, "No records found")
	}
	return view
}

func (s *State) CalendarView() entity.CalendarView {
	return entity.CalendarView{
		SelectedDate: s.selectedDate,
		MarkedDates:  s.MarkedDates(),
	}
}

func (s *State) selectedDrink() (entity.DrinkOption, bool) {
	if s.selected == noSelection {
		return entity.DrinkOption{}, false
	}
	return s.catalog[s.selected], true
}
