package entity

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Milligrams is a caffeine amount. Known is false when the amount was typed
// as non-numeric text; unknown amounts poison every sum they take part in.
type Milligrams struct {
	Value int
	Known bool
}

func Mg(v int) Milligrams {
	return Milligrams{Value: v, Known: true}
}

func (m Milligrams) Add(other Milligrams) Milligrams {
	if !m.Known || !other.Known {
		return Milligrams{}
	}
	return Mg(m.Value + other.Value)
}

func (m Milligrams) String() string {
	if !m.Known {
		return "NaN"
	}
	return strconv.Itoa(m.Value)
}

func (m Milligrams) MarshalJSON() ([]byte, error) {
	if !m.Known {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(m.Value)), nil
}

func (m *Milligrams) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Milligrams{}
		return nil
	}
	v, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid caffeine amount %s: %w", data, err)
	}
	*m = Mg(v)
	return nil
}

type DrinkOption struct {
	Name     string     `json:"name"`
	Caffeine Milligrams `json:"caffeine_mg"`
}

type IntakeRecord struct {
	ID         uuid.UUID  `json:"id"`
	WaterMl    int        `json:"water_ml"`
	DrinkName  string     `json:"drink_name"`
	Caffeine   Milligrams `json:"caffeine_mg"`
	RecordedAt time.Time  `json:"recorded_at"`
}

// String renders the record the way the record list shows it.
func (r IntakeRecord) String() string {
	return fmt.Sprintf("%s - Water: %d ml, Caffeine Drink: %s, Caffeine: %s mg",
		r.RecordedAt.Format(time.DateTime), r.WaterMl, r.DrinkName, r.Caffeine)
}

type RunningTotals struct {
	TotalWaterMl  int        `json:"total_water_ml"`
	TotalCaffeine Milligrams `json:"total_caffeine_mg"`
}

type DateMarker struct {
	Selected bool   `json:"selected"`
	Marked   bool   `json:"marked"`
	DotColor string `json:"dotColor"`
}

type DrinkForm struct {
	Name     string `json:"name"`
	Caffeine string `json:"caffeine"`
}

type HomeView struct {
	WaterInput    string         `json:"water_input"`
	SelectedIndex *int           `json:"selected_index"`
	SelectedDrink *DrinkOption   `json:"selected_drink"`
	Catalog       []DrinkOption  `json:"catalog"`
	Records       []IntakeRecord `json:"records"`
	RecordLines   []string       `json:"record_lines"`
	Totals        RunningTotals  `json:"totals"`
	WeightInput   string         `json:"weight_input"`
	WaterTargetMl int            `json:"water_target_ml"`
	WaterNeededMl int            `json:"water_needed_ml"`
	DrinkForm     DrinkForm      `json:"drink_form"`
}

type CalendarView struct {
	SelectedDate string                `json:"selected_date,omitempty"`
	MarkedDates  map[string]DateMarker `json:"marked_dates"`
}

type ScreenView struct {
	Screen   string        `json:"screen"`
	Home     *HomeView     `json:"home,omitempty"`
	Calendar *CalendarView `json:"calendar,omitempty"`
}

type WaterTarget struct {
	WeightInput string `json:"weight_input"`
	TargetMl    int    `json:"target_ml"`
	Changed     bool   `json:"changed"`
}
