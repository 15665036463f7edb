package tracker

import (
	"math"

	"github.com/limbo/hydration/pkg/entity"
)

const (
	// MlPerKg is the daily water target per kilogram of body weight.
	MlPerKg = 30
	// NoDrinkName is stored on records made without a selected drink.
	NoDrinkName = "None"
)

// WaterTarget converts a body weight into a daily water target in ml.
// ok is false when the result is not a finite int.
func WaterTarget(weightKg float64) (int, bool) {
	t := math.Ceil(weightKg * MlPerKg)
	if math.IsNaN(t) || math.IsInf(t, 0) || t >= float64(math.MaxInt) || t <= float64(math.MinInt) {
		return 0, false
	}
	return int(t), true
}

// WaterNeeded offsets the pending volume when a caffeinated drink is
// selected: every started 100 ml asks for 250 ml of water.
func WaterNeeded(pendingMl int, selected *entity.DrinkOption) int {
	if selected == nil {
		return pendingMl
	}
	return int(math.Ceil(float64(pendingMl)/100)) * 250
}
