package tracker

import errorvalues "github.com/limbo/hydration/internal/error_values"

type Screen string

const (
	ScreenHome      Screen = "Home"
	ScreenWaterInfo Screen = "WaterInfo"
)

// InitialScreen is shown when the app starts.
const InitialScreen = ScreenHome

func ParseScreen(name string) (Screen, error) {
	switch Screen(name) {
	case ScreenHome, ScreenWaterInfo:
		return Screen(name), nil
	}
	return "", errorvalues.ErrScreenNotFound
}
