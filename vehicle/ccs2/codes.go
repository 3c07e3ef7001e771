package ccs2

import (
	"fmt"

	"github.com/joeshaw/hyundai-kia-connect-api/api"
	"github.com/thoas/go-funk"
)

// UnitMinutes is the fixed unit for charge duration estimates
const UnitMinutes = "m"

// UnitCelsius is the fixed unit for cabin temperature readings
const UnitCelsius = "°C"

// distanceUnits maps the Drivetrain.FuelSystem.DTE.Unit code to a unit label.
// The odometer is always reported against code 1 regardless of the vehicle's
// distance system.
var distanceUnits = map[int]string{
	0: "km",
	1: "km",
	2: "miles",
	3: "miles",
}

// seatStates maps Cabin.Seat climate state codes to their meaning
var seatStates = map[int]string{
	0: "Off",
	1: "On",
	2: "Off",
	3: "Low Cool",
	4: "Medium Cool",
	5: "Full Cool",
	6: "Low Heat",
	7: "Medium Heat",
	8: "Full Heat",
}

// distanceUnit decodes a distance unit code
func distanceUnit(code int) (string, error) {
	unit, ok := distanceUnits[code]
	if !ok {
		return "", fmt.Errorf("distance unit %d: %w", code, api.ErrInvalidCode)
	}

	return unit, nil
}

// seatState decodes a seat climate state code
func seatState(code int) (string, error) {
	state, ok := seatStates[code]
	if !ok {
		return "", fmt.Errorf("seat state %d: %w", code, api.ErrInvalidCode)
	}

	return state, nil
}

// triState decodes an off/on/unspecified toggle code. The second return is
// false when the code carries no information and the target field must be
// left untouched.
func triState(code int) (bool, bool) {
	switch {
	case funk.Contains([]int{0, 2}, code):
		return false, true
	case code == 1:
		return true, true
	default:
		return false, false
	}
}
