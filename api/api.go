// Package api defines the shared vocabulary for vehicle snapshots
package api

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCode indicates a vendor status code outside the known code tables
var ErrInvalidCode = errors.New("unrecognized vendor code")

// ErrNotAvailable indicates a reading the vehicle does not provide
var ErrNotAvailable = errors.New("not available")

// EngineType is the vehicle powertrain classification
type EngineType int

const (
	EngineTypeUnknown EngineType = iota
	EngineTypeEV                 // battery electric
	EngineTypePHEV               // plugin hybrid
	EngineTypeHEV                // hybrid
	EngineTypeIC                 // internal combustion
)

// String implements fmt.Stringer
func (t EngineType) String() string {
	switch t {
	case EngineTypeEV:
		return "EV"
	case EngineTypePHEV:
		return "PHEV"
	case EngineTypeHEV:
		return "HEV"
	case EngineTypeIC:
		return "IC"
	default:
		return "unknown"
	}
}

// EngineTypeString converts a string to its corresponding EngineType
func EngineTypeString(s string) (EngineType, error) {
	for _, t := range []EngineType{EngineTypeEV, EngineTypePHEV, EngineTypeHEV, EngineTypeIC} {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}

	return EngineTypeUnknown, fmt.Errorf("invalid engine type: %s", s)
}
