package ccs2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	doc := map[string]interface{}{
		"Drivetrain": map[string]interface{}{
			"Odometer": 12345.0,
			"FuelSystem": map[string]interface{}{
				"DTE": map[string]interface{}{
					"Total": 420.0,
					"Unit":  1,
				},
			},
		},
		"DrivingReady": false,
		"Axles": []interface{}{
			map[string]interface{}{"PressureLow": 1},
			map[string]interface{}{"PressureLow": 0},
		},
	}

	tc := []struct {
		path string
		res  interface{}
		ok   bool
	}{
		{"Drivetrain.Odometer", 12345.0, true},
		{"Drivetrain.FuelSystem.DTE.Total", 420.0, true},
		{"Drivetrain.FuelSystem.DTE.Unit", 1, true},
		{"DrivingReady", false, true},
		{"Axles.0.PressureLow", 1, true},
		{"Axles.1.PressureLow", 0, true},
		// absent key
		{"Drivetrain.Missing", nil, false},
		{"Missing", nil, false},
		// path continues past a leaf
		{"Drivetrain.Odometer.Value", nil, false},
		{"DrivingReady.State", nil, false},
		// bad array index
		{"Axles.2.PressureLow", nil, false},
		{"Axles.x.PressureLow", nil, false},
	}

	for _, tc := range tc {
		res, ok := Resolve(doc, tc.path)
		require.Equal(t, tc.ok, ok, tc.path)
		require.Equal(t, tc.res, res, tc.path)
	}
}

func TestResolveIntermediateNode(t *testing.T) {
	doc := map[string]interface{}{
		"Location": map[string]interface{}{
			"TimeStamp": map[string]interface{}{"Year": 2023},
		},
	}

	// resolving an inner node returns the node itself, uncoerced
	res, ok := Resolve(doc, "Location.TimeStamp")
	require.True(t, ok)
	require.Equal(t, map[string]interface{}{"Year": 2023}, res)
}
