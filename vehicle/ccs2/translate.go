package ccs2

import (
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/joeshaw/hyundai-kia-connect-api/api"
	"github.com/joeshaw/hyundai-kia-connect-api/util"
	"github.com/joeshaw/hyundai-kia-connect-api/vehicle"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// Translator populates vehicle snapshots from CCS2 status documents
type Translator struct {
	log   *util.Logger
	clock clock.Clock
}

// NewTranslator creates a CCS2 translator
func NewTranslator(log *util.Logger) *Translator {
	return &Translator{
		log:   log,
		clock: clock.New(),
	}
}

// Update performs the full field population pass for one status document.
// The snapshot is mutated in place; a field whose source reading is missing
// keeps its previous value. Decoding failures are local to their field, the
// remaining fields are still populated and the joined error names every
// field that failed.
func (t *Translator) Update(v *vehicle.Vehicle, loc *time.Location, state map[string]interface{}) error {
	var errs []error
	fail := func(field string, err error) {
		t.log.WARN.Printf("%s: %v", field, err)
		errs = append(errs, fmt.Errorf("%s: %w", field, err))
	}

	// reading time; without a Date node the pass itself is the reading time
	if raw, ok := Resolve(state, "Date"); ok {
		if s, err := cast.ToStringE(raw); err != nil {
			fail("last updated", err)
		} else if ts, err := util.ParseDatetime(s, loc); err != nil {
			fail("last updated", err)
		} else {
			v.LastUpdatedAt = ts
		}
	} else {
		v.LastUpdatedAt = t.clock.Now().In(loc)
	}

	// the odometer is always reported in km, even for vehicles configured
	// in miles
	if f, ok, err := floatValue(state, "Drivetrain.Odometer"); err != nil {
		fail("odometer", err)
	} else if ok {
		v.Odometer = vehicle.NewQuantity(f, distanceUnits[1])
	}

	if n, ok, err := intValue(state, "Electronics.Battery.Level"); err != nil {
		fail("car battery", err)
	} else if ok {
		v.CarBatteryPercentage = ptr(n)
	}

	if b, ok, err := boolValue(state, "DrivingReady"); err != nil {
		fail("engine running", err)
	} else if ok {
		v.EngineIsRunning = ptr(b)
	}

	// "OFF" means climate is disabled; the previous reading is kept
	if raw, ok := Resolve(state, "Cabin.HVAC.Row1.Driver.Temperature.Value"); ok && raw != "OFF" {
		if f, err := cast.ToFloat64E(raw); err != nil {
			fail("air temperature", err)
		} else {
			v.AirTemperature = vehicle.NewQuantity(f, UnitCelsius)
		}
	}

	for _, tc := range []struct {
		path, field string
		dest        **bool
	}{
		{"Body.Windshield.Front.Defog.State", "defrost", &v.DefrostIsOn},
		{"Cabin.SteeringWheel.Heat.State", "steering wheel heater", &v.SteeringWheelHeaterIsOn},
		{"Body.Windshield.Rear.Defog.State", "back window heater", &v.BackWindowHeaterIsOn},
		{"Green.ChargingDoor.State", "charge port door", &v.EVChargePortDoorIsOpen},
	} {
		code, ok, err := intValue(state, tc.path)
		if err != nil {
			fail(tc.field, err)
			continue
		}
		if !ok {
			continue
		}
		if on, known := triState(code); known {
			*tc.dest = ptr(on)
		}
	}

	// seat climate is the one lookup where a missing or unknown code is an
	// error: the vendor always reports it for supported vehicles
	for _, sc := range []struct {
		path, field string
		dest        **string
	}{
		{"Cabin.Seat.Row1.Driver.Climate.State", "front left seat", &v.FrontLeftSeatStatus},
		{"Cabin.Seat.Row1.Passenger.Climate.State", "front right seat", &v.FrontRightSeatStatus},
		{"Cabin.Seat.Row2.Left.Climate.State", "rear left seat", &v.RearLeftSeatStatus},
		{"Cabin.Seat.Row2.Right.Climate.State", "rear right seat", &v.RearRightSeatStatus},
	} {
		code, ok, err := intValue(state, sc.path)
		if err != nil {
			fail(sc.field, err)
			continue
		}
		if !ok {
			fail(sc.field, api.ErrNotAvailable)
			continue
		}
		if s, err := seatState(code); err != nil {
			fail(sc.field, err)
		} else {
			*sc.dest = ptr(s)
		}
	}

	for _, bc := range []struct {
		path, field string
		dest        **bool
	}{
		{"Cabin.Door.Row1.Driver.Open", "front left door", &v.FrontLeftDoorIsOpen},
		{"Cabin.Door.Row1.Passenger.Open", "front right door", &v.FrontRightDoorIsOpen},
		{"Cabin.Door.Row2.Left.Open", "back left door", &v.BackLeftDoorIsOpen},
		{"Cabin.Door.Row2.Right.Open", "back right door", &v.BackRightDoorIsOpen},
	} {
		if b, ok, err := boolValue(state, bc.path); err != nil {
			fail(bc.field, err)
		} else if ok {
			*bc.dest = ptr(b)
		}
	}

	// locked is derived from the four door states written above; windows
	// and trunk are not considered
	v.IsLocked = ptr(!(deref(v.FrontLeftDoorIsOpen) ||
		deref(v.FrontRightDoorIsOpen) ||
		deref(v.BackLeftDoorIsOpen) ||
		deref(v.BackRightDoorIsOpen)))

	for _, bc := range []struct {
		path, field string
		dest        **bool
	}{
		{"Body.Hood.Open", "hood", &v.HoodIsOpen},
		{"Body.Trunk.Open", "trunk", &v.TrunkIsOpen},
		{"Cabin.Window.Row1.Driver.Open", "front left window", &v.FrontLeftWindowIsOpen},
		{"Cabin.Window.Row1.Passenger.Open", "front right window", &v.FrontRightWindowIsOpen},
		{"Cabin.Window.Row2.Left.Open", "back left window", &v.BackLeftWindowIsOpen},
		{"Cabin.Window.Row2.Right.Open", "back right window", &v.BackRightWindowIsOpen},
	} {
		if b, ok, err := boolValue(state, bc.path); err != nil {
			fail(bc.field, err)
		} else if ok {
			*bc.dest = ptr(b)
		}
	}

	for _, wc := range []struct {
		path string
		dest **bool
	}{
		{"Chassis.Axle.Row1.Left.Tire.PressureLow", &v.TirePressureFrontLeftWarningIsOn},
		{"Chassis.Axle.Row1.Right.Tire.PressureLow", &v.TirePressureFrontRightWarningIsOn},
		{"Chassis.Axle.Row2.Left.Tire.PressureLow", &v.TirePressureRearLeftWarningIsOn},
		{"Chassis.Axle.Row2.Right.Tire.PressureLow", &v.TirePressureRearRightWarningIsOn},
		{"Chassis.Axle.Tire.PressureLow", &v.TirePressureAllWarningIsOn},
	} {
		if raw, ok := Resolve(state, wc.path); ok {
			*wc.dest = ptr(truthy(raw))
		}
	}

	for _, ic := range []struct {
		path, field string
		dest        **int
	}{
		{"Green.BatteryManagement.BatteryRemain.Ratio", "ev battery percentage", &v.EVBatteryPercentage},
		{"Green.BatteryManagement.BatteryRemain.Value", "ev battery remain", &v.EVBatteryRemain},
		{"Green.BatteryManagement.BatteryCapacity.Value", "ev battery capacity", &v.EVBatteryCapacity},
		{"Green.BatteryManagement.SoH.Ratio", "ev battery soh", &v.EVBatterySOHPercentage},
		{"Green.ChargingInformation.TargetSoC.Standard", "charge limit ac", &v.EVChargeLimitsAC},
		{"Green.ChargingInformation.TargetSoC.Quick", "charge limit dc", &v.EVChargeLimitsDC},
		{"Green.Electric.SmartGrid.VehicleToLoad.DischargeLimitation.SoC", "v2l discharge limit", &v.EVV2LDischargeLimit},
	} {
		if n, ok, err := intValue(state, ic.path); err != nil {
			fail(ic.field, err)
		} else if ok {
			*ic.dest = ptr(n)
		}
	}

	// the api duplicates the plugged-in state; ConnectorFastening is read
	// last and wins whenever present
	for _, path := range []string{
		"Green.ChargingInformation.ElectricCurrentLevel.State",
		"Green.ChargingInformation.ConnectorFastening.State",
	} {
		if n, ok, err := intValue(state, path); err != nil {
			fail("plugged in", err)
		} else if ok {
			v.EVBatteryIsPluggedIn = ptr(n)
		}
	}

	if f, ok, err := floatValue(state, "Drivetrain.FuelSystem.DTE.Total"); err != nil {
		fail("total driving range", err)
	} else if ok {
		if unit, err := dteUnit(state); err != nil {
			fail("total driving range", err)
		} else {
			v.TotalDrivingRange = vehicle.NewQuantity(f, unit)
		}
	}

	// for pure EVs the EV range is the total range, value and unit copied
	// together; other engine types are not derived yet
	if v.EngineType == api.EngineTypeEV && v.TotalDrivingRange.Valid() {
		v.EVDrivingRange = v.TotalDrivingRange
	}

	if b, ok, err := boolValue(state, "Body.Windshield.Front.WasherFluid.LevelLow"); err != nil {
		fail("washer fluid", err)
	} else if ok {
		v.WasherFluidWarningIsOn = ptr(b)
	}

	if b, ok, err := boolValue(state, "Chassis.Brake.Fluid.Warning"); err != nil {
		fail("brake fluid", err)
	} else if ok {
		v.BrakeFluidWarningIsOn = ptr(b)
	}

	for _, cc := range []struct {
		path, field string
		dest        *vehicle.Quantity
	}{
		{"Green.ChargingInformation.Charging.RemainTime", "current charge duration", &v.EVEstimatedCurrentChargeDuration},
		{"Green.ChargingInformation.EstimatedTime.Standard", "fast charge duration", &v.EVEstimatedFastChargeDuration},
		{"Green.ChargingInformation.EstimatedTime.ICCB", "portable charge duration", &v.EVEstimatedPortableChargeDuration},
		{"Green.ChargingInformation.EstimatedTime.Quick", "station charge duration", &v.EVEstimatedStationChargeDuration},
	} {
		if f, ok, err := floatValue(state, cc.path); err != nil {
			fail(cc.field, err)
		} else if ok {
			*cc.dest = vehicle.NewQuantity(f, UnitMinutes)
		}
	}

	for _, rc := range []struct {
		path, field string
		dest        *vehicle.Quantity
	}{
		{"Green.ChargingInformation.DTE.TargetSoC.Standard", "target range ac", &v.EVTargetRangeChargeAC},
		{"Green.ChargingInformation.DTE.TargetSoC.Quick", "target range dc", &v.EVTargetRangeChargeDC},
	} {
		if f, ok, err := floatValue(state, rc.path); err != nil {
			fail(rc.field, err)
		} else if ok {
			if unit, err := dteUnit(state); err != nil {
				fail(rc.field, err)
			} else {
				*rc.dest = vehicle.NewQuantity(f, unit)
			}
		}
	}

	if raw, ok := Resolve(state, "Green.Reservation.Departure.Schedule1.Enable"); ok {
		v.EVFirstDepartureEnabled = ptr(truthy(raw))
	}
	if raw, ok := Resolve(state, "Green.Reservation.Departure.Schedule2.Enable"); ok {
		v.EVSecondDepartureEnabled = ptr(truthy(raw))
	}

	if f, ok, err := floatValue(state, "Drivetrain.FuelSystem.FuelLevel"); err != nil {
		fail("fuel level", err)
	} else if ok {
		v.FuelLevel = ptr(f)
	}

	if b, ok, err := boolValue(state, "Drivetrain.FuelSystem.LowFuelWarning"); err != nil {
		fail("low fuel warning", err)
	} else if ok {
		v.FuelLevelIsLow = ptr(b)
	}

	// blower speed above zero means climate control is active
	if n, ok, err := intValue(state, "Cabin.HVAC.Row1.Driver.Blower.SpeedLevel"); err != nil {
		fail("air control", err)
	} else if ok {
		v.AirControlIsOn = ptr(n != 0)
	}

	if raw, ok := Resolve(state, "Electronics.FOB.LowBattery"); ok {
		v.SmartKeyBatteryWarningIsOn = ptr(truthy(raw))
	}

	if err := t.updateLocation(v, loc, state); err != nil {
		fail("location", err)
	}

	v.Data = state

	return errors.Join(errs...)
}

// updateLocation writes the position triple. A fix is only recorded when a
// latitude reading is present; without a timestamp sub-object the fix time
// falls back to 2000-01-01 midnight in the given location.
func (t *Translator) updateLocation(v *vehicle.Vehicle, loc *time.Location, state map[string]interface{}) error {
	latRaw, ok := Resolve(state, "Location.GeoCoord.Latitude")
	if !ok {
		return nil
	}

	lat, err := cast.ToFloat64E(latRaw)
	if err != nil {
		return err
	}

	lon, ok, err := floatValue(state, "Location.GeoCoord.Longitude")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("longitude: %w", api.ErrNotAvailable)
	}

	updatedAt := time.Date(2000, time.January, 1, 0, 0, 0, 0, loc)

	if raw, ok := Resolve(state, "Location.TimeStamp"); ok {
		var ts struct {
			Year, Mon, Day, Hour, Min, Sec int
		}

		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &ts,
		})
		if err != nil {
			return err
		}
		if err := dec.Decode(raw); err != nil {
			return err
		}

		updatedAt = time.Date(ts.Year, time.Month(ts.Mon), ts.Day, ts.Hour, ts.Min, ts.Sec, 0, loc)
	}

	v.Location = vehicle.NewPosition(lat, lon, updatedAt)

	return nil
}

// dteUnit resolves the unit code the DTE readings are reported in. The lookup
// is repeated per composite on purpose, matching the source rule set.
func dteUnit(state map[string]interface{}) (string, error) {
	code, ok, err := intValue(state, "Drivetrain.FuelSystem.DTE.Unit")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("distance unit: %w", api.ErrNotAvailable)
	}

	return distanceUnit(code)
}

// floatValue reads a numeric leaf; the bool is false when the path is absent
func floatValue(state map[string]interface{}, path string) (float64, bool, error) {
	raw, ok := Resolve(state, path)
	if !ok {
		return 0, false, nil
	}

	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, false, err
	}

	return f, true, nil
}

// intValue reads an integer leaf; the bool is false when the path is absent
func intValue(state map[string]interface{}, path string) (int, bool, error) {
	raw, ok := Resolve(state, path)
	if !ok {
		return 0, false, nil
	}

	n, err := cast.ToIntE(raw)
	if err != nil {
		return 0, false, err
	}

	return n, true, nil
}

// boolValue reads a boolean leaf; the bool is false when the path is absent.
// The api encodes flags as booleans or as 0/1 numbers.
func boolValue(state map[string]interface{}, path string) (bool, bool, error) {
	raw, ok := Resolve(state, path)
	if !ok {
		return false, false, nil
	}

	if b, err := cast.ToBoolE(raw); err == nil {
		return b, true, nil
	}

	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return false, false, err
	}

	return f != 0, true, nil
}

// truthy coerces the api's loose warning flags to a strict boolean
func truthy(raw interface{}) bool {
	if b, err := cast.ToBoolE(raw); err == nil {
		return b
	}
	if f, err := cast.ToFloat64E(raw); err == nil {
		return f != 0
	}
	if s, ok := raw.(string); ok {
		return s != ""
	}

	return raw != nil
}

func ptr[T any](val T) *T {
	return &val
}

func deref(b *bool) bool {
	return b != nil && *b
}
