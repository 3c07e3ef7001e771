// Package vehicle holds the in-memory snapshot of a connected vehicle
package vehicle

import (
	"time"

	"github.com/jinzhu/copier"
	"github.com/joeshaw/hyundai-kia-connect-api/api"
)

// Vehicle is the last known state of a single car. A snapshot is long-lived:
// translation passes overwrite fields in place and never reset a field whose
// source reading is missing, so pointer fields keep their previous value
// until the api reports the reading again. Nil means never reported.
//
// A snapshot must not be shared across concurrent translation passes; use
// Clone for an independent copy.
type Vehicle struct {
	// identity
	ID                     string
	Name                   string
	Model                  string
	RegistrationDate       string
	Year                   int
	VIN                    string
	Key                    string
	CCUCCS2ProtocolSupport int
	Enabled                bool

	EngineType api.EngineType

	// general
	Odometer             Quantity
	TotalDrivingRange    Quantity
	CarBatteryPercentage *int
	EngineIsRunning      *bool
	LastUpdatedAt        time.Time
	DTCCount             *int
	DTCDescriptions      map[string]interface{}

	SmartKeyBatteryWarningIsOn *bool
	WasherFluidWarningIsOn     *bool
	BrakeFluidWarningIsOn      *bool

	// climate
	AirTemperature          Quantity
	AirControlIsOn          *bool
	DefrostIsOn             *bool
	SteeringWheelHeaterIsOn *bool
	BackWindowHeaterIsOn    *bool
	SideMirrorHeaterIsOn    *bool
	FrontLeftSeatStatus     *string
	FrontRightSeatStatus    *string
	RearLeftSeatStatus      *string
	RearRightSeatStatus     *string

	// doors
	IsLocked             *bool
	FrontLeftDoorIsOpen  *bool
	FrontRightDoorIsOpen *bool
	BackLeftDoorIsOpen   *bool
	BackRightDoorIsOpen  *bool
	TrunkIsOpen          *bool
	HoodIsOpen           *bool

	// windows
	FrontLeftWindowIsOpen  *bool
	FrontRightWindowIsOpen *bool
	BackLeftWindowIsOpen   *bool
	BackRightWindowIsOpen  *bool

	// tire pressure
	TirePressureAllWarningIsOn        *bool
	TirePressureFrontLeftWarningIsOn  *bool
	TirePressureFrontRightWarningIsOn *bool
	TirePressureRearLeftWarningIsOn   *bool
	TirePressureRearRightWarningIsOn  *bool

	// service
	NextServiceDistance Quantity
	LastServiceDistance Quantity

	// location
	Location Position
	Geocode  Geocode

	// EV
	EVChargePortDoorIsOpen *bool
	EVChargeLimitsAC       *int
	EVChargeLimitsDC       *int
	EVV2LDischargeLimit    *int

	EVBatteryPercentage    *int
	EVBatterySOHPercentage *int
	EVBatteryRemain        *int
	EVBatteryCapacity      *int
	EVBatteryIsCharging    *bool
	// EVBatteryIsPluggedIn is the raw connector state code as reported;
	// non-zero means plugged in
	EVBatteryIsPluggedIn *int

	EVDrivingRange Quantity

	EVEstimatedCurrentChargeDuration  Quantity
	EVEstimatedFastChargeDuration     Quantity
	EVEstimatedPortableChargeDuration Quantity
	EVEstimatedStationChargeDuration  Quantity

	EVTargetRangeChargeAC Quantity
	EVTargetRangeChargeDC Quantity

	EVFirstDepartureEnabled  *bool
	EVSecondDepartureEnabled *bool

	// departure days/times and off-peak settings are not derived from the
	// status tree yet and remain unset
	EVFirstDepartureDays  []time.Weekday
	EVSecondDepartureDays []time.Weekday
	EVFirstDepartureTime  *time.Time
	EVSecondDepartureTime *time.Time
	EVOffPeakStartTime    *time.Time
	EVOffPeakEndTime      *time.Time
	EVOffPeakChargeOnly   *bool

	// energy accounting since pairing, watt-hours (Europe only)
	TotalPowerConsumed    *float64
	TotalPowerRegenerated *float64
	PowerConsumption30d   *float64

	// trip raw storage (Europe only)
	DailyStats    []DailyDrivingStats
	MonthTripInfo *MonthTripInfo
	DayTripInfo   *DayTripInfo

	// IC
	FuelDrivingRange Quantity
	FuelLevel        *float64
	FuelLevelIsLow   *bool

	// Data retains the last raw status document for debugging
	Data map[string]interface{}
}

// New creates a snapshot for a tracked vehicle
func New(id, name, model, vin string) *Vehicle {
	return &Vehicle{
		ID:      id,
		Name:    name,
		Model:   model,
		VIN:     vin,
		Enabled: true,
	}
}

// Clone returns a deep copy of the snapshot for callers that translate the
// same vehicle from multiple goroutines
func (v *Vehicle) Clone() (*Vehicle, error) {
	// the struct copy covers scalars and the unexported-field composites,
	// which copier cannot populate
	clone := *v

	// reference-typed fields still alias the original after the struct
	// copy; reset them so copier allocates fresh storage
	clone.DTCDescriptions = nil
	clone.EVFirstDepartureDays = nil
	clone.EVSecondDepartureDays = nil
	clone.DailyStats = nil
	clone.MonthTripInfo = nil
	clone.DayTripInfo = nil
	clone.Data = nil

	if err := copier.CopyWithOption(&clone, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}

	return &clone, nil
}
