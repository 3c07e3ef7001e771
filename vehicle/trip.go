package vehicle

import "time"

// TripInfo is a single trip summary. Hhmmss is empty on summary records.
type TripInfo struct {
	Hhmmss    string
	DriveTime int
	IdleTime  int
	Distance  int
	AvgSpeed  float64
	MaxSpeed  int
}

// DayTripCounts is the number of trips taken on a day
type DayTripCounts struct {
	Yyyymmdd  string
	TripCount int
}

// MonthTripInfo aggregates trips per month
type MonthTripInfo struct {
	Yyyymm  string
	Summary *TripInfo
	DayList []DayTripCounts
}

// DayTripInfo aggregates trips per day
type DayTripInfo struct {
	Yyyymmdd string
	Summary  *TripInfo
	TripList []TripInfo
}

// DailyDrivingStats is a per-day energy breakdown. Energy values are
// watt-hours, distance is in the vehicle's configured distance unit.
type DailyDrivingStats struct {
	Date                          time.Time
	TotalConsumed                 int
	EngineConsumption             int
	ClimateConsumption            int
	OnboardElectronicsConsumption int
	BatteryCareConsumption        int
	RegeneratedEnergy             int
	Distance                      int
	DistanceUnit                  string
}
