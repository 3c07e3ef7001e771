package vehicle

import "time"

// Quantity is a measurement together with the unit it was reported in. Value
// and unit always originate from the same source reading; the zero value
// means the reading has never been received.
type Quantity struct {
	value float64
	unit  string
	valid bool
}

// NewQuantity pairs a value with its unit
func NewQuantity(value float64, unit string) Quantity {
	return Quantity{value: value, unit: unit, valid: true}
}

// Value returns the measured value
func (q Quantity) Value() float64 {
	return q.value
}

// Unit returns the unit the value was reported in
func (q Quantity) Unit() string {
	return q.unit
}

// Valid indicates that the quantity has been written at least once
func (q Quantity) Valid() bool {
	return q.valid
}

// Position is a geo fix. Coordinates and fix time always originate from the
// same source reading; the zero value means no fix has been received.
type Position struct {
	latitude  float64
	longitude float64
	updatedAt time.Time
	valid     bool
}

// NewPosition combines coordinates and fix time into a position
func NewPosition(latitude, longitude float64, updatedAt time.Time) Position {
	return Position{
		latitude:  latitude,
		longitude: longitude,
		updatedAt: updatedAt,
		valid:     true,
	}
}

// Latitude returns the latitude in degrees
func (p Position) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees
func (p Position) Longitude() float64 {
	return p.longitude
}

// UpdatedAt returns the fix timestamp. It may be older than the snapshot's
// LastUpdatedAt; the newer of the two is for the caller to decide.
func (p Position) UpdatedAt() time.Time {
	return p.updatedAt
}

// Valid indicates that a fix has been received
func (p Position) Valid() bool {
	return p.valid
}

// Geocode is the reverse-geocoded place name and address for a position,
// maintained by an external geocoder. Both strings are written together.
type Geocode struct {
	name    string
	address string
}

// NewGeocode pairs place name and address
func NewGeocode(name, address string) Geocode {
	return Geocode{name: name, address: address}
}

// Name returns the place name
func (g Geocode) Name() string {
	return g.name
}

// Address returns the address
func (g Geocode) Address() string {
	return g.address
}
