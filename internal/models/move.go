package models

import "time"

// VehicleCounts is the truck/van/car composition of a move.
type VehicleCounts struct {
	Truck int
	Van   int
	Car   int
}

// Add returns the element-wise sum of two count triples.
func (c VehicleCounts) Add(other VehicleCounts) VehicleCounts {
	return VehicleCounts{
		Truck: c.Truck + other.Truck,
		Van:   c.Van + other.Van,
		Car:   c.Car + other.Car,
	}
}

// Total returns the sum of all three counts.
func (c VehicleCounts) Total() int {
	return c.Truck + c.Van + c.Car
}

// Move is one extracted dispatch record: a date without year ("DD/MM/"),
// a 24-hour time ("HH:MM"), free-text origin and destination, and the
// vehicle composition. Any field may be empty.
type Move struct {
	Date        string
	Time        string
	Origin      string
	Destination string
	Counts      VehicleCounts
}

// Empty reports whether the move carries no date, time, origin or
// destination. Vehicle counts alone do not make a move worth keeping.
func (m Move) Empty() bool {
	return m.Date == "" && m.Time == "" && m.Origin == "" && m.Destination == ""
}

// Route is the result of a route lookup between origin and destination.
// The zero value means the lookup failed or was skipped.
type Route struct {
	Distance string
	Duration string
	MapURL   string
}

// Record is one persisted job log row.
type Record struct {
	JobRef        string
	SourceEmailID string
	Move          Move
	VehicleLabel  string
	Route         Route
	Subject       string
	ReceivedAt    time.Time
	DedupeKey     string
}
