package domain

// Trip is one leg of the relocation (a drive between the two cities).
type Trip struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Date        string  `json:"date"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Notes       *string `json:"notes"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type NewTripInput struct {
	UserID      int64   `json:"user_id"`
	Date        string  `json:"date"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Notes       *string `json:"notes"`
}

type TripPatch struct {
	Date        *string `json:"date"`
	Origin      *string `json:"origin"`
	Destination *string `json:"destination"`
	Notes       *string `json:"notes"`
}

// TripAssignment maps a vehicle and driver to a trip, with who and what rides
// along.
type TripAssignment struct {
	ID         int64   `json:"id"`
	TripID     int64   `json:"trip_id"`
	Vehicle    string  `json:"vehicle"`
	DriverName string  `json:"driver_name"`
	Passengers *string `json:"passengers"`
	CargoNotes *string `json:"cargo_notes"`
	MiscNotes  *string `json:"misc_notes"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type NewTripAssignmentInput struct {
	TripID     int64   `json:"trip_id"`
	Vehicle    string  `json:"vehicle"`
	DriverName string  `json:"driver_name"`
	Passengers *string `json:"passengers"`
	CargoNotes *string `json:"cargo_notes"`
	MiscNotes  *string `json:"misc_notes"`
}

type TripAssignmentPatch struct {
	Vehicle    *string `json:"vehicle"`
	DriverName *string `json:"driver_name"`
	Passengers *string `json:"passengers"`
	CargoNotes *string `json:"cargo_notes"`
	MiscNotes  *string `json:"misc_notes"`
}
