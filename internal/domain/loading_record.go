package domain

// LoadedStatusThreshold is the lowest load status code that counts as loaded.
const LoadedStatusThreshold = 8

// LoadStatus is the loading state shown on the dashboard.
type LoadStatus string

// Load status values.
const (
	LoadStatusLoaded    LoadStatus = "loaded"
	LoadStatusNotLoaded LoadStatus = "not_loaded"
)

// LoadStatusOf returns the load status of a bag.
func LoadStatusOf(b Bag) LoadStatus {
	if b.IsLoaded() {
		return LoadStatusLoaded
	}
	return LoadStatusNotLoaded
}

// LoadingRecord is the dashboard projection of one special bag.
// Nil pointer fields are rendered as JSON null.
type LoadingRecord struct {
	// FlightNumber is the numeric flight number as text
	FlightNumber string `json:"flightNumber" example:"1234"`

	// Seat is the passenger's seat assignment
	Seat *string `json:"seat" example:"12C"`

	// BaggageType is pet, wheelchair or weapon
	BaggageType *BaggageType `json:"baggageType" enums:"pet,wheelchair,weapon" swaggertype:"string"`

	// Status is loaded or not_loaded
	Status LoadStatus `json:"status" enums:"loaded,not_loaded" swaggertype:"string"`

	// HasBoarded is true when the passenger has boarded
	HasBoarded bool `json:"hasBoarded"`

	// DepartureDateTime is formatted as "dd/Mon HH:mm" (e.g., "15/Jun 08:30")
	DepartureDateTime *string `json:"departureDateTime" example:"15/Jun 08:30"`

	// FlightStand is the aircraft stand of the flight
	FlightStand *string `json:"flightStand" example:"A23B5"`

	// Bagtag is prefix, airline code number and serial number concatenated
	Bagtag string `json:"bagtag" example:"123456789"`
}
