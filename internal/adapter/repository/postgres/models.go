package postgres

import (
	"time"

	"github.com/baggage-tracking/special-baggage-service/internal/domain"
	"github.com/baggage-tracking/special-baggage-service/internal/infrastructure/timeutil"
)

// Bag GORM model for database mapping. Only the columns the service reads
// are mapped; the table carries many more.
type Bag struct {
	BtSerialNr      int32     `gorm:"column:bt_serial_nr;primaryKey"`
	BtAirlineCodeNr int16     `gorm:"column:bt_airline_code_nr;primaryKey"`
	OninterPrefix   int16     `gorm:"column:oninter_prefix;primaryKey"`
	DuplicateNr     int16     `gorm:"column:duplicate_nr;primaryKey"`
	FlightNr        int16     `gorm:"column:flight_nr;primaryKey"`
	AirlineCodeNr   int16     `gorm:"column:airline_code_nr;primaryKey"`
	Suffix          string    `gorm:"column:suffix;primaryKey;size:1"`
	FlightDepDate   time.Time `gorm:"column:flight_dep_date;primaryKey;type:date"`
	LegNr           int16     `gorm:"column:leg_nr;primaryKey"`
	LegDepDate      time.Time `gorm:"column:leg_dep_date;type:date"`
	Seat            *string   `gorm:"column:seat;size:3"`
	PaxStatus       *string   `gorm:"column:pax_status;size:3"`
	ExceptionTypes  *string   `gorm:"column:exception_types;size:450"`
	LoadedStatus    *int      `gorm:"column:loaded_status"`
}

// TableName overrides the default table name
func (Bag) TableName() string {
	return "tbag"
}

// toDomain converts the GORM model to a domain bag.
func (m Bag) toDomain() domain.Bag {
	return domain.Bag{
		ID: domain.BagID{
			BtSerialNr:      m.BtSerialNr,
			BtAirlineCodeNr: m.BtAirlineCodeNr,
			OninterPrefix:   m.OninterPrefix,
			DuplicateNr:     m.DuplicateNr,
			FlightNr:        m.FlightNr,
			AirlineCodeNr:   m.AirlineCodeNr,
			Suffix:          m.Suffix,
			FlightDepDate:   timeutil.WallClock(m.FlightDepDate),
			LegNr:           m.LegNr,
		},
		LegDepDate:     timeutil.WallClock(m.LegDepDate),
		Seat:           m.Seat,
		ExceptionTypes: m.ExceptionTypes,
		LoadedStatus:   m.LoadedStatus,
		PaxStatus:      m.PaxStatus,
	}
}

// Flight GORM model for database mapping
type Flight struct {
	FlightNr      int16      `gorm:"column:flight_nr;primaryKey"`
	AirlineCodeNr int16      `gorm:"column:airline_code_nr;primaryKey"`
	Suffix        string     `gorm:"column:suffix;primaryKey;size:1"`
	FlightDepDate time.Time  `gorm:"column:flight_dep_date;primaryKey;type:date"`
	LegNr         int16      `gorm:"column:leg_nr;primaryKey"`
	ScheduleTime  *time.Time `gorm:"column:schedule_time"`
	EstimatedTime *time.Time `gorm:"column:estimated_time"`
	ActualTime    *time.Time `gorm:"column:actual_time"`
	Gate          *string    `gorm:"column:gate;size:5"`
	Stand         *string    `gorm:"column:stand;size:5"`
}

// TableName overrides the default table name
func (Flight) TableName() string {
	return "tflight"
}

// toDomain converts the GORM model to a domain flight. Timestamps keep their
// wall-clock reading and drop the zone the driver attached to them.
func (m Flight) toDomain() domain.Flight {
	return domain.Flight{
		ID: domain.FlightID{
			FlightNr:      m.FlightNr,
			AirlineCodeNr: m.AirlineCodeNr,
			Suffix:        m.Suffix,
			FlightDepDate: timeutil.WallClock(m.FlightDepDate),
			LegNr:         m.LegNr,
		},
		ScheduleTime:  wallClockPtr(m.ScheduleTime),
		EstimatedTime: wallClockPtr(m.EstimatedTime),
		ActualTime:    wallClockPtr(m.ActualTime),
		Stand:         m.Stand,
		Gate:          m.Gate,
	}
}

func wallClockPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	wc := timeutil.WallClock(*t)
	return &wc
}
