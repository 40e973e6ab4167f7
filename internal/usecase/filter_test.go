package usecase

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/baggage-tracking/special-baggage-service/internal/domain"
)

func TestIsWithinDateRange(t *testing.T) {
	window := domain.DateRange{
		From: time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2023, 6, 16, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name   string
		flight *domain.Flight
		want   bool
	}{
		{
			name:   "scheduled time inside window",
			flight: flightWith(timePtr(time.Date(2023, 6, 15, 8, 0, 0, 0, time.UTC)), nil, nil),
			want:   true,
		},
		{
			name:   "exactly at from",
			flight: flightWith(timePtr(window.From), nil, nil),
			want:   true,
		},
		{
			name:   "exactly at to",
			flight: flightWith(timePtr(window.To), nil, nil),
			want:   true,
		},
		{
			name:   "one nanosecond before from",
			flight: flightWith(timePtr(window.From.Add(-time.Nanosecond)), nil, nil),
			want:   false,
		},
		{
			name:   "one nanosecond after to",
			flight: flightWith(timePtr(window.To.Add(time.Nanosecond)), nil, nil),
			want:   false,
		},
		{
			name: "actual time outside overrides scheduled inside",
			flight: flightWith(
				timePtr(time.Date(2023, 6, 15, 8, 0, 0, 0, time.UTC)),
				timePtr(time.Date(2023, 6, 15, 9, 0, 0, 0, time.UTC)),
				timePtr(time.Date(2023, 6, 16, 1, 0, 0, 0, time.UTC)),
			),
			want: false,
		},
		{
			name: "estimated time inside overrides scheduled outside",
			flight: flightWith(
				timePtr(time.Date(2023, 6, 14, 23, 0, 0, 0, time.UTC)),
				timePtr(time.Date(2023, 6, 15, 0, 30, 0, 0, time.UTC)),
				nil,
			),
			want: true,
		},
		{
			name:   "no departure time at all",
			flight: flightWith(nil, nil, nil),
			want:   false,
		},
		{
			name:   "no matching flight",
			flight: nil,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flights []domain.Flight
			if tt.flight != nil {
				flights = append(flights, *tt.flight)
			}
			index := BuildFlightIndex(flights, zerolog.Nop())

			got := isWithinDateRange(createTestBag(100, 1, strPtr("PET")), index, window)

			assert.Equal(t, tt.want, got)
		})
	}
}

func flightWith(schedule, estimated, actual *time.Time) *domain.Flight {
	f := createTestFlight(100, schedule)
	f.EstimatedTime = estimated
	f.ActualTime = actual
	return &f
}

func TestSelectSpecialBags(t *testing.T) {
	flights := []domain.Flight{
		createTestFlight(100, timePtr(time.Date(2023, 6, 15, 8, 0, 0, 0, time.UTC))),
		createTestFlight(200, timePtr(time.Date(2023, 6, 17, 8, 0, 0, 0, time.UTC))),
	}
	index := BuildFlightIndex(flights, zerolog.Nop())

	bags := []domain.Bag{
		createTestBag(100, 1, strPtr("WCHR")),
		createTestBag(100, 2, strPtr("XYZ,ABC")),
		createTestBag(100, 3, nil),
		createTestBag(200, 4, strPtr("PET")),
		createTestBag(300, 5, strPtr("PET")),
		createTestBag(100, 6, strPtr("AVIH,WEAP")),
	}

	got := selectSpecialBags(bags, index, dayWindow())

	serials := make([]int32, 0, len(got))
	for _, b := range got {
		serials = append(serials, b.ID.BtSerialNr)
	}
	assert.Equal(t, []int32{1, 6}, serials)
}

func TestApplyRecordFilter(t *testing.T) {
	pet := domain.BaggageTypePet
	weapon := domain.BaggageTypeWeapon
	records := []domain.LoadingRecord{
		{Bagtag: "1", BaggageType: &pet, Status: domain.LoadStatusLoaded, HasBoarded: true},
		{Bagtag: "2", BaggageType: &weapon, Status: domain.LoadStatusNotLoaded, HasBoarded: false},
		{Bagtag: "3", BaggageType: nil, Status: domain.LoadStatusLoaded, HasBoarded: false},
	}

	tests := []struct {
		name   string
		filter domain.RecordFilter
		want   []string
	}{
		{name: "empty filter", filter: domain.RecordFilter{}, want: []string{"1", "2", "3"}},
		{
			name:   "all values",
			filter: domain.RecordFilter{FlightStatus: domain.FlightStatusAll, PassengerType: domain.PassengerTypeAll, BaggageStatus: domain.BaggageStatusAll},
			want:   []string{"1", "2", "3"},
		},
		{name: "boarded", filter: domain.RecordFilter{FlightStatus: domain.FlightStatusBoarded}, want: []string{"1"}},
		{name: "not loaded", filter: domain.RecordFilter{BaggageStatus: domain.BaggageStatusNotLoaded}, want: []string{"2"}},
		{name: "weapon", filter: domain.RecordFilter{PassengerType: domain.PassengerTypeWeapon}, want: []string{"2"}},
		{
			name:   "combined with no match",
			filter: domain.RecordFilter{PassengerType: domain.PassengerTypePet, BaggageStatus: domain.BaggageStatusNotLoaded},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyRecordFilter(records, tt.filter)

			tags := make([]string, 0, len(got))
			for _, r := range got {
				tags = append(tags, r.Bagtag)
			}
			assert.Equal(t, tt.want, tags)
		})
	}
}
