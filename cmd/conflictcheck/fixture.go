package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"gigbook/internal/domain/booking"
	"gigbook/internal/domain/conflict"

	"gopkg.in/yaml.v3"
)

// Fixture is the file format read by conflictcheck.
type Fixture struct {
	Bookings    []BookingRecord    `yaml:"bookings"`
	Resolutions []ResolutionRecord `yaml:"resolutions"`
}

type BookingRecord struct {
	ID           int64   `yaml:"id"`
	ClientName   string  `yaml:"client_name"`
	Status       string  `yaml:"status"`
	EventDate    string  `yaml:"event_date"`
	EventTime    *string `yaml:"event_time"`
	EventEndTime *string `yaml:"event_end_time"`
	Venue        string  `yaml:"venue"`
	VenueAddress string  `yaml:"venue_address"`
}

type ResolutionRecord struct {
	BookingIDs   []int64 `yaml:"booking_ids"`
	ConflictDate string  `yaml:"conflict_date"`
	Notes        *string `yaml:"notes"`
}

// loadFixture reads a fixture from path, or from stdin when path is "-".
func loadFixture(path string, stdin io.Reader) (*Fixture, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open fixture: %w", err)
		}
		defer f.Close()
		r = f
	}
	return decodeFixture(r)
}

func decodeFixture(r io.Reader) (*Fixture, error) {
	var fx Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &fx, nil
}

// Snapshot converts the records into domain values. Booking rows are passed
// through unvalidated so the detector sees them as the store would.
func (fx *Fixture) Snapshot(now time.Time) ([]booking.Booking, []*conflict.Resolution, error) {
	bookings := make([]booking.Booking, 0, len(fx.Bookings))
	for _, rec := range fx.Bookings {
		status := booking.Status(rec.Status)
		if rec.Status == "" {
			status = booking.StatusNew
		}
		bookings = append(bookings, booking.Booking{
			ID:           rec.ID,
			ClientName:   rec.ClientName,
			Status:       status,
			EventDate:    rec.EventDate,
			EventTime:    rec.EventTime,
			EventEndTime: rec.EventEndTime,
			Venue:        rec.Venue,
			VenueAddress: rec.VenueAddress,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	resolutions := make([]*conflict.Resolution, 0, len(fx.Resolutions))
	for i, rec := range fx.Resolutions {
		date, err := booking.ParseDate(rec.ConflictDate)
		if err != nil {
			return nil, nil, fmt.Errorf("resolution %d: %w", i, err)
		}
		res, err := conflict.NewResolution(rec.BookingIDs, date, rec.Notes, now)
		if err != nil {
			return nil, nil, fmt.Errorf("resolution %d: %w", i, err)
		}
		resolutions = append(resolutions, res)
	}
	return bookings, resolutions, nil
}
