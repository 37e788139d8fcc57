package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// HotelAssignment is the canonical shape of a package's reference to a hotel
// stay. Source data stores assignments either as a structured array or as a
// loosely-typed legacy JSON blob; ParseAssignments normalizes both at load
// time so the rest of the pipeline only ever sees this form.
type HotelAssignment struct {
	// HotelID references the hotel document
	HotelID string `json:"hotelId"`

	// CheckInDay is the zero-based day offset within the package when the
	// stay begins
	CheckInDay int `json:"checkInDay"`

	// CheckOutDay is the zero-based day offset when the stay ends
	CheckOutDay int `json:"checkOutDay"`

	// RoomTypeCode is the provider room type requested for this stay
	RoomTypeCode string `json:"roomTypeCode"`

	// RoomsNeeded is the number of rooms for this stay
	RoomsNeeded int `json:"roomsNeeded"`

	// GuestsPerRoom is the guest composition per room
	GuestsPerRoom int `json:"guestsPerRoom"`
}

// Nights returns the number of nights the assignment covers. Same-day
// check-in/out yields zero, which prices to zero with a warning.
func (a HotelAssignment) Nights() int {
	n := a.CheckOutDay - a.CheckInDay
	if n < 0 {
		return 0
	}
	return n
}

// StayDates translates the assignment's day offsets into absolute check-in
// and check-out dates anchored at the package start date.
func (a HotelAssignment) StayDates(start time.Time) (checkIn, checkOut time.Time) {
	checkIn = start.AddDate(0, 0, a.CheckInDay)
	checkOut = start.AddDate(0, 0, a.CheckOutDay)
	return checkIn, checkOut
}

// legacyAssignment mirrors the loosely-typed blob shape found in older
// package documents.
type legacyAssignment struct {
	Hotel     string `json:"hotel"`
	HotelRef  string `json:"hotel_ref"`
	DayFrom   int    `json:"day_from"`
	DayTo     int    `json:"day_to"`
	RoomType  string `json:"room_type"`
	NumRooms  int    `json:"num_rooms"`
	Occupancy int    `json:"occupancy"`
}

// ParseAssignments decodes hotel assignments from raw JSON, accepting both
// the structured array form and the legacy blob form. The result is always
// the canonical HotelAssignment shape.
func ParseAssignments(data []byte) ([]HotelAssignment, error) {
	if len(data) == 0 {
		return nil, nil
	}

	// Structured form first
	var structured []HotelAssignment
	if err := json.Unmarshal(data, &structured); err == nil && validStructured(structured) {
		return structured, nil
	}

	// Legacy form
	var legacy []legacyAssignment
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("assignments are neither structured nor legacy form: %w", err)
	}

	result := make([]HotelAssignment, 0, len(legacy))
	for _, l := range legacy {
		hotelID := l.Hotel
		if hotelID == "" {
			hotelID = l.HotelRef
		}
		if hotelID == "" {
			return nil, fmt.Errorf("legacy assignment missing hotel reference")
		}
		rooms := l.NumRooms
		if rooms == 0 {
			rooms = 1
		}
		result = append(result, HotelAssignment{
			HotelID:       hotelID,
			CheckInDay:    l.DayFrom,
			CheckOutDay:   l.DayTo,
			RoomTypeCode:  l.RoomType,
			RoomsNeeded:   rooms,
			GuestsPerRoom: l.Occupancy,
		})
	}
	return result, nil
}

// validStructured reports whether a decoded structured array actually carries
// hotel references. JSON decoding is permissive, so a legacy blob can decode
// into an empty structured slice without error.
func validStructured(assignments []HotelAssignment) bool {
	for _, a := range assignments {
		if a.HotelID == "" {
			return false
		}
	}
	return len(assignments) > 0
}
