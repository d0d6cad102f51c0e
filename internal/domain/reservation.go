package domain

import (
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format reservations are stored and exchanged in.
const DateLayout = "2006-01-02"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

var ActiveStatuses = []ReservationStatus{ReservationStatusPending, ReservationStatusConfirmed}

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled:
		return true
	}
	return false
}

type RoomType string

const (
	RoomTypeStandard   RoomType = "standard"
	RoomTypeTwin       RoomType = "twin"
	RoomTypeDouble     RoomType = "double"
	RoomTypeFamily     RoomType = "family"
	RoomTypeAmbassador RoomType = "ambassador"
)

var RoomTypes = []RoomType{RoomTypeStandard, RoomTypeTwin, RoomTypeDouble, RoomTypeFamily, RoomTypeAmbassador}

func (t RoomType) Valid() bool {
	for _, rt := range RoomTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// ParseRoomType normalizes case and surrounding whitespace.
func ParseRoomType(s string) (RoomType, bool) {
	rt := RoomType(strings.ToLower(strings.TrimSpace(s)))
	return rt, rt.Valid()
}

// Reservation dates are kept as YYYY-MM-DD strings; they carry no time of day.
type Reservation struct {
	ID              string            `json:"id"`
	FullName        string            `json:"full_name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	CheckInDate     string            `json:"check_in_date"`
	CheckOutDate    string            `json:"check_out_date"`
	RoomType        RoomType          `json:"room_type"`
	Adults          int               `json:"adults"`
	Children        int               `json:"children"`
	SpecialRequests string            `json:"special_requests,omitempty"`
	Status          ReservationStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type CreateReservationInput struct {
	FullName        string
	Email           string
	Phone           string
	CheckInDate     string
	CheckOutDate    string
	RoomType        string
	Adults          int
	Children        int
	SpecialRequests string
}

// ReservationFilter selects reservations whose stay overlaps [From, To].
// Empty fields are not applied.
type ReservationFilter struct {
	From   string
	To     string
	Status ReservationStatus
}
