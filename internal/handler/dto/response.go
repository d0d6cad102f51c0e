package dto

import (
	"time"

	"github.com/stpnv0/ResortDesk/internal/domain"
)

type ReservationResponse struct {
	ID              string `json:"id"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	CheckInDate     string `json:"check_in_date"`
	CheckOutDate    string `json:"check_out_date"`
	RoomType        string `json:"room_type"`
	Adults          int    `json:"adults"`
	Children        int    `json:"children"`
	SpecialRequests string `json:"special_requests,omitempty"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

type AdminResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Status         string `json:"status"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type SettingsResponse struct {
	ResortName   string                `json:"resort_name"`
	Tagline      string                `json:"tagline,omitempty"`
	Phone        string                `json:"phone,omitempty"`
	Email        string                `json:"email,omitempty"`
	Address      string                `json:"address,omitempty"`
	OpeningHours []domain.OpeningHours `json:"opening_hours"`
	Prices       []domain.PriceItem    `json:"prices"`
	UpdatedAt    string                `json:"updated_at"`
}

type DashboardResponse struct {
	Today          string                `json:"today"`
	CountsByStatus map[string]int        `json:"counts_by_status"`
	Arrivals       []ReservationResponse `json:"arrivals"`
	Departures     []ReservationResponse `json:"departures"`
	Upcoming       []ReservationResponse `json:"upcoming"`
}

type InviteResponse struct {
	Filename string `json:"filename"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:              r.ID,
		FullName:        r.FullName,
		Email:           r.Email,
		Phone:           r.Phone,
		CheckInDate:     r.CheckInDate,
		CheckOutDate:    r.CheckOutDate,
		RoomType:        string(r.RoomType),
		Adults:          r.Adults,
		Children:        r.Children,
		SpecialRequests: r.SpecialRequests,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}

func ToReservationResponses(rs []*domain.Reservation) []ReservationResponse {
	resp := make([]ReservationResponse, 0, len(rs))
	for _, r := range rs {
		resp = append(resp, ToReservationResponse(r))
	}
	return resp
}

func ToAdminResponse(a *domain.Admin) AdminResponse {
	return AdminResponse{
		ID:             a.ID,
		Username:       a.Username,
		Status:         string(a.Status),
		TelegramChatID: a.TelegramChatID,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	}
}

func ToSettingsResponse(s *domain.SiteSettings) SettingsResponse {
	hours := s.OpeningHours
	if hours == nil {
		hours = []domain.OpeningHours{}
	}
	prices := s.Prices
	if prices == nil {
		prices = []domain.PriceItem{}
	}
	return SettingsResponse{
		ResortName:   s.ResortName,
		Tagline:      s.Tagline,
		Phone:        s.Phone,
		Email:        s.Email,
		Address:      s.Address,
		OpeningHours: hours,
		Prices:       prices,
		UpdatedAt:    s.UpdatedAt.Format(time.RFC3339),
	}
}

func ToDashboardResponse(d *domain.DashboardSummary) DashboardResponse {
	counts := make(map[string]int, len(d.CountsByStatus))
	for status, n := range d.CountsByStatus {
		counts[string(status)] = n
	}
	return DashboardResponse{
		Today:          d.Today,
		CountsByStatus: counts,
		Arrivals:       ToReservationResponses(d.Arrivals),
		Departures:     ToReservationResponses(d.Departures),
		Upcoming:       ToReservationResponses(d.Upcoming),
	}
}
