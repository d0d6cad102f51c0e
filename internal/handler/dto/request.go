package dto

import "github.com/stpnv0/ResortDesk/internal/domain"

type CreateReservationRequest struct {
	FullName        string `json:"full_name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone"`
	CheckInDate     string `json:"check_in_date" binding:"required"`
	CheckOutDate    string `json:"check_out_date" binding:"required"`
	RoomType        string `json:"room_type" binding:"required"`
	Adults          int    `json:"adults" binding:"required"`
	Children        int    `json:"children"`
	SpecialRequests string `json:"special_requests"`
}

func (r CreateReservationRequest) ToInput() domain.CreateReservationInput {
	return domain.CreateReservationInput{
		FullName:        r.FullName,
		Email:           r.Email,
		Phone:           r.Phone,
		CheckInDate:     r.CheckInDate,
		CheckOutDate:    r.CheckOutDate,
		RoomType:        r.RoomType,
		Adults:          r.Adults,
		Children:        r.Children,
		SpecialRequests: r.SpecialRequests,
	}
}

type CreateAdminRequest struct {
	Username       string `json:"username" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type SetAdminStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SettingsRequest struct {
	ResortName   string                `json:"resort_name" binding:"required"`
	Tagline      string                `json:"tagline"`
	Phone        string                `json:"phone"`
	Email        string                `json:"email"`
	Address      string                `json:"address"`
	OpeningHours []domain.OpeningHours `json:"opening_hours"`
	Prices       []domain.PriceItem    `json:"prices"`
}

func (r SettingsRequest) ToSettings() *domain.SiteSettings {
	return &domain.SiteSettings{
		ResortName:   r.ResortName,
		Tagline:      r.Tagline,
		Phone:        r.Phone,
		Email:        r.Email,
		Address:      r.Address,
		OpeningHours: r.OpeningHours,
		Prices:       r.Prices,
	}
}
