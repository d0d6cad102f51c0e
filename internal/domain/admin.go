package domain

import "time"

type AdminStatus string

const (
	AdminStatusActive   AdminStatus = "active"
	AdminStatusDisabled AdminStatus = "disabled"
)

func (s AdminStatus) Valid() bool {
	return s == AdminStatusActive || s == AdminStatusDisabled
}

type Admin struct {
	ID             string      `json:"id"`
	Username       string      `json:"username"`
	Status         AdminStatus `json:"status"`
	TelegramChatID *int64      `json:"telegram_chat_id"`
	CreatedAt      time.Time   `json:"created_at"`
}

type CreateAdminInput struct {
	Username       string
	TelegramChatID *int64
}
