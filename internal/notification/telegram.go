package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/ResortDesk/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier tells front-desk admins about reservation changes.
type TelegramNotifier struct {
	bot    messageSender
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, admin *domain.Admin, r *domain.Reservation) {
	n.send(ctx, admin.TelegramChatID, "*Новая заявка на бронирование*\n\n"+describe(r))
}

func (n *TelegramNotifier) NotifyReservationConfirmed(ctx context.Context, admin *domain.Admin, r *domain.Reservation) {
	n.send(ctx, admin.TelegramChatID, "*Бронирование подтверждено*\n\n"+describe(r))
}

func (n *TelegramNotifier) NotifyReservationCancelled(ctx context.Context, admin *domain.Admin, r *domain.Reservation) {
	n.send(ctx, admin.TelegramChatID, "*Бронирование отменено*\n\n"+describe(r))
}

// describe formats a reservation for a Markdown message. Guest input is escaped.
func describe(r *domain.Reservation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Гость: %s\n", escape(r.FullName))
	fmt.Fprintf(&b, "Номер: %s\n", r.RoomType)
	fmt.Fprintf(&b, "Даты: %s - %s\n", r.CheckInDate, r.CheckOutDate)
	fmt.Fprintf(&b, "Гостей: %d взр., %d дет.", r.Adults, r.Children)
	if r.Phone != "" {
		fmt.Fprintf(&b, "\nТелефон: %s", escape(r.Phone))
	}
	return b.String()
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
