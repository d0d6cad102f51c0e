package notification

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/ResortDesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:           "42",
		FullName:     "Jane Doe",
		Phone:        "+1 555 0100",
		CheckInDate:  "2025-03-10",
		CheckOutDate: "2025-03-14",
		RoomType:     domain.RoomTypeTwin,
		Adults:       2,
		Children:     1,
	}
}

func TestTelegramNotifier_SendsToAdminChat(t *testing.T) {
	sender := &fakeSender{}
	n := &TelegramNotifier{bot: sender, logger: newTestLogger(t)}
	chatID := int64(777)

	n.NotifyReservationConfirmed(context.Background(), &domain.Admin{TelegramChatID: &chatID}, testReservation())

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, chatID, msg.ChatID)
	assert.Equal(t, "Markdown", msg.ParseMode)
	assert.Contains(t, msg.Text, "Бронирование подтверждено")
	assert.Contains(t, msg.Text, "Jane Doe")
	assert.Contains(t, msg.Text, "2025-03-10")
	assert.Contains(t, msg.Text, "+1 555 0100")
}

func TestTelegramNotifier_EscapesGuestInput(t *testing.T) {
	sender := &fakeSender{}
	n := &TelegramNotifier{bot: sender, logger: newTestLogger(t)}
	chatID := int64(777)

	r := testReservation()
	r.FullName = "Anne_Marie *VIP* [x]"
	r.Phone = "`+1_555`"

	n.NotifyReservationCreated(context.Background(), &domain.Admin{TelegramChatID: &chatID}, r)

	require.Len(t, sender.sent, 1)
	text := sender.sent[0].Text
	assert.Contains(t, text, "*Новая заявка на бронирование*")
	assert.Contains(t, text, `Гость: Anne\_Marie \*VIP\* \[x]`)
	assert.Contains(t, text, "Телефон: \\`+1\\_555\\`")
	assert.NotContains(t, text, "Anne_Marie")
}

func TestTelegramNotifier_SkipsWithoutChatID(t *testing.T) {
	sender := &fakeSender{}
	n := &TelegramNotifier{bot: sender, logger: newTestLogger(t)}

	n.NotifyReservationCreated(context.Background(), &domain.Admin{}, testReservation())

	assert.Empty(t, sender.sent)
}

func TestTelegramNotifier_SkipsOnCancelledContext(t *testing.T) {
	sender := &fakeSender{}
	n := &TelegramNotifier{bot: sender, logger: newTestLogger(t)}
	chatID := int64(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n.NotifyReservationCancelled(ctx, &domain.Admin{TelegramChatID: &chatID}, testReservation())

	assert.Empty(t, sender.sent)
}

func TestTelegramNotifier_SendErrorIsSwallowed(t *testing.T) {
	sender := &fakeSender{err: errors.New("telegram down")}
	n := &TelegramNotifier{bot: sender, logger: newTestLogger(t)}
	chatID := int64(1)

	assert.NotPanics(t, func() {
		n.NotifyReservationCancelled(context.Background(), &domain.Admin{TelegramChatID: &chatID}, testReservation())
	})
	assert.Len(t, sender.sent, 1)
}

func TestNewTelegramNotifier_EmptyTokenDisables(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))

	require.NoError(t, err)
	assert.Nil(t, n.bot)

	chatID := int64(1)
	assert.NotPanics(t, func() {
		n.NotifyReservationCreated(context.Background(), &domain.Admin{TelegramChatID: &chatID}, testReservation())
	})
}
