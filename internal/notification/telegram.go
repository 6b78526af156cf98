package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/domain"
)

// TelegramNotifier шлёт служебные уведомления организаторам фестиваля
// в один настроенный чат. Личных сообщений участникам нет.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyRegistrationCreated(ctx context.Context, reg *domain.Registration, event *domain.Event) {
	text := fmt.Sprintf(
		"*New registration*\n\nEvent: %s\nDate (UTC): %s\nPayment: %s",
		event.Title,
		event.DateTime.Format("02.01.2006 15:04"),
		reg.PaymentStatus,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyRegistrationCancelled(ctx context.Context, reg *domain.Registration, event *domain.Event) {
	text := fmt.Sprintf(
		"*Registration cancelled*\n\nEvent: %s\nDate (UTC): %s",
		event.Title,
		event.DateTime.Format("02.01.2006 15:04"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyEventsDeactivated(ctx context.Context, events []*domain.Event) {
	if len(events) == 0 {
		return
	}

	text := fmt.Sprintf("*%d past event(s) closed for registration*", len(events))
	for _, e := range events {
		text += fmt.Sprintf("\n- %s (%s)", e.Title, e.DateTime.Format("02.01.2006 15:04"))
	}
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
