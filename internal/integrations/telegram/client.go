package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

var (
	// ErrSendMessage возвращается, когда Telegram не принял сообщение
	ErrSendMessage = errors.New("telegram: failed to send message")
)

const sendTimeout = 10 * time.Second

// MessageSender часть API бота, которая нужна для отправки сообщений (*bot.Bot)
type MessageSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Announcer публикует в чат служителей сообщения об изменениях расписания
type Announcer struct {
	sender MessageSender
	chatID int64
	logger Logger
}

// NewBot создает клиента Telegram Bot API
func NewBot(token string) (*bot.Bot, error) {
	b, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: failed to create bot: %w", err)
	}
	return b, nil
}

// NewAnnouncer создает публикатора для чата chatID
func NewAnnouncer(sender MessageSender, chatID int64, logger Logger) *Announcer {
	return &Announcer{
		sender: sender,
		chatID: chatID,
		logger: logger,
	}
}

// Announce отправляет сообщение о причине изменения синхронно
func (a *Announcer) Announce(ctx context.Context, reason string) error {
	text, ok := messages[reason]
	if !ok {
		return nil
	}

	_, err := a.sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: a.chatID,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("%w: chat_id=%d: %v", ErrSendMessage, a.chatID, err)
	}

	a.logger.Info("Telegram: announced calendar update: reason=%s, chat_id=%d", reason, a.chatID)
	return nil
}

// Subscriber подписчик на изменения календаря: отправка идет в фоне и не задерживает запрос
func (a *Announcer) Subscriber() func(ctx context.Context, reason string) {
	return func(_ context.Context, reason string) {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
			defer cancel()

			if err := a.Announce(ctx, reason); err != nil {
				a.logger.Warn("Telegram: announce failed: reason=%s, error=%v", reason, err)
			}
		}()
	}
}
