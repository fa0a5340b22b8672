package telegram

import (
	"crash_backend/internal/config"
	"crash_backend/internal/service"
	"context"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

const pollTimeout = 30

// NewBotAPI Клиент Bot API, HTTP таймаут длиннее long polling
func NewBotAPI(token string) (*tgbotapi.BotAPI, error) {
	client := &http.Client{Timeout: (pollTimeout + 15) * time.Second}
	return tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, client)
}

type BotDeps struct {
	API       *tgbotapi.BotAPI
	Game      service.GameService
	Ledger    service.LedgerService
	GameCfg   config.GameConfig
	WebAppURL string
}

// Bot Фронтенд игры в Telegram
type Bot struct {
	api       *tgbotapi.BotAPI
	client    sender
	game      service.GameService
	ledger    service.LedgerService
	cfg       config.GameConfig
	webAppURL string
}

func NewBot(deps BotDeps) *Bot {
	return &Bot{
		api:       deps.API,
		client:    deps.API,
		game:      deps.Game,
		ledger:    deps.Ledger,
		cfg:       deps.GameCfg,
		webAppURL: deps.WebAppURL,
	}
}

// Run Long polling до отмены ctx. Каждый апдейт обрабатывается в своей горутине
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout

	updates := b.api.GetUpdatesChan(u)
	logrus.WithField("bot", b.api.Self.UserName).Info("telegram bot started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			logrus.Info("telegram bot stopped")
			return nil
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			go b.handleUpdate(ctx, upd)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, upd tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("telegram update handler panicked")
		}
	}()

	switch {
	case upd.Message != nil && upd.Message.From != nil:
		b.handleMessage(ctx, upd.Message)
	case upd.CallbackQuery != nil && upd.CallbackQuery.From != nil:
		b.handleCallback(ctx, upd.CallbackQuery)
	}
}

func (b *Bot) reply(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if markup != nil {
		msg.ReplyMarkup = markup
	}

	if _, err := b.client.Send(msg); err != nil {
		logrus.WithError(err).WithField("chat_id", chatID).Warn("send telegram message")
	}
}

func (b *Bot) answer(callbackID, text string) {
	if _, err := b.client.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		logrus.WithError(err).Warn("answer callback")
	}
}
