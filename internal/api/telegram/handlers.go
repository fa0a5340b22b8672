package telegram

import (
	"crash_backend/internal/model"
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func (b *Bot) handleMessage(ctx context.Context, m *tgbotapi.Message) {
	userID, chatID := m.From.ID, m.Chat.ID

	if m.IsCommand() {
		b.handleCommand(ctx, m)
		return
	}

	switch strings.TrimSpace(m.Text) {
	case btnPlay:
		b.reply(chatID, "🎯 Выберите ставку:", betKeyboard(b.cfg.BetPresets()))
	case btnBalance:
		b.showBalance(ctx, userID, chatID)
	case btnTopUp:
		b.reply(chatID, "⭐ Выберите сумму пополнения:", topUpKeyboard(b.cfg.TopUpPresets()))
	case btnStats:
		b.showStats(ctx, userID, chatID)
	case btnHistory:
		b.showHistory(ctx, chatID)
	case btnRules:
		b.reply(chatID, helpText(b.cfg.MinBet(), b.cfg.MaxBet()), nil)
	default:
		// Число в чате считается ставкой
		amount, err := strconv.ParseInt(strings.TrimSpace(m.Text), 10, 64)
		if err != nil {
			b.reply(chatID, "Неизвестная команда. Используйте /help", nil)
			return
		}
		b.placeBet(ctx, userID, chatID, amount)
	}
}

func (b *Bot) handleCommand(ctx context.Context, m *tgbotapi.Message) {
	userID, chatID := m.From.ID, m.Chat.ID
	args := strings.TrimSpace(m.CommandArguments())

	switch m.Command() {
	case "start":
		b.start(ctx, m)
	case "help":
		b.reply(chatID, helpText(b.cfg.MinBet(), b.cfg.MaxBet()), nil)
	case "balance":
		b.showBalance(ctx, userID, chatID)
	case "stats":
		b.showStats(ctx, userID, chatID)
	case "history":
		b.showHistory(ctx, chatID)
	case "bet":
		if args == "" {
			b.reply(chatID, "🎯 Выберите ставку:", betKeyboard(b.cfg.BetPresets()))
			return
		}
		amount, err := strconv.ParseInt(args, 10, 64)
		if err != nil {
			b.reply(chatID, "⚠️ Укажите сумму: /bet 50", nil)
			return
		}
		b.placeBet(ctx, userID, chatID, amount)
	case "cashout":
		if text := b.cashOut(ctx, userID); text != "" {
			b.reply(chatID, text, nil)
		}
	case "cancel":
		if text := b.cancel(ctx, userID); text != "" {
			b.reply(chatID, text, nil)
		}
	case "topup":
		if args == "" {
			b.reply(chatID, "⭐ Выберите сумму пополнения:", topUpKeyboard(b.cfg.TopUpPresets()))
			return
		}
		amount, err := strconv.ParseInt(args, 10, 64)
		if err != nil {
			b.reply(chatID, "⚠️ Укажите сумму: /topup 100", nil)
			return
		}
		b.reply(chatID, b.topUp(ctx, userID, amount), nil)
	default:
		b.reply(chatID, "Неизвестная команда. Используйте /help", nil)
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	userID := cb.From.ID
	chatID := userID
	if cb.Message != nil && cb.Message.Chat != nil {
		chatID = cb.Message.Chat.ID
	}

	data := cb.Data
	switch {
	case data == cbCashOut:
		b.answer(cb.ID, b.cashOut(ctx, userID))
	case data == cbCancelGame:
		b.answer(cb.ID, b.cancel(ctx, userID))
	case data == cbClose:
		b.answer(cb.ID, "")
		if cb.Message != nil {
			if _, err := b.client.Request(tgbotapi.NewDeleteMessage(chatID, cb.Message.MessageID)); err != nil {
				logrus.WithError(err).Debug("delete keyboard message")
			}
		}
	case strings.HasPrefix(data, cbTopUpPrefix):
		amount, err := strconv.ParseInt(strings.TrimPrefix(data, cbTopUpPrefix), 10, 64)
		if err != nil {
			b.answer(cb.ID, "")
			return
		}
		b.answer(cb.ID, "")
		b.reply(chatID, b.topUp(ctx, userID, amount), nil)
	case strings.HasPrefix(data, cbBetPrefix):
		raw := strings.TrimPrefix(data, cbBetPrefix)
		if raw == "" {
			b.answer(cb.ID, "")
			b.reply(chatID, "🎯 Выберите ставку:", betKeyboard(b.cfg.BetPresets()))
			return
		}
		amount, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			b.answer(cb.ID, "")
			return
		}
		b.answer(cb.ID, fmt.Sprintf("🚀 Ставка %d ⭐", amount))
		b.placeBet(ctx, userID, chatID, amount)
	default:
		b.answer(cb.ID, "Неизвестная команда")
	}
}

func (b *Bot) start(ctx context.Context, m *tgbotapi.Message) {
	acc, err := b.ledger.GetAccount(ctx, m.From.ID)
	if err != nil {
		b.reply(m.Chat.ID, errorText(err, b.cfg.MinBet(), b.cfg.MaxBet()), nil)
		return
	}

	b.reply(m.Chat.ID, welcomeText(m.From.FirstName, acc.Balance), mainMenu())
	if b.webAppURL != "" {
		b.reply(m.Chat.ID, "Или откройте мини-приложение:", webAppKeyboard(b.webAppURL))
	}
}

// placeBet Сообщение с ракетой пришлёт Notifier на первом тике
func (b *Bot) placeBet(ctx context.Context, userID, chatID, amount int64) {
	_, err := b.game.PlaceBet(ctx, model.PlaceBet{UserID: userID, Amount: amount})
	if err != nil {
		b.reply(chatID, errorText(err, b.cfg.MinBet(), b.cfg.MaxBet()), nil)
	}
}

func (b *Bot) cashOut(ctx context.Context, userID int64) string {
	res, err := b.game.CashOut(ctx, userID)
	if err != nil {
		return errorText(err, b.cfg.MinBet(), b.cfg.MaxBet())
	}
	return fmt.Sprintf("🎉 +%d ⭐ на x%.2f", res.Payout, res.Multiplier)
}

func (b *Bot) cancel(ctx context.Context, userID int64) string {
	if err := b.game.Cancel(ctx, userID); err != nil {
		return errorText(err, b.cfg.MinBet(), b.cfg.MaxBet())
	}
	return ""
}

func (b *Bot) topUp(ctx context.Context, userID, amount int64) string {
	balance, err := b.ledger.TopUp(ctx, userID, amount)
	if err != nil {
		return errorText(err, b.cfg.MinBet(), b.cfg.MaxBet())
	}
	return fmt.Sprintf("✅ Баланс пополнен на %d ⭐\n%s", amount, balanceText(balance))
}

func (b *Bot) showBalance(ctx context.Context, userID, chatID int64) {
	balance, err := b.ledger.Balance(ctx, userID)
	if err != nil {
		b.reply(chatID, errorText(err, b.cfg.MinBet(), b.cfg.MaxBet()), nil)
		return
	}
	b.reply(chatID, balanceText(balance), nil)
}

func (b *Bot) showStats(ctx context.Context, userID, chatID int64) {
	acc, err := b.ledger.GetAccount(ctx, userID)
	if err != nil {
		b.reply(chatID, errorText(err, b.cfg.MinBet(), b.cfg.MaxBet()), nil)
		return
	}
	b.reply(chatID, statsText(*acc), nil)
}

func (b *Bot) showHistory(ctx context.Context, chatID int64) {
	history, err := b.game.History(ctx)
	if err != nil {
		b.reply(chatID, errorText(err, b.cfg.MinBet(), b.cfg.MaxBet()), nil)
		return
	}
	b.reply(chatID, historyText(history), nil)
}
