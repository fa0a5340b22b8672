package telegram

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	cbBetPrefix   = "bet_"
	cbTopUpPrefix = "topup_"
	cbCashOut     = "cashout"
	cbCancelGame  = "cancel_game"
	cbClose       = "cancel"
)

// Кнопки главного меню
const (
	btnPlay    = "🎮 Играть"
	btnBalance = "💰 Баланс"
	btnTopUp   = "⭐ Пополнить"
	btnStats   = "📊 Статистика"
	btnHistory = "📜 История"
	btnRules   = "ℹ️ Правила"
)

func mainMenu() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnPlay),
			tgbotapi.NewKeyboardButton(btnBalance),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnTopUp),
			tgbotapi.NewKeyboardButton(btnStats),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnHistory),
			tgbotapi.NewKeyboardButton(btnRules),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

// presetKeyboard Суммы по perRow в ряд и кнопка закрытия
func presetKeyboard(prefix string, presets []int64, perRow int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for _, amount := range presets {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("⭐ %d", amount),
			prefix+strconv.FormatInt(amount, 10),
		))
		if len(row) == perRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("❌ Отмена", cbClose),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func betKeyboard(presets []int64) tgbotapi.InlineKeyboardMarkup {
	return presetKeyboard(cbBetPrefix, presets, 3)
}

func topUpKeyboard(presets []int64) tgbotapi.InlineKeyboardMarkup {
	return presetKeyboard(cbTopUpPrefix, presets, 2)
}

func gameKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💰 Забрать выигрыш", cbCashOut),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Отмена", cbCancelGame),
		),
	)
}

// againKeyboard После раунда предлагаем новую ставку
func againKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🚀 Ещё раунд", cbBetPrefix),
		),
	)
}

func webAppKeyboard(url string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🚀 Играть в Rocket Crash", url),
		),
	)
}
