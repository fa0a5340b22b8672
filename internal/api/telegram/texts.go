package telegram

import (
	"crash_backend/internal/model"
	"crash_backend/internal/service"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/sirupsen/logrus"
)

const trailHeight = 8

func welcomeText(firstName string, balance int64) string {
	return fmt.Sprintf("🎮 <b>Добро пожаловать в Rocket Crash, %s!</b>\n\n"+
		"🚀 Ракета взлетает, множитель растёт. Заберите выигрыш до взрыва!\n"+
		"💰 Ваш баланс: %d ⭐", html.EscapeString(firstName), balance)
}

func helpText(minBet, maxBet int64) string {
	return fmt.Sprintf("📖 <b>Как играть:</b>\n\n"+
		"1. Сделайте ставку: /bet 50 или кнопка «%s»\n"+
		"2. Множитель растёт от x1.00\n"+
		"3. Нажмите «💰 Забрать выигрыш» до краша\n"+
		"4. Выигрыш = ставка × множитель\n\n"+
		"Ставка от %d до %d ⭐\n\n"+
		"/balance баланс\n/topup пополнить\n/stats статистика\n/history последние раунды\n"+
		"/cashout забрать выигрыш\n/cancel отменить раунд",
		btnPlay, minBet, maxBet)
}

func balanceText(balance int64) string {
	return fmt.Sprintf("💰 Ваш баланс: <b>%d ⭐</b>", balance)
}

func statsText(acc model.Account) string {
	return fmt.Sprintf("📊 <b>Ваша статистика</b>\n\n"+
		"Ставок: %d\nВыигрышей: %d\nПоставлено: %d ⭐\nВыиграно: %d ⭐\nЛучший множитель: x%.2f\nБаланс: %d ⭐",
		acc.TotalBets, acc.TotalWins, acc.TotalWagered, acc.TotalWon, acc.BestMultiplier, acc.Balance)
}

func historyText(history []float64) string {
	if len(history) == 0 {
		return "📜 Раундов ещё не было"
	}
	parts := make([]string, len(history))
	for i, m := range history {
		parts[i] = fmt.Sprintf("x%.2f", m)
	}
	return "📜 <b>Последние краши:</b>\n" + strings.Join(parts, " | ")
}

// rocketTrail Высота ракеты растёт с множителем
func rocketTrail(multiplier float64) string {
	height := int((multiplier-1)*4) + 1
	if height > trailHeight {
		height = trailHeight
	}

	lines := make([]string, 0, trailHeight)
	for i := trailHeight; i > 0; i-- {
		if i == height {
			lines = append(lines, strings.Repeat(" ", i*2)+"🚀")
			continue
		}
		if i < height {
			lines = append(lines, strings.Repeat(" ", i*2)+"/")
			continue
		}
		lines = append(lines, "")
	}
	return "<pre>" + strings.Join(lines, "\n") + "</pre>"
}

func flightText(upd model.TickUpdate) string {
	return fmt.Sprintf("%s\n📈 Множитель: <b>x%.2f</b>\n💰 Выигрыш: %d ⭐\n🎯 Ставка: %d ⭐",
		rocketTrail(upd.Multiplier), upd.Multiplier, upd.PotentialPayout, upd.Bet)
}

func resolutionText(res model.Resolution) string {
	switch res.Status {
	case model.StatusCashedOut:
		return fmt.Sprintf("🎉 <b>Поздравляем!</b>\n\n💰 Вы забрали: %d ⭐\n📈 Множитель: x%.2f\n💥 Ракета взорвалась бы на x%.2f",
			res.Payout, res.Multiplier, res.CrashPoint)
	case model.StatusCrashed:
		return fmt.Sprintf("💥 <b>Бум!</b> Ракета взорвалась на x%.2f\n\nСтавка %d ⭐ сгорела",
			res.CrashPoint, res.Bet)
	default:
		return fmt.Sprintf("❌ Раунд отменён на x%.2f\n\nСтавка %d ⭐ не возвращается",
			res.Multiplier, res.Bet)
	}
}

func errorText(err error, minBet, maxBet int64) string {
	switch {
	case errors.Is(err, service.ErrInvalidBet):
		return fmt.Sprintf("⚠️ Ставка должна быть от %d до %d ⭐", minBet, maxBet)
	case errors.Is(err, service.ErrInvalidAmount):
		return "⚠️ Сумма должна быть больше нуля"
	case errors.Is(err, service.ErrInsufficientBalance):
		return "😔 Недостаточно средств. Пополните баланс: /topup"
	case errors.Is(err, service.ErrNoActiveSession):
		return "🤷 У вас нет активной игры"
	case errors.Is(err, service.ErrAlreadyResolved):
		return "⌛ Раунд уже завершён"
	case errors.Is(err, service.ErrSessionInProgress):
		return "🚀 Дождитесь окончания текущего раунда"
	case errors.Is(err, service.ErrShuttingDown):
		return "🔧 Сервер перезапускается, попробуйте позже"
	}

	logrus.WithError(err).Error("telegram handler failed")
	return "Что-то пошло не так, попробуйте позже"
}
