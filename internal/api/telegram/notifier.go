package telegram

import (
	"crash_backend/internal/model"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// Сколько держим завершённый раунд, чтобы отбросить запоздавший тик
	resolvedRetention = time.Minute
	lateRenderTimeout = 5 * time.Second
)

var errInFlight = errors.New("telegram message still in flight")

// sender Часть *tgbotapi.BotAPI, которой пользуется бот
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// gameMessage Сообщение с ракетой одного раунда
type gameMessage struct {
	mu       sync.Mutex
	id       int
	text     string
	resolved bool

	inFlight bool
	wantText string
	wantKb   *tgbotapi.InlineKeyboardMarkup
}

// Notifier Рисует раунд в личном чате игрока, редактируя одно сообщение на каждом тике
type Notifier struct {
	client sender

	mu       sync.Mutex
	messages map[uuid.UUID]*gameMessage
}

func NewNotifier(client sender) *Notifier {
	return &Notifier{
		client:   client,
		messages: make(map[uuid.UUID]*gameMessage),
	}
}

func (n *Notifier) message(sessionID uuid.UUID) *gameMessage {
	n.mu.Lock()
	defer n.mu.Unlock()

	msg, ok := n.messages[sessionID]
	if !ok {
		msg = &gameMessage{}
		n.messages[sessionID] = msg
	}
	return msg
}

func (n *Notifier) forget(sessionID uuid.UUID) {
	time.AfterFunc(resolvedRetention, func() {
		n.mu.Lock()
		delete(n.messages, sessionID)
		n.mu.Unlock()
	})
}

func (n *Notifier) Tick(ctx context.Context, upd model.TickUpdate) error {
	msg := n.message(upd.SessionID)
	msg.mu.Lock()
	defer msg.mu.Unlock()

	if msg.resolved {
		return nil
	}
	kb := gameKeyboard()
	return n.render(ctx, upd.UserID, msg, flightText(upd), &kb)
}

func (n *Notifier) Resolved(ctx context.Context, res model.Resolution) error {
	msg := n.message(res.SessionID)
	msg.mu.Lock()
	defer msg.mu.Unlock()

	msg.resolved = true
	n.forget(res.SessionID)

	kb := againKeyboard()
	return n.render(ctx, res.UserID, msg, resolutionText(res), &kb)
}

// render Первое сообщение раунда отправляем, дальше только редактируем
func (n *Notifier) render(ctx context.Context, chatID int64, msg *gameMessage, text string, kb *tgbotapi.InlineKeyboardMarkup) error {
	if msg.text == text {
		return nil
	}

	// Первое сообщение ещё в пути: запоминаем последний текст до его доставки
	if msg.inFlight {
		msg.wantText, msg.wantKb = text, kb
		return nil
	}

	if msg.id == 0 {
		out := tgbotapi.NewMessage(chatID, text)
		out.ParseMode = tgbotapi.ModeHTML
		out.ReplyMarkup = kb

		msg.inFlight = true
		sent, err := n.send(ctx, out, func(sent tgbotapi.Message, err error) {
			n.delivered(chatID, msg, text, sent, err)
		})
		if errors.Is(err, errInFlight) {
			return err
		}
		msg.inFlight = false
		if err != nil {
			return err
		}
		msg.id = sent.MessageID
		msg.text = text
		return nil
	}

	edit := tgbotapi.NewEditMessageText(chatID, msg.id, text)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.ReplyMarkup = kb

	if _, err := n.send(ctx, edit, nil); err != nil && !strings.Contains(err.Error(), "message is not modified") {
		return err
	}
	msg.text = text
	return nil
}

// delivered Первое сообщение дошло после таймаута: запоминаем его id и дорисовываем отложенный текст
func (n *Notifier) delivered(chatID int64, msg *gameMessage, text string, sent tgbotapi.Message, err error) {
	msg.mu.Lock()
	defer msg.mu.Unlock()

	msg.inFlight = false
	if err == nil {
		msg.id = sent.MessageID
		msg.text = text
	}

	want, kb := msg.wantText, msg.wantKb
	msg.wantText, msg.wantKb = "", nil
	if want == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), lateRenderTimeout)
	defer cancel()
	if err := n.render(ctx, chatID, msg, want, kb); err != nil {
		logrus.WithError(err).WithField("chat_id", chatID).Warn("render delayed game message")
	}
}

// send BotAPI не принимает контекст, поэтому ждём ответ не дольше ctx.
// Если ctx истёк раньше, late получит ответ, когда он придёт
func (n *Notifier) send(ctx context.Context, c tgbotapi.Chattable, late func(tgbotapi.Message, error)) (tgbotapi.Message, error) {
	type result struct {
		msg tgbotapi.Message
		err error
	}

	done := make(chan result, 1)
	go func() {
		m, err := n.client.Send(c)
		done <- result{msg: m, err: err}
	}()

	select {
	case <-ctx.Done():
		if late == nil {
			return tgbotapi.Message{}, ctx.Err()
		}
		go func() {
			r := <-done
			late(r.msg, r.err)
		}()
		return tgbotapi.Message{}, fmt.Errorf("%w: %w", errInFlight, ctx.Err())
	case r := <-done:
		return r.msg, r.err
	}
}
