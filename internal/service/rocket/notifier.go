package rocket

import (
	"crash_backend/internal/model"
	"crash_backend/internal/service"
	"context"

	"github.com/sirupsen/logrus"
)

type logNotifier struct{}

// NewLogNotifier Уведомления только в лог, когда фронтенд не подключён
func NewLogNotifier() service.GameNotifier {
	return logNotifier{}
}

func (logNotifier) Tick(_ context.Context, upd model.TickUpdate) error {
	logrus.WithFields(logrus.Fields{
		"user_id":    upd.UserID,
		"session_id": upd.SessionID,
		"multiplier": upd.Multiplier,
		"potential":  upd.PotentialPayout,
	}).Debug("tick")
	return nil
}

func (logNotifier) Resolved(_ context.Context, res model.Resolution) error {
	logrus.WithFields(logrus.Fields{
		"user_id":    res.UserID,
		"session_id": res.SessionID,
		"status":     res.Status,
		"payout":     res.Payout,
	}).Debug("resolved")
	return nil
}

// Notifiers Рассылает уведомления нескольким получателям, возвращает первую ошибку
type Notifiers []service.GameNotifier

func (n Notifiers) Tick(ctx context.Context, upd model.TickUpdate) error {
	var first error
	for _, notifier := range n {
		if err := notifier.Tick(ctx, upd); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (n Notifiers) Resolved(ctx context.Context, res model.Resolution) error {
	var first error
	for _, notifier := range n {
		if err := notifier.Resolved(ctx, res); err != nil && first == nil {
			first = err
		}
	}
	return first
}
