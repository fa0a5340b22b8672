package api

import (
	"crash_backend/internal/service"
	"crash_backend/pkg/resp"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
)

// WriteServiceError Переводит ошибки сервисов в HTTP статусы
func WriteServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidBet), errors.Is(err, service.ErrInvalidAmount):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrInsufficientBalance):
		status = http.StatusPaymentRequired
	case errors.Is(err, service.ErrNoActiveSession):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrAlreadyResolved), errors.Is(err, service.ErrSessionInProgress):
		status = http.StatusConflict
	case errors.Is(err, service.ErrShuttingDown), errors.Is(err, service.ErrAuthUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		logrus.WithError(err).Error("internal error")
		resp.WriteError(w, status, "internal error")
		return
	}
	resp.WriteError(w, status, err.Error())
}
