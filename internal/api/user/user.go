package user

import (
	"crash_backend/internal/api"
	dto "crash_backend/internal/api/dto/user"
	"crash_backend/internal/converter"
	"crash_backend/internal/middleware"
	"crash_backend/internal/service"
	"crash_backend/pkg/req"
	"crash_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Ledger service.LedgerService
}

type Handler struct {
	ledger service.LedgerService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{ledger: deps.Ledger}
}

// Account Баланс и статистика игрока
func (h *Handler) Account(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	acc, err := h.ledger.GetAccount(r.Context(), userID)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAccountResponse(*acc))
}

// TopUp Демо-пополнение баланса
func (h *Handler) TopUp(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	payload, err := req.Decode[dto.TopUpRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	balance, err := h.ledger.TopUp(r.Context(), userID, payload.Amount)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.TopUpResponse{Balance: balance})
}
