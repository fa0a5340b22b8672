package game

import (
	"crash_backend/internal/api"
	dto "crash_backend/internal/api/dto/game"
	"crash_backend/internal/converter"
	"crash_backend/internal/middleware"
	"crash_backend/internal/service"
	"crash_backend/pkg/req"
	"crash_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv   service.GameService
	Ledger service.LedgerService
}

type Handler struct {
	serv   service.GameService
	ledger service.LedgerService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, ledger: deps.Ledger}
}

// Bet Списывает ставку и запускает раунд
func (h *Handler) Bet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	payload, err := req.Decode[dto.BetRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess, err := h.serv.PlaceBet(r.Context(), converter.ToPlaceBet(userID, payload))
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToSessionResponse(*sess))
}

func (h *Handler) CashOut(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.serv.CashOut(r.Context(), userID)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCashOutResponse(*result))
}

func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.serv.Cancel(r.Context(), userID); err != nil {
		api.WriteServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// State Снимок живого раунда игрока, фронтенд опрашивает его между тиками
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sess, err := h.serv.Session(userID)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSessionResponse(*sess))
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.serv.History(r.Context())
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(history))
}

// Online Живые раунды и число заведенных счетов
func (h *Handler) Online(w http.ResponseWriter, r *http.Request) {
	players, err := h.ledger.AccountsCount(r.Context())
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.OnlineResponse{
		Online:  h.serv.LiveCount(),
		Players: players,
	})
}

func (h *Handler) HouseStats(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHouseStatsResponse(h.serv.HouseStats()))
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"online": h.serv.LiveCount(),
	})
}
