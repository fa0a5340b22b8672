package auth

import (
	"crash_backend/internal/api"
	dto "crash_backend/internal/api/dto/auth"
	"crash_backend/internal/converter"
	"crash_backend/internal/service"
	"crash_backend/pkg/req"
	"crash_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.AuthService
}

type Handler struct {
	serv service.AuthService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Telegram Обменивает initData Telegram WebApp на access_token
func (h *Handler) Telegram(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.TelegramRequest](r.Body)
	if err != nil || requestBody.InitData == "" {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	data, err := h.serv.LoginTelegram(r.Context(), requestBody.InitData)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTokenResponse(*data))
}
