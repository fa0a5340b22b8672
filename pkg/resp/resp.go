package resp

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logrus.WithError(err).Warn("write json response")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// WriteError Ошибка в формате {"error": "..."}
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSONResponse(w, status, errorResponse{Error: msg})
}
