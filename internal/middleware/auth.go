package middleware

import (
	"crash_backend/pkg/resp"
	"crash_backend/pkg/token"
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

type userIDKey struct{}

// Auth Проверяет Bearer access_token и кладёт ID игрока в контекст
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				resp.WriteError(w, http.StatusUnauthorized, "missing access token")
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				logrus.WithError(err).Debug("access token rejected")
				resp.WriteError(w, http.StatusUnauthorized, "invalid access token")
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "invalid access token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}
