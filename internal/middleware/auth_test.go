package middleware

import (
	"crash_backend/pkg/token"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

func TestAuth(t *testing.T) {
	secret := []byte("test-secret")

	h := Auth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		if !ok {
			t.Error("user id missing in context")
		}
		_, _ = w.Write([]byte(strconv.FormatInt(id, 10)))
	}))

	tok, err := token.GenerateAccessToken(99, secret, time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer " + tok, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"no bearer", tok, http.StatusUnauthorized},
		{"garbage", "Bearer abc.def.ghi", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()

			h.ServeHTTP(w, r)

			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d", w.Code, tc.status)
			}
			if tc.status == http.StatusOK && w.Body.String() != "99" {
				t.Errorf("body = %q, want 99", w.Body.String())
			}
		})
	}
}
