package auth

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"testing"
	"time"

	"crash_backend/internal/repository/account_repo"
	"crash_backend/internal/repository/memtx"
	"crash_backend/internal/service"
	"crash_backend/internal/service/ledger"
	"crash_backend/pkg/token"
)

type jwtCfg struct{}

func (jwtCfg) AccessTokenSecretKey() []byte       { return []byte("secret") }
func (jwtCfg) AccessTokenDuration() time.Duration { return time.Hour }

const botToken = "123:ABC"

func initData(userJSON string) string {
	v := url.Values{}
	v.Set("auth_date", strconv.FormatInt(time.Now().Unix(), 10))
	v.Set("user", userJSON)
	v.Set("hash", token.SignInitData(v, botToken))
	return v.Encode()
}

func TestLoginTelegram(t *testing.T) {
	l := ledger.NewLedgerService(account_repo.NewMemoryRepository(100), memtx.NewManager())
	s := NewAuthService(l, jwtCfg{}, botToken, time.Hour)

	data, err := s.LoginTelegram(context.Background(), initData(`{"id":555,"first_name":"Bo"}`))
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if data.User.ID != 555 || data.Account.Balance != 100 {
		t.Errorf("data = %+v", data)
	}

	claims, err := token.VerifyToken(data.AccessToken, []byte("secret"))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id, _ := claims.UserID(); id != 555 {
		t.Errorf("subject = %d", id)
	}

	if n, _ := l.AccountsCount(context.Background()); n != 1 {
		t.Errorf("accounts = %d, want 1", n)
	}
}

func TestLoginTelegram_Errors(t *testing.T) {
	l := ledger.NewLedgerService(account_repo.NewMemoryRepository(0), memtx.NewManager())

	s := NewAuthService(l, jwtCfg{}, botToken, time.Hour)
	if _, err := s.LoginTelegram(context.Background(), "user=%7B%7D&hash=00"); !errors.Is(err, service.ErrUnauthorized) {
		t.Errorf("bad hash: %v", err)
	}

	off := NewAuthService(l, jwtCfg{}, "", time.Hour)
	if _, err := off.LoginTelegram(context.Background(), initData(`{"id":1}`)); !errors.Is(err, service.ErrAuthUnavailable) {
		t.Errorf("no bot token: %v", err)
	}
}
