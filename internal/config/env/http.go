package env

import (
	"crash_backend/internal/config"
	"errors"
	"net"
	"os"
	"strconv"
)

const (
	httpHostEnvName = "HTTP_HOST"
	httpPortEnvName = "HTTP_PORT"
	// Render, Railway и прочие отдают порт через PORT
	portEnvName = "PORT"

	defaultHTTPPort = "8080"
)

type httpConfig struct {
	host string
	port string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	host := os.Getenv(httpHostEnvName)

	port := os.Getenv(httpPortEnvName)
	if len(port) == 0 {
		port = os.Getenv(portEnvName)
	}
	if len(port) == 0 {
		port = defaultHTTPPort
	}

	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 || p > 65535 {
		return nil, errors.New("invalid http port")
	}

	return &httpConfig{
		host: host,
		port: port,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}
