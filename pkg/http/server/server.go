package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port    int
	Timeout time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
}

func NewConfigFromViper() Config {
	return Config{
		Port:           viper.GetInt("API_PORT"),
		Timeout:        viper.GetDuration("API_TIMEOUT"),
		RateLimitRPS:   viper.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst: viper.GetInt("RATE_LIMIT_BURST"),
	}
}

// New builds the http server. every handler runs under config.Timeout.
func New(ctx context.Context, handler http.Handler, config Config) *http.Server {
	if config.Timeout > 0 {
		handler = http.TimeoutHandler(handler, config.Timeout, `{"error":{"code":"Service Unavailable","message":"request timed out"}}`)
	}

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},

		ReadTimeout:       viper.GetDuration("HTTP_SERVER_READ_TIMEOUT"),
		WriteTimeout:      config.Timeout + viper.GetDuration("HTTP_SERVER_WRITE_TIMEOUT"),
		IdleTimeout:       viper.GetDuration("HTTP_SERVER_IDLE_TIMEOUT"),
		ReadHeaderTimeout: viper.GetDuration("HTTP_SERVER_READ_HEADER_TIMEOUT"),
	}
}
