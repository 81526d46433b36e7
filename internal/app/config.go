package app

import (
	"github.com/dmitrymomot/reqprint/pkg/cookie"
	"github.com/dmitrymomot/reqprint/pkg/httpserver"
)

// Config is the service configuration loaded from the environment.
type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"reqprint"`
	LogLevel string `env:"LOG_LEVEL"`

	HTTP   httpserver.Config
	Cookie cookie.Config
}
