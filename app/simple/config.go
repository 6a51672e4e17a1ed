package simple

import (
	"github.com/trellisdev/trellis/core/server"
)

type Config struct {
	Server server.Config

	AppName   string `env:"APP_NAME" envDefault:"simple-api"`
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	StaticDir string `env:"STATIC_DIR" envDefault:"./public"`
}
