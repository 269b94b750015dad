package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Game     GameConfig
	Poll     PollConfig
}

type ServerConfig struct {
	Port     string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE" default:"./log/source-surf.log"`
}

type UpstreamConfig struct {
	StatusURL      string        `envconfig:"STATUS_URL" required:"true" validate:"url"`
	StartURL       string        `envconfig:"START_URL" required:"true" validate:"url"`
	MaxRetries     int           `envconfig:"MAX_RETRIES" default:"3" validate:"gte=1"`
	InitialBackoff time.Duration `envconfig:"INITIAL_BACKOFF" default:"1s"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"5s"`
}

type GameConfig struct {
	Host           string        `envconfig:"GAME_HOST" required:"true" validate:"hostname|ip"`
	Port           int           `envconfig:"GAME_PORT" default:"27015" validate:"gte=1,lte=65535"`
	Name           string        `envconfig:"GAME_NAME" default:"Surf Server"`
	MapGalleryPath string        `envconfig:"MAP_GALLERY_PATH" default:"./maps.json"`
	A2SEnabled     bool          `envconfig:"A2S_ENABLED" default:"false"`
	A2STimeout     time.Duration `envconfig:"A2S_TIMEOUT" default:"3s"`
}

type PollConfig struct {
	Interval     time.Duration `envconfig:"POLL_INTERVAL" default:"60s"`
	FastInterval time.Duration `envconfig:"FAST_POLL_INTERVAL" default:"5s"`
	StartTimeout time.Duration `envconfig:"START_TIMEOUT" default:"5m"`
	PollTimeout  time.Duration `envconfig:"POLL_TIMEOUT" default:"10s"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return AppConfig{}, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("config.LoadConfig: %w", err)
	}
	return cfg, nil
}
