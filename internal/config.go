package internal

import (
	"fmt"
	"time"
)

type Config struct {
	Host            string        `env:"HOST,default=0.0.0.0"`
	Port            int           `env:"PORT,default=8080"`
	HealthPort      int           `env:"HEALTH_PORT,default=8081"`
	PublicURL       string        `env:"PUBLIC_URL,default=http://localhost:8080"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath   string        `env:"BLUGE_FILEPATH"`
	JWTSecret       string        `env:"JWT_SECRET,required=true"`
	TokenDuration   time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	MaxBlobSize     int64         `env:"MAX_BLOB_SIZE,default=10485760"`
	CensorCharacter string        `env:"CENSOR_CHARACTER,default=*"`
	ChangeFeedSize  int           `env:"CHANGE_FEED_SIZE,default=1024"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=2s"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=15s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
	EnableInspector bool          `env:"ENABLE_INSPECTOR,default=false"`
	AuthRateLimit   float64       `env:"AUTH_RATE_LIMIT,default=5"`
	AuthBurst       int           `env:"AUTH_BURST,default=10"`
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c Config) HealthAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.HealthPort)
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CENSOR_CHARACTER must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
