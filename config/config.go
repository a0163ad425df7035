package config

import (
	"errors"
	"io/fs"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"bridgescore/logging"
	"bridgescore/types"
)

const envPrefix = "BRIDGESCORE"

type Config struct {
	LogLevel string
	Players  [4]string
}

var (
	envOnce sync.Once
	envErr  error
)

// Load reads an optional .env file and then the BRIDGESCORE_* environment,
// e.g. BRIDGESCORE_LOG_LEVEL or BRIDGESCORE_PLAYERS_NORTH.
func Load() (*Config, error) {
	envOnce.Do(func() {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			envErr = err
		}
	})
	if envErr != nil {
		return nil, envErr
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	v.SetDefault("log.level", "info")
	for _, seat := range types.Seats {
		v.SetDefault(playerKey(seat), seat.String())
	}

	conf := &Config{LogLevel: v.GetString("log.level")}
	for _, seat := range types.Seats {
		conf.Players[seat] = getStringOrDefault(v, playerKey(seat), seat.String())
	}
	return conf
}

func playerKey(seat types.Seat) string {
	return "players." + strings.ToLower(seat.String())
}

func getStringOrDefault(v *viper.Viper, name string, def string) string {
	if s := strings.TrimSpace(v.GetString(name)); s != "" {
		return s
	}
	logging.Log.Debugf("'%s' is empty, using default %q", name, def)
	return def
}
