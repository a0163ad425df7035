package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridgescore/types"
)

func TestDefaults(t *testing.T) {
	conf := fromViper(viper.New())
	assert.Equal(t, "info", conf.LogLevel)
	assert.Equal(t, [4]string{"North", "East", "South", "West"}, conf.Players)
}

func TestPlayersFromViper(t *testing.T) {
	v := viper.New()
	v.Set("players.north", "Alice")
	v.Set("players.west", "  ")
	v.Set("log.level", "debug")

	conf := fromViper(v)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, "Alice", conf.Players[types.North])
	assert.Equal(t, "West", conf.Players[types.West])
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BRIDGESCORE_LOG_LEVEL", "warn")
	t.Setenv("BRIDGESCORE_PLAYERS_EAST", "Bob")

	conf, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", conf.LogLevel)
	assert.Equal(t, "Bob", conf.Players[types.East])
	assert.Equal(t, "South", conf.Players[types.South])
}

func TestLoadKeepsEnvFileError(t *testing.T) {
	envOnce, envErr = sync.Once{}, nil
	t.Cleanup(func() { envOnce, envErr = sync.Once{}, nil })

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BAD-KEY=1\n"), 0o600))
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, err := Load()
	require.Error(t, err)
	_, again := Load()
	assert.Equal(t, err, again)
}
