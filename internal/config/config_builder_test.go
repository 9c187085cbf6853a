package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_EarlierSourcesWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:9999"}},
		&StructuredConfig{
			Server:  Server{HTTPAddress: "localhost:1111", RequestTimeout: 45 * time.Second},
			Storage: Storage{DB: DB{DSN: "diary.db"}},
		},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	// First source wins; gaps are filled from later ones.
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "diary.db", cfg.Storage.DB.DSN)
}

func TestConfigBuilder_DefaultsFillGaps(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.ServerAddress)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
	// Secrets have no defaults.
	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestServerConfig_Validate(t *testing.T) {
	valid := ServerConfig{
		HTTPAddress:    "localhost:8080",
		RequestTimeout: 30 * time.Second,
		DSN:            "diary.db",
		Auth: ServerAuth{
			TokenSignKey:  "secret",
			TokenIssuer:   "cryptodiary",
			TokenDuration: 24 * time.Hour,
		},
	}
	assert.NoError(t, valid.validate())

	noDSN := valid
	noDSN.DSN = ""
	assert.ErrorIs(t, noDSN.validate(), ErrInvalidStorageConfigs)

	noAddr := valid
	noAddr.HTTPAddress = ""
	assert.ErrorIs(t, noAddr.validate(), ErrInvalidServerConfigs)

	noKey := valid
	noKey.Auth.TokenSignKey = ""
	assert.ErrorIs(t, noKey.validate(), ErrInvalidAppConfigs)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := ClientConfig{
		Adapter: ClientAdapter{ServerAddress: "http://localhost:8080", RequestTimeout: 10 * time.Second},
	}
	assert.NoError(t, valid.validate())

	noAddr := valid
	noAddr.Adapter.ServerAddress = ""
	assert.ErrorIs(t, noAddr.validate(), ErrInvalidAdapterConfigs)
}
