package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, "usd", cfg.Stripe.Currency)
	assert.Equal(t, 30*time.Second, cfg.Dashboard.CacheTTL)
	assert.False(t, cfg.JWT.Enabled(), "sin JWT_SECRET la autenticación queda desactivada")
	assert.Equal(t, 25, cfg.DB.MaxConns)
	assert.Equal(t, 2, cfg.DB.MinConns)
	assert.Empty(t, cfg.DB.FallbackDNS)
}

func TestFromViper_TamañoDelPool(t *testing.T) {
	v := viper.New()
	v.Set("DB_MAX_CONNS", "10")
	v.Set("DB_MIN_CONNS", "4")
	v.Set("DB_FALLBACK_DNS", "1.1.1.1:53")
	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.Equal(t, 4, cfg.DB.MinConns)
	assert.Equal(t, "1.1.1.1:53", cfg.DB.FallbackDNS)

	v.Set("DB_MIN_CONNS", "11")
	_, err = fromViper(v)
	assert.Error(t, err)

	v.Set("DB_MAX_CONNS", "0")
	_, err = fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_HTTPPortTienePrioridadSobrePORT(t *testing.T) {
	v := viper.New()
	v.Set("PORT", "4000")
	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.HTTP.Port)

	v.Set("HTTP_PORT", "8081")
	cfg, err = fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.HTTP.Port)
}

func TestFromViper_DriverDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "mongo")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_ClientURLSinBarraFinal(t *testing.T) {
	v := viper.New()
	v.Set("CLIENT_URL", "https://assetverse.app/")
	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "https://assetverse.app", cfg.Stripe.ClientURL)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss", DBName: "asset_verse", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/asset_verse?sslmode=disable", c.ConnectionString())
}
