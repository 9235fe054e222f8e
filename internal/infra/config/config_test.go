package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresToken(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingEnv)
	assert.Contains(t, err.Error(), "DISCORD_BOT_TOKEN")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "tok")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("ALLOWED_USER_IDS", "")
	t.Setenv("PAGINATOR_TIMEOUT", "")
	t.Setenv("GL_API_RPS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 30*time.Minute, cfg.PaginatorTimeout)
	assert.Equal(t, 5.0, cfg.GLAPIRPS)
	assert.Nil(t, cfg.AllowedUserIDs)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "tok")
	t.Setenv("ALLOWED_USER_IDS", " 1, 2,,3 ")
	t.Setenv("PAGINATOR_TIMEOUT", "90s")
	t.Setenv("GL_API_RPS", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, cfg.AllowedUserIDs)
	assert.Equal(t, 90*time.Second, cfg.PaginatorTimeout)
	assert.Zero(t, cfg.GLAPIRPS)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "tok")
	t.Setenv("PAGINATOR_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadStatusWatch(t *testing.T) {
	t.Setenv("STATUS_WEBHOOK_ID", "123")
	t.Setenv("STATUS_WEBHOOK_TOKEN", "")

	_, err := LoadStatusWatch()
	require.ErrorIs(t, err, ErrMissingEnv)

	t.Setenv("STATUS_WEBHOOK_TOKEN", "abc")
	sw, err := LoadStatusWatch()
	require.NoError(t, err)
	assert.Equal(t, "123", sw.WebhookID)
	assert.Equal(t, "abc", sw.WebhookToken)
}
