package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/newsbreak-ads-mcp/infrastructure/integrator/newsbreak/newsbreakclient"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/config"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/usecases/authenticating"
)

func setupCommandTest(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Chdir(t.TempDir())
	t.Setenv("NEWSBREAK_ACCESS_TOKEN", "")
	t.Setenv("AUTH_SECRET", "")
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()

	for name := range flagKeys {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "flag --%s", name)
	}
}

func TestRootCmd_MissingAccessToken(t *testing.T) {
	setupCommandTest(t)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--log-level", "error"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, newsbreakclient.ErrMissingAccessToken)
}

func TestRootCmd_InvalidTransport(t *testing.T) {
	setupCommandTest(t)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--transport", "sse", "--access-token", "abc"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestTokenCmd(t *testing.T) {
	setupCommandTest(t)
	t.Setenv("AUTH_SECRET", "segredo")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"token", "--client", "claude-desktop", "--ttl", "1h"})

	require.NoError(t, cmd.Execute())

	auth, err := authenticating.NewService(&config.Config{Auth: config.Auth{Secret: "segredo"}})
	require.NoError(t, err)

	claims, err := auth.ValidateToken(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "claude-desktop", claims.ClientName)
}

func TestTokenCmd_MissingSecret(t *testing.T) {
	setupCommandTest(t)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"token", "--client", "cli"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, authenticating.ErrMissingSecret)
}
