package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupDefaults(t *testing.T) {
	cfg, err := Setup()
	require.NoError(t, err)

	require.Equal(t, 3, cfg.SearchDepth)
	require.Equal(t, 20, cfg.MinBoardSize)
	require.NotEmpty(t, cfg.Name)
	require.NotEmpty(t, cfg.Version)
	require.Positive(t, cfg.TurnMarginMs)
}

func TestSetupEnvOverride(t *testing.T) {
	t.Setenv("GOMOKU_SEARCH_DEPTH", "4")
	t.Setenv("GOMOKU_NAME", "other_brain")

	cfg, err := Setup()
	require.NoError(t, err)

	require.Equal(t, 4, cfg.SearchDepth)
	require.Equal(t, "other_brain", cfg.Name)
}

func TestAboutLine(t *testing.T) {
	cfg := &Config{Name: "b", Version: "1.0", Author: "a", Country: "FR"}

	require.Equal(t, `name="b", version="1.0", author="a", country="FR"`, cfg.About())
}
