package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "DASHBOARD_RIDERSHIP_PATH", "DASHBOARD_GEOCODE_PATH"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestConfig_LoadFromFile tests overriding a subset of the defaults
func TestConfig_LoadFromFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: 9090
data:
  ridershipPath: /srv/data_ratp.csv
  watch: true
schema:
  correspondences: [correspondance_1, correspondance_2]
views:
  topCorrespondences: 5
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/srv/data_ratp.csv", cfg.Data.RidershipPath)
	assert.Equal(t, "stations_geocode.csv", cfg.Data.GeocodePath, "unset keys keep defaults")
	assert.True(t, cfg.Data.Watch)
	assert.Equal(t, []string{"correspondance_1", "correspondance_2"}, cfg.Schema.Correspondences)
	assert.Equal(t, "trafic", cfg.Schema.Traffic)
	assert.Equal(t, 5, cfg.Views.TopCorrespondences)
}

// TestConfig_MapsReplaceDefaults tests that map sections set in the file
// replace the defaults rather than extending them
func TestConfig_MapsReplaceDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
networks:
  aliases: {}
colors:
  share:
    RER: "#000000"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Empty(t, cfg.Networks.Aliases)
	assert.Empty(t, cfg.RidershipSchema().NetworkAliases)
	assert.Equal(t, map[string]string{"RER": "#000000"}, cfg.Colors.Share)
	assert.Equal(t, Default().Colors.Map, cfg.Colors.Map, "unset maps keep defaults")
}

// TestConfig_MissingFile tests error handling for an explicit missing path
func TestConfig_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

// TestConfig_NoFileFallsBackToDefaults tests the search path behavior
func TestConfig_NoFileFallsBackToDefaults(t *testing.T) {
	clearEnv(t)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

// TestConfig_InvalidYAML tests error handling for invalid YAML
func TestConfig_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "invalid: yaml: content: [[["))
	assert.Error(t, err)
}

// TestConfig_EmptyFile tests that an empty file yields defaults
func TestConfig_EmptyFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

// TestConfig_Validation tests the validator rules
func TestConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "port out of range", content: "server:\n  port: 70000\n"},
		{name: "blank correspondence column", content: "schema:\n  correspondences: [correspondance_1, \"\"]\n"},
		{name: "blank traffic column", content: "schema:\n  traffic: \"\"\n"},
		{name: "bad color", content: "colors:\n  map:\n    RER: blue\n"},
		{name: "zero top correspondences", content: "views:\n  topCorrespondences: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

// TestConfig_EnvOverrides tests environment variable precedence
func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("DASHBOARD_RIDERSHIP_PATH", "/env/data.csv")

	cfg, err := Load(writeConfig(t, "server:\n  port: 9090\n"))
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "/env/data.csv", cfg.Data.RidershipPath)
}

func TestConfig_LoadAppConfig(t *testing.T) {
	clearEnv(t)
	orig := Config
	defer func() { Config = orig }()

	require.NoError(t, LoadAppConfig(writeConfig(t, "server:\n  port: 8123\n")))
	assert.Equal(t, 8123, Config.Server.Port)
}

func TestConfig_RidershipSchema(t *testing.T) {
	s := Default().RidershipSchema()
	assert.Equal(t, "reseau", s.Network)
	assert.Equal(t, "arrondissement_pour_paris", s.Arrondissement)
	assert.Len(t, s.Correspondences, 5)
	assert.Equal(t, "Metro", s.NetworkAliases["Métro"])
}
