package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/ridership"
)

// Config is the global application configuration
var Config = Default()

// searchPaths are tried in order when no explicit path is given
var searchPaths = []string{"config.yml", "./config/config.yml"}

// Default returns the configuration matching the RATP 2020 export.
func Default() AppConfig {
	schema := ridership.DefaultSchema()
	return AppConfig{
		Server: ServerConfig{Port: 8501},
		Data: DataConfig{
			RidershipPath: "data_ratp.csv",
			GeocodePath:   "stations_geocode.csv",
		},
		Schema: SchemaConfig{
			Network:         schema.Network,
			Station:         schema.Station,
			Traffic:         schema.Traffic,
			Rank:            schema.Rank,
			Arrondissement:  schema.Arrondissement,
			Correspondences: schema.Correspondences,
		},
		Networks: NetworksConfig{Aliases: schema.NetworkAliases},
		Colors: ColorsConfig{
			Share: map[string]string{"Metro": "#009B77", "Métro": "#009B77", "RER": "#003A70"},
			Map:   map[string]string{"Metro": "#008000", "Métro": "#008000", "RER": "#0000CC"},
		},
		Views: ViewsConfig{TopCorrespondences: 10},
	}
}

// Load reads the configuration at path on top of Default, applies
// environment overrides and validates the result. With an empty path the
// search paths are tried; finding none of them is not an error.
func Load(path string) (AppConfig, error) {
	cfg := Default()
	data, err := readConfigFile(path)
	if err != nil {
		return AppConfig{}, err
	}
	if len(data) > 0 {
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return AppConfig{}, fmt.Errorf("parse config: %w", err)
		}
		replaceMaps(&cfg, raw)
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("parse config: %w", err)
		}
	}
	applyEnv(&cfg)
	if err := validator.New().Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadAppConfig loads the configuration into Config.
func LoadAppConfig(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

func readConfigFile(path string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		return data, nil
	}
	for _, p := range searchPaths {
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return nil, nil
}

// replaceMaps drops the default maps the file sets, since yaml.v3 merges
// into a non-nil map instead of replacing it.
func replaceMaps(cfg *AppConfig, raw map[string]any) {
	if hasKey(raw, "networks", "aliases") {
		cfg.Networks.Aliases = nil
	}
	if hasKey(raw, "colors", "share") {
		cfg.Colors.Share = nil
	}
	if hasKey(raw, "colors", "map") {
		cfg.Colors.Map = nil
	}
}

func hasKey(raw map[string]any, section, key string) bool {
	m, ok := raw[section].(map[string]any)
	if !ok {
		return false
	}
	_, ok = m[key]
	return ok
}

func applyEnv(cfg *AppConfig) {
	cfg.Server.Port = getEnvInt("PORT", cfg.Server.Port)
	cfg.Data.RidershipPath = getEnv("DASHBOARD_RIDERSHIP_PATH", cfg.Data.RidershipPath)
	cfg.Data.GeocodePath = getEnv("DASHBOARD_GEOCODE_PATH", cfg.Data.GeocodePath)
}

// RidershipSchema converts the schema section for the traffic loader.
func (c AppConfig) RidershipSchema() ridership.Schema {
	return ridership.Schema{
		Network:         c.Schema.Network,
		Station:         c.Schema.Station,
		Traffic:         c.Schema.Traffic,
		Rank:            c.Schema.Rank,
		Arrondissement:  c.Schema.Arrondissement,
		Correspondences: c.Schema.Correspondences,
		NetworkAliases:  c.Networks.Aliases,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
