package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig with JSON tags for file based
// configuration. Durations are represented as strings ("1h", "30s").
type StructuredJSONConfig struct {
	App     JSONApp     `json:"app"`
	Storage JSONStorage `json:"storage"`
	Server  JSONServer  `json:"server"`
}

type JSONApp struct {
	TokenSignKey  string   `json:"token_sign_key"`
	TokenIssuer   string   `json:"token_issuer"`
	TokenDuration Duration `json:"token_duration"`
	Version       string   `json:"version"`
}

type JSONStorage struct {
	DatabaseDSN string `json:"database_dsn"`
}

type JSONServer struct {
	Address        string   `json:"address"`
	RequestTimeout Duration `json:"request_timeout"`
}

// Duration wraps time.Duration to allow human readable JSON values.
type Duration struct {
	time.Duration
}

// UnmarshalJSON parses either a duration string ("1h30m") or a number of
// nanoseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	switch v := value.(type) {
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", v, err)
		}
		d.Duration = parsed
	case float64:
		d.Duration = time.Duration(v)
	default:
		return fmt.Errorf("invalid duration value: %v", value)
	}

	return nil
}

// MarshalJSON renders the duration in its string form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Duration.String())
}

// parseJSON reads the JSON config file at the given path and converts it
// into a StructuredConfig. An empty path yields an empty config.
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	if jsonFilePath == "" {
		return &StructuredConfig{}, nil
	}

	data, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file `%s`: %w", jsonFilePath, err)
	}

	var jsonConfig StructuredJSONConfig
	if err := json.Unmarshal(data, &jsonConfig); err != nil {
		return nil, fmt.Errorf("error parsing config file `%s`: %w", jsonFilePath, err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  jsonConfig.App.TokenSignKey,
			TokenIssuer:   jsonConfig.App.TokenIssuer,
			TokenDuration: jsonConfig.App.TokenDuration.Duration,
			Version:       jsonConfig.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonConfig.Storage.DatabaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonConfig.Server.Address,
			RequestTimeout: jsonConfig.Server.RequestTimeout.Duration,
		},
	}, nil
}
