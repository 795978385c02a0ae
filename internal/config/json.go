package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors [Config] for file decoding, swapping durations for the
// [Duration] wrapper so "15m"-style strings work.
type jsonConfig struct {
	Backend string `json:"backend"`

	Op struct {
		Binary string `json:"binary"`
	} `json:"op"`

	Session struct {
		Account string `json:"account"`
		Token   string `json:"token"`
	} `json:"session"`

	Connect struct {
		Host  string `json:"host"`
		Token string `json:"token"`
	} `json:"connect"`

	Cache struct {
		Path     string   `json:"path"`
		TTL      Duration `json:"ttl"`
		Disabled bool     `json:"disabled"`
	} `json:"cache"`

	Timeout  Duration `json:"timeout"`
	LogLevel string   `json:"log_level"`
	NoColor  bool     `json:"no_color"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &Config{
		Backend: jsonCfg.Backend,
		Op: Op{
			Binary: jsonCfg.Op.Binary,
		},
		Session: Session{
			Account: jsonCfg.Session.Account,
			Token:   jsonCfg.Session.Token,
		},
		Connect: Connect{
			Host:  jsonCfg.Connect.Host,
			Token: jsonCfg.Connect.Token,
		},
		Cache: Cache{
			Path:     jsonCfg.Cache.Path,
			TTL:      time.Duration(jsonCfg.Cache.TTL),
			Disabled: jsonCfg.Cache.Disabled,
		},
		Timeout:  time.Duration(jsonCfg.Timeout),
		LogLevel: jsonCfg.LogLevel,
		NoColor:  jsonCfg.NoColor,
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
