package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophpass/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key apart from a zero value.
type JsonConfig struct {
	LogLevel       *string `json:"log_level"`
	ProfilesPath   *string `json:"profiles_path"`
	DefaultLength  *uint8  `json:"default_length"`
	DefaultCounter *uint64 `json:"default_counter"`
}

// parseJson overlays cfg with values loaded from the JSON file named by
// -c/--config in args. Without such a flag it does nothing.
//
// It panics on read or unmarshal errors; main recovers and reports them.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.JsonConfigFlags(args)
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.ProfilesPath != nil {
		cfg.ProfilesPath = *jc.ProfilesPath
	}
	if jc.DefaultLength != nil {
		cfg.DefaultLength = *jc.DefaultLength
	}
	if jc.DefaultCounter != nil {
		cfg.DefaultCounter = *jc.DefaultCounter
	}
}
