package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userkeep/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "empty".
type JsonConfig struct {
	StorePath *string `json:"store_path"`
	LogLevel  *string `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// Without that flag it does nothing. Read or decode failures panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags(os.Args[1:])
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

	if jc.StorePath != nil {
		cfg.StorePath = *jc.StorePath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
