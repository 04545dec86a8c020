// Package config loads runtime configuration for the userkeep CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-f string   path of the JSON user store
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "store_path": "data/user_data.json",
//	  "log_level": "debug"
//	}
//
// Keys missing from the JSON file keep their default values.
package config
