// Package config loads runtime settings for the gophpass CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or --config.
//  3. Command flags (--log-level, --profiles), bound by the cli package
//     directly onto the loaded Config.
//
// # JSON schema
//
//	{
//	  "log_level": "debug",
//	  "profiles_path": "/home/me/.config/gophpass/profiles.yaml",
//	  "default_length": 20,
//	  "default_counter": 1
//	}
//
// Fields missing from the file keep their default. The master secret is
// never read from configuration.
package config
