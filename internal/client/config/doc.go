// Package config loads runtime configuration for the diary CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. DIARY_* environment variables, falling back to a .env file in the
//     working directory.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the diary API
//	-t int      request timeout (seconds)
//	-d string   session database path
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "server_url": "http://localhost:8080",
//	  "request_timeout": "10s",
//	  "database_path": "diary.db",
//	  "log_level": "info"
//	}
package config
