// Package config loads runtime configuration for the portal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-i int      reachability check interval (seconds)
//	-d string   sqlite DSN of the local session database
//
// # JSON schema
//
// Interval values can be duration strings like "30s" or integer
// nanoseconds:
//
//	{
//	  "server_endpoint_addr": "http://localhost:5000",
//	  "online_check_interval": "30s",
//	  "database_dsn": "portal.db",
//	  "log_level": "info"
//	}
package config
