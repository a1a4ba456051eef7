// Package config loads runtime configuration for the printquote CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags (see parseFlags).
//
// Durations in JSON go through timex.Duration, so both "90s" and integer
// nanoseconds are accepted:
//
//	{
//	  "server_addr": "quotes.internal:50051",
//	  "request_timeout": "90s",
//	  "sibling_storage": true
//	}
package config
