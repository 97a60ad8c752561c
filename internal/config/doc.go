// Package config loads laguide's TOML configuration and parses the compact
// matrix literals ("1,2;3,5") accepted on the command line.
package config
