// Package config reads the discs server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Config holds the server settings.
type Config struct {
	Addr      string
	DB        string
	Lang      string
	Operators []string
	// OpToken lets the names in Operators join the console as operators.
	OpToken   string
	LogLevel  log.Level
	QR        bool
	PublicURL string
}

// Load reads DISCS_* variables, using defaults for anything unset.
func Load() (*Config, error) {
	c := &Config{
		Addr:      env("DISCS_ADDR", ":9090"),
		DB:        env("DISCS_DB", "discs.db"),
		Lang:      env("DISCS_LANG", "en_us"),
		Operators: SplitList(os.Getenv("DISCS_OPS")),
		OpToken:   os.Getenv("DISCS_OP_TOKEN"),
		PublicURL: os.Getenv("DISCS_PUBLIC_URL"),
	}

	level, err := log.ParseLevel(env("DISCS_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("DISCS_LOG_LEVEL: %w", err)
	}
	c.LogLevel = level

	if v := os.Getenv("DISCS_QR"); v != "" {
		if c.QR, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("DISCS_QR: %w", err)
		}
	}
	return c, nil
}

// ConsoleURL is the websocket console address players connect to.
func (c *Config) ConsoleURL() string {
	if c.PublicURL != "" {
		return strings.TrimSuffix(c.PublicURL, "/") + "/console"
	}
	host := c.Addr
	if strings.HasPrefix(host, ":") {
		host = "localhost" + host
	}
	return "ws://" + host + "/console"
}

// SplitList splits a comma separated list and drops empty entries.
func SplitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
