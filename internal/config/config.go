package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

// ClientConfig holds client-side settings. The reaction fallback only
// applies when the server omits a countdown from the phase args; the
// server-supplied value is always canonical.
type ClientConfig struct {
	ServerURL               string `json:"server_url"`
	SessionToken            string `json:"session_token"`
	DisplayName             string `json:"display_name"`
	ReactionFallbackSeconds int    `json:"reaction_fallback_seconds"`
}

const defaultReactionFallbackSeconds = 10

var (
	cfg      *ClientConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadClientConfig loads configuration from the given JSON file, then
// applies environment overrides. A missing file is not an error; env and
// defaults still apply.
func LoadClientConfig(path string) error {
	loadOnce.Do(func() {
		c := &ClientConfig{ReactionFallbackSeconds: defaultReactionFallbackSeconds}

		if path != "" {
			data, err := os.ReadFile(path)
			switch {
			case os.IsNotExist(err):
				// fall through to env and defaults
			case err != nil:
				loadErr = fmt.Errorf("failed to read client config: %w", err)
				return
			default:
				if err := json.Unmarshal(data, c); err != nil {
					loadErr = fmt.Errorf("failed to unmarshal client config: %w", err)
					return
				}
			}
		}

		if v := os.Getenv("GOLDENPOTATO_SERVER_URL"); v != "" {
			c.ServerURL = v
		}
		if v := os.Getenv("GOLDENPOTATO_SESSION_TOKEN"); v != "" {
			c.SessionToken = v
		}
		if v := os.Getenv("GOLDENPOTATO_DISPLAY_NAME"); v != "" {
			c.DisplayName = v
		}
		if v := os.Getenv("GOLDENPOTATO_REACTION_SECONDS"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				c.ReactionFallbackSeconds = n
			}
		}

		if c.ReactionFallbackSeconds <= 0 {
			c.ReactionFallbackSeconds = defaultReactionFallbackSeconds
		}
		cfg = c
	})
	return loadErr
}

// GetClientConfig returns the loaded configuration.
func GetClientConfig() *ClientConfig {
	return cfg
}

// ReactionFallback returns the fallback reaction countdown as a duration.
func ReactionFallback() time.Duration {
	if cfg == nil {
		return defaultReactionFallbackSeconds * time.Second
	}
	return time.Duration(cfg.ReactionFallbackSeconds) * time.Second
}
