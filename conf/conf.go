package conf

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Conf holds the process configuration. Values resolve in order: defaults,
// then the TOML file named by ARENA_CONF_PATH (if any), then environment
// variables.
type Conf struct {
	ListenAddr   string        `toml:"listen_addr"`
	JudgeBaseUrl string        `toml:"judge_base_url"`
	CompDuration time.Duration `toml:"-"`
	TurnTimeout  time.Duration `toml:"-"`
	FeedCap      int           `toml:"feed_cap"`

	CompDurationSec int `toml:"comp_duration_sec"`
	TurnTimeoutSec  int `toml:"turn_timeout_sec"`
}

func Default() Conf {
	return Conf{
		ListenAddr:      ":8080",
		JudgeBaseUrl:    "http://localhost:8000/api",
		CompDurationSec: 300,
		TurnTimeoutSec:  240,
		FeedCap:         20,
	}
}

// Read resolves the full configuration or fails with a descriptive error.
func Read() (Conf, error) {
	c := Default()

	if path := os.Getenv("ARENA_CONF_PATH"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Conf{}, fmt.Errorf("failed to read conf file %s: %w", path, err)
		}
		if err := toml.Unmarshal(raw, &c); err != nil {
			return Conf{}, fmt.Errorf("failed to parse conf file %s: %w", path, err)
		}
	}

	if v := os.Getenv("ARENA_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("ARENA_JUDGE_BASE_URL"); v != "" {
		c.JudgeBaseUrl = v
	}
	if v := os.Getenv("ARENA_COMP_DURATION_SEC"); v != "" {
		sec, err := strconv.Atoi(v)
		if err != nil {
			return Conf{}, fmt.Errorf("invalid ARENA_COMP_DURATION_SEC: %w", err)
		}
		c.CompDurationSec = sec
	}
	if v := os.Getenv("ARENA_TURN_TIMEOUT_SEC"); v != "" {
		sec, err := strconv.Atoi(v)
		if err != nil {
			return Conf{}, fmt.Errorf("invalid ARENA_TURN_TIMEOUT_SEC: %w", err)
		}
		c.TurnTimeoutSec = sec
	}

	c.CompDuration = time.Duration(c.CompDurationSec) * time.Second
	c.TurnTimeout = time.Duration(c.TurnTimeoutSec) * time.Second
	return c, nil
}
