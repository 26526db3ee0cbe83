package cli

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/wargame/pkg/game"
)

// LoadConfig resolves the session configuration with the precedence
// defaults < YAML file < WARGAME_* environment < flags. Validation is
// not performed here; game.New runs the full pass once ownership
// transfers to the session.
func LoadConfig(opts RunOptions) (*game.Config, error) {
	cfg := game.DefaultConfig()

	if opts.ConfigPath != "" {
		data, err := os.ReadFile(opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", opts.ConfigPath, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if opts.Edge != nil {
		cfg.Edge = *opts.Edge
	}
	if opts.Soldiers != nil {
		cfg.Soldiers = *opts.Soldiers
	}
	if opts.Prompt != nil {
		cfg.Prompt = *opts.Prompt
	}

	return cfg, nil
}
