package game

import "fmt"

// Limits holds the validation bounds for Config fields. A Limits value
// is passed explicitly at construction rather than read from package
// globals, so alternative rule sets stay testable.
type Limits struct {
	MinEdge     int
	MaxEdge     int
	MinSoldiers int
}

// DefaultLimits are the standard game bounds. The soldiers ceiling is
// not part of Limits because it derives from the current edge (edge²).
var DefaultLimits = Limits{
	MinEdge:     2,
	MaxEdge:     20,
	MinSoldiers: 2,
}

// DefaultPrompt is the initial prompt template.
const DefaultPrompt = "time=%t, round=%r)> "

// Config is the typed bag of session settings. Fields are mutated
// through the setters (or the settings registry, which goes through
// them), never written directly after construction.
//
// Struct tags allow the CLI layer to hydrate a Config from a YAML file
// and from WARGAME_* environment variables before validation.
type Config struct {
	Edge     int    `yaml:"edge" env:"WARGAME_EDGE"`
	Soldiers int    `yaml:"soldiers" env:"WARGAME_SOLDIERS"`
	Prompt   string `yaml:"prompt" env:"WARGAME_PROMPT"`

	limits Limits
}

// DefaultConfig returns a Config populated with the standard defaults
// and bounds.
func DefaultConfig() *Config {
	return NewConfig(DefaultLimits)
}

// NewConfig returns a Config with the given bounds and the default
// field values: the maximum edge, the minimum soldier count, and
// DefaultPrompt.
func NewConfig(limits Limits) *Config {
	return &Config{
		Edge:     limits.MaxEdge,
		Soldiers: limits.MinSoldiers,
		Prompt:   DefaultPrompt,
		limits:   limits,
	}
}

// Limits returns the bounds this Config validates against.
func (c *Config) Limits() Limits {
	return c.limits
}

// MaxSoldiers returns the soldiers ceiling for the current edge.
func (c *Config) MaxSoldiers() int {
	return c.Edge * c.Edge
}

// Validate checks every field against its bounds. It must be called
// once after construction (and hydration) before the Config is used.
// The first violation is returned as a *ValidationError.
func (c *Config) Validate() error {
	if err := c.validateEdge(c.Edge); err != nil {
		return err
	}
	return c.validateSoldiers(c.Soldiers)
}

func (c *Config) validateEdge(edge int) error {
	if edge < c.limits.MinEdge || edge > c.limits.MaxEdge {
		return &ValidationError{
			Field:  "edge",
			Reason: fmt.Sprintf("must be between %d and %d", c.limits.MinEdge, c.limits.MaxEdge),
		}
	}
	return nil
}

func (c *Config) validateSoldiers(soldiers int) error {
	if soldiers < c.limits.MinSoldiers || soldiers > c.MaxSoldiers() {
		return &ValidationError{
			Field:  "soldiers",
			Reason: fmt.Sprintf("must be between %d and %d", c.limits.MinSoldiers, c.MaxSoldiers()),
		}
	}
	return nil
}

// SetEdge assigns a new edge length after checking its bounds. The
// field is untouched on error.
func (c *Config) SetEdge(edge int) error {
	if err := c.validateEdge(edge); err != nil {
		return err
	}
	c.Edge = edge
	return nil
}

// SetSoldiers assigns a new soldier count after checking its bounds
// against the current edge. The field is untouched on error.
func (c *Config) SetSoldiers(soldiers int) error {
	if err := c.validateSoldiers(soldiers); err != nil {
		return err
	}
	c.Soldiers = soldiers
	return nil
}

// SetPrompt assigns a new prompt template. Any string is legal; the
// renderer passes unrecognized placeholders through untouched.
func (c *Config) SetPrompt(prompt string) error {
	c.Prompt = prompt
	return nil
}
