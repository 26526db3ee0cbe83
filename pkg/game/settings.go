package game

import (
	"fmt"
	"sort"
	"strconv"
)

// Setting is one entry of the settings registry: a named, typed view
// over a Config field. Get renders the current value in its canonical
// debug representation; Set parses the raw string into the declared
// type, validates it, and assigns it.
type Setting struct {
	Name string
	Kind string // "int" or "string", for help output

	Get func(c *Config) string
	Set func(c *Config, raw string) error
}

// settings is the single registration site. A field added here is
// immediately visible to the get/set actions and to help; nothing else
// needs to change.
var settings = map[string]Setting{}

func init() {
	registerSetting(Setting{
		Name: "edge",
		Kind: "int",
		Get:  func(c *Config) string { return strconv.Itoa(c.Edge) },
		Set: func(c *Config, raw string) error {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return err
			}
			return c.SetEdge(v)
		},
	})
	registerSetting(Setting{
		Name: "soldiers",
		Kind: "int",
		Get:  func(c *Config) string { return strconv.Itoa(c.Soldiers) },
		Set: func(c *Config, raw string) error {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return err
			}
			return c.SetSoldiers(v)
		},
	})
	registerSetting(Setting{
		Name: "prompt",
		Kind: "string",
		Get:  func(c *Config) string { return strconv.Quote(c.Prompt) },
		Set:  (*Config).SetPrompt,
	})
}

func registerSetting(s Setting) {
	if _, exists := settings[s.Name]; exists {
		panic(fmt.Sprintf("duplicate setting registration: %s", s.Name))
	}
	settings[s.Name] = s
}

// LookupSetting returns the registry entry for name. Lookup is
// case-sensitive and exact.
func LookupSetting(name string) (Setting, bool) {
	s, ok := settings[name]
	return s, ok
}

// SettingNames returns the registered setting names in sorted order.
func SettingNames() []string {
	names := make([]string, 0, len(settings))
	for name := range settings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
