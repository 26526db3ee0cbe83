package game

import (
	"strconv"
	"strings"
	"time"
)

// Provider produces the substitution text for one prompt placeholder,
// evaluated against the live session each render.
type Provider func(s *Session) string

// PromptRenderer expands %<key> tokens in a template. The key set is a
// registry, not a hard-coded switch; unregistered tokens pass through
// untouched. Rendering never caches: round and time change between
// calls.
type PromptRenderer struct {
	providers map[rune]Provider
	now       func() time.Time
}

// NewPromptRenderer returns a renderer with the default placeholders:
//
//	%t  current wall-clock time as epoch seconds
//	%r  current round as a decimal string
func NewPromptRenderer() *PromptRenderer {
	r := &PromptRenderer{
		providers: make(map[rune]Provider),
		now:       time.Now,
	}
	r.Register('t', func(*Session) string {
		return strconv.FormatInt(r.now().Unix(), 10)
	})
	r.Register('r', func(s *Session) string {
		return strconv.Itoa(s.Round())
	})
	return r
}

// Register adds or replaces the provider for key.
func (r *PromptRenderer) Register(key rune, fn Provider) {
	r.providers[key] = fn
}

// Render expands template against the session. A '%' followed by a
// registered key is substituted and both runes consumed; any other '%'
// is emitted as-is and only the '%' is consumed, so the following rune
// is still eligible to open a token.
func (r *PromptRenderer) Render(template string, s *Session) string {
	var b strings.Builder
	b.Grow(len(template))

	runes := []rune(template)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' || i+1 >= len(runes) {
			b.WriteRune(runes[i])
			continue
		}
		fn, ok := r.providers[runes[i+1]]
		if !ok {
			b.WriteRune('%')
			continue
		}
		b.WriteString(fn(s))
		i++
	}
	return b.String()
}
