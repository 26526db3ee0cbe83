package game

import (
	"io"
	"log/slog"
	"sort"

	shellwords "github.com/mattn/go-shellwords"
)

// Session coordinates one interactive run: it owns the Config, the
// lifecycle state machine, the round counter, the action registry, and
// the prompt renderer. A Session is single-threaded; the REPL loop in
// pkg/runner is its only driver.
type Session struct {
	config  *Config
	actions map[string]Constructor
	prompts *PromptRenderer
	state   State
	round   int

	logger *slog.Logger
	hooks  Hooks
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the structured logger for diagnostic traces. The
// default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithHooks registers observer callbacks for state transitions and
// setting changes.
func WithHooks(hooks Hooks) Option {
	return func(s *Session) {
		s.hooks = hooks
	}
}

// New validates cfg and returns a Session in StateUnstarted. The
// session takes exclusive ownership of cfg.
func New(cfg *Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		config:  cfg,
		actions: defaultActions(),
		prompts: NewPromptRenderer(),
		state:   StateUnstarted,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Config returns the session's configuration.
func (s *Session) Config() *Config {
	return s.config
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Round returns the current round counter. It starts at 0 and is
// advanced by the simulation loop, not by the session itself.
func (s *Session) Round() int {
	return s.round
}

// AdvanceRound increments the round counter. This is the collaborator
// surface for the simulation logic; the dispatch core never calls it.
func (s *Session) AdvanceRound() {
	s.round++
}

// HasStarted reports whether the session is in StateStarting or
// StateStarted.
func (s *Session) HasStarted() bool {
	return s.state == StateStarting || s.state == StateStarted
}

// HasStopped reports whether the session reached StateStopped.
func (s *Session) HasStopped() bool {
	return s.state == StateStopped
}

// Start walks the session through STARTING to STARTED. Startup work
// between the two transitions is an extension point, currently empty.
func (s *Session) Start() {
	s.setState(StateStarting)
	s.setState(StateStarted)
}

// Stop walks the session through STOPPING to STOPPED. Teardown work
// between the two transitions is an extension point, currently empty.
func (s *Session) Stop() {
	s.setState(StateStopping)
	s.setState(StateStopped)
}

func (s *Session) setState(state State) {
	old := s.state
	s.state = state
	s.logger.Debug("state changed", "state", state.String())
	s.hooks.stateChanged(old, state)
}

func (s *Session) settingChanged(setting Setting) {
	value := setting.Get(s.config)
	s.logger.Debug("setting changed", "setting", setting.Name, "value", value)
	s.hooks.settingChanged(setting.Name, value)
}

// Register adds a verb to the action registry, replacing any existing
// entry. This is the extension point for actual game commands.
func (s *Session) Register(verb string, ctor Constructor) {
	s.actions[verb] = ctor
}

// Verbs returns the registered verbs in sorted order.
func (s *Session) Verbs() []string {
	verbs := make([]string, 0, len(s.actions))
	for verb := range s.actions {
		verbs = append(verbs, verb)
	}
	sort.Strings(verbs)
	return verbs
}

// Prompt renders the configured prompt template against the live
// session state.
func (s *Session) Prompt() string {
	return s.prompts.Render(s.config.Prompt, s)
}

// Prompts returns the prompt renderer so hosts can register additional
// placeholders.
func (s *Session) Prompts() *PromptRenderer {
	return s.prompts
}

// Dispatch tokenizes one input line and executes the matching action.
// Empty and whitespace-only lines are a no-op. The returned string, if
// non-empty, is the single output line to print; every error is local
// to this one command.
func (s *Session) Dispatch(line string) (string, error) {
	tokens, err := shellwords.Parse(line)
	if err != nil {
		return "", err
	}
	if len(tokens) == 0 {
		return "", nil
	}

	verb, args := tokens[0], tokens[1:]
	ctor, ok := s.actions[verb]
	if !ok {
		return "", &UnknownActionError{Action: verb}
	}
	return ctor(s).Run(args)
}
