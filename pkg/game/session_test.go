package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Edge = 1

	_, err := New(cfg)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "edge", vErr.Field)
}

func TestSession_Lifecycle(t *testing.T) {
	var transitions []State
	s, err := New(DefaultConfig(), WithHooks(Hooks{
		OnStateChange: func(old, new State) {
			transitions = append(transitions, new)
		},
	}))
	require.NoError(t, err)

	assert.Equal(t, StateUnstarted, s.State())
	assert.False(t, s.HasStarted())
	assert.False(t, s.HasStopped())

	s.Start()
	assert.Equal(t, StateStarted, s.State())
	assert.True(t, s.HasStarted())

	s.Stop()
	assert.Equal(t, StateStopped, s.State())
	assert.True(t, s.HasStopped())

	assert.Equal(t, []State{
		StateStarting, StateStarted, StateStopping, StateStopped,
	}, transitions)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "UNSTARTED", StateUnstarted.String())
	assert.Equal(t, "STARTING", StateStarting.String())
	assert.Equal(t, "STARTED", StateStarted.String())
	assert.Equal(t, "STOPPING", StateStopping.String())
	assert.Equal(t, "STOPPED", StateStopped.String())
}

func TestSession_Round(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, 0, s.Round())
	s.AdvanceRound()
	s.AdvanceRound()
	assert.Equal(t, 2, s.Round())
}

func TestSession_Dispatch(t *testing.T) {
	t.Run("get returns canonical value", func(t *testing.T) {
		s := newTestSession(t)
		out, err := s.Dispatch("get edge")
		require.NoError(t, err)
		assert.Equal(t, "20", out)
	})

	t.Run("set then get round trips", func(t *testing.T) {
		s := newTestSession(t)

		out, err := s.Dispatch("set soldiers 5")
		require.NoError(t, err)
		assert.Empty(t, out)

		out, err = s.Dispatch("get soldiers")
		require.NoError(t, err)
		assert.Equal(t, "5", out)
	})

	t.Run("set with illegal value leaves setting unchanged", func(t *testing.T) {
		s := newTestSession(t)

		_, err := s.Dispatch("set soldiers abc")
		var iErr *IllegalValueError
		require.ErrorAs(t, err, &iErr)
		assert.Equal(t, "soldiers", iErr.Setting)
		assert.EqualError(t, err, "Illegal value for setting: soldiers")

		out, err := s.Dispatch("get soldiers")
		require.NoError(t, err)
		assert.Equal(t, "2", out)
	})

	t.Run("unknown setting", func(t *testing.T) {
		s := newTestSession(t)

		_, err := s.Dispatch("get bogus")
		var uErr *UnknownSettingError
		require.ErrorAs(t, err, &uErr)
		assert.EqualError(t, err, "Unknown setting: bogus")

		_, err = s.Dispatch("set bogus 1")
		require.ErrorAs(t, err, &uErr)
	})

	t.Run("missing arguments", func(t *testing.T) {
		s := newTestSession(t)

		_, err := s.Dispatch("get")
		var mErr *MissingArgumentError
		require.ErrorAs(t, err, &mErr)
		assert.Equal(t, "setting", mErr.Argument)

		_, err = s.Dispatch("set soldiers")
		require.ErrorAs(t, err, &mErr)
		assert.Equal(t, "value", mErr.Argument)
	})

	t.Run("unknown action leaves state alone", func(t *testing.T) {
		s := newTestSession(t)
		s.Start()

		_, err := s.Dispatch("foo")
		var uErr *UnknownActionError
		require.ErrorAs(t, err, &uErr)
		assert.EqualError(t, err, "Unknown action: foo")
		assert.Equal(t, StateStarted, s.State())
	})

	t.Run("quit stops the session", func(t *testing.T) {
		s := newTestSession(t)
		s.Start()

		out, err := s.Dispatch("quit")
		require.NoError(t, err)
		assert.Empty(t, out)
		assert.True(t, s.HasStopped())
		assert.False(t, s.HasStarted() && !s.HasStopped())
	})

	t.Run("empty and whitespace input are no-ops", func(t *testing.T) {
		s := newTestSession(t)

		for _, line := range []string{"", "   ", "\t"} {
			out, err := s.Dispatch(line)
			assert.NoError(t, err)
			assert.Empty(t, out)
		}
	})

	t.Run("quoted arguments with embedded spaces", func(t *testing.T) {
		s := newTestSession(t)

		_, err := s.Dispatch(`set prompt "round %r> "`)
		require.NoError(t, err)
		assert.Equal(t, "round %r> ", s.Config().Prompt)
	})

	t.Run("unclosed quote is a command-local error", func(t *testing.T) {
		s := newTestSession(t)
		s.Start()

		_, err := s.Dispatch(`set prompt "oops`)
		assert.Error(t, err)
		assert.Equal(t, StateStarted, s.State())
	})
}

func TestSession_Register(t *testing.T) {
	s := newTestSession(t)
	s.Register("round", func(s *Session) Action {
		return actionFunc(func(args []string) (string, error) {
			s.AdvanceRound()
			return "", nil
		})
	})

	_, err := s.Dispatch("round")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Round())
	assert.Contains(t, s.Verbs(), "round")
}

// actionFunc adapts a function to the Action interface for tests.
type actionFunc func(args []string) (string, error)

func (f actionFunc) Run(args []string) (string, error) { return f(args) }

func TestSession_SettingChangeHook(t *testing.T) {
	var gotName, gotValue string
	s, err := New(DefaultConfig(), WithHooks(Hooks{
		OnSettingChange: func(name, value string) {
			gotName, gotValue = name, value
		},
	}))
	require.NoError(t, err)

	_, err = s.Dispatch("set edge 10")
	require.NoError(t, err)
	assert.Equal(t, "edge", gotName)
	assert.Equal(t, "10", gotValue)
}

func TestSession_Help(t *testing.T) {
	s := newTestSession(t)

	out, err := s.Dispatch("help")
	require.NoError(t, err)
	assert.Contains(t, out, "get")
	assert.Contains(t, out, "set")
	assert.Contains(t, out, "quit")
	assert.Contains(t, out, "edge (int) = 20")
	assert.Contains(t, out, "soldiers (int) = 2")
	assert.Contains(t, out, "prompt (string)")
}
