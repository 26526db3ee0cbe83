package game

import (
	"fmt"
	"strings"
)

// Action is a single command invocation, constructed fresh per
// dispatch and discarded after Run. A non-empty result is printed as
// one output line; an empty result prints nothing.
type Action interface {
	Run(args []string) (string, error)
}

// Constructor builds an Action bound to the session. The action
// registry maps verbs to Constructors so future game verbs (move,
// attack, ...) register without touching the dispatch path.
type Constructor func(s *Session) Action

func defaultActions() map[string]Constructor {
	return map[string]Constructor{
		"get":  func(s *Session) Action { return &getAction{session: s} },
		"set":  func(s *Session) Action { return &setAction{session: s} },
		"quit": func(s *Session) Action { return &quitAction{session: s} },
		"help": func(s *Session) Action { return &helpAction{session: s} },
	}
}

// getAction prints a setting's current value in its canonical
// representation.
type getAction struct {
	session *Session
}

func (a *getAction) Run(args []string) (string, error) {
	if len(args) < 1 {
		return "", &MissingArgumentError{Argument: "setting"}
	}
	setting, ok := LookupSetting(args[0])
	if !ok {
		return "", &UnknownSettingError{Setting: args[0]}
	}
	return setting.Get(a.session.Config()), nil
}

// setAction converts the raw value to the setting's declared type and
// assigns it. Successful assignment is silent.
type setAction struct {
	session *Session
}

func (a *setAction) Run(args []string) (string, error) {
	if len(args) < 1 {
		return "", &MissingArgumentError{Argument: "setting"}
	}
	if len(args) < 2 {
		return "", &MissingArgumentError{Argument: "value"}
	}

	name, raw := args[0], args[1]
	setting, ok := LookupSetting(name)
	if !ok {
		return "", &UnknownSettingError{Setting: name}
	}

	if err := setting.Set(a.session.Config(), raw); err != nil {
		return "", &IllegalValueError{Setting: name, Value: raw}
	}

	a.session.settingChanged(setting)
	return "", nil
}

// quitAction drives the session's stop transition.
type quitAction struct {
	session *Session
}

func (a *quitAction) Run(args []string) (string, error) {
	a.session.Stop()
	return "", nil
}

// helpAction lists the registered verbs and settings.
type helpAction struct {
	session *Session
}

func (a *helpAction) Run(args []string) (string, error) {
	var b strings.Builder
	b.WriteString("commands: ")
	b.WriteString(strings.Join(a.session.Verbs(), ", "))
	b.WriteString("\nsettings:")
	for _, name := range SettingNames() {
		setting, _ := LookupSetting(name)
		fmt.Fprintf(&b, "\n  %s (%s) = %s", name, setting.Kind, setting.Get(a.session.Config()))
	}
	return b.String(), nil
}
