package game

// Hooks defines observer callbacks for session observability. The data
// model performs no I/O itself; hosts that want change traces (the CLI
// debug mode, tests) attach hooks and log from there.
type Hooks struct {
	// OnStateChange fires after every lifecycle transition.
	OnStateChange func(old, new State)

	// OnSettingChange fires after a setting is successfully assigned,
	// with the new value in its canonical representation.
	OnSettingChange func(name, value string)
}

func (h Hooks) stateChanged(old, new State) {
	if h.OnStateChange != nil {
		h.OnStateChange(old, new)
	}
}

func (h Hooks) settingChanged(name, value string) {
	if h.OnSettingChange != nil {
		h.OnSettingChange(name, value)
	}
}
