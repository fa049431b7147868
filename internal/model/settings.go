package model

// Icons holds the glyphs used when rendering tasks.
type Icons struct {
	Complete   string `json:"complete"`
	Incomplete string `json:"incomplete"`
	Repeats    string `json:"repeats"`
}

// Settings holds user display preferences (singleton).
type Settings struct {
	Key string `json:"key"`
	// InstallKey uniquely identifies this installation.
	InstallKey string `json:"install_key"`
	// DateFormat is a Go reference-time layout for displaying dates.
	DateFormat string `json:"date_format"`
	// ShowComplete controls whether completed tasks are visible by default.
	ShowComplete bool `json:"show_complete"`
	Icons        Icons `json:"icons"`
}

// SetKey sets the database key for the settings singleton.
func (s *Settings) SetKey(key string) {
	s.Key = key
}

// GetKey returns the database key for the settings singleton.
func (s *Settings) GetKey() string {
	return s.Key
}

// NewSettings creates settings with default display preferences.
func NewSettings(installKey string) *Settings {
	return &Settings{
		Key:          KeySettings,
		InstallKey:   installKey,
		DateFormat:   "Mon Jan 2, 2006",
		ShowComplete: false,
		Icons: Icons{
			Complete:   "[x]",
			Incomplete: "[ ]",
			Repeats:    "(r)",
		},
	}
}

// CompleteIcon returns the icon for the given completion state.
func (s *Settings) CompleteIcon(complete bool) string {
	if complete {
		return s.Icons.Complete
	}
	return s.Icons.Incomplete
}

// RepeatsIcon returns the recurrence marker, empty for non-recurring
// rules.
func (s *Settings) RepeatsIcon(repeats Repeat) string {
	if repeats.IsNever() {
		return ""
	}
	return s.Icons.Repeats
}
