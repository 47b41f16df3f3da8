package models

// Prefs is the small persisted preference entry written alongside exports.
// It carries viewable preferences only: the literal api_key value is never
// persisted, just a masked indicator that one is set.
type Prefs struct {
	Theme        string `yaml:"theme"`
	AutoOptimize bool   `yaml:"auto_optimize"`
	DebugMode    bool   `yaml:"debug_mode"`
	APIKeySet    bool   `yaml:"api_key_set"`
}

// DefaultPrefs returns the preference entry derived from the default document.
func DefaultPrefs() *Prefs {
	return PrefsFromDocument(DefaultDocument())
}

// PrefsFromDocument derives the persisted preference entry from a document.
func PrefsFromDocument(d Document) *Prefs {
	return &Prefs{
		Theme:        d.Get("appearance.theme").String(),
		AutoOptimize: d.Get("general.auto_optimize").Bool(),
		DebugMode:    d.Get("general.debug_mode").Bool(),
		APIKeySet:    d.Get("integration.api_key").String() != "",
	}
}
