package model

// Preferences are the cosmetic console settings the original UI kept in the
// browser; persisting them locally lets every session share one look.
type Preferences struct {
	DarkMode        bool              `json:"dark_mode"`
	BackgroundColor string            `json:"background_color"`
	Brightness      int               `json:"brightness"`
	Theme           map[string]string `json:"theme"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		DarkMode:        false,
		BackgroundColor: "#F1F5F9",
		Brightness:      100,
		Theme:           map[string]string{},
	}
}
