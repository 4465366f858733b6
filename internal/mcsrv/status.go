package mcsrv

// Status is the subset of the mcsrvstat.us v2 response the bot renders.
type Status struct {
	Online   bool      `json:"online"`
	IP       string    `json:"ip"`
	Port     int       `json:"port"`
	Hostname string    `json:"hostname"`
	Version  string    `json:"version"`
	Software string    `json:"software"`
	MOTD     *MOTD     `json:"motd"`
	Players  Players   `json:"players"`
	Mods     *NameList `json:"mods"`
	Plugins  *NameList `json:"plugins"`
}

// MOTD is the message of the day in the formats the API provides.
type MOTD struct {
	Raw   []string `json:"raw"`
	Clean []string `json:"clean"`
	HTML  []string `json:"html"`
}

// Players holds the player counts and, when the server exposes it, a sample
// of online player names.
type Players struct {
	Online int      `json:"online"`
	Max    int      `json:"max"`
	List   []string `json:"list"`
}

// NameList is a list of mod or plugin names.
type NameList struct {
	Names []string `json:"names"`
}
