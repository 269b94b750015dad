package model

import "time"

const (
	StateLoading = "loading"
	StateOnline  = "online"
	StateOffline = "offline"
)

// Placeholder map names reported by the game server before a map is loaded.
const (
	MapPlaceholderUnknown = "Unknown"
	MapPlaceholderLoading = "loading"
)

// ServerStatus is the payload returned by the game server's status endpoint.
type ServerStatus struct {
	Online      bool     `json:"online"`
	Name        string   `json:"name"`
	Map         string   `json:"map"`
	PlayerCount int      `json:"playerCount"`
	MaxPlayers  int      `json:"maxPlayers"`
	Players     []string `json:"players"`
	Uptime      string   `json:"uptime"`
}

// Snapshot is the most recently resolved server state. Each poll replaces the
// previous snapshot, there is no history.
type Snapshot struct {
	State     string
	Starting  bool
	Status    ServerStatus
	FetchedAt time.Time
}

// OfflineSnapshot returns the snapshot rendered for any failed fetch or for a
// payload that explicitly reports the server offline.
func OfflineSnapshot(at time.Time) Snapshot {
	return Snapshot{
		State: StateOffline,
		Status: ServerStatus{
			Uptime: "offline",
		},
		FetchedAt: at,
	}
}

// IsMapPlaceholder reports whether name is one of the placeholder values the
// server sends while no real map is loaded.
func IsMapPlaceholder(name string) bool {
	return name == "" || name == MapPlaceholderUnknown || name == MapPlaceholderLoading
}
