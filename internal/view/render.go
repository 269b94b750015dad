package view

import (
	"fmt"

	"github.com/TomSchuu/source-surf/internal/model"
)

// RenderModel is everything the status page needs to draw one state. It is
// served as-is over the JSON API and fed to the HTML template.
type RenderModel struct {
	State        string   `json:"state"`
	StatusText   string   `json:"statusText"`
	StatusClass  string   `json:"statusClass"`
	ServerName   string   `json:"serverName"`
	PlayerCount  string   `json:"playerCount"`
	Players      []string `json:"players"`
	Uptime       string   `json:"uptime"`
	MapName      string   `json:"mapName"`
	MapImageURL  string   `json:"mapImageUrl"`
	ShowSpinner  bool     `json:"showSpinner"`
	ShowInfo     bool     `json:"showInfo"`
	StartEnabled bool     `json:"startEnabled"`
	StartLabel   string   `json:"startLabel"`
	ShowConnect  bool     `json:"showConnect"`
	ConnectURI   string   `json:"connectUri"`
}

// Renderer turns snapshots into render models. It performs no I/O and keeps
// no mutable state.
type Renderer struct {
	gallery  MapGallery
	host     string
	port     int
	fallback string // server name shown while nothing better is known
}

func (r *Renderer) Render(snap model.Snapshot) RenderModel {
	m := RenderModel{
		State:       snap.State,
		StatusText:  snap.State,
		StatusClass: "status-" + snap.State,
		ServerName:  r.fallback,
		PlayerCount: "0 / 0",
		Uptime:      snap.State,
		StartLabel:  "Start server",
	}
	switch snap.State {
	case model.StateLoading:
		m.ShowSpinner = true
		if snap.Starting {
			m.StartLabel = "Starting..."
		}
	case model.StateOnline:
		m.ShowInfo = true
		m.ShowConnect = true
		if snap.Status.Name != "" {
			m.ServerName = snap.Status.Name
		}
		m.PlayerCount = fmt.Sprintf("%d / %d", snap.Status.PlayerCount, snap.Status.MaxPlayers)
		m.Players = snap.Status.Players
		m.Uptime = snap.Status.Uptime
		if m.Uptime == "" {
			m.Uptime = "unknown"
		}
		if !model.IsMapPlaceholder(snap.Status.Map) {
			m.MapName = snap.Status.Map
			if url, ok := r.gallery.ImageURL(snap.Status.Map); ok {
				m.MapImageURL = url
			}
		}
		m.ConnectURI = r.ConnectURI(snap)
	case model.StateOffline:
		m.ShowInfo = true
		m.StartEnabled = true
		m.Uptime = "offline"
	}
	return m
}

// ConnectURI builds the steam protocol-handler URI used to join the server
// from the game client. The map segment is included only when a real map is
// known.
func (r *Renderer) ConnectURI(snap model.Snapshot) string {
	uri := fmt.Sprintf("steam://connect/%s:%d", r.host, r.port)
	if snap.State == model.StateOnline && !model.IsMapPlaceholder(snap.Status.Map) {
		uri += "/" + snap.Status.Map
	}
	return uri
}

func NewRenderer(gallery MapGallery, host string, port int, serverName string) *Renderer {
	return &Renderer{
		gallery:  gallery,
		host:     host,
		port:     port,
		fallback: serverName,
	}
}
