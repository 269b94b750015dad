package upstream

import (
	"fmt"
	"time"

	a2s "github.com/rumblefrog/go-a2s"

	"github.com/TomSchuu/source-surf/internal/model"
)

type Prober interface {
	Probe() (model.ServerStatus, error)
}

// a2sProber queries the game server directly over the Source engine A2S
// protocol. Source servers answer A2S even when the companion HTTP status
// shim is not running, so this serves as a fallback source.
type a2sProber struct {
	address string
	timeout time.Duration
}

func (p *a2sProber) Probe() (model.ServerStatus, error) {
	client, err := a2s.NewClient(p.address, a2s.TimeoutOption(p.timeout))
	if err != nil {
		return model.ServerStatus{}, fmt.Errorf("Prober.Probe: %w", err)
	}
	defer client.Close()

	info, err := client.QueryInfo()
	if err != nil {
		return model.ServerStatus{}, fmt.Errorf("Prober.Probe querying info: %w", err)
	}
	status := model.ServerStatus{
		Online:      true,
		Name:        info.Name,
		Map:         info.Map,
		PlayerCount: int(info.Players),
		MaxPlayers:  int(info.MaxPlayers),
		// A2S_INFO carries no uptime
		Uptime: "unknown",
	}
	players, err := client.QueryPlayer()
	if err != nil {
		// player list is optional, the info response already succeeded
		return status, nil
	}
	for _, player := range players.Players {
		if player.Name != "" {
			status.Players = append(status.Players, player.Name)
		}
	}
	return status, nil
}

func NewA2SProber(host string, port int, timeout time.Duration) Prober {
	return &a2sProber{
		address: fmt.Sprintf("%s:%d", host, port),
		timeout: timeout,
	}
}
