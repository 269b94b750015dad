package poller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/TomSchuu/source-surf/internal/apperrors"
	"github.com/TomSchuu/source-surf/internal/model"
	"github.com/TomSchuu/source-surf/internal/upstream"
)

// Listener receives every published snapshot. Listeners must not block.
type Listener func(model.Snapshot)

type Poller interface {
	Start()
	Stop()
	Snapshot() model.Snapshot
	TriggerStart(ctx context.Context) error
	Subscribe(l Listener)
	Stats() (total int64, online int64)
}

type Config struct {
	Interval     time.Duration
	FastInterval time.Duration
	StartTimeout time.Duration
	PollTimeout  time.Duration
}

// poller owns the polling state machine: steady-cadence polling of the status
// endpoint, switching to the fast cadence for the duration of a start
// sequence. Only the run goroutine touches the ticker; cadence changes from
// other goroutines go through the cadence channel.
type poller struct {
	statusClient upstream.StatusClient
	startClient  upstream.StartClient
	prober       upstream.Prober // optional, may be nil
	logger       *zap.Logger
	cfg          Config

	mu          sync.RWMutex
	snapshot    model.Snapshot
	starting    bool
	startedAt   time.Time
	pollsTotal  int64
	pollsOnline int64
	listeners   []Listener

	cadence  chan time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
}

func (p *poller) Start() {
	go p.run()
}

func (p *poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopChan)
	})
}

func (p *poller) run() {
	p.poll()
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.poll()
			ticker.Reset(p.desiredInterval())
		case d := <-p.cadence:
			ticker.Reset(d)
		case <-p.stopChan:
			return
		}
	}
}

// Snapshot returns the most recently resolved server state.
func (p *poller) Snapshot() model.Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot
}

// Stats returns how many polls ran and how many found the server online.
// Counters are in-memory only and reset on restart.
func (p *poller) Stats() (int64, int64) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pollsTotal, p.pollsOnline
}

func (p *poller) Subscribe(l Listener) {
	p.mu.Lock()
	p.listeners = append(p.listeners, l)
	p.mu.Unlock()
}

// TriggerStart begins a start sequence: it guards against re-entry, publishes
// the loading state, calls the start endpoint and on success switches polling
// to the fast cadence until a poll reports the server online.
func (p *poller) TriggerStart(ctx context.Context) error {
	p.mu.Lock()
	if p.starting {
		p.mu.Unlock()
		return apperrors.ErrStartInProgress
	}
	if p.snapshot.State == model.StateOnline {
		p.mu.Unlock()
		return apperrors.ErrServerAlreadyOnline
	}
	p.starting = true
	p.startedAt = time.Now()
	p.snapshot = model.Snapshot{
		State:     model.StateLoading,
		Starting:  true,
		Status:    p.snapshot.Status,
		FetchedAt: time.Now(),
	}
	snap := p.snapshot
	p.mu.Unlock()
	p.publish(snap)

	body, err := p.startClient.StartServer(ctx)
	if err != nil {
		p.mu.Lock()
		p.starting = false
		p.snapshot = model.OfflineSnapshot(time.Now())
		snap = p.snapshot
		p.mu.Unlock()
		p.publish(snap)
		p.setCadence(p.cfg.Interval)
		return fmt.Errorf("Poller.TriggerStart: %w", err)
	}
	p.logger.Info("start request accepted", zap.String("response", body))
	p.setCadence(p.cfg.FastInterval)
	return nil
}

// poll fetches the status once and publishes the resulting snapshot. Any
// fetch failure or an explicit online=false payload renders as offline.
func (p *poller) poll() {
	p.mu.Lock()
	starting := p.starting
	var loadingSnap model.Snapshot
	if !starting {
		// spinner while the request is in flight, but never during a start
		// sequence where the loading state is already up
		p.snapshot = model.Snapshot{
			State:     model.StateLoading,
			Status:    p.snapshot.Status,
			FetchedAt: time.Now(),
		}
		loadingSnap = p.snapshot
	}
	p.mu.Unlock()
	if !starting {
		p.publish(loadingSnap)
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.cfg.PollTimeout)
	status, err := p.statusClient.GetStatus(ctx)
	cancel()
	if err != nil && p.prober != nil {
		p.logger.Warn("status endpoint unreachable, probing over a2s", zap.Error(err))
		status, err = p.prober.Probe()
	}
	online := err == nil && status.Online

	p.mu.Lock()
	p.pollsTotal++
	if online {
		p.pollsOnline++
		if p.starting {
			p.logger.Info("start sequence complete, server is online")
			p.starting = false
		}
		p.snapshot = model.Snapshot{
			State:     model.StateOnline,
			Status:    status,
			FetchedAt: time.Now(),
		}
	} else {
		if err != nil {
			p.logger.Error("status poll failed", zap.Error(fmt.Errorf("Poller.poll: %w", err)))
		}
		if p.starting {
			// the server is still booting, keep the loading state up and let
			// the start timeout decide when to give up
			if time.Since(p.startedAt) > p.cfg.StartTimeout {
				p.logger.Warn("start sequence timed out", zap.Duration("timeout", p.cfg.StartTimeout))
				p.starting = false
				p.snapshot = model.OfflineSnapshot(time.Now())
			}
		} else {
			p.snapshot = model.OfflineSnapshot(time.Now())
		}
	}
	snap := p.snapshot
	p.mu.Unlock()
	p.publish(snap)
}

// desiredInterval picks the cadence for the next tick.
func (p *poller) desiredInterval() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.starting {
		return p.cfg.FastInterval
	}
	return p.cfg.Interval
}

// setCadence nudges the run loop onto a new cadence. A full channel is fine,
// the loop re-derives the interval after every poll anyway.
func (p *poller) setCadence(d time.Duration) {
	select {
	case p.cadence <- d:
	default:
	}
}

func (p *poller) publish(snap model.Snapshot) {
	p.mu.RLock()
	listeners := p.listeners
	p.mu.RUnlock()
	for _, l := range listeners {
		l(snap)
	}
}

func NewPoller(statusClient upstream.StatusClient, startClient upstream.StartClient, prober upstream.Prober, logger *zap.Logger, cfg Config) Poller {
	return &poller{
		statusClient: statusClient,
		startClient:  startClient,
		prober:       prober,
		logger:       logger,
		cfg:          cfg,
		snapshot: model.Snapshot{
			State:     model.StateLoading,
			FetchedAt: time.Now(),
		},
		cadence:  make(chan time.Duration, 1),
		stopChan: make(chan struct{}),
	}
}
