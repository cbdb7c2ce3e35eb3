package path

import (
	"sync"
	"time"

	"github.com/jusunglee/pathboard/internal/config"
	"github.com/jusunglee/pathboard/internal/feed"
	"github.com/jusunglee/pathboard/internal/models"
	"github.com/jusunglee/pathboard/internal/store"
)

// LocalClient implements the Client interface on top of an in-process
// poller. It consumes the poller's event stream into the store so API
// readers only ever observe complete snapshots.
type LocalClient struct {
	store       *store.Store
	feedManager *feed.Manager
	wg          sync.WaitGroup
}

// NewLocal creates a local arrivals client and starts the background
// poller
func NewLocal(clientCfg Config) (*LocalClient, error) {
	cfg, err := config.Load(clientCfg.ConfigFile)
	if err != nil {
		return nil, err
	}
	if clientCfg.Station != "" {
		cfg.Station = clientCfg.Station
	}

	s := store.NewStore(cfg)
	fm := feed.NewManager(cfg)

	c := &LocalClient{
		store:       s,
		feedManager: fm,
	}

	c.wg.Add(1)
	go c.consume()
	fm.Start()

	return c, nil
}

// consume drains poller events into the store until the event channel
// closes on shutdown.
func (c *LocalClient) consume() {
	defer c.wg.Done()
	for ev := range c.feedManager.Events() {
		if ev.Err != nil {
			c.store.RecordFailure()
			continue
		}
		c.store.RecordSuccess(ev.Snapshot, time.Now().UTC())
	}
}

// Close gracefully shuts down the local client
// Must be called to stop background goroutines and prevent leaks
func (c *LocalClient) Close() {
	c.feedManager.Stop()
	c.wg.Wait()
}

func (c *LocalClient) Latest() (models.Snapshot, bool) {
	return c.store.Latest()
}

func (c *LocalClient) Status(now time.Time) store.Status {
	return c.store.Status(now)
}

func (c *LocalClient) LastUpdate() time.Time {
	return c.store.LastUpdate()
}
