package path

import (
	"time"

	"github.com/jusunglee/pathboard/internal/models"
	"github.com/jusunglee/pathboard/internal/store"
)

// Client defines the interface for accessing station arrival data
// Abstracts the polling machinery behind a read-only surface
type Client interface {
	Latest() (models.Snapshot, bool)
	Status(now time.Time) store.Status
	LastUpdate() time.Time
}

// Config holds configuration for the arrivals client
type Config struct {
	ConfigFile string
	Station    string // overrides the config file station when set
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		ConfigFile: "config.json",
	}
}
