package store

import (
	"fmt"
	"speaker/config"
	"speaker/domain"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(NewMySQL, NewArtifactStore)

// NewArtifactStore picks the audio backend named by Storage.Driver.
func NewArtifactStore(c *config.Config) (domain.ArtifactStore, error) {
	switch c.Storage.Driver {
	case "", "local":
		return NewLocalStore(c.Storage.Dir, c.Storage.BaseURL)
	case "minio":
		return NewMinioStore(c)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
}
