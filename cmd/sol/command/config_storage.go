package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-sol/internal/sim"
	"github.com/pixil98/go-sol/internal/storage"
)

type StorageConfig struct {
	// Units and Scenarios point at asset directories. Both are optional:
	// without them the built-in unit catalog and standard layout are used.
	Units     AssetConfig[*sim.Unit]     `json:"units"`
	Scenarios AssetConfig[*sim.Scenario] `json:"scenarios"`
}

func (c *StorageConfig) Validate() error {
	el := errors.NewErrorList()
	el.Add(c.Units.Validate("units"))
	el.Add(c.Scenarios.Validate("scenarios"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path,omitempty"`
}

// Configured reports whether an asset directory was supplied.
func (c *AssetConfig[T]) Configured() bool {
	return c.Path != ""
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return nil
	}
	if _, err := os.Stat(c.Path); err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
