// Package store persists the journal as whole-document JSON blobs under
// fixed keys, backed by diskv.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"github.com/mistycrown/zenbullet/pkg/entry"
	"github.com/mistycrown/zenbullet/pkg/tag"
)

// Fixed blob keys. Each holds the full serialized document for its concern;
// there is no partial read or write.
const (
	keyEntries  = "entries"
	keyTags     = "tags"
	keyLastSync = "lastsync"
)

// Persistence is the local persistence contract for the journal. Loads of a
// missing blob return empty data, not an error.
type Persistence interface {
	LoadEntries() ([]*entry.Entry, error)
	SaveEntries(entries []*entry.Entry) error
	LoadTags() ([]tag.Tag, error)
	SaveTags(tags []tag.Tag) error
	LastSync() (time.Time, bool)
	SetLastSync(t time.Time) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

func (p *persistence) LoadEntries() ([]*entry.Entry, error) {
	entries := make([]*entry.Entry, 0)
	if err := p.read(keyEntries, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (p *persistence) SaveEntries(entries []*entry.Entry) error {
	return p.write(keyEntries, entries)
}

func (p *persistence) LoadTags() ([]tag.Tag, error) {
	tags := make([]tag.Tag, 0)
	if err := p.read(keyTags, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (p *persistence) SaveTags(tags []tag.Tag) error {
	return p.write(keyTags, tags)
}

func (p *persistence) LastSync() (time.Time, bool) {
	var stamp string
	if err := p.read(keyLastSync, &stamp); err != nil || stamp == "" {
		return time.Time{}, false
	}
	t, err := entry.ParseTime(stamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (p *persistence) SetLastSync(t time.Time) error {
	return p.write(keyLastSync, t.UTC().Format(time.RFC3339))
}

func (p *persistence) read(key string, target any) error {
	if !p.d.Has(key) {
		return nil
	}
	data, err := p.d.Read(key)
	if err != nil {
		return fmt.Errorf("store: read %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("store: decode %s: %w", key, err)
	}
	return nil
}

func (p *persistence) write(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}
