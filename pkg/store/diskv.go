// Package store is the persistence gateway: it reads and writes the three
// planner collections, plus the display preference, as records in a durable
// key-value store.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/studyplan/pkg/planner"
)

// Fixed record keys. Each collection key holds one JSON array of its record
// shape; an absent key reads back as an empty collection.
const (
	KeySubjects  = "subjects"
	KeyTasks     = "tasks"
	KeySchedules = "schedules"
	KeyTheme     = "theme"
)

// Persistence is the gateway contract the rest of the planner depends on.
type Persistence interface {
	Load(ctx context.Context) (*planner.State, error)
	Save(st *planner.State) error
	Theme() string
	SetTheme(theme string) error
	Reset() error
	Watch(ctx context.Context) (<-chan Event, error)
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
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Load(_ context.Context) (*planner.State, error) {
	st := planner.NewState()
	if err := p.readCollection(KeySubjects, &st.Subjects); err != nil {
		return nil, err
	}
	if err := p.readCollection(KeyTasks, &st.Tasks); err != nil {
		return nil, err
	}
	if err := p.readCollection(KeySchedules, &st.Schedules); err != nil {
		return nil, err
	}
	for _, s := range st.Subjects {
		st.TrackID(s.ID)
	}
	for _, t := range st.Tasks {
		st.TrackID(t.ID)
	}
	for _, s := range st.Schedules {
		st.TrackID(s.ID)
	}
	return st, nil
}

func (p *persistence) Save(st *planner.State) error {
	if st == nil {
		return fmt.Errorf("store: nil state")
	}
	if err := p.writeCollection(KeySubjects, st.Subjects); err != nil {
		return err
	}
	if err := p.writeCollection(KeyTasks, st.Tasks); err != nil {
		return err
	}
	return p.writeCollection(KeySchedules, st.Schedules)
}

// Theme returns the stored display preference, empty when unset.
func (p *persistence) Theme() string {
	if !p.d.Has(KeyTheme) {
		return ""
	}
	val, err := p.d.Read(KeyTheme)
	if err != nil {
		return ""
	}
	return string(val)
}

func (p *persistence) SetTheme(theme string) error {
	if err := p.d.Write(KeyTheme, []byte(theme)); err != nil {
		return fmt.Errorf("store: write %s: %w", KeyTheme, err)
	}
	return nil
}

// Reset erases all three collections and the display preference.
func (p *persistence) Reset() error {
	for _, key := range []string{KeySubjects, KeyTasks, KeySchedules, KeyTheme} {
		if !p.d.Has(key) {
			continue
		}
		if err := p.d.Erase(key); err != nil {
			return fmt.Errorf("store: erase %s: %w", key, err)
		}
	}
	return nil
}

func (p *persistence) readCollection(key string, target interface{}) error {
	if !p.d.Has(key) {
		return nil
	}
	val, err := p.d.Read(key)
	if err != nil {
		return fmt.Errorf("store: read %s: %w", key, err)
	}
	if len(val) == 0 {
		return nil
	}
	if err := json.Unmarshal(val, target); err != nil {
		return fmt.Errorf("store: decode %s: %w", key, err)
	}
	return nil
}

func (p *persistence) writeCollection(key string, records interface{}) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}
