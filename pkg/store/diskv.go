package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/0401lucky/daybook/pkg/record"
	"github.com/0401lucky/daybook/pkg/timeutil"
)

// ErrNotFound is returned when no record is stored under a date key.
var ErrNotFound = errors.New("store: record not found")

// Persistence is the save/load contract consumed by the controller. Records
// are stored as one JSON document per day, keyed by date.
type Persistence interface {
	Load(ctx context.Context, date string) (*record.DailyRecord, error)
	Save(rec *record.DailyRecord) error
	Delete(date string) error
	List(ctx context.Context) ([]*record.DailyRecord, error)
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
		BasePath:          basePath,
		AdvancedTransform: dateToPathTransform,
		InverseTransform:  pathToDateTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// dateToPathTransform shards records by year/month: 2026-08-23 becomes
// 2026/08/23.
func dateToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToDateTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

func (p *persistence) read(key string) (*record.DailyRecord, error) {
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	rec := &record.DailyRecord{}
	if err := json.Unmarshal(val, rec); err != nil {
		return nil, err
	}
	if rec.Date == "" {
		rec.Date = key
	}
	rec.Normalize()
	return rec, nil
}

func (p *persistence) Load(_ context.Context, date string) (*record.DailyRecord, error) {
	if _, err := timeutil.ParseDateKey(date); err != nil {
		return nil, err
	}
	return p.read(date)
}

func (p *persistence) Save(rec *record.DailyRecord) error {
	if rec == nil {
		return errors.New("store: nil record")
	}
	if _, err := timeutil.ParseDateKey(rec.Date); err != nil {
		return err
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return p.d.Write(rec.Date, data)
}

func (p *persistence) Delete(date string) error {
	if _, err := timeutil.ParseDateKey(date); err != nil {
		return err
	}
	return p.d.Erase(date)
}

func (p *persistence) List(ctx context.Context) ([]*record.DailyRecord, error) {
	all := make([]*record.DailyRecord, 0)
	for key := range p.d.Keys(ctx.Done()) {
		rec, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, rec)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Date < all[j].Date
	})
	return all, nil
}
