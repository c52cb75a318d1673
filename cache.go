package trafficdash

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/bluele/gcache"
	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/config"
	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/dataset"
	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/geocode"
	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/ridership"
)

const (
	kindRidership = "ridership"
	kindGeocode   = "geocode"

	// two tables, each possibly held in an old and a new version
	tableCacheSize = 8
)

// TableCache holds the parsed tables. Entries are keyed by file path and a
// hash of the file content, so a file is only parsed again when its bytes
// change. Once a path has been loaded, later calls are served from memory
// until the path is invalidated, either explicitly or by Watch.
type TableCache struct {
	mu      sync.Mutex
	tables  gcache.Cache
	current map[string]string // absolute path -> key of the last load

	ridershipPath string
	geocodePath   string
	schema        ridership.Schema
	aliases       map[string]string
	log           *zap.SugaredLogger

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewTableCache creates a cache over the files named in cfg.
func NewTableCache(cfg config.AppConfig, log *zap.SugaredLogger) *TableCache {
	return &TableCache{
		tables:        gcache.New(tableCacheSize).LRU().Build(),
		current:       map[string]string{},
		ridershipPath: absPath(cfg.Data.RidershipPath),
		geocodePath:   absPath(cfg.Data.GeocodePath),
		schema:        cfg.RidershipSchema(),
		aliases:       cfg.Networks.Aliases,
		log:           log,
	}
}

// LoadRidership returns the traffic table.
func (tc *TableCache) LoadRidership() (*ridership.Table, error) {
	v, err := tc.load(kindRidership, tc.ridershipPath, func(b []byte) (any, error) {
		return ridership.Parse(bytes.NewReader(b), tc.schema)
	})
	if err != nil {
		return nil, err
	}
	return v.(*ridership.Table), nil
}

// LoadGeocode returns the geocoded station table.
func (tc *TableCache) LoadGeocode() (*geocode.Table, error) {
	v, err := tc.load(kindGeocode, tc.geocodePath, func(b []byte) (any, error) {
		return geocode.Parse(bytes.NewReader(b), tc.aliases)
	})
	if err != nil {
		return nil, err
	}
	return v.(*geocode.Table), nil
}

// Warm loads both tables, reporting the first failure.
func (tc *TableCache) Warm() error {
	if _, err := tc.LoadRidership(); err != nil {
		return err
	}
	_, err := tc.LoadGeocode()
	return err
}

// Invalidate forgets which version of path is current. The next load reads
// the file again; unchanged content is still served from the cache.
func (tc *TableCache) Invalidate(path string) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	delete(tc.current, absPath(path))
}

func (tc *TableCache) load(kind, path string, parse func([]byte) (any, error)) (any, error) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if key, ok := tc.current[path]; ok {
		if v, err := tc.tables.Get(key); err == nil {
			return v, nil
		}
	}

	b, err := dataset.ReadRaw(path)
	if err != nil {
		return nil, err
	}
	hash := strconv.FormatUint(xxhash.Sum64(b), 16)
	key := memoKey(kind, path, hash)
	if v, err := tc.tables.Get(key); err == nil {
		tc.current[path] = key
		tc.log.Debugw("table content unchanged", "kind", kind, "path", path, "hash", hash)
		return v, nil
	}

	v, err := parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := tc.tables.Set(key, v); err != nil {
		return nil, err
	}
	tc.current[path] = key
	tc.log.Infow("table loaded", "kind", kind, "path", path, "hash", hash, "bytes", len(b))
	return v, nil
}

// Watch invalidates and reloads a table whenever its file is written,
// created, renamed or removed. Directories are watched rather than files so
// that editors replacing a file are noticed. Watch returns once the watcher
// is set up; it stops when ctx is done or Close is called.
func (tc *TableCache) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dirs := map[string]bool{}
	for _, p := range []string{tc.ridershipPath, tc.geocodePath} {
		dir := filepath.Dir(p)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
		tc.log.Infow("watching data directory", "dir", dir)
	}

	tc.mu.Lock()
	tc.watcher = watcher
	tc.done = make(chan struct{})
	tc.mu.Unlock()

	go tc.run(ctx, watcher, tc.done)
	return nil
}

// Close stops the watcher, if any.
func (tc *TableCache) Close() error {
	tc.mu.Lock()
	watcher, done := tc.watcher, tc.done
	tc.watcher, tc.done = nil, nil
	tc.mu.Unlock()

	if watcher == nil {
		return nil
	}
	err := watcher.Close()
	<-done
	return err
}

func (tc *TableCache) run(ctx context.Context, watcher *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			tc.handleEvent(event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			tc.log.Warnw("file watcher error", "error", err)
		}
	}
}

func (tc *TableCache) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	path := absPath(event.Name)
	var reload func() error
	switch path {
	case tc.ridershipPath:
		reload = func() error { _, err := tc.LoadRidership(); return err }
	case tc.geocodePath:
		reload = func() error { _, err := tc.LoadGeocode(); return err }
	default:
		return
	}
	tc.Invalidate(path)
	tc.log.Infow("data file changed", "path", path, "op", event.Op.String())
	if err := reload(); err != nil {
		tc.log.Warnw("table reload failed", "path", path, "error", err)
	}
}

func memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a)
	}
	return b.String()
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
