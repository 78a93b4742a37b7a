package pages

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/thermitegod/mcomix-lite/pkg/cache"
	errs "github.com/thermitegod/mcomix-lite/pkg/errors"
	"github.com/thermitegod/mcomix-lite/pkg/layout"
	"github.com/thermitegod/mcomix-lite/pkg/observability"
)

// maxParallelReads bounds the number of files open at once.
const maxParallelReads = 8

// cacheKeyType labels page size lookups in cache hooks.
const cacheKeyType = "dims"

var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// Page is one image of a comic in reading order.
type Page struct {
	Path string
	Name string
	Size layout.Vec2
}

// IsSupported reports whether name has an image extension this package
// can decode.
func IsSupported(name string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(name))]
}

// Sizes returns the sizes of pages in order.
func Sizes(pages []Page) []layout.Vec2 {
	sizes := make([]layout.Vec2, len(pages))
	for i, p := range pages {
		sizes[i] = p.Size
	}
	return sizes
}

// DecodeSize reads an image header from r.
func DecodeSize(r io.Reader) (layout.Vec2, error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return layout.Vec2{}, errs.Wrap(errs.ErrCodeUnsupportedImage, err, "decode image header")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return layout.Vec2{}, errs.New(errs.ErrCodeUnsupportedImage, "empty image %dx%d", cfg.Width, cfg.Height)
	}
	return layout.Vec2{int32(cfg.Width), int32(cfg.Height)}, nil
}

// =============================================================================
// Reader
// =============================================================================

// Reader reads page sizes through a cache. It is safe for concurrent use
// when its cache is.
type Reader struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	TTL    time.Duration
	Logger *log.Logger
}

// NewReader creates a reader. A nil cache disables caching, a nil keyer
// uses [cache.NewDefaultKeyer] and a nil logger discards output.
func NewReader(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Reader {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Reader{
		Cache:  c,
		Keyer:  keyer,
		TTL:    cache.TTLDimensions,
		Logger: logger,
	}
}

// ReadSize returns the pixel size of the image at path.
func (r *Reader) ReadSize(ctx context.Context, path string) (layout.Vec2, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return layout.Vec2{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "page %s", path)
		}
		return layout.Vec2{}, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	key := r.Keyer.DimensionsKey(abs, cache.DimensionsKeyOpts{Size: info.Size(), ModTime: info.ModTime()})

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		if size, err := layout.ParseVec2(string(data)); err == nil {
			observability.Cache().OnCacheHit(ctx, cacheKeyType)
			r.Logger.Debug("page size cached", "path", path, "size", size)
			return size, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, cacheKeyType)

	f, err := os.Open(path)
	if err != nil {
		return layout.Vec2{}, err
	}
	defer f.Close()

	size, err := DecodeSize(f)
	if err != nil {
		return layout.Vec2{}, fmt.Errorf("%s: %w", path, err)
	}
	value := []byte(size.String())
	if err := r.Cache.Set(ctx, key, value, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "path", path, "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, cacheKeyType, len(value))
	}
	r.Logger.Debug("page size decoded", "path", path, "size", size)
	return size, nil
}

// ReadPages reads the sizes of paths in parallel and returns the pages in
// the given order. The first error encountered, in path order, is returned.
func (r *Reader) ReadPages(ctx context.Context, paths []string) ([]Page, error) {
	pages := make([]Page, len(paths))
	errList := make([]error, len(paths))

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxParallelReads)

	for i, path := range paths {
		wg.Add(1)
		go func(idx int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if err := ctx.Err(); err != nil {
				errList[idx] = err
				return
			}
			size, err := r.ReadSize(ctx, path)
			pages[idx] = Page{Path: path, Name: filepath.Base(path), Size: size}
			errList[idx] = err
		}(i, path)
	}
	wg.Wait()

	for _, err := range errList {
		if err != nil {
			return nil, err
		}
	}
	return pages, nil
}

// Discover lists the supported images directly inside dir in the given
// order and reads their sizes.
func (r *Reader) Discover(ctx context.Context, dir string, order Order) ([]Page, error) {
	paths, err := List(dir, order)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("discovered pages", "dir", dir, "count", len(paths), "sort", order.By)
	return r.ReadPages(ctx, paths)
}

// List returns the paths of the supported images directly inside dir.
// Size and modification time come from the directory entries.
func List(dir string, order Order) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "directory %s", dir)
		}
		return nil, err
	}

	var files []fileInfo
	for _, e := range entries {
		if e.IsDir() || !IsSupported(e.Name()) {
			continue
		}
		f := fileInfo{name: e.Name()}
		if order.needsStat() {
			info, err := e.Info()
			if err != nil {
				return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
			}
			f.size, f.modTime = info.Size(), info.ModTime()
		}
		files = append(files, f)
	}
	order.sort(files)

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = filepath.Join(dir, f.name)
	}
	return paths, nil
}
