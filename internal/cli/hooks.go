package cli

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/thermitegod/mcomix-lite/pkg/observability"
)

// cacheStats counts page size cache lookups.
type cacheStats struct {
	observability.NoopCacheHooks
	hits   atomic.Int64
	misses atomic.Int64
}

func (s *cacheStats) OnCacheHit(context.Context, string)  { s.hits.Add(1) }
func (s *cacheStats) OnCacheMiss(context.Context, string) { s.misses.Add(1) }

// snapshot returns the counts so far.
func (s *cacheStats) snapshot() (hits, misses int64) {
	return s.hits.Load(), s.misses.Load()
}

// stageLogger logs pipeline stage timings at debug level.
type stageLogger struct {
	logger *log.Logger
}

func (h stageLogger) OnReadStart(context.Context, string) {}

func (h stageLogger) OnReadComplete(_ context.Context, source string, pageCount int, d time.Duration, err error) {
	h.logger.Debug("stage read", "source", source, "pages", pageCount, "duration", d, "error", err)
}

func (h stageLogger) OnLayoutStart(context.Context, int) {}

func (h stageLogger) OnLayoutComplete(_ context.Context, pageCount int, d time.Duration, err error) {
	h.logger.Debug("stage layout", "pages", pageCount, "duration", d, "error", err)
}

func (h stageLogger) OnRenderStart(context.Context, []string) {}

func (h stageLogger) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.logger.Debug("stage render", "formats", formats, "duration", d, "error", err)
}

// RegisterHooks installs the CLI's observability hooks. main calls it once
// before running a command.
func (c *CLI) RegisterHooks() {
	observability.SetCacheHooks(c.stats)
	observability.SetPipelineHooks(stageLogger{logger: c.Logger})
}
