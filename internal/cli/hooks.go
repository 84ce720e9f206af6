package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logDiffHooks emits debug logs for extraction and diff events.
type logDiffHooks struct {
	logger *log.Logger
}

func (h logDiffHooks) OnExtractStart(_ context.Context, format, path string) {
	h.logger.Debug("extracting", "format", format, "path", path)
}

func (h logDiffHooks) OnExtractComplete(_ context.Context, format, path string, count int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("extraction failed", "format", format, "path", path, "err", err)
		return
	}
	h.logger.Debug("extracted", "format", format, "path", path, "deps", count, "took", duration.Round(time.Millisecond))
}

func (h logDiffHooks) OnDiffComplete(_ context.Context, format string, added int, duration time.Duration) {
	h.logger.Debug("diff computed", "format", format, "added", added, "took", duration.Round(time.Microsecond))
}

// logRegistryHooks emits debug logs for registry fetches.
type logRegistryHooks struct {
	logger *log.Logger
}

func (h logRegistryHooks) OnFetchStart(_ context.Context, registry, key string) {
	h.logger.Debug("fetching", "registry", registry, "key", key)
}

func (h logRegistryHooks) OnFetchComplete(_ context.Context, registry, key string, cached bool, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("fetch failed", "registry", registry, "key", key, "err", err)
		return
	}
	h.logger.Debug("fetched", "registry", registry, "key", key, "cached", cached, "took", duration.Round(time.Millisecond))
}
