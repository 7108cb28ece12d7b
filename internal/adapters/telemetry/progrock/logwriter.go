package progrock

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/conda-project/internal/core/ports"
)

// failureTail is the number of output lines replayed when a vertex fails.
const failureTail = 10

var _ progrock.Writer = (*LogWriter)(nil)

// LogWriter is a progrock.Writer that reports vertex progress through a logger.
// Starts, cache hits and completions are logged at debug level. When a vertex
// fails, the last lines of its output are replayed as a warning.
type LogWriter struct {
	logger ports.Logger

	mu       sync.Mutex
	started  map[string]bool
	finished map[string]bool
	output   map[string][]string
}

// NewLogWriter creates a LogWriter reporting to logger.
func NewLogWriter(logger ports.Logger) *LogWriter {
	return &LogWriter{
		logger:   logger,
		started:  make(map[string]bool),
		finished: make(map[string]bool),
		output:   make(map[string][]string),
	}
}

// WriteStatus consumes one status update.
func (w *LogWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, l := range update.Logs {
		w.appendOutput(l.Vertex, string(l.Data))
	}

	for _, v := range update.Vertexes {
		if !w.started[v.Id] {
			w.started[v.Id] = true
			w.logger.Debug(v.Name + ": started")
		}
		if v.Completed == nil || w.finished[v.Id] {
			continue
		}
		w.finished[v.Id] = true
		w.complete(v)
	}
	return nil
}

func (w *LogWriter) appendOutput(id, data string) {
	lines := w.output[id]
	for _, line := range strings.Split(strings.TrimRight(data, "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) > failureTail {
		lines = lines[len(lines)-failureTail:]
	}
	w.output[id] = lines
}

func (w *LogWriter) complete(v *progrock.Vertex) {
	tail := w.output[v.Id]
	delete(w.output, v.Id)

	switch {
	case v.Canceled:
		w.logger.Debug(v.Name + ": canceled")
	case v.Error != nil:
		msg := fmt.Sprintf("%s failed after %s", v.Name, elapsed(v))
		if len(tail) > 0 {
			msg += ", last output:\n  " + strings.Join(tail, "\n  ")
		}
		w.logger.Warn(msg)
	case v.Cached:
		w.logger.Debug(v.Name + ": up to date")
	default:
		w.logger.Debug(fmt.Sprintf("%s: done in %s", v.Name, elapsed(v)))
	}
}

func elapsed(v *progrock.Vertex) time.Duration {
	if v.Started == nil || v.Completed == nil {
		return 0
	}
	return v.Completed.AsTime().Sub(v.Started.AsTime()).Round(time.Millisecond)
}

// Close does nothing; every update is logged as it arrives.
func (w *LogWriter) Close() error {
	return nil
}
