package progrock_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/conda-project/internal/adapters/telemetry/progrock"
	"go.trai.ch/conda-project/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type captureWriter struct {
	mu       sync.Mutex
	vertexes []*vprogrock.Vertex
	closed   bool
}

func (c *captureWriter) WriteStatus(update *vprogrock.StatusUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vertexes = append(c.vertexes, update.Vertexes...)
	return nil
}

func (c *captureWriter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *captureWriter) find(match func(*vprogrock.Vertex) bool) *vprogrock.Vertex {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, v := range c.vertexes {
		if match(v) {
			return v
		}
	}
	return nil
}

func TestRecorder_Lifecycle(t *testing.T) {
	w := &captureWriter{}
	rec := progrock.NewRecorder(w)

	ctx := context.Background()
	got, vertex := rec.Record(ctx, "lock default")
	assert.Equal(t, ctx, got)

	_, err := vertex.Stdout().Write([]byte("solving\n"))
	require.NoError(t, err)
	vertex.Complete(nil)

	require.NoError(t, rec.Close())
	assert.True(t, w.closed)

	done := w.find(func(v *vprogrock.Vertex) bool { return v.Name == "lock default" && v.Completed != nil })
	require.NotNil(t, done)
	assert.Nil(t, done.Error)
}

func TestRecorder_CachedAndFailed(t *testing.T) {
	w := &captureWriter{}
	rec := progrock.NewRecorder(w)

	_, cached := rec.Record(context.Background(), "prepare default")
	cached.Cached()
	cached.Complete(nil)

	_, failed := rec.Record(context.Background(), "clean default")
	failed.Complete(errors.New("boom"))

	assert.NotNil(t, w.find(func(v *vprogrock.Vertex) bool { return v.Name == "prepare default" && v.Cached }))
	assert.NotNil(t, w.find(func(v *vprogrock.Vertex) bool { return v.Name == "clean default" && v.Error != nil }))
}

func TestRecorder_RepeatedNamesAreDistinct(t *testing.T) {
	w := &captureWriter{}
	rec := progrock.NewRecorder(w)

	_, first := rec.Record(context.Background(), "lock default")
	first.Complete(nil)
	_, second := rec.Record(context.Background(), "lock default")
	second.Complete(nil)

	ids := map[string]struct{}{}
	w.mu.Lock()
	for _, v := range w.vertexes {
		if v.Name == "lock default" {
			ids[v.Id] = struct{}{}
		}
	}
	w.mu.Unlock()
	assert.Len(t, ids, 2)
}

func TestNew_ReportsThroughLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		log.EXPECT().Debug("prepare default: started"),
		log.EXPECT().Debug("prepare default: up to date"),
	)

	rec := progrock.New(log)
	_, v := rec.Record(context.Background(), "prepare default")
	v.Cached()
	v.Complete(nil)
	assert.NoError(t, rec.Close())
}
