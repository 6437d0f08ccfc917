package occlusion

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestIsPointerOverUIElement(t *testing.T) {
	tests := []struct {
		name    string
		hits    []Hit
		uiLayer int
		want    bool
	}{
		{"no hits", nil, DefaultUILayer, false},
		{"ui layer hit", []Hit{{ID: "button", Layer: 5}}, DefaultUILayer, true},
		{"other layer only", []Hit{{ID: "world", Layer: 0}}, DefaultUILayer, false},
		{"any hit counts", []Hit{{ID: "world", Layer: 0}, {ID: "panel", Layer: 5}}, DefaultUILayer, true},
		{"excluded layer never blocks", []Hit{{ID: "overlay", Layer: ExcludedLayer}}, ExcludedLayer, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPointerOverUIElement(tt.hits, tt.uiLayer))
		})
	}
}

func TestRegions(t *testing.T) {
	rs := NewRegions(
		Region{ID: "toolbar", X: 0, Y: 0, Width: 1280, Height: 64, Layer: DefaultUILayer},
		Region{ID: "minimap", X: 1080, Y: 520, Width: 200, Height: 200, Layer: ExcludedLayer},
	)
	rs.Add(Region{ID: "menu", X: 0, Y: 0, Width: 100, Height: 100, Layer: DefaultUILayer})
	require.Equal(t, 3, rs.Len())

	hits := rs.RaycastAll(mgl32.Vec2{10, 10})
	require.Len(t, hits, 2)
	assert.Equal(t, "menu", hits[0].ID, "topmost region first")
	assert.Equal(t, "toolbar", hits[1].ID)

	assert.Empty(t, rs.RaycastAll(mgl32.Vec2{640, 360}))
	assert.Empty(t, rs.RaycastAll(mgl32.Vec2{1280, 10}), "right edge is exclusive")

	rs.Add(Region{ID: "toolbar", X: 0, Y: 0, Width: 10, Height: 10, Layer: DefaultUILayer})
	assert.Equal(t, 3, rs.Len(), "same id replaces")

	assert.True(t, rs.Remove("menu"))
	assert.False(t, rs.Remove("menu"))
	rs.Clear()
	assert.Zero(t, rs.Len())
}

func TestLayerQuery(t *testing.T) {
	rs := NewRegions(
		Region{ID: "toolbar", X: 0, Y: 0, Width: 1280, Height: 64, Layer: DefaultUILayer},
		Region{ID: "minimap", X: 1080, Y: 520, Width: 200, Height: 200, Layer: ExcludedLayer},
	)
	q := NewLayerQuery(rs, WithLogger(zaptest.NewLogger(t)))

	assert.Equal(t, DefaultUILayer, q.UILayer())
	assert.True(t, q.IsOccluded(mgl32.Vec2{640, 20}))
	assert.False(t, q.IsOccluded(mgl32.Vec2{640, 360}))
	assert.False(t, q.IsOccluded(mgl32.Vec2{1100, 600}), "non-blocking surface")

	custom := NewLayerQuery(rs, WithUILayer(ExcludedLayer))
	assert.False(t, custom.IsOccluded(mgl32.Vec2{1100, 600}), "excluded layer stays excluded")

	assert.False(t, NewLayerQuery(nil).IsOccluded(mgl32.Vec2{}))
	assert.False(t, Never.IsOccluded(mgl32.Vec2{}))
	assert.True(t, QueryFunc(func(mgl32.Vec2) bool { return true }).IsOccluded(mgl32.Vec2{}))
}

func TestLayerQueryLogsBlockingElement(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	rs := NewRegions(
		Region{ID: "toolbar", X: 0, Y: 0, Width: 1280, Height: 64, Layer: DefaultUILayer},
		Region{ID: "tooltip", X: 600, Y: 0, Width: 100, Height: 40, Layer: ExcludedLayer},
		Region{ID: "decal", X: 600, Y: 0, Width: 100, Height: 40, Layer: 0},
	)
	q := NewLayerQuery(rs, WithLogger(zap.New(core)))

	hits := rs.RaycastAll(mgl32.Vec2{640, 20})
	require.Len(t, hits, 3)
	assert.Equal(t, "decal", hits[0].ID)

	require.True(t, q.IsOccluded(mgl32.Vec2{640, 20}))
	entries := logs.FilterMessage("pointer over ui").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "toolbar", entries[0].ContextMap()["element"])
}
