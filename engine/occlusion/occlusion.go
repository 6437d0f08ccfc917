// package occlusion decides whether a pointer or touch is over a blocking UI element.
// The camera rig depends only on the Query interface; hosts supply the hit testing.
package occlusion

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	// DefaultUILayer is the layer index UI elements are placed on.
	DefaultUILayer = 5
	// ExcludedLayer is reserved for non-blocking UI surfaces and never occludes.
	ExcludedLayer = 6
)

// Hit is a single UI element under a screen position.
type Hit struct {
	ID    string
	Layer int
}

// Query reports whether a screen position is occluded by UI.
type Query interface {
	// IsOccluded returns true if camera interaction starting at position must be ignored.
	//
	// Parameters:
	//   - position: screen position in pixels, origin bottom-left
	//
	// Returns:
	//   - bool: true if the position is over blocking UI
	IsOccluded(position mgl32.Vec2) bool
}

// QueryFunc adapts a plain function to the Query interface.
type QueryFunc func(position mgl32.Vec2) bool

// IsOccluded calls f.
func (f QueryFunc) IsOccluded(position mgl32.Vec2) bool {
	return f(position)
}

// Never is a Query for hosts without UI.
var Never Query = QueryFunc(func(mgl32.Vec2) bool { return false })

// Raycaster returns every UI element under a screen position.
type Raycaster interface {
	// RaycastAll returns all hits at position, topmost first.
	//
	// Parameters:
	//   - position: screen position in pixels, origin bottom-left
	//
	// Returns:
	//   - []Hit: the hits, empty if nothing is under the position
	RaycastAll(position mgl32.Vec2) []Hit
}

// IsPointerOverUIElement returns true iff any hit is on uiLayer and that layer is not ExcludedLayer.
//
// Parameters:
//   - hits: raycast results at the pointer position
//   - uiLayer: the layer index designated for UI
//
// Returns:
//   - bool: true if a blocking UI element was hit
func IsPointerOverUIElement(hits []Hit, uiLayer int) bool {
	_, ok := firstUIHit(hits, uiLayer)
	return ok
}

// firstUIHit returns the first hit that blocks input on uiLayer.
func firstUIHit(hits []Hit, uiLayer int) (Hit, bool) {
	for _, h := range hits {
		if h.Layer == uiLayer && h.Layer != ExcludedLayer {
			return h, true
		}
	}
	return Hit{}, false
}

// LayerQuery is a Query that raycasts into UI and filters the hits by layer.
type LayerQuery struct {
	raycaster Raycaster
	uiLayer   int
	logger    *zap.Logger
}

var _ Query = &LayerQuery{}

// NewLayerQuery creates a LayerQuery over the given raycaster using DefaultUILayer.
//
// Parameters:
//   - raycaster: the UI hit tester
//   - options: functional options to configure the query
//
// Returns:
//   - *LayerQuery: the newly created query
func NewLayerQuery(raycaster Raycaster, options ...LayerQueryOption) *LayerQuery {
	q := &LayerQuery{
		raycaster: raycaster,
		uiLayer:   DefaultUILayer,
		logger:    zap.NewNop(),
	}
	for _, option := range options {
		option(q)
	}
	return q
}

// UILayer returns the layer index treated as UI.
func (q *LayerQuery) UILayer() int {
	return q.uiLayer
}

func (q *LayerQuery) IsOccluded(position mgl32.Vec2) bool {
	if q.raycaster == nil {
		return false
	}
	hit, occluded := firstUIHit(q.raycaster.RaycastAll(position), q.uiLayer)
	if occluded {
		q.logger.Debug("pointer over ui",
			zap.Float32("x", position.X()),
			zap.Float32("y", position.Y()),
			zap.String("element", hit.ID),
		)
	}
	return occluded
}

// LayerQueryOption is a functional option for configuring a LayerQuery.
type LayerQueryOption func(*LayerQuery)

// WithUILayer sets the layer index treated as UI.
//
// Parameters:
//   - layer: UI layer index
//
// Returns:
//   - LayerQueryOption: functional option to set the UI layer
func WithUILayer(layer int) LayerQueryOption {
	return func(q *LayerQuery) {
		q.uiLayer = layer
	}
}

// WithLogger sets the logger used for occlusion debug output.
//
// Parameters:
//   - logger: the zap logger
//
// Returns:
//   - LayerQueryOption: functional option to set the logger
func WithLogger(logger *zap.Logger) LayerQueryOption {
	return func(q *LayerQuery) {
		if logger != nil {
			q.logger = logger
		}
	}
}
