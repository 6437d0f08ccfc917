package occlusion

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Region is a rectangular UI element in screen space (origin bottom-left).
type Region struct {
	ID     string
	X, Y   float32
	Width  float32
	Height float32
	Layer  int
}

// Contains reports whether the point is within the region bounds.
func (r Region) Contains(p mgl32.Vec2) bool {
	return p.X() >= r.X && p.X() < r.X+r.Width && p.Y() >= r.Y && p.Y() < r.Y+r.Height
}

// Regions is a Raycaster over a stack of rectangular regions. Regions added later are on top.
// Safe for concurrent use; hosts may edit the layout while the rig queries it.
type Regions struct {
	mu      sync.RWMutex
	regions []Region
}

var _ Raycaster = &Regions{}

// NewRegions creates a region stack, bottom to top.
func NewRegions(regions ...Region) *Regions {
	return &Regions{regions: append([]Region(nil), regions...)}
}

// Add places a region on top of the stack. A region with the same ID is replaced.
func (rs *Regions) Add(r Region) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.remove(r.ID)
	rs.regions = append(rs.regions, r)
}

// Remove deletes the region with the given ID.
//
// Returns:
//   - bool: true if a region was removed
func (rs *Regions) Remove(id string) bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.remove(id)
}

// Clear removes every region.
func (rs *Regions) Clear() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.regions = rs.regions[:0]
}

// Len returns the number of regions.
func (rs *Regions) Len() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return len(rs.regions)
}

func (rs *Regions) RaycastAll(position mgl32.Vec2) []Hit {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	var hits []Hit
	for i := len(rs.regions) - 1; i >= 0; i-- {
		r := rs.regions[i]
		if r.Contains(position) {
			hits = append(hits, Hit{ID: r.ID, Layer: r.Layer})
		}
	}
	return hits
}

// remove deletes the region with the given ID.
// Caller must hold the write lock.
func (rs *Regions) remove(id string) bool {
	for i, r := range rs.regions {
		if r.ID == id {
			rs.regions = append(rs.regions[:i], rs.regions[i+1:]...)
			return true
		}
	}
	return false
}
