package qix

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/qix-arcade/internal/core"
)

// Region validation errors.
var (
	ErrInvertedRegion  = errors.New("qix: region min exceeds max")
	ErrNonFiniteRegion = errors.New("qix: region has non-finite edge")
)

// Region is an axis-aligned rectangle of unclaimed field.
type Region struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// FullField returns the whole unit-square playfield.
func FullField() Region {
	return Region{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
}

// Validate reports whether the region is finite with min <= max on both axes.
func (r Region) Validate() error {
	if !core.IsFinite(r.MinX) || !core.IsFinite(r.MinY) ||
		!core.IsFinite(r.MaxX) || !core.IsFinite(r.MaxY) {
		return ErrNonFiniteRegion
	}
	if r.MinX > r.MaxX || r.MinY > r.MaxY {
		return ErrInvertedRegion
	}
	return nil
}

// OnEdge reports whether p lies exactly on any of the four edges.
func (r Region) OnEdge(p Position) bool {
	return p.X == r.MinX || p.X == r.MaxX || p.Y == r.MinY || p.Y == r.MaxY
}

// Contains reports whether p lies inside or on the region.
func (r Region) Contains(p Position) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Boundary owns the shared unclaimed region. Every accepted write bumps the
// version so a tick can tell which region it clamped against.
type Boundary struct {
	mu      sync.RWMutex
	region  Region
	version uint64
}

// NewBoundary creates a boundary holding the given region.
func NewBoundary(r Region) (*Boundary, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("qix: initial boundary %+v: %w", r, err)
	}
	return &Boundary{region: r, version: 1}, nil
}

// Snapshot returns the current region and its version.
func (b *Boundary) Snapshot() (Region, uint64) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.region, b.version
}

// Replace installs a new region. This is the write path for territory
// claims; invalid regions are rejected and leave the boundary unchanged.
func (b *Boundary) Replace(r Region) (uint64, error) {
	if err := r.Validate(); err != nil {
		return 0, fmt.Errorf("qix: replace boundary with %+v: %w", r, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.region = r
	b.version++
	return b.version, nil
}
