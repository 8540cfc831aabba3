// Package collision resolves moving boxes against static level geometry.
package collision

import (
	"sort"

	"github.com/solarlune/resolv"
	"github.com/younwookim/gemhop/internal/domain/entity"
)

const (
	tagSolid = "solid"
	tagProbe = "probe"
)

// Solids answers which static boxes overlap a query box
type Solids interface {
	Overlapping(r entity.Rect) []*entity.Entity
}

// Index is a Solids backed by a uniform grid keyed by tile coordinate.
// The grid narrows the candidates, an exact box test decides the hits.
type Index struct {
	space *resolv.Space
	probe *resolv.Object
	order map[*resolv.Object]int
}

// NewIndex builds a grid over a world of the given size with one cell per tile
func NewIndex(platforms []*entity.Entity, worldW, worldH, tileSize float64) *Index {
	cell := int(tileSize)
	if cell <= 0 {
		cell = 64
	}

	idx := &Index{
		space: resolv.NewSpace(int(worldW), int(worldH), cell, cell),
		order: make(map[*resolv.Object]int, len(platforms)),
	}

	for i, p := range platforms {
		obj := resolv.NewObject(p.X, p.Y, p.W, p.H, tagSolid)
		obj.Data = p
		idx.space.Add(obj)
		idx.order[obj] = i
	}

	idx.probe = resolv.NewObject(0, 0, 1, 1, tagProbe)
	idx.space.Add(idx.probe)

	return idx
}

// Overlapping returns the platforms overlapping r in insertion order
func (x *Index) Overlapping(r entity.Rect) []*entity.Entity {
	// Pad the probe so fractional edges never drop a touched cell.
	x.probe.X, x.probe.Y = r.X-1, r.Y-1
	x.probe.W, x.probe.H = r.W+2, r.H+2
	x.probe.Update()

	check := x.probe.Check(0, 0, tagSolid)
	if check == nil {
		return nil
	}

	candidates := check.ObjectsByTags(tagSolid)
	sort.Slice(candidates, func(i, j int) bool {
		return x.order[candidates[i]] < x.order[candidates[j]]
	})

	var hits []*entity.Entity
	for _, obj := range candidates {
		p, ok := obj.Data.(*entity.Entity)
		if !ok {
			continue
		}
		if p.Overlaps(r) {
			hits = append(hits, p)
		}
	}
	return hits
}
