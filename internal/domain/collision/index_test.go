package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/gemhop/internal/domain/entity"
)

func TestIndex_MatchesList(t *testing.T) {
	platforms := platformsAt(
		entity.Point{X: 0, Y: 8}, entity.Point{X: 1, Y: 8}, entity.Point{X: 2, Y: 8},
		entity.Point{X: 5, Y: 6}, entity.Point{X: 6, Y: 6},
		entity.Point{X: 31, Y: 0},
	)
	idx := NewIndex(platforms, 32*tile, 9*tile, tile)
	list := List(platforms)

	for x := -40.0; x < 32*tile; x += 13.5 {
		for y := -40.0; y < 9*tile; y += 17.25 {
			r := entity.Rect{X: x, Y: y, W: tile, H: tile}
			assert.Equal(t, list.Overlapping(r), idx.Overlapping(r), "query %+v", r)
		}
	}
}

func TestIndex_InsertionOrder(t *testing.T) {
	platforms := platformsAt(entity.Point{X: 2, Y: 1}, entity.Point{X: 1, Y: 1})
	idx := NewIndex(platforms, 4*tile, 4*tile, tile)

	hits := idx.Overlapping(entity.Rect{X: 100, Y: 70, W: tile, H: tile})

	if assert.Len(t, hits, 2) {
		assert.Same(t, platforms[0], hits[0])
		assert.Same(t, platforms[1], hits[1])
	}
}

func TestIndex_TouchingIsNotOverlapping(t *testing.T) {
	platforms := platformsAt(entity.Point{X: 1, Y: 1})
	idx := NewIndex(platforms, 4*tile, 4*tile, tile)

	assert.Empty(t, idx.Overlapping(entity.Rect{X: 0, Y: 64, W: tile, H: tile}))
	assert.Empty(t, idx.Overlapping(entity.Rect{X: 64, Y: 0, W: tile, H: tile}))
	assert.Len(t, idx.Overlapping(entity.Rect{X: 0.5, Y: 64, W: tile, H: tile}), 1)
}
