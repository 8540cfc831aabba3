package collision

import "github.com/younwookim/gemhop/internal/domain/entity"

// List is a Solids backed by a linear scan in insertion order.
// The grid index is checked against it.
type List []*entity.Entity

func (l List) Overlapping(r entity.Rect) []*entity.Entity {
	var hits []*entity.Entity
	for _, e := range l {
		if e.Overlaps(r) {
			hits = append(hits, e)
		}
	}
	return hits
}
