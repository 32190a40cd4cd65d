package geo

import (
	"math"
	"sort"
	"sync"

	"github.com/uber/h3-go/v4"

	"geoalert/internal/domain"
)

const (
	// resolution 6 hexagons have an average edge of ~3.72 km.
	indexResolution = 6
	avgEdgeKm       = 3.724532667
	// cell shapes vary across the globe, bound the ring count with a
	// pessimistic edge range
	minEdgeKm = avgEdgeKm / 2
	maxEdgeKm = avgEdgeKm * 2
	// past this many rings a full scan is cheaper than walking the disk
	maxRings = 60
)

// Index buckets points by H3 cell so radius queries only look at the cells
// around the center instead of every stored point. The haversine check in
// WithinRadius still makes the final decision. Safe for concurrent use.
type Index struct {
	mu     sync.RWMutex
	cells  map[h3.Cell]map[string]domain.Point
	placed map[string]h3.Cell
}

func NewIndex() *Index {
	return &Index{
		cells:  make(map[h3.Cell]map[string]domain.Point),
		placed: make(map[string]h3.Cell),
	}
}

// Put inserts or moves a point.
func (x *Index) Put(id string, p domain.Point) error {
	if err := p.Validate(); err != nil {
		return err
	}
	cell := cellOf(p)

	x.mu.Lock()
	defer x.mu.Unlock()

	x.removeLocked(id)
	bucket, ok := x.cells[cell]
	if !ok {
		bucket = make(map[string]domain.Point)
		x.cells[cell] = bucket
	}
	bucket[id] = p
	x.placed[id] = cell
	return nil
}

func (x *Index) Remove(id string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.removeLocked(id)
}

func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.placed)
}

// Reset replaces the whole content of the index.
func (x *Index) Reset(candidates []Candidate) {
	fresh := NewIndex()
	for _, c := range candidates {
		_ = fresh.Put(c.ID, c.Point)
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	x.cells, x.placed = fresh.cells, fresh.placed
}

// Within returns indexed points at 0 < distance <= radiusKm, ordered by id.
func (x *Index) Within(center domain.Point, radiusKm float64) ([]Candidate, error) {
	if err := center.Validate(); err != nil {
		return nil, err
	}

	x.mu.RLock()
	var pool []Candidate
	if k := ringsFor(radiusKm); k > maxRings {
		pool = x.allLocked()
	} else {
		for _, cell := range h3.GridDisk(cellOf(center), k) {
			for id, p := range x.cells[cell] {
				pool = append(pool, Candidate{ID: id, Point: p})
			}
		}
	}
	x.mu.RUnlock()

	sort.Slice(pool, func(i, j int) bool { return pool[i].ID < pool[j].ID })
	return WithinRadius(center, pool, radiusKm)
}

func (x *Index) allLocked() []Candidate {
	out := make([]Candidate, 0, len(x.placed))
	for _, bucket := range x.cells {
		for id, p := range bucket {
			out = append(out, Candidate{ID: id, Point: p})
		}
	}
	return out
}

func (x *Index) removeLocked(id string) {
	cell, ok := x.placed[id]
	if !ok {
		return
	}
	delete(x.placed, id)
	if bucket := x.cells[cell]; bucket != nil {
		delete(bucket, id)
		if len(bucket) == 0 {
			delete(x.cells, cell)
		}
	}
}

func cellOf(p domain.Point) h3.Cell {
	return h3.LatLngToCell(h3.NewLatLng(p.Lat, p.Lng), indexResolution)
}

// ringsFor returns how many hexagon rings around the center cell are enough
// to contain every point within radiusKm: the radius itself plus the spill
// of the center and target cells, over the smallest neighbour spacing.
func ringsFor(radiusKm float64) int {
	if radiusKm <= 0 || math.IsNaN(radiusKm) {
		return 0
	}
	spacing := math.Sqrt(3) * minEdgeKm
	return int(math.Ceil((radiusKm + 2*maxEdgeKm) / spacing))
}
