package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/torvenlabs/terrainroute/cost"
	"github.com/torvenlabs/terrainroute/terrain"
)

// Search computes minimum traversal costs from start over g under m,
// expanding cells in order of cost-so-far plus the scaled Euclidean
// heuristic toward target. It accepts functional options to customize
// behavior (WithoutHeuristic, WithContext, WithMaxStepCost, WithMaxCost).
//
// Returns:
//
//   - res: the cost and predecessor maps of the query. When target was
//     reached the maps are partial (early exit does not drain the frontier);
//     when it was not, res still holds everything explored and
//     res.Reached(target) is false. Feed res to Reconstruct for the route.
//   - err: only for invalid inputs or cancellation — an exhausted frontier
//     is a valid outcome, not an error.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. m must be non-nil (ErrNilModel).
//  3. start must be in bounds (ErrStartOutOfBounds).
//  4. target must be in bounds (ErrTargetOutOfBounds).
//
// Termination is guaranteed: the grid is finite and every step cost is
// strictly positive, so the frontier drains in bounded steps even when the
// target is unreachable.
//
// Complexity:
//
//   - Time:  O((V + E) log V), V = N² cells, E ≤ 4V moves
//   - Space: O(V + E)
func Search(g *terrain.Grid, m *cost.Model, start, target terrain.Coord, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs in the documented order.
	if g == nil {
		return nil, ErrNilGrid
	}
	if m == nil {
		return nil, ErrNilModel
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v on %d×%d grid", ErrStartOutOfBounds, start, g.Size(), g.Size())
	}
	if !g.InBounds(target) {
		return nil, fmt.Errorf("%w: %v on %d×%d grid", ErrTargetOutOfBounds, target, g.Size(), g.Size())
	}

	// 3) Allocate the per-query state: flat arrays parallel to the cell
	//    arena, +Inf / -1 meaning "never reached" / "no predecessor".
	n := g.Size()
	res := &Result{
		n:    n,
		cost: make([]float64, n*n),
		prev: make([]int32, n*n),
	}
	for i := range res.cost {
		res.cost[i] = math.Inf(1)
		res.prev[i] = -1
	}

	// 4) The heuristic scale is the model's cheapest per-unit-distance cost,
	//    which keeps the heuristic admissible (and consistent) regardless of
	//    how fast the fastest terrain is. Zero disables the term entirely.
	hscale := 0.0
	if cfg.Informed {
		hscale = m.MinStepCost()
	}

	r := &runner{
		cells:   g.Cells(),
		offsets: g.NeighborOffsets(),
		model:   m,
		opt:     cfg,
		res:     res,
		target:  target,
		hscale:  hscale,
		pq:      make(frontier, 0, n),
	}

	// 5) Seed the frontier and run the expansion loop.
	r.init(start)
	if err := r.process(); err != nil {
		return nil, err
	}

	return res, nil
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	cells   []terrain.Cell // the grid's row-major cell arena; read-only
	offsets [][2]int       // 4-connectivity offsets in fixed N,E,S,W order
	model   *cost.Model    // step-cost model; read-only
	opt     Options        // query configuration
	res     *Result        // cost/prev bookkeeping being filled in
	target  terrain.Coord  // fixed goal of the heuristic and the early exit
	hscale  float64        // heuristic multiplier; 0 in uninformed mode
	pq      frontier       // min-heap of frontier entries
}

// init records the zero cost of start and pushes it with priority 0.
func (r *runner) init(start terrain.Coord) {
	idx := int32(start.Index(r.res.n))
	r.res.cost[idx] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, entry{priority: 0, gcost: 0, idx: idx})
}

// process is the core expansion loop. It repeatedly pops the
// minimum-priority entry, discards it if stale, exits early on the target,
// and otherwise relaxes the cell's in-bounds neighbors.
//
// Loop termination conditions:
//
//   - the target cell is popped (early exit — the frontier is not drained);
//   - the frontier empties (target unreachable given the step threshold,
//     or every remaining move would exceed MaxCost);
//   - the context is canceled (returned as ErrCanceled).
func (r *runner) process() error {
	targetIdx := int32(r.target.Index(r.res.n))
	for r.pq.Len() > 0 {
		// 1) Honor cancellation once per pop.
		if r.opt.Ctx != nil {
			if err := r.opt.Ctx.Err(); err != nil {
				return fmt.Errorf("%w: %w", ErrCanceled, err)
			}
		}

		// 2) Pop the minimum-priority entry.
		e := heap.Pop(&r.pq).(entry)

		// 3) Lazy decrease-key: if the recorded cost no longer matches the
		//    best known cost for this cell, the entry is stale — skip it.
		if e.gcost > r.res.cost[e.idx] {
			continue
		}

		// 4) Early exit: the target's cost is final once it is popped.
		//    MaxCost needs no check here: relax never records a cost above
		//    the budget, so every popped entry is already within it.
		if e.idx == targetIdx {
			r.res.expanded++
			break
		}

		r.res.expanded++
		r.relax(e.idx, e.gcost)
	}

	return nil
}

// relax examines the 4 axis-aligned neighbors of the cell at idx and
// records every strict cost improvement, pushing a fresh frontier entry
// per improvement.
//
// Assumes r.res.cost[idx] == gcost and that this value is final.
func (r *runner) relax(idx int32, gcost float64) {
	n := r.res.n
	cur := r.cells[idx]
	for _, off := range r.offsets {
		nx, ny := cur.X+off[0], cur.Y+off[1]
		if nx < 0 || nx >= n || ny < 0 || ny >= n {
			continue
		}
		nIdx := int32(ny*n + nx)
		neighbor := r.cells[nIdx]

		// Steps at or above the threshold are impassable walls.
		step := r.model.Step(cur, neighbor)
		if step >= r.opt.MaxStepCost {
			continue
		}

		newCost := gcost + step
		if newCost > r.opt.MaxCost {
			continue
		}

		// Strict improvement only: "<" avoids duplicate pushes on ties and
		// keeps every written cost a genuine decrease.
		if newCost >= r.res.cost[nIdx] {
			continue
		}

		r.res.cost[nIdx] = newCost
		r.res.prev[nIdx] = idx
		heap.Push(&r.pq, entry{
			priority: newCost + r.heuristic(nx, ny),
			gcost:    newCost,
			idx:      nIdx,
		})
	}
}

// heuristic estimates the remaining cost from (x,y) to the target:
// Euclidean distance scaled by the model's cheapest per-unit cost.
// Returns 0 in uninformed mode.
func (r *runner) heuristic(x, y int) float64 {
	if r.hscale == 0 {
		return 0
	}
	dx := float64(r.target.X - x)
	dy := float64(r.target.Y - y)

	return r.hscale * math.Sqrt(dx*dx+dy*dy)
}

// entry is one frontier element: a cell index with the priority it was
// pushed at and the cost-so-far backing that priority (used for the
// staleness check at pop time).
type entry struct {
	priority float64
	gcost    float64
	idx      int32
}

// frontier is a min-heap of entries ordered by priority ascending, with
// ties broken by ascending cell index. The secondary key makes the pop
// order — and therefore the returned route — deterministic across runs.
// Stale entries are never removed in place; they are discarded when popped
// (lazy decrease-key).
type frontier []entry

// Len returns the number of entries in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by priority, then by cell index for reproducible ties.
func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].idx < f[j].idx
}

// Swap swaps two entries.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends a new entry; called by heap.Push.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(entry)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	e := old[n-1]
	*f = old[:n-1]

	return e
}
