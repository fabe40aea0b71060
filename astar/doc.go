// Package astar implements informed minimum-cost search on a terrain grid,
// plus path reconstruction from the predecessor map it produces.
//
// Search expands cells in order of cost-so-far + heuristic using a min-heap
// frontier with the “lazy decrease-key” strategy: every improvement pushes a
// fresh entry and stale entries are discarded at pop time by comparing their
// recorded cost against the best known cost. Per-cell bookkeeping lives in
// flat arrays parallel to the grid's row-major cell arena, so the hot loop
// never hashes.
//
// Complexity (V = N², E ≤ 4V):
//
//   - Time:  O((V + E) log V)
//   - Each cell is expanded at most once: V pops that survive the stale check.
//   - Each relaxation may push a new frontier entry: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E. Simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the flat cost and predecessor arrays.
//   - O(E) worst-case frontier under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - The heuristic is Euclidean distance to the target scaled by the
//     model's MinStepCost. The raw distance is inadmissible whenever some
//     terrain is faster than unit speed (asphalt 1.5 by default); scaling by
//     the cheapest possible per-unit cost restores admissibility — and
//     consistency, by the triangle inequality — for every configuration, so
//     early exit at the target still yields the optimal route.
//   - Frontier ties on priority break by ascending cell index, making the
//     expansion order (and thus the returned route) reproducible run to run.
//   - WithMaxStepCost treats expensive steps as impassable walls, which is
//     the only way a finite connected grid can have unreachable cells.
//   - Search itself does not fail on an unreachable target: it returns the
//     cost/predecessor maps as-is and ErrNoPath surfaces from Reconstruct
//     (or FindPath).
//
// Concurrency: the grid and model are read-only and may be shared; every
// query owns its Result and frontier, so independent searches can run in
// parallel without locking.
package astar
