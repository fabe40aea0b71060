// Package cost defines the traversal-cost model for moving between two
// adjacent terrain cells.
//
// What:
//
//   - Model: an immutable, validated set of parameters — one positive speed
//     multiplier per terrain class and a positive slope normalization constant.
//
//   - Step(current, neighbor): the pure per-move cost
//
//     distance × (1 / speed[neighbor.Terrain]) × (1 + |Δheight| / slopeLimit)
//
//     where distance is the Euclidean distance between the two cells
//     (always 1 for 4-connected moves, computed generically so diagonal
//     moves would cost √2 without code changes).
//
// Why:
//
//   - The terrain factor charges by the surface being entered: asphalt is
//     fastest (cheapest), mud slowest.
//   - The slope factor penalizes elevation change symmetrically — climbing
//     and descending cost the same — and never drops below 1.
//   - All three factors are bounded away from zero, so every step cost is
//     finite and strictly positive; search termination relies on this.
//
// Options:
//
//   - WithSpeed(t, mult):  override one terrain multiplier.
//   - WithSpeeds(map):     override several multipliers at once.
//   - WithSlopeLimit(v):   override the slope normalization constant.
//
// Errors (validated in New, before any search runs):
//
//   - ErrMissingSpeed:     a terrain variant lacks a multiplier.
//   - ErrNonPositiveSpeed: a multiplier is ≤ 0.
//   - ErrBadSlopeLimit:    the slope limit is ≤ 0.
//
// Concurrency: a Model is immutable after New and safe to share across
// concurrent searches.
package cost
