// Package menu picks, from a base menu of dishes, the subset whose total
// calories reaches a target with the smallest overshoot.
//
// What:
//
//   - New returns a pending Optimizer; FindOptimalMenu runs the search and
//     returns a *Ready, the only type that can Report.
//   - The search is an exhaustive include/skip backtracking over the power
//     set of the base menu. Every node, the empty subset included, is a
//     candidate once its total reaches the target.
//   - Ties keep the first subset found; subsets are enumerated in ascending
//     index order, so the result is deterministic.
//
// Complexity:
//
//   - Time O(n·2ⁿ) (each of the 2ⁿ subsets is visited once, copying the
//     incumbent costs O(n)); Memory O(n) for the working subset.
//   - Intended for small menus (n ≲ 25).
//
// Options:
//
//   - WithWorkers(k): explore the subtrees rooted at each first dish on up to
//     k goroutines. Results are identical to the sequential search.
//   - WithLogger(l): debug records at search start and completion.
//
// Errors:
//
//   - The search itself never fails; "no subset reaches the target" is a
//     Ready result whose Report says so.
//   - Validate reports ErrNegativeCalories and ErrEmptyDishName for input
//     layers that build dishes from untrusted text.
package menu
