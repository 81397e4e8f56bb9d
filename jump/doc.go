// Package jump finds the minimum number of jumps a piece needs to travel
// between two cells of a bounded field.
//
// What:
//
//   - Every jump applies one of the eight symmetric offsets of a
//     field.Jump{DX, DY}: (±DX,±DY) and (±DY,±DX).
//   - A jump is valid when it lands inside the field on a cell that is not
//     already on the current path.
//   - New returns a pending Optimizer; FindMinJumps runs a depth-first
//     branch-and-bound search and returns a *Ready.
//
// Algorithm:
//
//  1. Reject a target (or start) outside the field before touching any state.
//  2. Mark start, then DFS with mark/recurse/unmark on the optimizer's
//     VisitGrid. Reaching the target records the jump count if it beats
//     the incumbent.
//  3. A branch whose jump count already reaches the incumbent is abandoned.
//  4. Unmark start. The grid is clean after every call, so one Optimizer can
//     run any number of searches in sequence.
//
// Complexity:
//
//   - Worst case exponential in W×H (self-avoiding paths); pruning keeps
//     reachable targets on small fields fast. Memory: O(W×H).
//
// Errors:
//
//   - ErrOutOfBounds: start or target outside the field. An unreachable
//     target is not an error; the Ready result reports it.
package jump
