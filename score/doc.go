// Package score assigns arbiters to matches so that the teams' total
// preference for their arbiters is maximal.
//
// What:
//
//   - A Preferences matrix is indexed [team][arbiter]. The value Refused
//     marks a team that will not play under that arbiter.
//   - num_teams/2 matches are filled. Each match receives one arbiter and
//     one team; the match contributes Preferences[team][arbiter].
//   - Build validates the matrix and returns a pending Optimizer;
//     FindOptimalAssignment runs the search and returns a *Ready.
//
// Constraints enforced in every branch before descending:
//
//  1. no arbiter is used twice,
//  2. no team is used twice,
//  3. no team is paired with an arbiter it refuses.
//
// Ties keep the first assignment found under arbiter-then-team ascending
// enumeration.
//
// Complexity:
//
//   - Exponential: O((A·T)^(T/2)) nodes in the worst case for T teams and A
//     arbiters. Operational limit: about 10 teams and 10 arbiters.
//   - Memory: O(T + A) per worker plus the copied matrix.
//
// Errors (returned by Build only):
//
//   - ErrNoTeams, ErrOddTeams, ErrRaggedRows, ErrTooFewArbiters.
package score
