// Package complx is a small collection of exhaustive backtracking optimizers
// that report their answers as human-readable text.
//
// What is inside?
//
//	menu/    choose dishes whose calories reach a target with the least overshoot
//	score/   assign one arbiter per match to maximize the summed preference
//	jump/    fewest fixed-shape jumps between two points of a field
//	field/   grid geometry shared by the jump search: bounds, moves, visit marks
//	report/  the Reporter contract every finished search satisfies
//
// Every optimizer follows the same two-step life cycle:
//
//	opt := menu.New(menu.WithWorkers(4))   // pending: configured, not yet run
//	ready := opt.FindOptimalMenu(800, dishes)
//	fmt.Println(ready.Report())            // ready: result plus its report
//
// Only the ready value carries a Report method, so a search that has not
// run cannot be reported by mistake.
//
// The cmd/complx binary wraps the three optimizers in a CLI; cmd/complx-lambda
// (build tag "lambda") serves JSON problem documents behind a function URL.
//
//	go install github.com/katalvlaran/complx/cmd/complx@latest
package complx
