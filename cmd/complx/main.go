// SPDX-License-Identifier: MIT

// Command complx runs the backtracking optimizers from the command line.
//
//	complx menu-optimizer -t 1000 -d Chicken/300 -d Salad/200 -d Fish/400
//	complx score-optimizer -p 10,8,6 -p 2,x,6
//	complx jumps-optimizer -f 10/10 -l 1/1 -s 0/0 -t 2/2
//	complx solve problem.json
//
// Reports go to stdout, logs to stderr. The exit status is non-zero only when
// a search could not start (bad input, bad configuration); "no solution" is
// a successful run.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
