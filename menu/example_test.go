package menu_test

import (
	"fmt"

	"github.com/katalvlaran/complx/menu"
)

// ExampleOptimizer_FindOptimalMenu picks the dishes that reach 1000 calories
// with the least excess. The empty pending Optimizer cannot report; only the
// *Ready value returned by the search can.
func ExampleOptimizer_FindOptimalMenu() {
	dishes := []menu.Dish{
		{Name: "Chicken", Calories: 300},
		{Name: "Salad", Calories: 200},
		{Name: "Soup", Calories: 150},
		{Name: "WaterMelon", Calories: 80},
		{Name: "Apple", Calories: 70},
		{Name: "Fish", Calories: 400},
	}
	ready := menu.New().FindOptimalMenu(1000, dishes)
	fmt.Println(ready.Report())

	// Output:
	// Optimal menu found:
	//   1: Chicken -> 300 calories
	//   2: Soup -> 150 calories
	//   3: WaterMelon -> 80 calories
	//   4: Apple -> 70 calories
	//   5: Fish -> 400 calories
	// Total calories: 1000 (target 1000, overshoot 0)
}
