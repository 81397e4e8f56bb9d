package problem_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/complx/field"
	"github.com/katalvlaran/complx/internal/problem"
	"github.com/katalvlaran/complx/jump"
	"github.com/katalvlaran/complx/menu"
	"github.com/katalvlaran/complx/score"
)

func TestDecode_Menu(t *testing.T) {
	doc := `{"kind":"menu","target":1000,"dishes":[
		{"name":"Chicken","calories":300},{"name":"Salad","calories":200},
		{"name":"Soup","calories":150},{"name":"WaterMelon","calories":80},
		{"name":"Apple","calories":70},{"name":"Fish","calories":400}]}`
	p, err := problem.Decode([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, problem.KindMenu, p.Kind())

	m := p.(problem.Menu)
	assert.Equal(t, 1000, m.Target)
	require.Len(t, m.Dishes, 6)
	assert.Equal(t, menu.Dish{Name: "Fish", Calories: 400}, m.Dishes[5])

	r, err := p.Solve()
	require.NoError(t, err)
	assert.Contains(t, r.Report(), "Total calories: 1000")
}

func TestDecode_Score(t *testing.T) {
	doc := `{"kind":"score","preferences":[[10,8,6,4,2],[2,4,6,8,10],[4,6,2,10,8],[8,10,4,6,null]]}`
	p, err := problem.Decode([]byte(doc))
	require.NoError(t, err)

	s := p.(problem.Score)
	assert.Equal(t, score.Refused, s.Preferences[3][4])

	r, err := p.Solve(score.WithWorkers(2))
	require.NoError(t, err)
	assert.Contains(t, r.Report(), "Maximum score: 20")
}

func TestDecode_ScoreOddTeamsFailsOnSolve(t *testing.T) {
	p, err := problem.Decode([]byte(`{"kind":"score","preferences":[[1],[2],[3]]}`))
	require.NoError(t, err)
	_, err = p.Solve()
	assert.ErrorIs(t, err, score.ErrOddTeams)
}

func TestDecode_Jump(t *testing.T) {
	p, err := problem.Decode([]byte(`{"kind":"jump","field":[10,10],"jump":[1,1],"start":[0,0],"target":[2,2]}`))
	require.NoError(t, err)
	assert.Equal(t, problem.Jump{
		Field:  field.Field{Width: 10, Height: 10},
		Jump:   field.Jump{DX: 1, DY: 1},
		Start:  field.Point{},
		Target: field.Point{X: 2, Y: 2},
	}, p)

	r, err := p.Solve()
	require.NoError(t, err)
	assert.Contains(t, r.Report(), "is 2.")

	p, err = problem.Decode([]byte(`{"kind":"jump","field":[5,5],"jump":[3,3],"start":[0,0],"target":[5,5]}`))
	require.NoError(t, err)
	_, err = p.Solve()
	assert.ErrorIs(t, err, jump.ErrOutOfBounds)
}

// repeat joins n copies of elem with commas.
func repeat(elem string, n int) string {
	return strings.TrimSuffix(strings.Repeat(elem+",", n), ",")
}

func TestDecode_AtLimits(t *testing.T) {
	doc := `{"kind":"jump","field":[32,32],"jump":[1,2],"start":[0,0],"target":[1,2]}`
	p, err := problem.Decode([]byte(doc))
	require.NoError(t, err)
	r, err := p.Solve()
	require.NoError(t, err)
	assert.Contains(t, r.Report(), "is 1.")

	doc = `{"kind":"menu","target":1,"dishes":[` + repeat(`{"name":"a","calories":1}`, problem.MaxDishes) + `]}`
	_, err = problem.Decode([]byte(doc))
	assert.NoError(t, err)
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"InvalidJSON", `{"kind":`, problem.ErrMalformed},
		{"NotObject", `[1,2]`, problem.ErrMalformed},
		{"UnknownKind", `{"kind":"knapsack"}`, problem.ErrUnknownKind},
		{"MissingKind", `{}`, problem.ErrUnknownKind},
		{"MenuTargetString", `{"kind":"menu","target":"1000","dishes":[]}`, problem.ErrMalformed},
		{"MenuTargetFraction", `{"kind":"menu","target":10.5,"dishes":[]}`, problem.ErrMalformed},
		{"MenuDishesMissing", `{"kind":"menu","target":10}`, problem.ErrMalformed},
		{"MenuDishName", `{"kind":"menu","target":10,"dishes":[{"name":1,"calories":2}]}`, problem.ErrMalformed},
		{"MenuDishCalories", `{"kind":"menu","target":10,"dishes":[{"name":"a"}]}`, problem.ErrMalformed},
		{"ScoreNotArray", `{"kind":"score","preferences":5}`, problem.ErrMalformed},
		{"ScoreRowNotArray", `{"kind":"score","preferences":[1,2]}`, problem.ErrMalformed},
		{"ScoreCell", `{"kind":"score","preferences":[["a"],[1]]}`, problem.ErrMalformed},
		{"JumpShortPair", `{"kind":"jump","field":[10],"jump":[1,1],"start":[0,0],"target":[2,2]}`, problem.ErrMalformed},
		{"MenuTooManyDishes", `{"kind":"menu","target":10,"dishes":[` + repeat(`{"name":"a","calories":1}`, problem.MaxDishes+1) + `]}`, problem.ErrMalformed},
		{"ScoreTooManyTeams", `{"kind":"score","preferences":[` + repeat(`[1,2]`, problem.MaxTeams+2) + `]}`, problem.ErrMalformed},
		{"ScoreTooManyArbiters", `{"kind":"score","preferences":[[` + repeat(`1`, problem.MaxArbiters+1) + `],[1]]}`, problem.ErrMalformed},
		{"ScoreRefusedSentinel", `{"kind":"score","preferences":[[1,-9223372036854775808],[2,3]]}`, problem.ErrMalformed},
		{"JumpFieldTooLarge", `{"kind":"jump","field":[4611686018427387904,4],"jump":[1,1],"start":[0,0],"target":[1,1]}`, problem.ErrMalformed},
		{"JumpFieldTooManyCells", `{"kind":"jump","field":[33,32],"jump":[1,1],"start":[0,0],"target":[1,1]}`, problem.ErrMalformed},
		{"JumpNegative", `{"kind":"jump","field":[10,10],"jump":[1,1],"start":[-1,0],"target":[2,2]}`, problem.ErrMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := problem.Decode([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestMenuSolve_RejectsBadInput(t *testing.T) {
	_, err := problem.Menu{Target: -1}.Solve()
	assert.ErrorIs(t, err, problem.ErrMalformed)

	_, err = problem.Menu{Target: 10, Dishes: []menu.Dish{{Name: "a", Calories: -1}}}.Solve()
	assert.ErrorIs(t, err, menu.ErrNegativeCalories)
}
