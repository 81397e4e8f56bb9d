// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/katalvlaran/complx/field"
	"github.com/katalvlaran/complx/menu"
	"github.com/katalvlaran/complx/score"
)

// Size caps applied by Decode. Documents come from untrusted callers and
// every search is exponential, so anything past these is ErrMalformed.
const (
	MaxDishes   = 24
	MaxTeams    = 10
	MaxArbiters = 10
	MaxCells    = 1024
)

// Decode parses a JSON problem document:
//
//	{"kind":"menu","target":1000,"dishes":[{"name":"Soup","calories":150}]}
//	{"kind":"score","preferences":[[10,8],[2,null]]}
//	{"kind":"jump","field":[10,10],"jump":[1,1],"start":[0,0],"target":[2,2]}
//
// In "preferences", null marks a refused arbiter. Inputs larger than
// MaxDishes, MaxTeams, MaxArbiters or MaxCells are rejected.
func Decode(data []byte) (Problem, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON: %w", ErrMalformed)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("document is not an object: %w", ErrMalformed)
	}

	switch k := Kind(doc.Get("kind").String()); k {
	case KindMenu:
		return decodeMenu(doc)
	case KindScore:
		return decodeScore(doc)
	case KindJump:
		return decodeJump(doc)
	default:
		return nil, fmt.Errorf("%q: %w", k, ErrUnknownKind)
	}
}

// integer reads v as an exact integer.
func integer(v gjson.Result, path string) (int, error) {
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("%s: want a number, got %s: %w", path, v.Type, ErrMalformed)
	}
	n := v.Int()
	if float64(n) != v.Num {
		return 0, fmt.Errorf("%s: %v is not an integer: %w", path, v.Num, ErrMalformed)
	}

	return int(n), nil
}

// pair reads a two-element array of non-negative integers.
func pair(doc gjson.Result, path string) (a, b int, err error) {
	v := doc.Get(path)
	arr := v.Array()
	if !v.IsArray() || len(arr) != 2 {
		return 0, 0, fmt.Errorf("%s: want [a, b]: %w", path, ErrMalformed)
	}
	if a, err = integer(arr[0], path+".0"); err != nil {
		return 0, 0, err
	}
	if b, err = integer(arr[1], path+".1"); err != nil {
		return 0, 0, err
	}
	if a < 0 || b < 0 {
		return 0, 0, fmt.Errorf("%s: negative component: %w", path, ErrMalformed)
	}

	return a, b, nil
}

func decodeMenu(doc gjson.Result) (Problem, error) {
	target, err := integer(doc.Get("target"), "target")
	if err != nil {
		return nil, err
	}
	dishes := doc.Get("dishes")
	if !dishes.IsArray() {
		return nil, fmt.Errorf("dishes: want an array: %w", ErrMalformed)
	}
	if n := len(dishes.Array()); n > MaxDishes {
		return nil, fmt.Errorf("dishes: %d exceeds the limit of %d: %w", n, MaxDishes, ErrMalformed)
	}

	p := Menu{Target: target}
	var derr error
	dishes.ForEach(func(k, v gjson.Result) bool {
		path := fmt.Sprintf("dishes.%d", k.Int())
		name := v.Get("name")
		if name.Type != gjson.String {
			derr = fmt.Errorf("%s.name: want a string: %w", path, ErrMalformed)
			return false
		}
		cals, err := integer(v.Get("calories"), path+".calories")
		if err != nil {
			derr = err
			return false
		}
		p.Dishes = append(p.Dishes, menu.Dish{Name: name.String(), Calories: cals})
		return true
	})
	if derr != nil {
		return nil, derr
	}

	return p, nil
}

func decodeScore(doc gjson.Result) (Problem, error) {
	rows := doc.Get("preferences")
	if !rows.IsArray() {
		return nil, fmt.Errorf("preferences: want an array of rows: %w", ErrMalformed)
	}

	teams := rows.Array()
	if len(teams) > MaxTeams {
		return nil, fmt.Errorf("preferences: %d teams exceed the limit of %d: %w", len(teams), MaxTeams, ErrMalformed)
	}

	var prefs score.Preferences
	for t, row := range teams {
		if !row.IsArray() {
			return nil, fmt.Errorf("preferences.%d: want an array: %w", t, ErrMalformed)
		}
		cells := row.Array()
		if len(cells) > MaxArbiters {
			return nil, fmt.Errorf("preferences.%d: %d arbiters exceed the limit of %d: %w", t, len(cells), MaxArbiters, ErrMalformed)
		}
		r := make([]int, len(cells))
		for a, c := range cells {
			if c.Type == gjson.Null {
				r[a] = score.Refused
				continue
			}
			path := fmt.Sprintf("preferences.%d.%d", t, a)
			v, err := integer(c, path)
			if err != nil {
				return nil, err
			}
			if v == score.Refused {
				return nil, fmt.Errorf("%s: use null for refusal: %w", path, ErrMalformed)
			}
			r[a] = v
		}
		prefs = append(prefs, r)
	}

	return Score{Preferences: prefs}, nil
}

func decodeJump(doc gjson.Result) (Problem, error) {
	var (
		p    Jump
		a, b int
		err  error
	)
	if a, b, err = pair(doc, "field"); err != nil {
		return nil, err
	}
	p.Field = field.Field{Width: a, Height: b}
	if a > MaxCells || b > MaxCells || a*b > MaxCells {
		return nil, fmt.Errorf("field: %dx%d exceeds the limit of %d cells: %w", a, b, MaxCells, ErrMalformed)
	}
	if a, b, err = pair(doc, "jump"); err != nil {
		return nil, err
	}
	p.Jump = field.Jump{DX: a, DY: b}
	if a, b, err = pair(doc, "start"); err != nil {
		return nil, err
	}
	p.Start = field.Point{X: a, Y: b}
	if a, b, err = pair(doc, "target"); err != nil {
		return nil, err
	}
	p.Target = field.Point{X: a, Y: b}

	return p, nil
}
