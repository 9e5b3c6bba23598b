package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type ply struct {
	row, col, index int
}

// parsePlies reads "row,col,index;row,col,index;..." into plies.
func parsePlies(s string) ([]ply, error) {
	var out []ply
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("%q: want row,col,index", part)
		}
		var vals [3]int
		for i, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("%q: %w", part, err)
			}
			vals[i] = v
		}
		out = append(out, ply{row: vals[0], col: vals[1], index: vals[2]})
	}
	if len(out) == 0 {
		return nil, errors.New("no plies given")
	}
	return out, nil
}
