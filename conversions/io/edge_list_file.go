package io

import (
	"bufio"
	stdio "io"
	"strconv"
	"strings"
)

// ParseEdgeList reads a whitespace-separated edge-list file per spec.md
// §6.2: one edge per line or free-form, the maximum observed id plus one
// determines n. Returns the edges and the inferred vertex count.
func ParseEdgeList(r stdio.Reader) ([][2]int, int, error) {
	scanner := bufio.NewScanner(r)
	var edges [][2]int
	var pending []int
	maxID := -1
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		for _, tok := range strings.Fields(scanner.Text()) {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, 0, &FormatError{Kind: KindNonInteger, Line: lineNo, Token: tok}
			}
			if v < 0 {
				return nil, 0, &FormatError{Kind: KindOutOfRange, Line: lineNo, Token: tok}
			}
			if v > maxID {
				maxID = v
			}
			pending = append(pending, v)
			if len(pending) == 2 {
				if pending[0] == pending[1] {
					return nil, 0, &FormatError{Kind: KindSelfLoop, Line: lineNo, Token: tok}
				}
				edges = append(edges, [2]int{pending[0], pending[1]})
				pending = pending[:0]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	if len(pending) != 0 {
		return nil, 0, &FormatError{Kind: KindNonInteger, Line: lineNo}
	}
	return edges, maxID + 1, nil
}
