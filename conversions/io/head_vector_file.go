package io

import (
	"bufio"
	"errors"
	stdio "io"
	"strconv"
	"strings"

	"github.com/lal-project/linarr/conversions"
)

// ParseHeadVectorCollection reads a head-vector collection file: one
// tree per non-blank line, per spec.md §6.1. Parsing stops at (and
// reports) the first malformed line.
func ParseHeadVectorCollection(r stdio.Reader) ([]conversions.HeadVector, error) {
	scanner := bufio.NewScanner(r)
	var out []conversions.HeadVector
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		hv, err := parseHeadVectorLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		out = append(out, hv)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseHeadVector reads the entire content of r as a single tree's head
// vector, whitespace-separated across any number of lines.
func ParseHeadVector(r stdio.Reader) (conversions.HeadVector, error) {
	data, err := stdio.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseHeadVectorLine(strings.TrimSpace(string(data)), 1)
}

func parseHeadVectorLine(line string, lineNo int) (conversions.HeadVector, error) {
	fields := strings.Fields(line)
	hv := make(conversions.HeadVector, len(fields))
	n := len(fields)
	roots := 0
	for i, tok := range fields {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &FormatError{Kind: KindNonInteger, Line: lineNo, Token: tok}
		}
		if v < 0 || v > n {
			return nil, &FormatError{Kind: KindOutOfRange, Line: lineNo, Token: tok}
		}
		if v == i+1 {
			return nil, &FormatError{Kind: KindSelfLoop, Line: lineNo, Token: tok}
		}
		if v == 0 {
			roots++
		}
		hv[i] = v
	}
	if roots != 1 {
		return nil, &FormatError{Kind: KindWrongRootCount, Line: lineNo}
	}
	if _, err := hv.ToRootedTree(); err != nil {
		kind := KindCycle
		if errors.Is(err, conversions.ErrDisconnected) {
			kind = KindDisconnected
		}
		return nil, &FormatError{Kind: kind, Line: lineNo}
	}
	return hv, nil
}
