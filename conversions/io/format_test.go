package io_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	conversionsio "github.com/lal-project/linarr/conversions/io"
)

func TestParseHeadVector_Valid(t *testing.T) {
	// vertices 0..3, head vector "2 0 2 3" -> vertex1 is root.
	hv, err := conversionsio.ParseHeadVector(strings.NewReader("2 0 2 3"))
	require.NoError(t, err)
	assert.Equal(t, 0, hv[1])
}

func TestParseHeadVector_NonInteger(t *testing.T) {
	_, err := conversionsio.ParseHeadVector(strings.NewReader("2 x 2 3"))
	var fe *conversionsio.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, conversionsio.KindNonInteger, fe.Kind)
}

func TestParseHeadVector_WrongRootCount(t *testing.T) {
	_, err := conversionsio.ParseHeadVector(strings.NewReader("0 0 1"))
	var fe *conversionsio.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, conversionsio.KindWrongRootCount, fe.Kind)
}

func TestParseHeadVector_SelfLoop(t *testing.T) {
	_, err := conversionsio.ParseHeadVector(strings.NewReader("0 2"))
	var fe *conversionsio.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, conversionsio.KindSelfLoop, fe.Kind)
}

func TestParseHeadVectorCollection(t *testing.T) {
	input := "0\n2 0\n"
	trees, err := conversionsio.ParseHeadVectorCollection(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, trees, 2)
}

func TestParseEdgeList_Valid(t *testing.T) {
	edges, n, err := conversionsio.ParseEdgeList(strings.NewReader("0 1\n1 2\n2 3\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Len(t, edges, 3)
}

func TestParseEdgeList_SelfLoop(t *testing.T) {
	_, _, err := conversionsio.ParseEdgeList(strings.NewReader("0 0"))
	var fe *conversionsio.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, conversionsio.KindSelfLoop, fe.Kind)
}
