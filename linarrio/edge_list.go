package linarrio

import (
	"fmt"
	"os"

	"github.com/lal-project/linarr/conversions"
	convio "github.com/lal-project/linarr/conversions/io"
	"github.com/lal-project/linarr/tree"
)

// ReadEdgeListFile opens path, parses its edge list, and decodes it into
// a Tree (per spec.md §6.2, requiring the result to be connected and
// acyclic).
func ReadEdgeListFile(path string) (*tree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("linarrio: %w", err)
	}
	defer f.Close()

	edges, n, err := convio.ParseEdgeList(f)
	if err != nil {
		return nil, fmt.Errorf("linarrio: %s: %w", path, err)
	}
	return conversions.FromEdgeList(n, edges)
}
