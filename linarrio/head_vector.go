package linarrio

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lal-project/linarr/conversions"
	convio "github.com/lal-project/linarr/conversions/io"
	"github.com/lal-project/linarr/tree"
)

// ReadHeadVectorFile opens path and decodes its single head vector into
// a RootedTree.
func ReadHeadVectorFile(path string) (*tree.RootedTree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("linarrio: %w", err)
	}
	defer f.Close()

	hv, err := convio.ParseHeadVector(f)
	if err != nil {
		return nil, fmt.Errorf("linarrio: %s: %w", path, err)
	}
	return hv.ToRootedTree()
}

// ReadHeadVectorCollectionFile opens path and decodes every line into a
// head vector, per spec.md §6.1's collection format.
func ReadHeadVectorCollectionFile(path string) ([]conversions.HeadVector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("linarrio: %w", err)
	}
	defer f.Close()

	hvs, err := convio.ParseHeadVectorCollection(f)
	if err != nil {
		return nil, fmt.Errorf("linarrio: %s: %w", path, err)
	}
	return hvs, nil
}

// WriteHeadVectorFile encodes rt as a head vector and writes it to path,
// one space-separated line.
func WriteHeadVectorFile(path string, rt *tree.RootedTree) error {
	hv, err := conversions.FromRootedTree(rt)
	if err != nil {
		return fmt.Errorf("linarrio: %w", err)
	}
	fields := make([]string, len(hv))
	for i, v := range hv {
		fields[i] = strconv.Itoa(v)
	}
	data := strings.Join(fields, " ") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("linarrio: %w", err)
	}
	return nil
}
