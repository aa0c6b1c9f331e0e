// Command linarrctl is a minimal demonstrator CLI: given a head-vector
// file, it reports the number of crossings (C), the sum of edge lengths
// (D) and the tree's structural type for the identity arrangement of the
// decoded tree, and (optionally) the cost of an optimal arrangement.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/lal-project/linarr/arrangement"
	"github.com/lal-project/linarr/classify"
	"github.com/lal-project/linarr/crossings"
	"github.com/lal-project/linarr/dopt"
	"github.com/lal-project/linarr/internal/logging"
	"github.com/lal-project/linarr/linarrio"
	"github.com/lal-project/linarr/properties"
	"github.com/lal-project/linarr/tree"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("linarrctl", pflag.ContinueOnError)
	verbose := flags.BoolP("verbose", "v", false, "enable structured logging to stderr")
	optimize := flags.String("optimize", "", "compute an optimal arrangement's cost: one of min, max, planar, bipartite, projective")
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *verbose {
		logging.SetLogger(zerolog.New(os.Stderr).With().Timestamp().Logger())
	}

	rest := flags.Args()
	if len(rest) != 1 {
		fmt.Fprintln(os.Stderr, "usage: linarrctl [flags] <head-vector-file>")
		return 2
	}

	rt, err := linarrio.ReadHeadVectorFile(rest[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "linarrctl:", err)
		return 1
	}
	t := rt.Tree
	edges := t.Underlying().EdgeList()
	arr := arrangement.Identity(t.NumVertices())

	fmt.Printf("n = %d\n", t.NumVertices())
	fmt.Printf("C = %d\n", crossings.DynamicProgrammingExact(t.NumVertices(), edges, arr))
	fmt.Printf("D = %d\n", properties.SumEdgeLengths(edges, arr))
	fmt.Printf("type = %s\n", classify.TreeType(t))

	if *optimize == "" {
		return 0
	}
	cost, err := runOptimizer(*optimize, t, rt)
	if err != nil {
		fmt.Fprintln(os.Stderr, "linarrctl:", err)
		return 1
	}
	fmt.Printf("%s = %d\n", *optimize, cost)
	return 0
}

func runOptimizer(kind string, t *tree.Tree, rt *tree.RootedTree) (uint64, error) {
	switch kind {
	case "min":
		res, err := dopt.UnconstrainedMin(t, dopt.WithMakeArrangement(false))
		return res.Cost, err
	case "max":
		res, err := dopt.UnconstrainedMax(t, dopt.WithMakeArrangement(false))
		return res.Cost, err
	case "planar":
		res, err := dopt.PlanarMin(t)
		return res.Cost, err
	case "bipartite":
		res, err := dopt.BipartiteMin(t, dopt.WithMakeArrangement(false))
		return res.Cost, err
	case "projective":
		res, err := dopt.ProjectiveMin(rt, dopt.WithMakeArrangement(false))
		return res.Cost, err
	default:
		return 0, fmt.Errorf("unknown -optimize value %q (want min, max, planar, bipartite, or projective)", kind)
	}
}
