// Package classify implements spec.md §4.K: two independent
// classifiers over trees. TreeType assigns a free tree one of nine
// structural shapes by degree-sequence and leaf-deletion tests.
// SyntacticDependencyTreeType assigns a (rooted tree, arrangement) pair
// a bitmask of linguistic dependency-tree classes (projective, planar,
// WG1, EC1) per the crossing-based decision rules of spec.md §4.K.
package classify
