// Package generate builds and enumerates the trees that exercise
// linarr's algorithm packages: a handful of deterministic standard
// shapes (star, path, caterpillar, spider, balanced binary), a
// Prüfer-based enumerator/sampler over every labeled free tree on n
// vertices, and a canonical-form enumerator over unlabeled rooted tree
// shapes.
package generate
