// Package incdbscan maintains a correct DBSCAN labeling of a dynamic
// point set under interleaved insertions and deletions, without ever
// re-clustering from scratch.
//
// The package is a thin matrix-marshalling shell (construction, parameter
// validation, batch iteration) around the four components that do the
// actual work: a Minkowski metric, a grid-based neighborhood index, an
// object store tracking point multiplicity, and a label registry tracking
// cluster identity. Those live under internal/ and are orchestrated by
// internal/engine's Update Engine.
//
// See the README-equivalent design notes in DESIGN.md for how each part
// maps onto the specification and onto its grounding in the originating
// codebase.
package incdbscan
