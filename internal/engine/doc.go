// Package engine implements the Update Engine: the orchestration layer
// that keeps a DBSCAN labeling correct under point insertion and deletion
// without ever re-clustering from scratch.
//
// It owns no client-facing validation (that lives in the root incdbscan
// package) and does not itself store points or labels; it drives the
// Object Store, Neighborhood Index, and Label Registry to keep invariants
// 1-6 (see the data model) intact after every call to Insert or Delete.
package engine
