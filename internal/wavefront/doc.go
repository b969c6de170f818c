// Package wavefront runs the dependency-driven wave computation: one
// goroutine per interior cell, each blocked on its east, south, and
// south-east neighbors, publishing its sum and synchronizing at a round
// barrier whose completion action resets and reseeds the grid.
//
// The goroutine-per-cell topology mirrors the dependency graph one-to-one.
// That is deliberate, and it is also the package's scalability ceiling: a
// rows×cols scenario parks (rows-1)×(cols-1) goroutines between rounds. A
// pooled design with a ready queue would scale further but would no longer
// exercise the per-cell signaling protocol this package exists to run.
package wavefront
