/*
Package domain contains the core domain models for the random-walk simulation.

It defines the fundamental entities of the pipeline: the Step/WalkResult pair
produced by a single walk, the Collection of final positions gathered across
repeated trials, and the FrequencyTable derived from it. This package is kept
pure and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - Step: One coin flip and the position it produced.
  - WalkResult: The ordered step trace of one full walk.
  - Collection: Final positions across repeated trials.
  - FrequencyTable: Integer-bucketed counts of final positions.
  - Summary: The reportable result of one experiment (rate + histogram).
*/
package domain
