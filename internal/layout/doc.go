// Package layout implements a pure-Go flexbox layout engine.
//
// It supports row/column directions with reversal, wrapping, justify and
// align modes on both axes, padding, margin, per-axis gaps, min/max
// constraints, percentage/fill/fixed dimensions, flex grow/shrink with
// basis, absolute positioning, and intrinsic content sizing. Types are
// re-exported through the root flexbox package for public consumption.
//
// The main entry point is [Calculate], which takes a [Node] tree and
// computes a [Layout] for each node, relative to its parent's content box.
package layout
