// Package axis resolves single-axis index specifications into concrete
// iteration ranges.
//
// The axis package provides:
//
//   - Spec, a value describing how to address one axis of a 2D container:
//     either a bare index (At) or a slice descriptor with optional start,
//     stop and step (All, Span, From, To, Stepped).
//   - Range, the resolved (Start, Stop, Step, Len) bounds produced by
//     clamping a Spec against a known axis length.
//   - Resolve / ResolvePair / ResolveMany, the resolution entry points.
//
// Slice descriptors follow the usual clamped slicing rules: negative start
// and stop count from the end of the axis, missing bounds default to the
// full extent with respect to the step sign, and the resolved Len is the
// exact number of indices produced by stepping from Start toward Stop.
// A bare index is passed through unclamped; whether it is in bounds is the
// container's concern, not the resolver's.
//
// Resolution is pure and allocation-free: O(1) time per axis.
package axis
