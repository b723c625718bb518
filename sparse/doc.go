// Package sparse implements a coordinate-keyed sparse 2D matrix of float64
// values. Absent coordinates implicitly hold zero.
//
// The sparse package provides:
//
//   - Matrix, a map-backed store with point Set/Get/Lookup, O(1) Shape
//     derived from high-water marks, and an O(1) Transpose that flips an
//     orientation flag instead of moving entries.
//   - Bulk operations driven by axis.Spec slice descriptors: SetCOO for
//     parallel-array ingestion, ReadDense/WriteDense for dense sub-block
//     transfer, and ReadCOO for sparse window extraction that reports only
//     the explicitly written entries.
//
// Storage always keeps entries under their original insertion orientation;
// Transpose only changes how external coordinates map onto stored keys and
// how Shape is reported. High-water marks grow monotonically with writes
// and there is no delete operation, so Shape never shrinks.
//
// The matrix has a single logical owner: no internal locking is performed,
// and concurrent access must be serialized by the caller. Bulk writes apply
// in input order with no rollback on mid-operation failure.
package sparse
