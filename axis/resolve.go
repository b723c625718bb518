package axis

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroStep indicates a slice descriptor with step == 0.
	ErrZeroStep = errors.New("axis: slice step must not be zero")

	// ErrBadSpec indicates a malformed specification, e.g. a negative bare
	// index or a step applied to the bare-index form.
	ErrBadSpec = errors.New("axis: malformed index specification")

	// ErrAxisCount indicates that the number of supplied axis specs does not
	// match the number of axis lengths.
	ErrAxisCount = errors.New("axis: spec count does not match axis count")
)

// Resolve converts a Spec into concrete iteration bounds for an axis of the
// given length.
//
// Bare index: At(i) resolves to (i, i, 1, 1) with no clamping against
// length; a negative i fails with ErrBadSpec. Out-of-range positive indices
// pass through so the container can report its own bounds error.
//
// Slice descriptor: standard clamped slicing. Negative start/stop count
// from the end of the axis; a missing start defaults to the beginning of
// the traversal (end of axis for negative steps), a missing stop to its
// end; a missing step defaults to 1 and a zero step fails with ErrZeroStep.
// The resolved Len is the exact number of indices produced, zero when the
// range is empty.
//
// Complexity: O(1), no allocation.
func Resolve(s Spec, length int) (Range, error) {
	if s.isIndex {
		if s.hasStep {
			return Range{}, fmt.Errorf("Resolve: step on bare index %d: %w", s.index, ErrBadSpec)
		}
		if s.index < 0 {
			return Range{}, fmt.Errorf("Resolve: negative bare index %d: %w", s.index, ErrBadSpec)
		}

		// Single index: untouched by clamping, always one element.
		// Stop mirrors Start here; consumers iterate by Len, not Stop.
		return Range{Start: s.index, Stop: s.index, Step: 1, Len: 1}, nil
	}

	step := 1
	if s.hasStep {
		step = s.step
	}
	if step == 0 {
		return Range{}, fmt.Errorf("Resolve: %w", ErrZeroStep)
	}

	start := clampBound(s.start, s.hasStart, length, step, true)
	stop := clampBound(s.stop, s.hasStop, length, step, false)

	return Range{Start: start, Stop: stop, Step: step, Len: rangeLen(start, stop, step)}, nil
}

// ResolvePair resolves exactly two axis specs against the (rows, cols)
// bounds of a 2D container. This is the form bulk matrix operations
// consume: one Range per axis, in row-then-column order.
func ResolvePair(rowSpec, colSpec Spec, rows, cols int) (Range, Range, error) {
	rr, err := Resolve(rowSpec, rows)
	if err != nil {
		return Range{}, Range{}, fmt.Errorf("ResolvePair: axis 0: %w", err)
	}
	cr, err := Resolve(colSpec, cols)
	if err != nil {
		return Range{}, Range{}, fmt.Errorf("ResolvePair: axis 1: %w", err)
	}

	return rr, cr, nil
}

// ResolveMany resolves one Spec per axis length. It fails with ErrAxisCount
// when the two slices differ in length, before resolving anything.
func ResolveMany(specs []Spec, lengths []int) ([]Range, error) {
	if len(specs) != len(lengths) {
		return nil, fmt.Errorf("ResolveMany: %d specs for %d axes: %w", len(specs), len(lengths), ErrAxisCount)
	}

	out := make([]Range, len(specs))
	for i := range specs {
		r, err := Resolve(specs[i], lengths[i])
		if err != nil {
			return nil, fmt.Errorf("ResolveMany: axis %d: %w", i, err)
		}
		out[i] = r
	}

	return out, nil
}

// clampBound normalizes one slice bound against the axis length.
// isStart selects the default for a missing bound: the traversal origin
// for start, the traversal end for stop, both oriented by the step sign.
func clampBound(v int, present bool, length, step int, isStart bool) int {
	// Defaults for an absent bound depend on the direction of travel.
	if !present {
		if step < 0 {
			if isStart {
				return length - 1
			}

			return -1 // exclusive stop one before index 0
		}
		if isStart {
			return 0
		}

		return length
	}

	// Negative bounds count from the end of the axis.
	if v < 0 {
		v += length
		if v < 0 {
			if step < 0 {
				return -1
			}

			return 0
		}

		return v
	}

	// Positive bounds clamp to the axis extent.
	if v >= length {
		if step < 0 {
			return length - 1
		}

		return length
	}

	return v
}

// rangeLen counts the indices produced by stepping from start toward the
// exclusive stop. Zero for empty ranges.
func rangeLen(start, stop, step int) int {
	if step > 0 {
		if start >= stop {
			return 0
		}

		return (stop - start - 1) / step + 1
	}
	if stop >= start {
		return 0
	}

	return (start - stop - 1) / (-step) + 1
}
