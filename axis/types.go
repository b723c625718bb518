// Package axis defines the specification and range types used by Resolve.
package axis

// Spec describes how to address a single axis: either a bare index or a
// slice descriptor with optional start, stop and step components.
//
// The zero value of Spec is the full-axis slice (same as All()): no start,
// no stop, step 1. Build other forms with the constructors below; the
// presence of each optional component is tracked explicitly so that 0 and
// "unspecified" stay distinct.
type Spec struct {
	index   int  // bare index value, meaningful when isIndex
	isIndex bool // true for the bare-index form

	start, stop, step          int  // slice components, meaningful when the matching has* flag is set
	hasStart, hasStop, hasStep bool // presence flags for the optional components
}

// At returns the bare-index form of Spec addressing exactly index i.
// Resolution of At(i) never clamps: the container decides whether i is
// in bounds.
func At(i int) Spec {
	return Spec{index: i, isIndex: true}
}

// All returns the full-axis slice: every index from 0 to length-1.
func All() Spec {
	return Spec{}
}

// Span returns the slice [start:stop) with the default step of 1.
// Negative bounds count from the end of the axis at resolution time.
func Span(start, stop int) Spec {
	return Spec{start: start, stop: stop, hasStart: true, hasStop: true}
}

// From returns the slice [start:) running to the end of the axis.
func From(start int) Spec {
	return Spec{start: start, hasStart: true}
}

// To returns the slice [:stop) running from the beginning of the axis.
func To(stop int) Spec {
	return Spec{stop: stop, hasStop: true}
}

// Stepped returns the slice [start:stop:step].
// A step of zero is rejected at resolution time with ErrZeroStep.
func Stepped(start, stop, step int) Spec {
	return Spec{start: start, stop: stop, step: step, hasStart: true, hasStop: true, hasStep: true}
}

// By returns a copy of s with its step replaced, preserving the start and
// stop components. Useful for composing, e.g. All().By(-1) for a reversed
// full axis. Calling By on a bare-index Spec yields ErrBadSpec at
// resolution time.
func (s Spec) By(step int) Spec {
	s.step = step
	s.hasStep = true

	return s
}

// Range holds the resolved iteration bounds for one axis.
//
// Start is the first produced index, Step the signed stride, and Len the
// exact number of indices produced when stepping from Start toward Stop.
// Stop itself is exclusive and may be -1 for negative steps that run off
// the front of the axis. A Len of zero means the range is empty and Start
// and Stop carry no useful information beyond the clamping that produced
// them.
type Range struct {
	Start int
	Stop  int
	Step  int
	Len   int
}
