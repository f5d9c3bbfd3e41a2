// Package arinc models the label parameters exchanged between the warning
// computer and its data sources. Each parameter carries a value and the two
// sign status matrix (SSM) bits that encode the validity of that value.
package arinc

// SignStatusMatrix exposes the raw SSM bits and their interpretation. The
// interpretation depends on the parameter family: discrete words and bus
// words map the same bit patterns to different statuses.
type SignStatusMatrix interface {
	Ssm1() bool
	Ssm2() bool

	// IsNo reports the "normal operation" status, meaning the value is
	// considered valid.
	IsNo() bool

	// IsNcd reports "no computed data": no failure was detected, but no
	// data is available either. A radio altimeter in cruise is the usual
	// example.
	IsNcd() bool

	// IsFt reports "functional test": the value has been artificially
	// forced for test purposes.
	IsFt() bool

	// IsFw reports "failure warning": the value is most likely faulty.
	IsFw() bool
}

// Validity is the coarse two-state view used by the activation sheets. A
// parameter is valid unless it carries a failure warning.
type Validity interface {
	SignStatusMatrix
	IsVal() bool
	IsInv() bool
}

// #region discrete

// DiscreteParameter is a single boolean signal, typically a ground/open
// discrete input. Bit pattern 00 is normal operation and 11 is a failure
// warning, the inverse of the bus word encoding.
type DiscreteParameter struct {
	value bool
	ssm1  bool
	ssm2  bool
}

// NewDiscrete returns a valid discrete carrying value.
func NewDiscrete(value bool) DiscreteParameter {
	return DiscreteParameter{value: value}
}

// NewDiscreteInv returns a failed discrete carrying value.
func NewDiscreteInv(value bool) DiscreteParameter {
	return DiscreteParameter{value: value, ssm1: true, ssm2: true}
}

// Value returns the carried signal regardless of validity.
func (p DiscreteParameter) Value() bool { return p.value }

func (p DiscreteParameter) Ssm1() bool { return p.ssm1 }
func (p DiscreteParameter) Ssm2() bool { return p.ssm2 }

func (p DiscreteParameter) IsNo() bool  { return !p.ssm1 && !p.ssm2 }
func (p DiscreteParameter) IsNcd() bool { return p.ssm1 && !p.ssm2 }
func (p DiscreteParameter) IsFt() bool  { return !p.ssm1 && p.ssm2 }
func (p DiscreteParameter) IsFw() bool  { return p.ssm1 && p.ssm2 }

func (p DiscreteParameter) IsVal() bool { return !p.IsFw() }
func (p DiscreteParameter) IsInv() bool { return p.IsFw() }

// #endregion discrete

// #region word

// Word is a bus word parameter carrying a value of type T. Bit pattern 11 is
// normal operation, 10 is no computed data, 01 is functional test and 00 is
// a failure warning.
type Word[T any] struct {
	value T
	ssm1  bool
	ssm2  bool
}

// NewWord returns a valid word carrying value.
func NewWord[T any](value T) Word[T] {
	return Word[T]{value: value, ssm1: true, ssm2: true}
}

// NewWordNcd returns a word flagged as no computed data.
func NewWordNcd[T any](value T) Word[T] {
	return Word[T]{value: value, ssm1: true}
}

// NewWordFt returns a word flagged as functional test.
func NewWordFt[T any](value T) Word[T] {
	return Word[T]{value: value, ssm2: true}
}

// NewWordInv returns a word flagged as failure warning.
func NewWordInv[T any](value T) Word[T] {
	return Word[T]{value: value}
}

// Value returns the carried value regardless of validity.
func (p Word[T]) Value() T { return p.value }

func (p Word[T]) Ssm1() bool { return p.ssm1 }
func (p Word[T]) Ssm2() bool { return p.ssm2 }

func (p Word[T]) IsNo() bool  { return p.ssm1 && p.ssm2 }
func (p Word[T]) IsNcd() bool { return p.ssm1 && !p.ssm2 }
func (p Word[T]) IsFt() bool  { return !p.ssm1 && p.ssm2 }
func (p Word[T]) IsFw() bool  { return !p.ssm1 && !p.ssm2 }

func (p Word[T]) IsVal() bool { return !p.IsFw() }
func (p Word[T]) IsInv() bool { return p.IsFw() }

// #endregion word

// #region synchro

// SynchroParameter is an angle picked off a synchro or RVDT, in degrees. It
// uses the bus word status encoding. The constructors mark the angle as no
// computed data when it falls outside the transmitter's mechanical range.
type SynchroParameter struct {
	value float64
	ssm1  bool
	ssm2  bool
}

// NewSynchro returns a synchro angle, valid within [0, 360] degrees.
func NewSynchro(value float64) SynchroParameter {
	ok := value >= 0 && value <= 360
	return SynchroParameter{value: value, ssm1: true, ssm2: ok}
}

// NewRvdt returns an RVDT angle, valid within [-35, 35] degrees.
func NewRvdt(value float64) SynchroParameter {
	ok := value >= -35 && value <= 35
	return SynchroParameter{value: value, ssm1: true, ssm2: ok}
}

// Value returns the angle in degrees regardless of validity.
func (p SynchroParameter) Value() float64 { return p.value }

func (p SynchroParameter) Ssm1() bool { return p.ssm1 }
func (p SynchroParameter) Ssm2() bool { return p.ssm2 }

func (p SynchroParameter) IsNo() bool  { return p.ssm1 && p.ssm2 }
func (p SynchroParameter) IsNcd() bool { return p.ssm1 && !p.ssm2 }
func (p SynchroParameter) IsFt() bool  { return !p.ssm1 && p.ssm2 }
func (p SynchroParameter) IsFw() bool  { return !p.ssm1 && !p.ssm2 }

func (p SynchroParameter) IsVal() bool { return !p.IsFw() }
func (p SynchroParameter) IsInv() bool { return p.IsFw() }

// #endregion synchro
