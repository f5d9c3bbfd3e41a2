package params

import (
	"github.com/pkg/errors"

	"github.com/fwcsim/fwc/internal/arinc"
)

// Families of acquired parameters. Discretes and flags both carry a bool
// but use opposite SSM encodings, so an injection names its family
// explicitly.
const (
	FamilyDiscrete = "discrete"
	FamilyFlag     = "flag"
	FamilyNumber   = "number"
)

// Parameter statuses as spelled in fixture files and bus messages.
const (
	StatusNo  = "no"
	StatusNcd = "ncd"
	StatusFt  = "ft"
	StatusFw  = "fw"
)

// Injection is one externally sourced parameter write, as carried in
// replay fixtures and bus messages.
type Injection struct {
	Signal string   `json:"signal"`
	Family string   `json:"family"`
	Status string   `json:"status,omitempty"`
	Bool   *bool    `json:"bool,omitempty"`
	Number *float64 `json:"number,omitempty"`
}

// Inject applies one injection to the store.
func (s *Store) Inject(in Injection) error {
	id, ok := ByName(in.Signal)
	if !ok {
		return errors.Errorf("unknown signal %q", in.Signal)
	}

	status := in.Status
	if status == "" {
		status = StatusNo
	}

	switch in.Family {
	case FamilyDiscrete:
		if in.Bool == nil {
			return errors.Errorf("signal %q: discrete injection without bool", in.Signal)
		}
		if status == StatusNo {
			s.SetDiscrete(id, arinc.NewDiscrete(*in.Bool))
		} else {
			s.SetDiscrete(id, arinc.NewDiscreteInv(*in.Bool))
		}
	case FamilyFlag:
		if in.Bool == nil {
			return errors.Errorf("signal %q: flag injection without bool", in.Signal)
		}
		s.SetFlag(id, word(*in.Bool, status))
	case FamilyNumber:
		if in.Number == nil {
			return errors.Errorf("signal %q: number injection without number", in.Signal)
		}
		s.SetNumber(id, word(*in.Number, status))
	default:
		return errors.Errorf("signal %q: unknown family %q", in.Signal, in.Family)
	}
	return nil
}

func word[T any](value T, status string) arinc.Word[T] {
	switch status {
	case StatusNcd:
		return arinc.NewWordNcd(value)
	case StatusFt:
		return arinc.NewWordFt(value)
	case StatusFw:
		return arinc.NewWordInv(value)
	default:
		return arinc.NewWord(value)
	}
}
