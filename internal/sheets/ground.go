// Package sheets contains the activation sheets: one struct per sheet of the
// warning logic, each holding its temporal nodes and output flags. Sheets
// follow a single calling convention, Update(delta, in), where the input
// struct carries the parameter reads and upstream sheet outputs explicitly.
// Outputs are exposed through read-only accessors.
package sheets

import (
	"time"

	"github.com/fwcsim/fwc/internal/arinc"
	"github.com/fwcsim/fwc/internal/logic"
)

// #region new-ground

// NewGroundIn carries the landing gear compressed signals from both LGCIUs
// and the hardwired essential/normal discretes.
type NewGroundIn struct {
	LhLgCompressed1    arinc.Word[bool]
	LhLgCompressed2    arinc.Word[bool]
	EssLhLgCompressed  arinc.DiscreteParameter
	NormLhLgCompressed arinc.DiscreteParameter
}

// NewGroundActivation votes the two LGCIU compressed signals against their
// hardwired counterparts. A sustained mismatch on either pair latches the
// dual LGCIU invalid flag.
type NewGroundActivation struct {
	conf1   *logic.ConfirmationNode
	conf2   *logic.ConfirmationNode
	conf3   *logic.ConfirmationNode
	conf4   *logic.ConfirmationNode
	memory1 *logic.MemoryNode
	memory2 *logic.MemoryNode

	newGround  bool
	lgciu12Inv bool
}

func NewNewGroundActivation() *NewGroundActivation {
	return &NewGroundActivation{
		conf1:   logic.NewConfirmationLeading(1 * time.Second),
		conf2:   logic.NewConfirmationLeading(500 * time.Millisecond),
		conf3:   logic.NewConfirmationLeading(1 * time.Second),
		conf4:   logic.NewConfirmationLeading(500 * time.Millisecond),
		memory1: logic.NewMemoryNode(true),
		memory2: logic.NewMemoryNode(true),
	}
}

func (a *NewGroundActivation) Update(delta time.Duration, in NewGroundIn) {
	xor1 := in.LhLgCompressed1.Value() != in.EssLhLgCompressed.Value()
	setMemory1 := in.LhLgCompressed1.IsNcd() || in.LhLgCompressed1.IsInv() ||
		a.conf1.Update(xor1, delta)
	memory1Out := a.memory1.Update(setMemory1, a.conf2.Update(!xor1, delta))

	xor2 := in.LhLgCompressed2.Value() != in.NormLhLgCompressed.Value()
	setMemory2 := in.LhLgCompressed2.IsNcd() || in.LhLgCompressed2.IsInv() ||
		a.conf3.Update(xor2, delta)
	memory2Out := a.memory2.Update(setMemory2, a.conf4.Update(!xor2, delta))

	op1 := in.LhLgCompressed1.Value() && in.EssLhLgCompressed.Value()
	op2 := in.LhLgCompressed2.Value() && in.NormLhLgCompressed.Value()

	a.newGround = op1 && op2
	a.lgciu12Inv = memory1Out || memory2Out
}

func (a *NewGroundActivation) NewGround() bool  { return a.newGround }
func (a *NewGroundActivation) Lgciu12Inv() bool { return a.lgciu12Inv }

// #endregion new-ground

// #region ground-detection

// GroundDetectionIn carries the gear discretes, both radio heights and the
// upstream LGCIU vote.
type GroundDetectionIn struct {
	EssLhLgCompressed  arinc.DiscreteParameter
	NormLhLgCompressed arinc.DiscreteParameter
	RadioHeight1       arinc.Word[float64]
	RadioHeight2       arinc.Word[float64]
	NewGround          bool
	Lgciu12Inv         bool
}

// GroundDetectionActivation derives the on-ground condition from a 2-of-4
// vote over the gear discretes and the radio altimeters being below 5 ft.
// With both radio altimeters invalid a 2-of-2 gear vote suffices, and with
// both at no computed data a 10 second window accepts the LGCIU vote alone.
type GroundDetectionActivation struct {
	memory1 *logic.MemoryNode
	memory2 *logic.MemoryNode
	conf1   *logic.ConfirmationNode
	mrtrig1 *logic.MonostableTriggerNode

	groundImmediate bool
	ground          bool
}

func NewGroundDetectionActivation() *GroundDetectionActivation {
	return &GroundDetectionActivation{
		memory1: logic.NewMemoryNode(true),
		memory2: logic.NewMemoryNode(true),
		conf1:   logic.NewConfirmationLeading(1 * time.Second),
		mrtrig1: logic.NewMonostableRetriggerable(true, 10*time.Second),
	}
}

func (a *GroundDetectionActivation) Update(delta time.Duration, in GroundDetectionIn) {
	radio1Ncd := in.RadioHeight1.IsNcd()
	radio1Inv := in.RadioHeight1.IsInv()
	radio2Ncd := in.RadioHeight2.IsNcd()
	radio2Inv := in.RadioHeight2.IsInv()

	resetMemory := !in.EssLhLgCompressed.Value() || !in.NormLhLgCompressed.Value()
	setMemory1 := in.RadioHeight1.Value() < 5.0
	memory1Out := a.memory1.Update(setMemory1, resetMemory)

	setMemory2 := in.RadioHeight2.Value() < 5.0
	memory2Out := a.memory2.Update(setMemory2, resetMemory)

	radio1OnGnd := (memory1Out || setMemory1) && !radio1Ncd && !radio1Inv
	radio2OnGnd := (memory2Out || setMemory2) && !radio2Ncd && !radio2Inv

	groundCount := 0
	for _, v := range []bool{
		in.EssLhLgCompressed.Value(),
		in.NormLhLgCompressed.Value(),
		radio1OnGnd,
		radio2OnGnd,
	} {
		if v {
			groundCount++
		}
	}

	dualRadioInv := radio1Inv && radio2Inv
	gndCond1 := groundCount > 2 && !dualRadioInv
	gndCond2 := groundCount > 1 && dualRadioInv

	mrtrigIn := radio1Ncd && radio2Ncd && !in.Lgciu12Inv
	trigGround := a.mrtrig1.Update(mrtrigIn, delta) && in.NewGround

	a.groundImmediate = gndCond1 || gndCond2 || trigGround
	a.ground = a.conf1.Update(a.groundImmediate, delta)
}

func (a *GroundDetectionActivation) Ground() bool          { return a.ground }
func (a *GroundDetectionActivation) GroundImmediate() bool { return a.groundImmediate }

// #endregion ground-detection
