package sheets

import (
	"time"

	"github.com/fwcsim/fwc/internal/arinc"
	"github.com/fwcsim/fwc/internal/logic"
)

// #region to-memo

// ToMemoIn carries the TO config test, the engine running states and the
// relevant flight phases.
type ToMemoIn struct {
	ToConfigTest   arinc.Word[bool]
	Eng1NotRunning bool
	Eng2NotRunning bool
	Phase1         bool
	Phase2         bool
	Phase3         bool
	Phase6         bool
	Phase9         bool
	Phase10        bool
}

// ToMemoActivation computes the TAKE OFF memo: latched by a TO config test
// on the ground, or both engines having run for 2 minutes in phase 2.
type ToMemoActivation struct {
	conf *logic.ConfirmationNode
	mem  *logic.MemoryNode

	toMemoComputed bool
}

func NewToMemoActivation() *ToMemoActivation {
	return &ToMemoActivation{
		conf: logic.NewConfirmationLeading(120 * time.Second),
		mem:  logic.NewMemoryNode(false),
	}
}

func (a *ToMemoActivation) Update(delta time.Duration, in ToMemoIn) {
	setMem := (in.Phase2 || in.Phase9) && in.ToConfigTest.Value()
	resetMem := in.Phase1 || in.Phase3 || in.Phase6 || in.Phase10
	memOut := a.mem.Update(setMem, resetMem)

	bothEngRunning := !in.Eng1NotRunning && !in.Eng2NotRunning
	confOut := a.conf.Update(bothEngRunning, delta)

	a.toMemoComputed = memOut || (in.Phase2 && confOut)
}

func (a *ToMemoActivation) ToMemoComputed() bool { return a.toMemoComputed }
func (a *ToMemoActivation) Warning() bool        { return a.toMemoComputed }

// #endregion to-memo

// #region ldg-memo

// LdgMemoIn carries the radio heights, the gear state and the relevant
// flight phases plus the TO memo output.
type LdgMemoIn struct {
	RadioHeight1   arinc.Word[float64]
	RadioHeight2   arinc.Word[float64]
	LgDownlocked   bool
	Phase6         bool
	Phase7         bool
	Phase8         bool
	ToMemoComputed bool
}

// LdgMemoActivation computes the LANDING memo: shown in phase 6 on descent
// through 2000 ft after having been above 2200 ft, throughout phases 7 and
// 8, or with both radio altimeters failed once the gear is downlocked.
type LdgMemoActivation struct {
	conf1      *logic.ConfirmationNode
	conf2      *logic.ConfirmationNode
	memAbv2200 *logic.MemoryNode
	memBlw2000 *logic.MemoryNode

	ldgMemo            bool
	configMemoComputed bool
}

func NewLdgMemoActivation() *LdgMemoActivation {
	return &LdgMemoActivation{
		conf1:      logic.NewConfirmationLeading(1 * time.Second),
		conf2:      logic.NewConfirmationLeading(10 * time.Second),
		memAbv2200: logic.NewMemoryNode(false),
		memBlw2000: logic.NewMemoryNode(true),
	}
}

func (a *LdgMemoActivation) Update(delta time.Duration, in LdgMemoIn) {
	rh1Inv := in.RadioHeight1.IsInv()
	rh1InvOrNcd := rh1Inv || in.RadioHeight1.IsNcd()
	rh1Abv2200 := in.RadioHeight1.Value() > 2200.0
	rh1Blw2000 := in.RadioHeight1.Value() < 2000.0

	rh2Inv := in.RadioHeight2.IsInv()
	rh2InvOrNcd := rh2Inv || in.RadioHeight2.IsNcd()
	rh2Abv2200 := in.RadioHeight2.Value() > 2200.0
	rh2Blw2000 := in.RadioHeight2.Value() < 2000.0

	dualRaInvOrNcd := rh1InvOrNcd && rh2InvOrNcd
	dualRaAbv2200OrInvOrNcd := (rh1Abv2200 || rh1InvOrNcd) && (rh2Abv2200 || rh2InvOrNcd)
	anyRaBelow2000 := (!rh1InvOrNcd && rh1Blw2000) || (!rh2InvOrNcd && rh2Blw2000)

	setMemAbv2200 := a.conf1.Update(!dualRaInvOrNcd && dualRaAbv2200OrInvOrNcd, delta)
	abv2200 := a.memAbv2200.Update(setMemAbv2200, !(in.Phase6 || in.Phase7 || in.Phase8))

	blw2000 := a.memBlw2000.Update(anyRaBelow2000, dualRaAbv2200OrInvOrNcd)

	lgDownFlight := false
	dualRaInvLgDownlocked := a.conf2.Update(
		rh1Inv && rh2Inv && in.LgDownlocked && !lgDownFlight && in.Phase6, delta)

	a.ldgMemo = (abv2200 && blw2000 && in.Phase6) || in.Phase7 || in.Phase8 ||
		dualRaInvLgDownlocked

	a.configMemoComputed = in.ToMemoComputed || a.ldgMemo
}

func (a *LdgMemoActivation) LdgMemo() bool            { return a.ldgMemo }
func (a *LdgMemoActivation) ConfigMemoComputed() bool { return a.configMemoComputed }
func (a *LdgMemoActivation) Warning() bool            { return a.ldgMemo }

// #endregion ldg-memo
