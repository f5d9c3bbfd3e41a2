package sheets

import (
	"time"

	"github.com/fwcsim/fwc/internal/arinc"
	"github.com/fwcsim/fwc/internal/logic"
)

// #region mda-mdh-inhibition

type MdaMdhInhibitionIn struct {
	RadioHeight1            arinc.Word[float64]
	RadioHeight2            arinc.Word[float64]
	TcasAuralAdvisoryOutput arinc.DiscreteParameter
	GpwsInhibition          bool
	DecisionHeightVal       float64
	DecisionInv             bool
	AutoCallOutInhib        bool
}

// MdaMdhInhibitionActivation derives the inhibitions for the minimum and
// hundred above callouts.
type MdaMdhInhibitionActivation struct {
	acoMdaMdhInhib bool
	acoDhInhib     bool
	mrtrig         *logic.MonostableTriggerNode
}

func NewMdaMdhInhibitionActivation() *MdaMdhInhibitionActivation {
	return &MdaMdhInhibitionActivation{
		mrtrig: logic.NewMonostableRetriggerable(true, 5*time.Second),
	}
}

func (a *MdaMdhInhibitionActivation) Update(delta time.Duration, in MdaMdhInhibitionIn) {
	stallOn := false
	speedOn := false
	tcasOutput := a.mrtrig.Update(in.TcasAuralAdvisoryOutput.Value(), delta)

	a.acoMdaMdhInhib = stallOn || speedOn || in.GpwsInhibition || tcasOutput

	decisionHeightInf3Ft := in.DecisionHeightVal <= 3
	rh1 := in.RadioHeight1
	rh2 := in.RadioHeight2
	rh1And2Inv := (rh1.IsInv() || rh1.IsNcd()) && (rh2.IsInv() || rh2.IsNcd())

	a.acoDhInhib = decisionHeightInf3Ft || in.DecisionInv || in.AutoCallOutInhib || rh1And2Inv
}

func (a *MdaMdhInhibitionActivation) AcoMdaMdhInhib() bool { return a.acoMdaMdhInhib }
func (a *MdaMdhInhibitionActivation) AcoDhInhib() bool     { return a.acoDhInhib }

// #endregion mda-mdh-inhibition

// #region hundred-above

type HundredAboveIn struct {
	DecisionHeightPlus100FtCodeA  arinc.DiscreteParameter
	DecisionHeightPlus100FtCodeB  arinc.DiscreteParameter
	HundredAboveForMdaMdhRequest1 arinc.Word[bool]
	HundredAboveForMdaMdhRequest2 arinc.Word[bool]
	HundredAboveGenerated         bool
	RadioHeightVal                float64
	DecisionHeightVal             float64
	AcoDhInhib                    bool
	AcoMdaMdhInhib                bool
}

// HundredAboveActivation decides when the hundred above callout is
// played, either from the decision height or a display request.
type HundredAboveActivation struct {
	dhHundredAbove     bool
	haGenerated        bool
	conf1              *logic.ConfirmationNode
	mtrig1             *logic.MonostableTriggerNode
	mtrig2             *logic.MonostableTriggerNode
	memDhGenerated     *logic.MemoryNode
	memMdaMdhGenerated *logic.MemoryNode
}

func NewHundredAboveActivation() *HundredAboveActivation {
	return &HundredAboveActivation{
		conf1:              logic.NewConfirmationLeading(100 * time.Millisecond),
		mtrig1:             logic.NewMonostableLeading(3 * time.Second),
		mtrig2:             logic.NewMonostableLeading(3 * time.Second),
		memDhGenerated:     logic.NewMemoryNode(false),
		memMdaMdhGenerated: logic.NewMemoryNode(false),
	}
}

func mdaMdhRequested(word arinc.Word[bool]) bool {
	return word.Value() && word.IsVal() && !word.IsNcd() && !word.IsFt()
}

func (a *HundredAboveActivation) Update(delta time.Duration, in HundredAboveIn) {
	hundredAboveGenerated := in.HundredAboveGenerated
	pinProgrammed := in.DecisionHeightPlus100FtCodeA.Value() &&
		in.DecisionHeightPlus100FtCodeB.Value()

	// decision height compared to the radio altimeter
	rh := in.RadioHeightVal
	dh := in.DecisionHeightVal
	dhInf90Ft := dh < 90

	var below100Above bool
	if dhInf90Ft {
		below100Above = rh < dh+105
	} else {
		below100Above = rh < dh+115
	}
	mtrig1Out := a.mtrig1.Update(a.conf1.Update(below100Above, delta), delta)

	memDhOut := a.memDhGenerated.Update(hundredAboveGenerated, !mtrig1Out)

	dhCond := !memDhOut && mtrig1Out && pinProgrammed && !in.AcoDhInhib

	// minimum descent altitude or height requested by a display discrete
	captMdaMdh := mdaMdhRequested(in.HundredAboveForMdaMdhRequest1)
	foMdaMdh := mdaMdhRequested(in.HundredAboveForMdaMdhRequest2)

	mtrig2Out := a.mtrig2.Update(captMdaMdh || foMdaMdh, delta)

	memMdaMdhOut := a.memMdaMdhGenerated.Update(hundredAboveGenerated, !mtrig2Out)

	mdaMdhCond := !memMdaMdhOut && mtrig2Out && pinProgrammed && !in.AcoMdaMdhInhib

	a.haGenerated = dhCond || mdaMdhCond
	a.dhHundredAbove = a.haGenerated || hundredAboveGenerated
}

func (a *HundredAboveActivation) DhHundredAbove() bool { return a.dhHundredAbove }
func (a *HundredAboveActivation) HaGenerated() bool    { return a.haGenerated }
func (a *HundredAboveActivation) Warning() bool        { return a.haGenerated }

// #endregion hundred-above

// #region minimum

type MinimumIn struct {
	DecisionHeightCodeA      arinc.DiscreteParameter
	DecisionHeightCodeB      arinc.DiscreteParameter
	MinimumForMdaMdhRequest1 arinc.Word[bool]
	MinimumForMdaMdhRequest2 arinc.Word[bool]
	MinimumGenerated         bool
	DhHundredAbove           bool
	RadioHeightVal           float64
	DecisionHeightVal        float64
	AcoDhInhib               bool
	AcoMdaMdhInhib           bool
}

// MinimumActivation decides when the minimum callout is played.
type MinimumActivation struct {
	dhGenerated         bool
	dhGeneratedDiscrete bool
	conf1               *logic.ConfirmationNode
	mtrig1              *logic.MonostableTriggerNode
	mtrig2              *logic.MonostableTriggerNode
	memDhGenerated      *logic.MemoryNode
	memMdaMdhGenerated  *logic.MemoryNode
}

func NewMinimumActivation() *MinimumActivation {
	return &MinimumActivation{
		conf1:              logic.NewConfirmationLeading(100 * time.Millisecond),
		mtrig1:             logic.NewMonostableLeading(3 * time.Second),
		mtrig2:             logic.NewMonostableLeading(3 * time.Second),
		memDhGenerated:     logic.NewMemoryNode(false),
		memMdaMdhGenerated: logic.NewMemoryNode(false),
	}
}

func (a *MinimumActivation) Update(delta time.Duration, in MinimumIn) {
	minimumGenerated := in.MinimumGenerated
	pinProgrammed := in.DecisionHeightCodeA.Value() && in.DecisionHeightCodeB.Value()

	rh := in.RadioHeightVal
	dh := in.DecisionHeightVal
	dhInf90Ft := dh < 90

	var below100Above bool
	if dhInf90Ft {
		below100Above = rh < dh+5
	} else {
		below100Above = rh < dh+15
	}
	mtrig1Out := a.mtrig1.Update(a.conf1.Update(below100Above, delta), delta)

	memDhOut := a.memDhGenerated.Update(minimumGenerated, !mtrig1Out)

	dhCond := !memDhOut && mtrig1Out && pinProgrammed && !in.AcoDhInhib

	captMdaMdh := mdaMdhRequested(in.MinimumForMdaMdhRequest1)
	foMdaMdh := mdaMdhRequested(in.MinimumForMdaMdhRequest2)

	mtrig2Out := a.mtrig2.Update(captMdaMdh || foMdaMdh, delta)

	memMdaMdhOut := a.memMdaMdhGenerated.Update(minimumGenerated, !mtrig2Out)

	mdaMdhCond := !memMdaMdhOut && mtrig2Out && pinProgrammed && !in.AcoMdaMdhInhib

	a.dhGeneratedDiscrete = dhCond || mdaMdhCond
	a.dhGenerated = a.dhGenerated || minimumGenerated || in.DhHundredAbove
}

func (a *MinimumActivation) DhGenerated() bool { return a.dhGenerated }
func (a *MinimumActivation) Warning() bool     { return a.dhGeneratedDiscrete }

// #endregion minimum

// #region auto-call-out-inhibition

type AutomaticCallOutInhibitionIn struct {
	EssLhLgCompressed    arinc.DiscreteParameter
	NormLhLgCompressed   arinc.DiscreteParameter
	RaFunctionalTest     bool
	RaInvalid            bool
	RaNoComputedData     bool
	CfmFlex              bool
	Eng1TempoMasterLever bool
	Eng2TempoMasterLever bool
	Ground               bool
	Phase8               bool
}

// AutomaticCallOutInhibitionActivation suppresses the automatic callouts
// on the ground and while the radio altimeter data is unusable.
type AutomaticCallOutInhibitionActivation struct {
	autoCallOutInhib bool
	retardInhib      bool
}

func NewAutomaticCallOutInhibitionActivation() *AutomaticCallOutInhibitionActivation {
	return &AutomaticCallOutInhibitionActivation{}
}

func (a *AutomaticCallOutInhibitionActivation) Update(_ time.Duration, in AutomaticCallOutInhibitionIn) {
	groundTest := in.RaFunctionalTest &&
		(in.EssLhLgCompressed.Value() || in.NormLhLgCompressed.Value())

	stallOn := false
	iaeFlex := false
	speedOn := false

	mainInhibit := stallOn || in.RaInvalid || in.RaNoComputedData || in.CfmFlex || iaeFlex || speedOn

	autoCallInhibGround := in.Eng1TempoMasterLever && in.Eng2TempoMasterLever && in.Ground
	retardInhibGround := in.Eng1TempoMasterLever && in.Eng2TempoMasterLever &&
		(in.Ground && !in.Phase8)

	a.autoCallOutInhib = (mainInhibit || autoCallInhibGround) && !groundTest
	a.retardInhib = (mainInhibit || retardInhibGround) && !groundTest
}

func (a *AutomaticCallOutInhibitionActivation) AutoCallOutInhib() bool { return a.autoCallOutInhib }
func (a *AutomaticCallOutInhibitionActivation) RetardInhib() bool      { return a.retardInhib }

// #endregion auto-call-out-inhibition
