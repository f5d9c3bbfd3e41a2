package sheets

import (
	"time"

	"github.com/fwcsim/fwc/internal/arinc"
	"github.com/fwcsim/fwc/internal/logic"
)

// #region high-callouts

// HysteresisCalloutIn feeds the high altitude announce sheets, which
// share a single armed trigger and one-shot memory layout.
type HysteresisCalloutIn struct {
	RadioHeight      float64
	Seuil            bool
	AutoCallOutInhib bool
}

// hysteresisCallout plays a callout once per approach. The memory rearms
// when the aircraft climbs back through the upper threshold.
type hysteresisCallout struct {
	hysteresis  *logic.HysteresisNode
	mem         *logic.MemoryNode
	activePulse *logic.PulseNode
	precNode    *logic.PrecedingValueNode
	resetPulse  *logic.PulseNode
}

func newHysteresisCallout(dn, up float64) hysteresisCallout {
	return hysteresisCallout{
		hysteresis:  logic.NewHysteresisNode(dn, up),
		mem:         logic.NewMemoryNode(false),
		activePulse: logic.NewPulseLeading(),
		precNode:    logic.NewPrecedingValueNode(),
		resetPulse:  logic.NewPulseFalling(),
	}
}

func (c *hysteresisCallout) update(in HysteresisCalloutIn) bool {
	hysteresisOut := c.hysteresis.Update(in.RadioHeight)
	resetPulseOut := c.resetPulse.Update(hysteresisOut)

	memOut := c.mem.Update(c.precNode.Value(), resetPulseOut)

	active := hysteresisOut && in.Seuil && !in.AutoCallOutInhib && !memOut

	c.precNode.Update(c.activePulse.Update(active))
	return active
}

// AltitudeCallout2500FtAnnounceActivation plays the "two thousand five
// hundred" callout.
type AltitudeCallout2500FtAnnounceActivation struct {
	callout      hysteresisCallout
	twoThdFiveHd bool
}

func NewAltitudeCallout2500FtAnnounceActivation() *AltitudeCallout2500FtAnnounceActivation {
	return &AltitudeCallout2500FtAnnounceActivation{callout: newHysteresisCallout(2500, 3000)}
}

func (a *AltitudeCallout2500FtAnnounceActivation) Update(_ time.Duration, in HysteresisCalloutIn) {
	a.twoThdFiveHd = a.callout.update(in)
}

func (a *AltitudeCallout2500FtAnnounceActivation) Warning() bool { return a.twoThdFiveHd }

// AltitudeCallout2500BFtAnnounceActivation plays the alternate "twenty
// five hundred" callout.
type AltitudeCallout2500BFtAnnounceActivation struct {
	callout           hysteresisCallout
	twentyFiveHundred bool
}

func NewAltitudeCallout2500BFtAnnounceActivation() *AltitudeCallout2500BFtAnnounceActivation {
	return &AltitudeCallout2500BFtAnnounceActivation{callout: newHysteresisCallout(2500, 3000)}
}

func (a *AltitudeCallout2500BFtAnnounceActivation) Update(_ time.Duration, in HysteresisCalloutIn) {
	a.twentyFiveHundred = a.callout.update(in)
}

func (a *AltitudeCallout2500BFtAnnounceActivation) Warning() bool { return a.twentyFiveHundred }

// AltitudeCallout2000FtAnnounceActivation plays the "two thousand"
// callout.
type AltitudeCallout2000FtAnnounceActivation struct {
	callout     hysteresisCallout
	twoThousand bool
}

func NewAltitudeCallout2000FtAnnounceActivation() *AltitudeCallout2000FtAnnounceActivation {
	return &AltitudeCallout2000FtAnnounceActivation{callout: newHysteresisCallout(2000, 2400)}
}

func (a *AltitudeCallout2000FtAnnounceActivation) Update(_ time.Duration, in HysteresisCalloutIn) {
	a.twoThousand = a.callout.update(in)
}

func (a *AltitudeCallout2000FtAnnounceActivation) Warning() bool { return a.twoThousand }

// AltitudeCallout1000FtAnnounceActivation plays the "one thousand"
// callout.
type AltitudeCallout1000FtAnnounceActivation struct {
	callout     hysteresisCallout
	oneThousand bool
}

func NewAltitudeCallout1000FtAnnounceActivation() *AltitudeCallout1000FtAnnounceActivation {
	return &AltitudeCallout1000FtAnnounceActivation{callout: newHysteresisCallout(1000, 1100)}
}

func (a *AltitudeCallout1000FtAnnounceActivation) Update(_ time.Duration, in HysteresisCalloutIn) {
	a.oneThousand = a.callout.update(in)
}

func (a *AltitudeCallout1000FtAnnounceActivation) Warning() bool { return a.oneThousand }

// #endregion high-callouts

// #region five-hundred

type AltitudeCallout500FtAnnounceIn struct {
	GlideDeviation1                arinc.Word[float64]
	GlideDeviation2                arinc.Word[float64]
	AutoCallOut500FtGlideDeviation arinc.DiscreteParameter
	AutoCallOut500Ft               arinc.DiscreteParameter
	AutoCallOutInhib               bool
	Seuil500Ft                     bool
}

// AltitudeCallout500FtAnnounceActivation plays the "five hundred"
// callout, either plain or only when deviating from the glide slope.
type AltitudeCallout500FtAnnounceActivation struct {
	conf1       *logic.ConfirmationNode
	conf2       *logic.ConfirmationNode
	mtrig1      *logic.MonostableTriggerNode
	mtrig2      *logic.MonostableTriggerNode
	prec1       *logic.PrecedingValueNode
	prec2       *logic.PrecedingValueNode
	fiveHundred bool
}

func NewAltitudeCallout500FtAnnounceActivation() *AltitudeCallout500FtAnnounceActivation {
	return &AltitudeCallout500FtAnnounceActivation{
		conf1:  logic.NewConfirmationFalling(500 * time.Millisecond),
		conf2:  logic.NewConfirmationFalling(500 * time.Millisecond),
		mtrig1: logic.NewMonostableLeading(11 * time.Second),
		mtrig2: logic.NewMonostableLeading(11 * time.Second),
		prec1:  logic.NewPrecedingValueNode(),
		prec2:  logic.NewPrecedingValueNode(),
	}
}

func (a *AltitudeCallout500FtAnnounceActivation) Update(delta time.Duration, in AltitudeCallout500FtAnnounceIn) {
	glideDeviation1 := in.GlideDeviation1
	glideDeviation2 := in.GlideDeviation2

	pin500FtGlideDeviation := in.AutoCallOut500FtGlideDeviation.Value()
	pin500Ft := in.AutoCallOut500Ft.Value()

	glideDeviation1InvOrNcd := glideDeviation1.IsInv() || glideDeviation1.IsNcd()
	glideDeviation2InvOrNcd := glideDeviation2.IsInv() || glideDeviation2.IsNcd()

	conf1Out := a.conf1.Update(glideDeviation1.Value() < 0.175, delta)
	conf2Out := a.conf2.Update(glideDeviation2.Value() < 0.175, delta)

	onGs1 := glideDeviation1InvOrNcd || conf1Out
	onGs2 := glideDeviation2InvOrNcd || conf2Out
	dualInvGs := glideDeviation1InvOrNcd && glideDeviation2InvOrNcd

	glideDeviation := !onGs1 || !onGs2 || dualInvGs

	calloutGlideDeviation := glideDeviation && pin500FtGlideDeviation && in.Seuil500Ft &&
		!in.AutoCallOutInhib && !a.prec1.Value()
	a.prec1.Update(a.mtrig1.Update(calloutGlideDeviation, delta))

	callout500Ft := pin500Ft && in.Seuil500Ft && !in.AutoCallOutInhib && !a.prec2.Value()
	a.prec2.Update(a.mtrig2.Update(callout500Ft, delta))

	a.fiveHundred = calloutGlideDeviation || callout500Ft
}

func (a *AltitudeCallout500FtAnnounceActivation) Warning() bool { return a.fiveHundred }

// #endregion five-hundred

// #region mid-callouts

// PulseCalloutIn feeds the mid altitude announce sheets, which fire a
// single pulse per band crossing.
type PulseCalloutIn struct {
	Seuil            bool
	AutoCallOutInhib bool
}

// pulseCallout fires once on entering the band and suppresses retriggers
// for the given window.
type pulseCallout struct {
	pulse *logic.PulseNode
	mtrig *logic.MonostableTriggerNode
	prec  *logic.PrecedingValueNode
}

func newPulseCallout(window time.Duration) pulseCallout {
	return pulseCallout{
		pulse: logic.NewPulseLeading(),
		mtrig: logic.NewMonostableLeading(window),
		prec:  logic.NewPrecedingValueNode(),
	}
}

func (c *pulseCallout) update(delta time.Duration, in PulseCalloutIn) bool {
	active := c.pulse.Update(in.Seuil) && !in.AutoCallOutInhib && !c.prec.Value()
	c.prec.Update(c.mtrig.Update(active, delta))
	return active
}

// AltitudeCallout400FtAnnounceActivation plays the "four hundred"
// callout.
type AltitudeCallout400FtAnnounceActivation struct {
	callout     pulseCallout
	fourHundred bool
}

func NewAltitudeCallout400FtAnnounceActivation() *AltitudeCallout400FtAnnounceActivation {
	return &AltitudeCallout400FtAnnounceActivation{callout: newPulseCallout(5 * time.Second)}
}

func (a *AltitudeCallout400FtAnnounceActivation) Update(delta time.Duration, in PulseCalloutIn) {
	a.fourHundred = a.callout.update(delta, in)
}

func (a *AltitudeCallout400FtAnnounceActivation) Warning() bool { return a.fourHundred }

// AltitudeCallout300FtAnnounceActivation plays the "three hundred"
// callout.
type AltitudeCallout300FtAnnounceActivation struct {
	callout pulseCallout
	aco300  bool
}

func NewAltitudeCallout300FtAnnounceActivation() *AltitudeCallout300FtAnnounceActivation {
	return &AltitudeCallout300FtAnnounceActivation{callout: newPulseCallout(5 * time.Second)}
}

func (a *AltitudeCallout300FtAnnounceActivation) Update(delta time.Duration, in PulseCalloutIn) {
	a.aco300 = a.callout.update(delta, in)
}

func (a *AltitudeCallout300FtAnnounceActivation) Warning() bool { return a.aco300 }

// AltitudeCallout200FtAnnounceActivation plays the "two hundred"
// callout.
type AltitudeCallout200FtAnnounceActivation struct {
	callout pulseCallout
	aco200  bool
}

func NewAltitudeCallout200FtAnnounceActivation() *AltitudeCallout200FtAnnounceActivation {
	return &AltitudeCallout200FtAnnounceActivation{callout: newPulseCallout(5 * time.Second)}
}

func (a *AltitudeCallout200FtAnnounceActivation) Update(delta time.Duration, in PulseCalloutIn) {
	a.aco200 = a.callout.update(delta, in)
}

func (a *AltitudeCallout200FtAnnounceActivation) Warning() bool { return a.aco200 }

// AltitudeCallout100FtAnnounceActivation plays the "one hundred"
// callout.
type AltitudeCallout100FtAnnounceActivation struct {
	callout pulseCallout
	aco100  bool
}

func NewAltitudeCallout100FtAnnounceActivation() *AltitudeCallout100FtAnnounceActivation {
	return &AltitudeCallout100FtAnnounceActivation{callout: newPulseCallout(5 * time.Second)}
}

func (a *AltitudeCallout100FtAnnounceActivation) Update(delta time.Duration, in PulseCalloutIn) {
	a.aco100 = a.callout.update(delta, in)
}

func (a *AltitudeCallout100FtAnnounceActivation) Warning() bool { return a.aco100 }

// #endregion mid-callouts

// #region low-callouts

// ChainedCalloutIn feeds the low altitude announce sheets. Each callout
// yields to the next lower callout when both fire on the same tick.
type ChainedCalloutIn struct {
	Seuil             bool
	AutoCallOutInhib  bool
	LowerCalloutAudio bool
}

// AltitudeCallout50FtAnnounceActivation plays the "fifty" callout.
type AltitudeCallout50FtAnnounceActivation struct {
	pulse *logic.PulseNode
	mtrig *logic.MonostableTriggerNode
	prec  *logic.PrecedingValueNode
	aco50 bool
}

func NewAltitudeCallout50FtAnnounceActivation() *AltitudeCallout50FtAnnounceActivation {
	return &AltitudeCallout50FtAnnounceActivation{
		pulse: logic.NewPulseLeading(),
		mtrig: logic.NewMonostableLeading(2 * time.Second),
		prec:  logic.NewPrecedingValueNode(),
	}
}

func (a *AltitudeCallout50FtAnnounceActivation) Update(delta time.Duration, in ChainedCalloutIn) {
	active := a.pulse.Update(in.Seuil && !in.AutoCallOutInhib) &&
		!a.prec.Value() && !in.LowerCalloutAudio
	a.prec.Update(a.mtrig.Update(active, delta))
	a.aco50 = active
}

func (a *AltitudeCallout50FtAnnounceActivation) Audio50() bool { return a.aco50 }
func (a *AltitudeCallout50FtAnnounceActivation) Warning() bool { return a.aco50 }

// AltitudeCallout40FtAnnounceActivation plays the "forty" callout.
type AltitudeCallout40FtAnnounceActivation struct {
	pulse *logic.PulseNode
	mtrig *logic.MonostableTriggerNode
	prec  *logic.PrecedingValueNode
	aco40 bool
}

func NewAltitudeCallout40FtAnnounceActivation() *AltitudeCallout40FtAnnounceActivation {
	return &AltitudeCallout40FtAnnounceActivation{
		pulse: logic.NewPulseLeading(),
		mtrig: logic.NewMonostableLeading(2 * time.Second),
		prec:  logic.NewPrecedingValueNode(),
	}
}

func (a *AltitudeCallout40FtAnnounceActivation) Update(delta time.Duration, in ChainedCalloutIn) {
	active := a.pulse.Update(in.Seuil && !in.AutoCallOutInhib) &&
		!a.prec.Value() && !in.LowerCalloutAudio
	a.prec.Update(a.mtrig.Update(active, delta))
	a.aco40 = active
}

func (a *AltitudeCallout40FtAnnounceActivation) Audio40() bool { return a.aco40 }
func (a *AltitudeCallout40FtAnnounceActivation) Warning() bool { return a.aco40 }

// AltitudeCallout30FtAnnounceActivation plays the "thirty" callout.
type AltitudeCallout30FtAnnounceActivation struct {
	pulse *logic.PulseNode
	mtrig *logic.MonostableTriggerNode
	prec  *logic.PrecedingValueNode
	aco30 bool
}

func NewAltitudeCallout30FtAnnounceActivation() *AltitudeCallout30FtAnnounceActivation {
	return &AltitudeCallout30FtAnnounceActivation{
		pulse: logic.NewPulseLeading(),
		mtrig: logic.NewMonostableLeading(2 * time.Second),
		prec:  logic.NewPrecedingValueNode(),
	}
}

func (a *AltitudeCallout30FtAnnounceActivation) Update(delta time.Duration, in ChainedCalloutIn) {
	active := a.pulse.Update(in.Seuil && !in.AutoCallOutInhib) &&
		!a.prec.Value() && !in.LowerCalloutAudio
	a.prec.Update(a.mtrig.Update(active, delta))
	a.aco30 = active
}

func (a *AltitudeCallout30FtAnnounceActivation) Audio30() bool { return a.aco30 }
func (a *AltitudeCallout30FtAnnounceActivation) Warning() bool { return a.aco30 }

type AltitudeCallout20FtAnnounceIn struct {
	LandTrkModeOn1   arinc.Word[bool]
	LandTrkModeOn2   arinc.Word[bool]
	AThrEngaged      arinc.DiscreteParameter
	Ap1Engd          bool
	Ap2Engd          bool
	Seuil20Ft        bool
	AutoCallOutInhib bool
	Audio10          bool
}

// AltitudeCallout20FtAnnounceActivation plays the "twenty" callout
// during an autoland with autothrust engaged.
type AltitudeCallout20FtAnnounceActivation struct {
	pulse *logic.PulseNode
	mtrig *logic.MonostableTriggerNode
	prec  *logic.PrecedingValueNode
	aco20 bool
}

func NewAltitudeCallout20FtAnnounceActivation() *AltitudeCallout20FtAnnounceActivation {
	return &AltitudeCallout20FtAnnounceActivation{
		pulse: logic.NewPulseLeading(),
		mtrig: logic.NewMonostableLeading(2 * time.Second),
		prec:  logic.NewPrecedingValueNode(),
	}
}

func (a *AltitudeCallout20FtAnnounceActivation) Update(delta time.Duration, in AltitudeCallout20FtAnnounceIn) {
	ap1InLand := in.Ap1Engd && in.LandTrkModeOn1.Value()
	ap2InLand := in.Ap2Engd && in.LandTrkModeOn2.Value()
	anyApInLand := ap1InLand || ap2InLand
	athrEngaged := in.AThrEngaged.Value()

	pulseOut := a.pulse.Update(in.Seuil20Ft && !in.AutoCallOutInhib)

	active := anyApInLand && athrEngaged && pulseOut && !a.prec.Value() && !in.Audio10

	a.prec.Update(a.mtrig.Update(active, delta))

	a.aco20 = active
}

func (a *AltitudeCallout20FtAnnounceActivation) Audio20() bool { return a.aco20 }
func (a *AltitudeCallout20FtAnnounceActivation) Warning() bool { return a.aco20 }

type AltitudeCallout10FtAnnounceIn struct {
	LandTrkModeOn1   arinc.Word[bool]
	LandTrkModeOn2   arinc.Word[bool]
	AThrEngaged      arinc.DiscreteParameter
	Ap1Engd          bool
	Ap2Engd          bool
	Seuil10Ft        bool
	AutoCallOutInhib bool
	Audio5           bool
}

// AltitudeCallout10FtAnnounceActivation plays the "ten" callout when the
// retard callout is not expected instead.
type AltitudeCallout10FtAnnounceActivation struct {
	pulse *logic.PulseNode
	mtrig *logic.MonostableTriggerNode
	prec  *logic.PrecedingValueNode
	aco10 bool
}

func NewAltitudeCallout10FtAnnounceActivation() *AltitudeCallout10FtAnnounceActivation {
	return &AltitudeCallout10FtAnnounceActivation{
		pulse: logic.NewPulseLeading(),
		mtrig: logic.NewMonostableLeading(2 * time.Second),
		prec:  logic.NewPrecedingValueNode(),
	}
}

func (a *AltitudeCallout10FtAnnounceActivation) Update(delta time.Duration, in AltitudeCallout10FtAnnounceIn) {
	ap1InLand := in.Ap1Engd && in.LandTrkModeOn1.Value()
	ap2InLand := in.Ap2Engd && in.LandTrkModeOn2.Value()
	anyApInLand := ap1InLand || ap2InLand
	athrEngaged := in.AThrEngaged.Value()

	pulseOut := a.pulse.Update(in.Seuil10Ft && !in.AutoCallOutInhib)

	retardInhibition := false

	active := ((!anyApInLand && athrEngaged) || !athrEngaged) &&
		pulseOut && !a.prec.Value() && !retardInhibition && !in.Audio5

	a.prec.Update(a.mtrig.Update(active, delta))

	a.aco10 = active
}

func (a *AltitudeCallout10FtAnnounceActivation) Audio10() bool { return a.aco10 }
func (a *AltitudeCallout10FtAnnounceActivation) Warning() bool { return a.aco10 }

// AltitudeCallout5FtAnnounceActivation plays the "five" callout.
type AltitudeCallout5FtAnnounceActivation struct {
	pulse *logic.PulseNode
	mtrig *logic.MonostableTriggerNode
	prec  *logic.PrecedingValueNode
	aco5  bool
}

func NewAltitudeCallout5FtAnnounceActivation() *AltitudeCallout5FtAnnounceActivation {
	return &AltitudeCallout5FtAnnounceActivation{
		pulse: logic.NewPulseLeading(),
		mtrig: logic.NewMonostableLeading(2 * time.Second),
		prec:  logic.NewPrecedingValueNode(),
	}
}

func (a *AltitudeCallout5FtAnnounceActivation) Update(delta time.Duration, in PulseCalloutIn) {
	retardInhibition := false

	active := a.pulse.Update(in.Seuil && !in.AutoCallOutInhib &&
		!a.prec.Value() && !retardInhibition)

	a.prec.Update(a.mtrig.Update(active, delta))

	a.aco5 = active
}

func (a *AltitudeCallout5FtAnnounceActivation) Audio5() bool  { return a.aco5 }
func (a *AltitudeCallout5FtAnnounceActivation) Warning() bool { return a.aco5 }

// #endregion low-callouts

// #region retard

type AutoCallOutTwentyRetardAnnounceIn struct {
	Eng1Tla          arinc.Word[float64]
	Eng2Tla          arinc.Word[float64]
	LandTrkModeOn1   arinc.Word[bool]
	LandTrkModeOn2   arinc.Word[bool]
	AThrEngaged      arinc.DiscreteParameter
	Eng1SupMctCfm    bool
	Eng2SupMctCfm    bool
	Phase8           bool
	RetardInhib      bool
	AutoCallOutInhib bool
	Seuil20Ft        bool
	Ap1Engd          bool
	Ap2Engd          bool
}

// AutoCallOutTwentyRetardAnnounceActivation plays the "retard" callout
// at twenty feet during a manual landing.
type AutoCallOutTwentyRetardAnnounceActivation struct {
	pulse           *logic.PulseNode
	mtrig           *logic.MonostableTriggerNode
	prec            *logic.PrecedingValueNode
	toga            bool
	retardToga      bool
	acoTwentyRetard bool
}

func NewAutoCallOutTwentyRetardAnnounceActivation() *AutoCallOutTwentyRetardAnnounceActivation {
	return &AutoCallOutTwentyRetardAnnounceActivation{
		pulse: logic.NewPulseLeading(),
		mtrig: logic.NewMonostableLeading(2 * time.Second),
		prec:  logic.NewPrecedingValueNode(),
	}
}

func (a *AutoCallOutTwentyRetardAnnounceActivation) Update(delta time.Duration, in AutoCallOutTwentyRetardAnnounceIn) {
	cfmTlaCond := in.Eng1Tla.Value() > 43.3 || in.Eng2Tla.Value() > 43.3

	cfmMctCond := in.Phase8 && (in.Eng1SupMctCfm || in.Eng2SupMctCfm)

	togaCond := cfmTlaCond || cfmMctCond

	a.retardToga = in.RetardInhib || togaCond
	a.toga = togaCond || in.AutoCallOutInhib

	ap1InLand := in.Ap1Engd && in.LandTrkModeOn1.Value()
	ap2InLand := in.Ap2Engd && in.LandTrkModeOn2.Value()
	anyApInLand := ap1InLand || ap2InLand
	athrEngaged := in.AThrEngaged.Value()
	athrCond := !athrEngaged || !anyApInLand

	twentyRetard := !a.toga && in.Seuil20Ft && athrCond && !a.prec.Value()

	pulseOut := a.pulse.Update(twentyRetard)
	a.acoTwentyRetard = pulseOut
	a.prec.Update(a.mtrig.Update(pulseOut, delta))
}

func (a *AutoCallOutTwentyRetardAnnounceActivation) RetardToga() bool { return a.retardToga }
func (a *AutoCallOutTwentyRetardAnnounceActivation) Toga() bool       { return a.toga }
func (a *AutoCallOutTwentyRetardAnnounceActivation) Warning() bool    { return a.acoTwentyRetard }

type AutoCallOutTenRetardAnnounceIn struct {
	LandTrkModeOn1   arinc.Word[bool]
	LandTrkModeOn2   arinc.Word[bool]
	AThrEngaged      arinc.DiscreteParameter
	Toga             bool
	AutoCallOutInhib bool
	Seuil10Ft        bool
	Ap1Engd          bool
	Ap2Engd          bool
}

// AutoCallOutTenRetardAnnounceActivation plays the "retard" callout at
// ten feet during an autoland.
type AutoCallOutTenRetardAnnounceActivation struct {
	pulse        *logic.PulseNode
	mtrig        *logic.MonostableTriggerNode
	prec         *logic.PrecedingValueNode
	acoTenRetard bool
}

func NewAutoCallOutTenRetardAnnounceActivation() *AutoCallOutTenRetardAnnounceActivation {
	return &AutoCallOutTenRetardAnnounceActivation{
		pulse: logic.NewPulseLeading(),
		mtrig: logic.NewMonostableLeading(2 * time.Second),
		prec:  logic.NewPrecedingValueNode(),
	}
}

func (a *AutoCallOutTenRetardAnnounceActivation) Update(delta time.Duration, in AutoCallOutTenRetardAnnounceIn) {
	ap1InLand := in.Ap1Engd && in.LandTrkModeOn1.Value()
	ap2InLand := in.Ap2Engd && in.LandTrkModeOn2.Value()
	anyApInLand := ap1InLand || ap2InLand
	athrEngaged := in.AThrEngaged.Value()
	athrCond := athrEngaged && anyApInLand

	tenRetard := !(in.Toga || in.AutoCallOutInhib) && in.Seuil10Ft &&
		athrCond && !a.prec.Value()

	pulseOut := a.pulse.Update(tenRetard)
	a.acoTenRetard = pulseOut
	a.prec.Update(a.mtrig.Update(pulseOut, delta))
}

func (a *AutoCallOutTenRetardAnnounceActivation) Warning() bool { return a.acoTenRetard }

// #endregion retard

// #region threshold-detection

type AltitudeCalloutThresholdDetectionIn struct {
	Seuil400Ft bool
	Seuil300Ft bool
	Seuil200Ft bool
	Seuil100Ft bool
	Seuil50Ft  bool
	Seuil40Ft  bool
	Seuil30Ft  bool
	Seuil20Ft  bool
	Seuil10Ft  bool
}

// AltitudeCalloutThresholdDetectionActivation reports that any of the
// armed altitude bands is currently met.
type AltitudeCalloutThresholdDetectionActivation struct {
	nonInhibitedThresholdDetection bool
}

func NewAltitudeCalloutThresholdDetectionActivation() *AltitudeCalloutThresholdDetectionActivation {
	return &AltitudeCalloutThresholdDetectionActivation{}
}

func (a *AltitudeCalloutThresholdDetectionActivation) Update(_ time.Duration, in AltitudeCalloutThresholdDetectionIn) {
	a.nonInhibitedThresholdDetection = in.Seuil400Ft || in.Seuil300Ft || in.Seuil200Ft ||
		in.Seuil100Ft || in.Seuil50Ft || in.Seuil40Ft || in.Seuil30Ft ||
		in.Seuil20Ft || in.Seuil10Ft
}

func (a *AltitudeCalloutThresholdDetectionActivation) NonInhibitedThresholdDetection() bool {
	return a.nonInhibitedThresholdDetection
}

// #endregion threshold-detection

// #region intermediate-audio

type IntermediateAudioIn struct {
	AltSup410Ft                    bool
	AltSup50Ft                     bool
	ToAndGroundDetection           bool
	GpwsInhibition                 bool
	ThresholdDetection             bool
	NonInhibitedThresholdDetection bool
	DhGenerated                    bool
	AutoCallOutGenerated           bool
	InterAudio                     bool
}

// IntermediateAudioActivation suppresses the repeating intermediate
// pitch audio around the discrete callouts.
type IntermediateAudioActivation struct {
	pulse1              *logic.PulseNode
	pulse2              *logic.PulseNode
	mrtrig1             *logic.MonostableTriggerNode
	mrtrig2             *logic.MonostableTriggerNode
	mem                 *logic.MemoryNode
	intermediateCallOut bool
}

func NewIntermediateAudioActivation() *IntermediateAudioActivation {
	return &IntermediateAudioActivation{
		pulse1:  logic.NewPulseLeading(),
		pulse2:  logic.NewPulseLeading(),
		mrtrig1: logic.NewMonostableRetriggerable(true, 4*time.Second),
		mrtrig2: logic.NewMonostableRetriggerable(true, 11*time.Second),
		mem:     logic.NewMemoryNode(true),
	}
}

func (a *IntermediateAudioActivation) Update(delta time.Duration, in IntermediateAudioIn) {
	inhibited := a.mem.Update(
		in.AltSup410Ft || in.ToAndGroundDetection || in.GpwsInhibition,
		in.NonInhibitedThresholdDetection && in.AutoCallOutGenerated,
	)

	pulse1Out := a.pulse1.Update(in.ThresholdDetection)
	pulse2Out := a.pulse2.Update(in.InterAudio)
	thresholdOrInterAudio := pulse1Out || pulse2Out

	mrtrig1Out := a.mrtrig1.Update(thresholdOrInterAudio && !in.AltSup50Ft, delta)
	mrtrig2Out := a.mrtrig2.Update(thresholdOrInterAudio && in.AltSup50Ft, delta)

	a.intermediateCallOut = inhibited || in.DhGenerated || mrtrig1Out || mrtrig2Out
}

func (a *IntermediateAudioActivation) IntermediateCallOut() bool { return a.intermediateCallOut }

// #endregion intermediate-audio
