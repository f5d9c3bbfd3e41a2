package sheets

import (
	"time"

	"github.com/fwcsim/fwc/internal/arinc"
	"github.com/fwcsim/fwc/internal/logic"
)

// #region dh-dt-positive

type GeneralDhDtPositiveIn struct {
	RadioHeight1 arinc.Word[float64]
	RadioHeight2 arinc.Word[float64]
}

// GeneralDhDtPositiveActivation detects a climbing radio height by
// comparing against the previous tick's value.
type GeneralDhDtPositiveActivation struct {
	lastRh     float64
	dhPositive bool
}

func NewGeneralDhDtPositiveActivation() *GeneralDhDtPositiveActivation {
	return &GeneralDhDtPositiveActivation{}
}

func (a *GeneralDhDtPositiveActivation) Update(_ time.Duration, in GeneralDhDtPositiveIn) {
	rh1 := in.RadioHeight1
	rh1InvOrNcd := rh1.IsInv() || rh1.IsNcd()
	rhValue := rh1.Value()
	if rh1InvOrNcd {
		rhValue = in.RadioHeight2.Value()
	}

	derivative := rhValue - a.lastRh
	a.lastRh = rhValue
	a.dhPositive = derivative > 0
}

func (a *GeneralDhDtPositiveActivation) DhPositive() bool { return a.dhPositive }

// #endregion dh-dt-positive

// #region audio-generated

type AudioGeneratedIn struct {
	MinimumGenerated      bool
	HundredAboveGenerated bool
}

// AudioGeneratedActivation reports back whether the minimum and hundred
// above callouts were emitted on the previous tick. It closes the loop
// between the announce sheets and the decision height memories.
type AudioGeneratedActivation struct {
	minimumGenerated      bool
	hundredAboveGenerated bool
}

func NewAudioGeneratedActivation() *AudioGeneratedActivation {
	return &AudioGeneratedActivation{}
}

func (a *AudioGeneratedActivation) Update(_ time.Duration, in AudioGeneratedIn) {
	a.minimumGenerated = in.MinimumGenerated
	a.hundredAboveGenerated = in.HundredAboveGenerated
}

func (a *AudioGeneratedActivation) MinimumGenerated() bool      { return a.minimumGenerated }
func (a *AudioGeneratedActivation) HundredAboveGenerated() bool { return a.hundredAboveGenerated }

// #endregion audio-generated

// #region decision-height-val

type DecisionHeightValIn struct {
	RadioHeight1    arinc.Word[float64]
	RadioHeight2    arinc.Word[float64]
	DecisionHeight1 arinc.Word[float64]
	DecisionHeight2 arinc.Word[float64]
}

// DecisionHeightValActivation picks the usable radio height and decision
// height out of the redundant sources.
type DecisionHeightValActivation struct {
	radioHeightVal    float64
	decisionHeightVal float64
	decisionInv       bool
}

func NewDecisionHeightValActivation() *DecisionHeightValActivation {
	return &DecisionHeightValActivation{}
}

func (a *DecisionHeightValActivation) Update(_ time.Duration, in DecisionHeightValIn) {
	rh1 := in.RadioHeight1
	rh2 := in.RadioHeight2
	if rh1.IsInv() || rh1.IsNcd() {
		a.radioHeightVal = rh2.Value()
	} else {
		a.radioHeightVal = rh1.Value()
	}

	dh1 := in.DecisionHeight1
	dh2 := in.DecisionHeight2

	dh2Chosen := (dh1.IsVal() && !dh1.IsNcd() && dh2.IsVal() && !dh2.IsNcd() &&
		dh1.Value() > dh2.Value()) || dh1.IsNcd() || dh1.IsInv()

	if dh2Chosen {
		a.decisionHeightVal = dh2.Value()
	} else {
		a.decisionHeightVal = dh1.Value()
	}

	a.decisionInv = (dh1.IsInv() || dh1.IsNcd()) && (dh2.IsInv() || dh2.IsNcd())
}

func (a *DecisionHeightValActivation) RadioHeightVal() float64    { return a.radioHeightVal }
func (a *DecisionHeightValActivation) DecisionHeightVal() float64 { return a.decisionHeightVal }
func (a *DecisionHeightValActivation) DecisionInv() bool          { return a.decisionInv }

// #endregion decision-height-val

// #region altitude-threshold-1

type AltitudeThreshold1In struct {
	RadioHeight1 arinc.Word[float64]
	RadioHeight2 arinc.Word[float64]
}

// AltitudeThreshold1Activation classifies the radio height into the
// upper callout bands and derives the combined radio altimeter status.
type AltitudeThreshold1Activation struct {
	ra1Inv           bool
	altSup50Ft       bool
	altSup410Ft      bool
	alt400Ft         bool
	alt300Ft         bool
	alt200Ft         bool
	alt100Ft         bool
	alt50Ft          bool
	radioHeight      float64
	raInvalid        bool
	raFunctionalTest bool
	raNoComputedData bool
}

func NewAltitudeThreshold1Activation() *AltitudeThreshold1Activation {
	return &AltitudeThreshold1Activation{}
}

func (a *AltitudeThreshold1Activation) Update(_ time.Duration, in AltitudeThreshold1In) {
	rh1 := in.RadioHeight1
	rh2 := in.RadioHeight2
	rh1NcdOrInv := rh1.IsNcd() || rh1.IsInv()
	rhParam := rh1
	if rh1NcdOrInv {
		rhParam = rh2
	}
	rh := rhParam.Value()

	a.ra1Inv = rh1NcdOrInv
	a.altSup50Ft = rh > 50
	a.altSup410Ft = rh >= 410
	a.alt400Ft = 400 <= rh && rh < 410
	a.alt300Ft = 300 <= rh && rh < 310
	a.alt200Ft = 200 <= rh && rh < 210
	a.alt100Ft = 100 <= rh && rh < 110
	a.alt50Ft = 50 <= rh && rh < 53
	a.radioHeight = rh
	a.raInvalid = rh1NcdOrInv && rh2.IsInv()
	if rh1NcdOrInv {
		a.raFunctionalTest = rh2.IsFt()
		a.raNoComputedData = rh2.IsNcd()
	} else {
		a.raFunctionalTest = rh1.IsFt()
		a.raNoComputedData = rh1.IsNcd()
	}
}

func (a *AltitudeThreshold1Activation) Ra1Inv() bool           { return a.ra1Inv }
func (a *AltitudeThreshold1Activation) AltSup50Ft() bool       { return a.altSup50Ft }
func (a *AltitudeThreshold1Activation) AltSup410Ft() bool      { return a.altSup410Ft }
func (a *AltitudeThreshold1Activation) Alt400Ft() bool         { return a.alt400Ft }
func (a *AltitudeThreshold1Activation) Alt300Ft() bool         { return a.alt300Ft }
func (a *AltitudeThreshold1Activation) Alt200Ft() bool         { return a.alt200Ft }
func (a *AltitudeThreshold1Activation) Alt100Ft() bool         { return a.alt100Ft }
func (a *AltitudeThreshold1Activation) Alt50Ft() bool          { return a.alt50Ft }
func (a *AltitudeThreshold1Activation) RadioHeight() float64   { return a.radioHeight }
func (a *AltitudeThreshold1Activation) RaInvalid() bool        { return a.raInvalid }
func (a *AltitudeThreshold1Activation) RaFunctionalTest() bool { return a.raFunctionalTest }
func (a *AltitudeThreshold1Activation) RaNoComputedData() bool { return a.raNoComputedData }

// #endregion altitude-threshold-1

// #region altitude-threshold-2

type AltitudeThreshold2In struct {
	RadioHeight float64
	RaInvalid   bool
}

// AltitudeThreshold2Activation classifies the radio height into the
// lower callout bands and confirms a sustained climb.
type AltitudeThreshold2Activation struct {
	lastRh       float64
	confNode     *logic.ConfirmationNode
	alt40Ft      bool
	alt30Ft      bool
	alt20Ft      bool
	altInf20Ft   bool
	alt10Ft      bool
	altInf10Ft   bool
	alt5Ft       bool
	altInf3Ft    bool
	dhInhibition bool
}

func NewAltitudeThreshold2Activation() *AltitudeThreshold2Activation {
	return &AltitudeThreshold2Activation{
		confNode: logic.NewConfirmationFalling(300 * time.Millisecond),
	}
}

func (a *AltitudeThreshold2Activation) Update(delta time.Duration, in AltitudeThreshold2In) {
	rh := in.RadioHeight
	raInvalid := in.RaInvalid
	a.alt40Ft = 40 <= rh && rh < 42
	a.alt30Ft = 30 <= rh && rh < 32
	a.alt20Ft = 20 <= rh && rh < 22
	a.altInf20Ft = !raInvalid && -5 <= rh && rh < 22
	a.alt10Ft = 10 <= rh && rh < 12
	a.altInf10Ft = !raInvalid && -5 <= rh && rh < 12
	a.alt5Ft = 5 <= rh && rh < 6
	a.altInf3Ft = !raInvalid && rh <= 3
	// the sign of the derivative is all that matters, so skip the
	// division by delta
	derivative := rh - a.lastRh
	a.lastRh = rh
	a.dhInhibition = a.confNode.Update(derivative > 0, delta)
}

func (a *AltitudeThreshold2Activation) Alt40Ft() bool      { return a.alt40Ft }
func (a *AltitudeThreshold2Activation) Alt30Ft() bool      { return a.alt30Ft }
func (a *AltitudeThreshold2Activation) Alt20Ft() bool      { return a.alt20Ft }
func (a *AltitudeThreshold2Activation) Alt10Ft() bool      { return a.alt10Ft }
func (a *AltitudeThreshold2Activation) Alt5Ft() bool       { return a.alt5Ft }
func (a *AltitudeThreshold2Activation) AltInf3Ft() bool    { return a.altInf3Ft }
func (a *AltitudeThreshold2Activation) DhInhibition() bool { return a.dhInhibition }

// #endregion altitude-threshold-2

// #region hoisted-gpws-inhibition

type HoistedGpwsInhibitionIn struct {
	GpwsModesOn     arinc.DiscreteParameter
	GsVisualAlertOn arinc.DiscreteParameter
}

// HoistedGpwsInhibitionActivation holds the callout inhibition for a
// short window after any ground proximity alert.
type HoistedGpwsInhibitionActivation struct {
	mtrig          *logic.MonostableTriggerNode
	gpwsInhibition bool
}

func NewHoistedGpwsInhibitionActivation() *HoistedGpwsInhibitionActivation {
	return &HoistedGpwsInhibitionActivation{
		mtrig: logic.NewMonostableLeading(2 * time.Second),
	}
}

func (a *HoistedGpwsInhibitionActivation) Update(delta time.Duration, in HoistedGpwsInhibitionIn) {
	anyGpws := in.GpwsModesOn.Value() || in.GsVisualAlertOn.Value()
	a.gpwsInhibition = a.mtrig.Update(anyGpws, delta)
}

func (a *HoistedGpwsInhibitionActivation) GpwsInhibition() bool { return a.gpwsInhibition }

// #endregion hoisted-gpws-inhibition

// #region altitude-threshold-3

type AltitudeThreshold3In struct {
	GpwsInhibition bool
	DhPositive     bool
	Alt400Ft       bool
	Alt300Ft       bool
	Alt200Ft       bool
	Alt100Ft       bool
	Alt50Ft        bool
	Alt40Ft        bool
	Alt30Ft        bool
	Alt20Ft        bool
	Alt10Ft        bool
	Alt5Ft         bool
	AltInf3Ft      bool
	DhGenerated    bool
	DhInhibition   bool
}

// AltitudeThreshold3Activation combines the band detections into the
// shared inhibition terms used by the trigger sheets.
type AltitudeThreshold3Activation struct {
	thresholdDetection   bool
	gpwsInhibition       bool
	toAndGroundDetection bool
	renvoi1              bool
	renvoi2              bool
	renvoi3              bool
}

func NewAltitudeThreshold3Activation() *AltitudeThreshold3Activation {
	return &AltitudeThreshold3Activation{}
}

func (a *AltitudeThreshold3Activation) Update(_ time.Duration, in AltitudeThreshold3In) {
	a.thresholdDetection = in.Alt400Ft || in.Alt300Ft || in.Alt200Ft || in.Alt100Ft ||
		in.Alt50Ft || in.Alt40Ft || in.Alt30Ft || in.Alt20Ft || in.Alt10Ft || in.Alt5Ft
	a.gpwsInhibition = in.GpwsInhibition
	a.toAndGroundDetection = in.AltInf3Ft || in.DhPositive
	a.renvoi1 = a.toAndGroundDetection || a.gpwsInhibition || in.DhGenerated
	a.renvoi2 = a.toAndGroundDetection || in.DhGenerated
	a.renvoi3 = a.toAndGroundDetection || in.AltInf3Ft || in.DhInhibition
}

func (a *AltitudeThreshold3Activation) ThresholdDetection() bool   { return a.thresholdDetection }
func (a *AltitudeThreshold3Activation) GpwsInhibition() bool       { return a.gpwsInhibition }
func (a *AltitudeThreshold3Activation) ToAndGroundDetection() bool { return a.toAndGroundDetection }
func (a *AltitudeThreshold3Activation) Renvoi1() bool              { return a.renvoi1 }
func (a *AltitudeThreshold3Activation) Renvoi2() bool              { return a.renvoi2 }
func (a *AltitudeThreshold3Activation) Renvoi3() bool              { return a.renvoi3 }

// #endregion altitude-threshold-3
