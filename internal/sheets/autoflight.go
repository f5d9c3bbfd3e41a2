package sheets

import (
	"time"

	"github.com/fwcsim/fwc/internal/arinc"
	"github.com/fwcsim/fwc/internal/logic"
)

// #region baro-altitude

// AutoFlightBaroAltitudeIn carries the barometric altitude from all three
// ADRs. BussInstalled and GpsAltUsedAndInvalid are placeholders for systems
// that are not acquired yet; they are fed as false.
type AutoFlightBaroAltitudeIn struct {
	Altitude1            arinc.Word[float64]
	Altitude2            arinc.Word[float64]
	Altitude3            arinc.Word[float64]
	BussInstalled        bool
	GpsAltUsedAndInvalid bool
}

// AutoFlightBaroAltitudeActivation picks the barometric altitude from the
// first usable ADR in the order 1, 2, 3. The picked value may be nonsensical
// when all three are unusable, which the invalid flag indicates.
type AutoFlightBaroAltitudeActivation struct {
	altiBasic   float64
	altiInvalid bool
}

func NewAutoFlightBaroAltitudeActivation() *AutoFlightBaroAltitudeActivation {
	return &AutoFlightBaroAltitudeActivation{}
}

func (a *AutoFlightBaroAltitudeActivation) Update(_ time.Duration, in AutoFlightBaroAltitudeIn) {
	badAlti1 := in.Altitude1.IsNcd() || in.Altitude1.IsInv()
	badAlti2 := in.Altitude2.IsNcd() || in.Altitude2.IsInv()
	badAlti3 := in.Altitude3.IsNcd() || in.Altitude3.IsInv()

	switch {
	case badAlti1 && badAlti2:
		a.altiBasic = in.Altitude3.Value()
	case badAlti1:
		a.altiBasic = in.Altitude2.Value()
	default:
		a.altiBasic = in.Altitude1.Value()
	}

	a.altiInvalid = (badAlti1 && badAlti2 && badAlti3 && !in.BussInstalled) ||
		in.GpsAltUsedAndInvalid
}

func (a *AutoFlightBaroAltitudeActivation) AltiBasic() float64 { return a.altiBasic }
func (a *AutoFlightBaroAltitudeActivation) AltiInvalid() bool  { return a.altiInvalid }

// #endregion baro-altitude

// #region ap-off-voluntary

// AutopilotOffVoluntaryIn carries the AP engagement discretes, the master
// warning cancel buttons and the instinctive disconnect pushbuttons, plus
// whether the cavalry charge is currently being emitted. RedWarning marks a
// red warning taking priority over the MW cancel; it is fed as false until
// the red warnings are modelled.
type AutopilotOffVoluntaryIn struct {
	Ap1EngdCom            arinc.DiscreteParameter
	Ap1EngdMon            arinc.DiscreteParameter
	Ap2EngdCom            arinc.DiscreteParameter
	Ap2EngdMon            arinc.DiscreteParameter
	CaptMwCancelOn        arinc.DiscreteParameter
	FoMwCancelOn          arinc.DiscreteParameter
	InstincDiscnct1ApEngd arinc.DiscreteParameter
	InstincDiscnct2ApEngd arinc.DiscreteParameter
	CavalryChargeEmitted  bool
	RedWarning            bool
}

// AutopilotOffVoluntaryActivation raises the voluntary AP OFF warning when
// an autopilot is disengaged through an instinctive disconnect pushbutton:
// cavalry charge until cancelled, MW for 3 seconds, EWD text for 9 seconds.
// A second press or an MW cancel clears the warning early.
type AutopilotOffVoluntaryActivation struct {
	pulse1              *logic.PulseNode
	pulse2              *logic.PulseNode
	pulse3              *logic.PulseNode
	instincDiscnctPulse *logic.PulseNode
	conf1               *logic.ConfirmationNode
	mtrig1              *logic.MonostableTriggerNode
	mtrig2              *logic.MonostableTriggerNode
	mtrig3              *logic.MonostableTriggerNode
	mtrig4              *logic.MonostableTriggerNode
	mtrig5              *logic.MonostableTriggerNode
	mtrig6              *logic.MonostableTriggerNode
	mtrig7              *logic.MonostableTriggerNode
	mtrig8              *logic.MonostableTriggerNode
	mtrig9              *logic.MonostableTriggerNode
	mtrig10             *logic.MonostableTriggerNode
	apOffAudioMem       *logic.MemoryNode

	ap1Engd    bool
	ap2Engd    bool
	oneApEngd  bool
	apOffAudio bool
	apOffMw    bool
	apOffText  bool
}

func NewAutopilotOffVoluntaryActivation() *AutopilotOffVoluntaryActivation {
	return &AutopilotOffVoluntaryActivation{
		pulse1:              logic.NewPulseFalling(),
		pulse2:              logic.NewPulseFalling(),
		pulse3:              logic.NewPulseFalling(),
		instincDiscnctPulse: logic.NewPulseLeading(),
		conf1:               logic.NewConfirmationLeading(200 * time.Millisecond),
		mtrig1:              logic.NewMonostableLeading(1300 * time.Millisecond),
		mtrig2:              logic.NewMonostableLeading(1300 * time.Millisecond),
		mtrig3:              logic.NewMonostableLeading(5 * time.Second),
		mtrig4:              logic.NewMonostableLeading(1500 * time.Millisecond),
		mtrig5:              logic.NewMonostableLeading(3 * time.Second),
		mtrig6:              logic.NewMonostableLeading(3 * time.Second),
		mtrig7:              logic.NewMonostableLeading(9 * time.Second),
		mtrig8:              logic.NewMonostableLeading(9 * time.Second),
		mtrig9:              logic.NewMonostableLeading(500 * time.Millisecond),
		mtrig10:             logic.NewMonostableFalling(1500 * time.Millisecond),
		apOffAudioMem:       logic.NewMemoryNode(true),
	}
}

func (a *AutopilotOffVoluntaryActivation) Update(delta time.Duration, in AutopilotOffVoluntaryIn) {
	a.ap1Engd = in.Ap1EngdCom.Value() && in.Ap1EngdMon.Value()
	a.ap2Engd = in.Ap2EngdCom.Value() && in.Ap2EngdMon.Value()
	oneApEngd := a.ap1Engd || a.ap2Engd
	a.oneApEngd = oneApEngd

	allowCancel := a.conf1.Update(!oneApEngd, delta)

	instincDiscnct1 := in.InstincDiscnct1ApEngd.Value()
	instincDiscnct2 := in.InstincDiscnct2ApEngd.Value()
	instincDiscnctPulseOut := a.instincDiscnctPulse.Update(instincDiscnct1 || instincDiscnct2)

	mwCancel := (in.CaptMwCancelOn.Value() || in.FoMwCancelOn.Value()) && !in.RedWarning
	doCancel := allowCancel && (mwCancel || instincDiscnctPulseOut)

	anyInstincDiscnctMtrig := a.mtrig1.Update(instincDiscnct1, delta) ||
		a.mtrig2.Update(instincDiscnct2, delta)
	apDisengagePulse := a.pulse1.Update(a.ap1Engd || a.ap2Engd)
	instinctiveDisconnect := apDisengagePulse && anyInstincDiscnctMtrig

	resetApOffAudioCond1 := a.pulse2.Update(
		a.mtrig3.Update(apDisengagePulse && anyInstincDiscnctMtrig, delta))
	resetApOffAudioCond2 := a.pulse3.Update(a.mtrig4.Update(in.CavalryChargeEmitted, delta))

	// whether each part of the warning should be active in the first place
	apOffAudioMemOut := a.apOffAudioMem.Update(
		instinctiveDisconnect, resetApOffAudioCond1 || resetApOffAudioCond2)
	apOffMwMtrigOut := a.mtrig5.Update(instinctiveDisconnect, delta)
	apOffTextMtrigOut := a.mtrig7.Update(instinctiveDisconnect, delta)

	// whether each part should be cancelled
	cancelApOffAudio := a.mtrig10.Update(a.mtrig9.Update(doCancel, delta), delta)
	cancelApOffMw := a.mtrig6.Update(doCancel, delta)
	cancelApOffText := a.mtrig8.Update(doCancel, delta)

	a.apOffAudio = apOffAudioMemOut && !oneApEngd && !cancelApOffAudio
	a.apOffMw = apOffMwMtrigOut && !oneApEngd && !cancelApOffMw
	a.apOffText = apOffTextMtrigOut && !oneApEngd && !cancelApOffText
}

func (a *AutopilotOffVoluntaryActivation) Ap1Engd() bool    { return a.ap1Engd }
func (a *AutopilotOffVoluntaryActivation) Ap2Engd() bool    { return a.ap2Engd }
func (a *AutopilotOffVoluntaryActivation) OneApEngd() bool  { return a.oneApEngd }
func (a *AutopilotOffVoluntaryActivation) ApOffAudio() bool { return a.apOffAudio }
func (a *AutopilotOffVoluntaryActivation) ApOffMw() bool    { return a.apOffMw }
func (a *AutopilotOffVoluntaryActivation) ApOffText() bool  { return a.apOffText }

// #endregion ap-off-voluntary

// #region ap-off-unvoluntary

// AutopilotOffUnvoluntaryIn carries the AP discretes, the cancel buttons,
// the hydraulic low pressure discretes and the upstream phase and voluntary
// outputs.
type AutopilotOffUnvoluntaryIn struct {
	Ap1EngdCom            arinc.DiscreteParameter
	Ap1EngdMon            arinc.DiscreteParameter
	Ap2EngdCom            arinc.DiscreteParameter
	Ap2EngdMon            arinc.DiscreteParameter
	CaptMwCancelOn        arinc.DiscreteParameter
	FoMwCancelOn          arinc.DiscreteParameter
	InstincDiscnct1ApEngd arinc.DiscreteParameter
	InstincDiscnct2ApEngd arinc.DiscreteParameter
	BlueSysLoPr           arinc.DiscreteParameter
	YellowSysLoPr         arinc.DiscreteParameter
	GreenSysLoPr          arinc.DiscreteParameter
	Phase1                bool
	ApOffText             bool
	CavalryChargeEmitted  bool
}

// AutopilotOffUnvoluntaryActivation latches an involuntary AP disconnect:
// an AP dropping out without a recent instinctive disconnect press. The MW
// flashes and the cavalry charge plays until an AP is re-engaged, phase 1 is
// reached, or the crew acknowledges. On the fully depressurized ground the
// warning is inhibited.
type AutopilotOffUnvoluntaryActivation struct {
	pulseApDisengage    *logic.PulseNode
	pulseApUnvolOff     *logic.PulseNode
	pulseInstincDiscnct *logic.PulseNode
	pulsePhase1         *logic.PulseNode
	pulseApEngage       *logic.PulseNode
	pulseMwCancel       *logic.PulseNode
	mtrig1              *logic.MonostableTriggerNode
	mtrig2              *logic.MonostableTriggerNode
	mtrig3              *logic.MonostableTriggerNode
	memApUnvolOff       *logic.MemoryNode
	memWarning          *logic.MemoryNode

	apOffWarning bool
	apUnvolOff   bool
	apOffReset   bool
	apMw         bool
	audio        bool
}

func NewAutopilotOffUnvoluntaryActivation() *AutopilotOffUnvoluntaryActivation {
	return &AutopilotOffUnvoluntaryActivation{
		pulseApDisengage:    logic.NewPulseFalling(),
		pulseApUnvolOff:     logic.NewPulseLeading(),
		pulseInstincDiscnct: logic.NewPulseLeading(),
		pulsePhase1:         logic.NewPulseLeading(),
		pulseApEngage:       logic.NewPulseLeading(),
		pulseMwCancel:       logic.NewPulseLeading(),
		mtrig1:              logic.NewMonostableLeading(1300 * time.Millisecond),
		mtrig2:              logic.NewMonostableLeading(1300 * time.Millisecond),
		mtrig3:              logic.NewMonostableLeading(1500 * time.Millisecond),
		memApUnvolOff:       logic.NewMemoryNode(false),
		memWarning:          logic.NewMemoryNode(false),
	}
}

func (a *AutopilotOffUnvoluntaryActivation) Update(delta time.Duration, in AutopilotOffUnvoluntaryIn) {
	inhibitedOnGround := in.Phase1 &&
		in.BlueSysLoPr.Value() && in.YellowSysLoPr.Value() && in.GreenSysLoPr.Value()

	instincDiscnct1 := in.InstincDiscnct1ApEngd.Value()
	instincDiscnct2 := in.InstincDiscnct2ApEngd.Value()
	recentVoluntaryDisconnect := a.mtrig1.Update(instincDiscnct1, delta) ||
		a.mtrig2.Update(instincDiscnct2, delta)

	ap1Engaged := in.Ap1EngdCom.Value() && in.Ap1EngdMon.Value()
	ap2Engaged := in.Ap2EngdCom.Value() && in.Ap2EngdMon.Value()
	anyApEngaged := ap1Engaged || ap2Engaged

	apDisengagePulse := a.pulseApDisengage.Update(anyApEngaged)
	phase1Pulse := a.pulsePhase1.Update(in.Phase1)
	apEngagePulse := a.pulseApEngage.Update(anyApEngaged)

	resetApWarnings := apEngagePulse || phase1Pulse

	apUnvolOff := a.memApUnvolOff.Update(
		!inhibitedOnGround && !recentVoluntaryDisconnect && apDisengagePulse,
		resetApWarnings,
	)
	apUnvolOffPulse := a.pulseApUnvolOff.Update(a.apUnvolOff)
	apRecentlyUnvolOff := a.mtrig3.Update(apUnvolOffPulse, delta)

	anyMwCancel := (in.CaptMwCancelOn.Value() || in.FoMwCancelOn.Value()) &&
		in.CavalryChargeEmitted
	apMw := a.pulseMwCancel.Update(!anyApEngaged && anyMwCancel)

	anyInstincDiscnct := instincDiscnct1 || instincDiscnct2
	anyInstincDiscnctPulse := a.pulseInstincDiscnct.Update(anyInstincDiscnct) && !anyApEngaged

	apOffReset := resetApWarnings ||
		(!apRecentlyUnvolOff && (anyInstincDiscnctPulse || apMw))

	a.audio = a.memWarning.Update(apUnvolOffPulse, apOffReset)
	a.apOffWarning = in.ApOffText || apUnvolOff
	a.apUnvolOff = apUnvolOff
	a.apOffReset = apOffReset
	a.apMw = apMw
}

func (a *AutopilotOffUnvoluntaryActivation) ApOffWarning() bool { return a.apOffWarning }
func (a *AutopilotOffUnvoluntaryActivation) ApUnvolOff() bool   { return a.apUnvolOff }
func (a *AutopilotOffUnvoluntaryActivation) ApOffReset() bool   { return a.apOffReset }
func (a *AutopilotOffUnvoluntaryActivation) ApMw() bool         { return a.apMw }

// Warning reports the MW flashing condition; Audio the cavalry charge.
func (a *AutopilotOffUnvoluntaryActivation) Warning() bool { return a.apUnvolOff }
func (a *AutopilotOffUnvoluntaryActivation) Audio() bool   { return a.audio }

// #endregion ap-off-unvoluntary
