package sheets

import (
	"time"

	"github.com/fwcsim/fwc/internal/arinc"
	"github.com/fwcsim/fwc/internal/logic"
)

// #region engines-not-running

// EnginesNotRunningIn carries the master levers, the per-channel core speed
// discretes and the engine 1 fire pushbutton.
type EnginesNotRunningIn struct {
	Eng1MasterLeverSelectOn arinc.Word[bool]
	Eng2MasterLeverSelectOn arinc.Word[bool]
	Eng1CoreSpeedAboveIdleA arinc.Word[bool]
	Eng1CoreSpeedAboveIdleB arinc.Word[bool]
	Eng2CoreSpeedAboveIdleA arinc.Word[bool]
	Eng2CoreSpeedAboveIdleB arinc.Word[bool]
	Eng1FirePbOut           arinc.DiscreteParameter
	Ground                  bool
}

// EnginesNotRunningActivation decides per engine whether it is considered
// not running. Core speed above idle only counts as running after a 30
// second confirmation, except in flight following a fire pushbutton
// transient where both channels agreeing counts immediately.
type EnginesNotRunningActivation struct {
	trans1 *logic.TransientDetectionNode
	conf1  *logic.ConfirmationNode
	conf2  *logic.ConfirmationNode
	conf3  *logic.ConfirmationNode
	conf4  *logic.ConfirmationNode

	eng1NotRunning bool
	eng2NotRunning bool
}

func NewEnginesNotRunningActivation() *EnginesNotRunningActivation {
	return &EnginesNotRunningActivation{
		trans1: logic.NewTransientDetectionNode(true),
		conf1:  logic.NewConfirmationLeading(30 * time.Second),
		conf2:  logic.NewConfirmationLeading(30 * time.Second),
		conf3:  logic.NewConfirmationLeading(30 * time.Second),
		conf4:  logic.NewConfirmationLeading(30 * time.Second),
	}
}

func (a *EnginesNotRunningActivation) Update(delta time.Duration, in EnginesNotRunningIn) {
	firePbTransient := a.trans1.Update(in.Eng1FirePbOut.Value())

	conf1Out := a.conf1.Update(in.Eng1CoreSpeedAboveIdleA.Value(), delta)
	conf2Out := a.conf2.Update(in.Eng1CoreSpeedAboveIdleB.Value(), delta)

	eng1NotRunningConf := !conf1Out && !conf2Out
	eng1RunningImmediate := in.Eng1CoreSpeedAboveIdleA.Value() &&
		in.Eng1CoreSpeedAboveIdleB.Value() &&
		firePbTransient && !in.Ground

	eng1CoreSpeedNotRunning := eng1NotRunningConf && !eng1RunningImmediate

	a.eng1NotRunning = (in.Eng1MasterLeverSelectOn.IsVal() && !in.Eng1MasterLeverSelectOn.Value()) ||
		eng1CoreSpeedNotRunning

	conf3Out := a.conf3.Update(in.Eng2CoreSpeedAboveIdleA.Value(), delta)
	conf4Out := a.conf4.Update(in.Eng2CoreSpeedAboveIdleB.Value(), delta)

	eng2NotRunningConf := !conf3Out && !conf4Out
	eng2RunningImmediate := in.Eng2CoreSpeedAboveIdleA.Value() &&
		in.Eng2CoreSpeedAboveIdleB.Value() &&
		firePbTransient && !in.Ground

	eng2CoreSpeedNotRunning := eng2NotRunningConf && !eng2RunningImmediate

	a.eng2NotRunning = (in.Eng2MasterLeverSelectOn.IsVal() && !in.Eng2MasterLeverSelectOn.Value()) ||
		eng2CoreSpeedNotRunning
}

func (a *EnginesNotRunningActivation) Eng1NotRunning() bool { return a.eng1NotRunning }
func (a *EnginesNotRunningActivation) Eng2NotRunning() bool { return a.eng2NotRunning }

// #endregion engines-not-running

// #region eng-running

// EngRunningIn carries the core speed discretes and the upstream not-running
// outputs.
type EngRunningIn struct {
	Eng1CoreSpeedAboveIdleA arinc.Word[bool]
	Eng1CoreSpeedAboveIdleB arinc.Word[bool]
	Eng2CoreSpeedAboveIdleA arinc.Word[bool]
	Eng2CoreSpeedAboveIdleB arinc.Word[bool]
	Eng1NotRunning          bool
	Eng2NotRunning          bool
}

// EngRunningActivation combines the per-engine running states. The confirmed
// output requires any core speed above idle for 30 seconds.
type EngRunningActivation struct {
	conf1 *logic.ConfirmationNode

	eng1And2NotRunning bool
	eng1Or2Running     bool
	oneEngRunning      bool
}

func NewEngRunningActivation() *EngRunningActivation {
	return &EngRunningActivation{
		conf1: logic.NewConfirmationLeading(30 * time.Second),
	}
}

func (a *EngRunningActivation) Update(delta time.Duration, in EngRunningIn) {
	a.eng1And2NotRunning = in.Eng1NotRunning && in.Eng2NotRunning

	oneEngRunning := in.Eng1CoreSpeedAboveIdleA.Value() ||
		in.Eng1CoreSpeedAboveIdleB.Value() ||
		in.Eng2CoreSpeedAboveIdleA.Value() ||
		in.Eng2CoreSpeedAboveIdleB.Value()

	a.oneEngRunning = oneEngRunning
	a.eng1Or2Running = a.conf1.Update(oneEngRunning, delta)
}

func (a *EngRunningActivation) Eng1And2NotRunning() bool { return a.eng1And2NotRunning }
func (a *EngRunningActivation) Eng1Or2Running() bool     { return a.eng1Or2Running }
func (a *EngRunningActivation) OneEngRunning() bool      { return a.oneEngRunning }

// #endregion eng-running

// #region eng-takeoff-cfm

// EngTakeOffCfmIn carries the selected N1 words, the TLA idle power
// discretes and the FADEC channel-in-control discretes.
type EngTakeOffCfmIn struct {
	Eng1N1SelectedActualA arinc.Word[float64]
	Eng1N1SelectedActualB arinc.Word[float64]
	Eng2N1SelectedActualA arinc.Word[float64]
	Eng2N1SelectedActualB arinc.Word[float64]
	Tla1IdlePwrA          arinc.Word[bool]
	Tla1IdlePwrB          arinc.Word[bool]
	Tla2IdlePwrA          arinc.Word[bool]
	Tla2IdlePwrB          arinc.Word[bool]
	Eng1ChannelAInControl arinc.Word[bool]
	Eng1ChannelBInControl arinc.Word[bool]
	Eng2ChannelAInControl arinc.Word[bool]
	Eng2ChannelBInControl arinc.Word[bool]
}

// EngTakeOffCfmActivation flags takeoff power (N1 above 95%) and idle power
// per engine, the latter voted by whichever FADEC channel is in control.
type EngTakeOffCfmActivation struct {
	eng1ToCfm      bool
	eng2ToCfm      bool
	tla1IdlePwrCfm bool
	tla2IdlePwrCfm bool
}

func NewEngTakeOffCfmActivation() *EngTakeOffCfmActivation {
	return &EngTakeOffCfmActivation{}
}

func (a *EngTakeOffCfmActivation) Update(_ time.Duration, in EngTakeOffCfmIn) {
	isCfm := true

	n1Above95 := func(p arinc.Word[float64]) bool {
		return !(p.IsInv() || p.IsNcd()) && p.Value() > 95.0
	}

	a.eng1ToCfm = isCfm && (n1Above95(in.Eng1N1SelectedActualA) || n1Above95(in.Eng1N1SelectedActualB))
	a.eng2ToCfm = isCfm && (n1Above95(in.Eng2N1SelectedActualA) || n1Above95(in.Eng2N1SelectedActualB))

	a.tla1IdlePwrCfm = isCfm &&
		((in.Eng1ChannelAInControl.Value() && in.Tla1IdlePwrA.Value()) ||
			(in.Eng1ChannelBInControl.Value() && in.Tla1IdlePwrB.Value()))
	a.tla2IdlePwrCfm = isCfm &&
		((in.Eng2ChannelAInControl.Value() && in.Tla2IdlePwrA.Value()) ||
			(in.Eng2ChannelBInControl.Value() && in.Tla2IdlePwrB.Value()))
}

func (a *EngTakeOffCfmActivation) Eng1ToCfm() bool      { return a.eng1ToCfm }
func (a *EngTakeOffCfmActivation) Eng2ToCfm() bool      { return a.eng2ToCfm }
func (a *EngTakeOffCfmActivation) Tla1IdlePwrCfm() bool { return a.tla1IdlePwrCfm }
func (a *EngTakeOffCfmActivation) Tla2IdlePwrCfm() bool { return a.tla2IdlePwrCfm }

// #endregion eng-takeoff-cfm

// #region neo-ecu

// NeoEcuIn carries the auto TOGA and soft go-around discretes per channel.
type NeoEcuIn struct {
	Eng1AutoTogaA        arinc.Word[bool]
	Eng1AutoTogaB        arinc.Word[bool]
	Eng2AutoTogaA        arinc.Word[bool]
	Eng2AutoTogaB        arinc.Word[bool]
	Eng1LimitModeSoftGaA arinc.Word[bool]
	Eng1LimitModeSoftGaB arinc.Word[bool]
	Eng2LimitModeSoftGaA arinc.Word[bool]
	Eng2LimitModeSoftGaB arinc.Word[bool]
}

// NeoEcuActivation ORs the per-channel ECU discretes.
type NeoEcuActivation struct {
	eng1AutoToga        bool
	eng1LimitModeSoftGa bool
	eng2AutoToga        bool
	eng2LimitModeSoftGa bool
}

func NewNeoEcuActivation() *NeoEcuActivation {
	return &NeoEcuActivation{}
}

func (a *NeoEcuActivation) Update(_ time.Duration, in NeoEcuIn) {
	a.eng1AutoToga = in.Eng1AutoTogaA.Value() || in.Eng1AutoTogaB.Value()
	a.eng1LimitModeSoftGa = in.Eng1LimitModeSoftGaA.Value() || in.Eng1LimitModeSoftGaB.Value()
	a.eng2AutoToga = in.Eng2AutoTogaA.Value() || in.Eng2AutoTogaB.Value()
	a.eng2LimitModeSoftGa = in.Eng2LimitModeSoftGaA.Value() || in.Eng2LimitModeSoftGaB.Value()
}

func (a *NeoEcuActivation) Eng1AutoToga() bool        { return a.eng1AutoToga }
func (a *NeoEcuActivation) Eng1LimitModeSoftGa() bool { return a.eng1LimitModeSoftGa }
func (a *NeoEcuActivation) Eng2AutoToga() bool        { return a.eng2AutoToga }
func (a *NeoEcuActivation) Eng2LimitModeSoftGa() bool { return a.eng2LimitModeSoftGa }

// #endregion neo-ecu

// #region tla-mct

// TlaIn carries both throttle lever angle words per engine, in degrees.
type TlaIn struct {
	Eng1TlaA arinc.Word[float64]
	Eng1TlaB arinc.Word[float64]
	Eng2TlaA arinc.Word[float64]
	Eng2TlaB arinc.Word[float64]
}

// TlaAtMctOrFlexToCfmActivation detects the levers in the MCT/FLX detent
// band (33.3 to 36.7 degrees), at the end of it, or above it.
type TlaAtMctOrFlexToCfmActivation struct {
	eng1TlaMctCfm bool
	eng1EndMct    bool
	eng1SupMctCfm bool
	eng2TlaMctCfm bool
	eng2EndMct    bool
	eng2SupMctCfm bool
}

func NewTlaAtMctOrFlexToCfmActivation() *TlaAtMctOrFlexToCfmActivation {
	return &TlaAtMctOrFlexToCfmActivation{}
}

func (a *TlaAtMctOrFlexToCfmActivation) Update(_ time.Duration, in TlaIn) {
	anyCfm := true

	mct := func(p arinc.Word[float64]) (mctBand, endMct, supMct bool) {
		lt36 := p.Value() < 36.7
		val := p.IsVal()
		mctBand = lt36 && val && p.Value() > 33.3
		endMct = lt36 && val && p.Value() > 36.6
		supMct = !lt36 && val
		return
	}

	eng1AMct, eng1AEnd, eng1ASup := mct(in.Eng1TlaA)
	eng1BMct, eng1BEnd, eng1BSup := mct(in.Eng1TlaB)
	a.eng1TlaMctCfm = anyCfm && (eng1AMct || eng1BMct)
	a.eng1EndMct = eng1AEnd || eng1BEnd
	a.eng1SupMctCfm = anyCfm && (eng1ASup || eng1BSup)

	eng2AMct, eng2AEnd, eng2ASup := mct(in.Eng2TlaA)
	eng2BMct, eng2BEnd, eng2BSup := mct(in.Eng2TlaB)
	a.eng2TlaMctCfm = anyCfm && (eng2AMct || eng2BMct)
	a.eng2EndMct = eng2AEnd || eng2BEnd
	a.eng2SupMctCfm = anyCfm && (eng2ASup || eng2BSup)
}

func (a *TlaAtMctOrFlexToCfmActivation) Eng1TlaMctCfm() bool { return a.eng1TlaMctCfm }
func (a *TlaAtMctOrFlexToCfmActivation) Eng1EndMct() bool    { return a.eng1EndMct }
func (a *TlaAtMctOrFlexToCfmActivation) Eng1SupMctCfm() bool { return a.eng1SupMctCfm }
func (a *TlaAtMctOrFlexToCfmActivation) Eng2TlaMctCfm() bool { return a.eng2TlaMctCfm }
func (a *TlaAtMctOrFlexToCfmActivation) Eng2EndMct() bool    { return a.eng2EndMct }
func (a *TlaAtMctOrFlexToCfmActivation) Eng2SupMctCfm() bool { return a.eng2SupMctCfm }

// #endregion tla-mct

// #region tla-pwr-reverse

// TlaPwrReverseIn carries the lever angles and the upstream takeoff power
// confirmation.
type TlaPwrReverseIn struct {
	Tla       TlaIn
	Eng1ToCfm bool
	Eng2ToCfm bool
}

// TlaPwrReverseActivation detects the levers in reverse (below -4.3 degrees)
// or at full takeoff power (above 43.3 degrees, or N1 takeoff power unless
// reverse was selected within the last 10 seconds).
type TlaPwrReverseActivation struct {
	conf1 *logic.ConfirmationNode
	conf2 *logic.ConfirmationNode

	eng1TlaFullPwrCfm bool
	eng1TlaReverseCfm bool
	eng2TlaFullPwrCfm bool
	eng2TlaReverseCfm bool
}

func NewTlaPwrReverseActivation() *TlaPwrReverseActivation {
	return &TlaPwrReverseActivation{
		conf1: logic.NewConfirmationFalling(10 * time.Second),
		conf2: logic.NewConfirmationFalling(10 * time.Second),
	}
}

func (a *TlaPwrReverseActivation) Update(delta time.Duration, in TlaPwrReverseIn) {
	anyCfm := true

	reverse := func(p arinc.Word[float64]) bool {
		return p.Value() < -4.3 && !(p.IsInv() || p.IsNcd())
	}

	eng1TlaReverse := reverse(in.Tla.Eng1TlaA) || reverse(in.Tla.Eng1TlaB)
	a.eng1TlaReverseCfm = anyCfm && eng1TlaReverse

	conf1Out := a.conf1.Update(eng1TlaReverse, delta)
	eng1FullPwrCond := eng1TlaReverse || conf1Out
	eng1ToConf := in.Eng1ToCfm && !eng1FullPwrCond
	a.eng1TlaFullPwrCfm = anyCfm &&
		(in.Tla.Eng1TlaA.Value() > 43.3 || eng1ToConf || in.Tla.Eng1TlaB.Value() > 43.3)

	eng2TlaReverse := reverse(in.Tla.Eng2TlaA) || reverse(in.Tla.Eng2TlaB)
	a.eng2TlaReverseCfm = anyCfm && eng2TlaReverse

	conf2Out := a.conf2.Update(eng2TlaReverse, delta)
	eng2FullPwrCond := eng2TlaReverse || conf2Out
	eng2ToConf := in.Eng2ToCfm && !eng2FullPwrCond
	a.eng2TlaFullPwrCfm = anyCfm &&
		(in.Tla.Eng2TlaA.Value() > 43.3 || eng2ToConf || in.Tla.Eng2TlaB.Value() > 43.3)
}

func (a *TlaPwrReverseActivation) Eng1TlaFullPwrCfm() bool { return a.eng1TlaFullPwrCfm }
func (a *TlaPwrReverseActivation) Eng1TlaReverseCfm() bool { return a.eng1TlaReverseCfm }
func (a *TlaPwrReverseActivation) Eng2TlaFullPwrCfm() bool { return a.eng2TlaFullPwrCfm }
func (a *TlaPwrReverseActivation) Eng2TlaReverseCfm() bool { return a.eng2TlaReverseCfm }

// #endregion tla-pwr-reverse

// #region tla-cl

// TlaAtClCfmActivation detects the levers in the CL detent band (22.9 to
// 27.1 degrees) and both levers at or above CL.
type TlaAtClCfmActivation struct {
	eng1TlaClCfm bool
	eng12MclCfm  bool
	eng2TlaClCfm bool
}

func NewTlaAtClCfmActivation() *TlaAtClCfmActivation {
	return &TlaAtClCfmActivation{}
}

func (a *TlaAtClCfmActivation) Update(_ time.Duration, in TlaIn) {
	anyCfm := true

	cl := func(p arinc.Word[float64]) (clBand, mcl bool) {
		gt22 := p.Value() > 22.9
		val := p.IsVal()
		clBand = p.Value() < 27.1 && gt22 && val
		mcl = val && gt22
		return
	}

	eng1ACl, eng1AMcl := cl(in.Eng1TlaA)
	eng1BCl, eng1BMcl := cl(in.Eng1TlaB)
	a.eng1TlaClCfm = anyCfm && (eng1ACl || eng1BCl)

	eng2ACl, eng2AMcl := cl(in.Eng2TlaA)
	eng2BCl, eng2BMcl := cl(in.Eng2TlaB)
	a.eng2TlaClCfm = anyCfm && (eng2ACl || eng2BCl)

	a.eng12MclCfm = anyCfm && (eng1AMcl || eng1BMcl) && (eng2AMcl || eng2BMcl)
}

func (a *TlaAtClCfmActivation) Eng1TlaClCfm() bool { return a.eng1TlaClCfm }
func (a *TlaAtClCfmActivation) Eng12MclCfm() bool  { return a.eng12MclCfm }
func (a *TlaAtClCfmActivation) Eng2TlaClCfm() bool { return a.eng2TlaClCfm }

// #endregion tla-cl

// #region cfm-flight-phases

// CfmFlightPhasesDefIn carries the FLX takeoff discretes and the upstream
// lever and ECU conditions.
type CfmFlightPhasesDefIn struct {
	Eng1TlaFtoA arinc.Word[bool]
	Eng1TlaFtoB arinc.Word[bool]
	Eng2TlaFtoA arinc.Word[bool]
	Eng2TlaFtoB arinc.Word[bool]

	Eng1AutoToga        bool
	Eng1LimitModeSoftGa bool
	Eng2AutoToga        bool
	Eng2LimitModeSoftGa bool

	Eng1TlaMctCfm bool
	Eng1SupMctCfm bool
	Eng2TlaMctCfm bool
	Eng2SupMctCfm bool

	Eng1TlaFullPwrCfm bool
	Eng2TlaFullPwrCfm bool

	HGt1500Ft   bool
	Eng12MclCfm bool
}

// CfmFlightPhasesDefActivation derives the flex takeoff condition and the
// takeoff power condition. Takeoff power is held after lever reduction for
// up to 60 seconds below 1500 ft while both levers stay at or above CL.
type CfmFlightPhasesDefActivation struct {
	conf1 *logic.ConfirmationNode

	cfmFlex      bool
	eng1Or2ToPwr bool
}

func NewCfmFlightPhasesDefActivation() *CfmFlightPhasesDefActivation {
	return &CfmFlightPhasesDefActivation{
		conf1: logic.NewConfirmationFalling(60 * time.Second),
	}
}

func (a *CfmFlightPhasesDefActivation) Update(delta time.Duration, in CfmFlightPhasesDefIn) {
	anyCfm := true

	eng1Flex := in.Eng1TlaMctCfm &&
		(in.Eng1AutoToga || in.Eng1LimitModeSoftGa || in.Eng1TlaFtoA.Value() || in.Eng1TlaFtoB.Value())
	eng2Flex := in.Eng2TlaMctCfm &&
		(in.Eng2AutoToga || in.Eng2LimitModeSoftGa || in.Eng2TlaFtoA.Value() || in.Eng2TlaFtoB.Value())

	a.cfmFlex = anyCfm && (eng1Flex || eng2Flex)

	toPwrCond1 := eng1Flex || eng2Flex ||
		in.Eng1SupMctCfm || in.Eng2SupMctCfm ||
		in.Eng1TlaFullPwrCfm || in.Eng2TlaFullPwrCfm

	conf1Out := a.conf1.Update(toPwrCond1, delta)
	toPwrCond2 := conf1Out && !in.HGt1500Ft && in.Eng12MclCfm

	a.eng1Or2ToPwr = anyCfm && (toPwrCond1 || toPwrCond2)
}

func (a *CfmFlightPhasesDefActivation) CfmFlex() bool      { return a.cfmFlex }
func (a *CfmFlightPhasesDefActivation) Eng1Or2ToPwr() bool { return a.eng1Or2ToPwr }

// #endregion cfm-flight-phases

// #region start-sequences

// EngStartSequenceIn carries an engine master lever discrete.
type EngStartSequenceIn struct {
	MasterLeverSelectOn arinc.Word[bool]
}

// Eng1StartSequenceActivation confirms the engine 1 master lever having been
// on for 30 seconds, the tempo used to inhibit start-up nuisance warnings.
type Eng1StartSequenceActivation struct {
	conf1 *logic.ConfirmationNode

	eng1TempoMasterLever1On bool
}

func NewEng1StartSequenceActivation() *Eng1StartSequenceActivation {
	return &Eng1StartSequenceActivation{
		conf1: logic.NewConfirmationLeading(30 * time.Second),
	}
}

func (a *Eng1StartSequenceActivation) Update(delta time.Duration, in EngStartSequenceIn) {
	a.eng1TempoMasterLever1On = a.conf1.Update(in.MasterLeverSelectOn.Value(), delta)
}

func (a *Eng1StartSequenceActivation) Eng1TempoMasterLever1On() bool {
	return a.eng1TempoMasterLever1On
}

// Eng2StartSequenceIn adds the flight phase context for engine 2.
type Eng2StartSequenceIn struct {
	MasterLeverSelectOn arinc.Word[bool]
	Phase4              bool
	Phase5              bool
}

// Eng2StartSequenceActivation confirms the engine 2 master lever tempo and
// opens the first-30-seconds-of-phase-5 window.
type Eng2StartSequenceActivation struct {
	conf1  *logic.ConfirmationNode
	pulse1 *logic.PulseNode
	mtrig1 *logic.MonostableTriggerNode

	eng2TempoMasterLever1On bool
	phase5To30s             bool
}

func NewEng2StartSequenceActivation() *Eng2StartSequenceActivation {
	return &Eng2StartSequenceActivation{
		conf1:  logic.NewConfirmationLeading(30 * time.Second),
		pulse1: logic.NewPulseFalling(),
		mtrig1: logic.NewMonostableLeading(30 * time.Second),
	}
}

func (a *Eng2StartSequenceActivation) Update(delta time.Duration, in Eng2StartSequenceIn) {
	a.eng2TempoMasterLever1On = a.conf1.Update(in.MasterLeverSelectOn.Value(), delta)

	phase4End := a.pulse1.Update(in.Phase4)
	a.phase5To30s = a.mtrig1.Update(phase4End && in.Phase5, delta)
}

func (a *Eng2StartSequenceActivation) Eng2TempoMasterLever1On() bool {
	return a.eng2TempoMasterLever1On
}
func (a *Eng2StartSequenceActivation) Phase5To30s() bool { return a.phase5To30s }

// #endregion start-sequences
