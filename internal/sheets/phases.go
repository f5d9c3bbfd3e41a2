package sheets

import (
	"time"

	"github.com/fwcsim/fwc/internal/arinc"
	"github.com/fwcsim/fwc/internal/logic"
)

// #region altitude-def

// AltitudeDefIn carries both radio heights.
type AltitudeDefIn struct {
	RadioHeight1 arinc.Word[float64]
	RadioHeight2 arinc.Word[float64]
}

// AltitudeDefActivation derives the above-1500 ft and above-800 ft gates
// used by the flight phase computation, and the dual radio altimeter
// failure. With both altimeters unusable but not failed the aircraft is
// assumed high after a 4 second confirmation.
type AltitudeDefActivation struct {
	conf1   *logic.ConfirmationNode
	memory1 *logic.MemoryNode

	hFail     bool
	hGt800Ft  bool
	hGt1500Ft bool
}

func NewAltitudeDefActivation() *AltitudeDefActivation {
	return &AltitudeDefActivation{
		conf1:   logic.NewConfirmationLeading(4 * time.Second),
		memory1: logic.NewMemoryNode(false),
	}
}

func (a *AltitudeDefActivation) Update(delta time.Duration, in AltitudeDefIn) {
	radio1Inv := in.RadioHeight1.IsInv()
	radio2Inv := in.RadioHeight2.IsInv()
	radio1Ncd := in.RadioHeight1.IsNcd()
	radio2Ncd := in.RadioHeight2.IsNcd()

	dualRadioInv := radio1Inv && radio2Inv
	a.hFail = dualRadioInv

	conf1Cond := !dualRadioInv && (radio1Inv || radio1Ncd) && (radio2Inv || radio2Ncd)
	conf1Out := a.conf1.Update(conf1Cond, delta)

	radio1Abv1500Ft := in.RadioHeight1.Value() > 1500.0 && !radio1Inv
	radio2Abv1500Ft := in.RadioHeight2.Value() > 1500.0 && !radio2Inv

	hGt1500Ft := radio1Abv1500Ft || radio2Abv1500Ft || conf1Out
	a.hGt1500Ft = hGt1500Ft

	radio1Blw800Ft := in.RadioHeight1.Value() < 800.0 && !radio1Inv && !radio1Ncd
	radio2Blw800Ft := in.RadioHeight2.Value() < 800.0 && !radio2Inv && !radio2Ncd

	memory1Set := hGt1500Ft
	memory1Reset := (radio1Blw800Ft || radio2Blw800Ft) && !conf1Out

	a.hGt800Ft = a.memory1.Update(memory1Set, memory1Reset)
}

func (a *AltitudeDefActivation) HGt800Ft() bool  { return a.hGt800Ft }
func (a *AltitudeDefActivation) HGt1500Ft() bool { return a.hGt1500Ft }
func (a *AltitudeDefActivation) HFail() bool     { return a.hFail }

// #endregion altitude-def

// #region phases-ground

// FlightPhasesGroundIn carries the fire pushbutton, the TO config test and
// the upstream ground, speed and engine conditions.
type FlightPhasesGroundIn struct {
	Eng1FirePbOut arinc.DiscreteParameter
	ToConfigTest  arinc.Word[bool]

	Ground             bool
	GroundImmediate    bool
	AcSpeedAbove80Kt   bool
	AdcTestInhib       bool
	Eng1Or2Running     bool
	OneEngRunning      bool
	Eng1And2NotRunning bool
	Eng1Or2ToPwr       bool
}

// FlightPhasesGroundActivation computes the ground flight phases 1 to 4 and
// 8 to 10. The phase 9 latch is non-volatile and survives a power cycle; it
// resets on the fire pushbutton sequence, on power reduction windows or on a
// TO config test with an engine running.
type FlightPhasesGroundActivation struct {
	trans1     *logic.TransientDetectionNode
	conf1      *logic.ConfirmationNode
	mtrig1     *logic.MonostableTriggerNode
	mtrig2     *logic.MonostableTriggerNode
	mtrig3     *logic.MonostableTriggerNode
	mtrig4     *logic.MonostableTriggerNode
	mtrig5     *logic.MonostableTriggerNode
	mtrig6     *logic.MonostableTriggerNode
	memPhase10 *logic.MemoryNode
	memPhase9  *logic.MemoryNode
	precPhase9 *logic.PrecedingValueNode

	phase1  bool
	phase2  bool
	phase3  bool
	phase4  bool
	phase8  bool
	phase9  bool
	phase10 bool
}

func NewFlightPhasesGroundActivation() *FlightPhasesGroundActivation {
	return &FlightPhasesGroundActivation{
		trans1:     logic.NewTransientDetectionNode(false),
		conf1:      logic.NewConfirmationLeading(200 * time.Millisecond),
		mtrig1:     logic.NewMonostableFalling(1 * time.Second),
		mtrig2:     logic.NewMonostableFalling(3 * time.Second),
		mtrig3:     logic.NewMonostableLeading(300 * time.Second),
		mtrig4:     logic.NewMonostableLeading(2 * time.Second),
		mtrig5:     logic.NewMonostableLeading(2 * time.Second),
		mtrig6:     logic.NewMonostableLeading(2 * time.Second),
		memPhase9:  logic.NewMemoryNodeNvm(true),
		memPhase10: logic.NewMemoryNode(false),
		precPhase9: logic.NewPrecedingValueNode(),
	}
}

func (a *FlightPhasesGroundActivation) Update(delta time.Duration, in FlightPhasesGroundIn) {
	// phase 1 and 10 preamble
	trans1 := a.trans1.Update(in.Eng1FirePbOut.Value())
	conf1 := a.conf1.Update(trans1, delta)
	mtrig5 := a.mtrig5.Update(conf1, delta)
	resetMem10 := in.Ground && mtrig5

	// phases 3 and 4
	groundAndToPwr := in.Ground && in.Eng1Or2ToPwr
	phase3 := !in.AcSpeedAbove80Kt && in.Eng1Or2Running && groundAndToPwr
	a.phase3 = phase3
	a.phase4 = in.AcSpeedAbove80Kt && groundAndToPwr

	// phase 8
	phase8Cond1 := in.GroundImmediate || a.mtrig6.Update(in.GroundImmediate, delta)
	phase8 := phase8Cond1 && !in.Eng1Or2ToPwr && in.AcSpeedAbove80Kt
	a.phase8 = phase8

	// phases 2 and 9
	precPhase9 := a.precPhase9.Value()
	mtrig1 := a.mtrig1.Update(in.Eng1Or2ToPwr, delta)
	mtrig2 := a.mtrig2.Update(precPhase9, delta)
	mtrig4 := a.mtrig4.Update(!in.AcSpeedAbove80Kt, delta)
	phase29Cond := in.Ground && !in.Eng1Or2ToPwr && !in.AcSpeedAbove80Kt

	resetNvm := (in.Ground && mtrig2) || resetMem10 || (in.Ground && mtrig1)
	inhibitedResetNvm := !mtrig4 && resetNvm && !precPhase9

	toConfigReset9 := in.ToConfigTest.Value() && phase29Cond && in.OneEngRunning
	resetMem9 := inhibitedResetNvm || in.AdcTestInhib || toConfigReset9

	phase9Mem := a.memPhase9.Update(phase3 || phase8, resetMem9)

	a.phase2 = phase29Cond && !phase9Mem && in.Eng1Or2Running

	phase9 := in.OneEngRunning && phase9Mem && phase29Cond
	a.phase9 = phase9
	a.precPhase9.Update(phase9)

	// phases 1 and 10
	setMem10 := phase9
	memPhase10Out := a.memPhase10.Update(setMem10, resetMem10)

	phase110Cond := !setMem10 && in.Eng1And2NotRunning && in.GroundImmediate
	mtrig3 := a.mtrig3.Update(memPhase10Out && phase110Cond, delta)

	a.phase1 = phase110Cond && !mtrig3
	a.phase10 = phase110Cond && mtrig3
}

func (a *FlightPhasesGroundActivation) Phase1() bool  { return a.phase1 }
func (a *FlightPhasesGroundActivation) Phase2() bool  { return a.phase2 }
func (a *FlightPhasesGroundActivation) Phase3() bool  { return a.phase3 }
func (a *FlightPhasesGroundActivation) Phase4() bool  { return a.phase4 }
func (a *FlightPhasesGroundActivation) Phase8() bool  { return a.phase8 }
func (a *FlightPhasesGroundActivation) Phase9() bool  { return a.phase9 }
func (a *FlightPhasesGroundActivation) Phase10() bool { return a.phase10 }

// Phase9Latch exposes the non-volatile phase 9 memory for persistence.
func (a *FlightPhasesGroundActivation) Phase9Latch() *logic.MemoryNode { return a.memPhase9 }

// #endregion phases-ground

// #region phases-air

// FlightPhasesAirIn carries the upstream ground, altitude and power
// conditions plus the ground phase 8 output.
type FlightPhasesAirIn struct {
	GroundImmediate bool
	HFail           bool
	HGt800Ft        bool
	HGt1500Ft       bool
	Eng1Or2ToPwr    bool
	Phase8          bool
}

// FlightPhasesAirActivation computes the airborne flight phases 5 to 7.
// Phase 5 is limited to 120 seconds of takeoff power below 1500 ft, phase 7
// to 180 seconds below 800 ft; phase 6 covers everything else in flight.
type FlightPhasesAirActivation struct {
	conf1  *logic.ConfirmationNode
	mtrig1 *logic.MonostableTriggerNode
	mtrig2 *logic.MonostableTriggerNode
	mtrig3 *logic.MonostableTriggerNode
	trans1 *logic.TransientDetectionNode
	pulse1 *logic.PulseNode

	phase5 bool
	phase6 bool
	phase7 bool
}

func NewFlightPhasesAirActivation() *FlightPhasesAirActivation {
	return &FlightPhasesAirActivation{
		conf1:  logic.NewConfirmationLeading(200 * time.Millisecond),
		mtrig1: logic.NewMonostableLeading(120 * time.Second),
		mtrig2: logic.NewMonostableLeading(180 * time.Second),
		mtrig3: logic.NewMonostableLeading(2 * time.Second),
		trans1: logic.NewTransientDetectionNode(false),
		pulse1: logic.NewPulseLeading(),
	}
}

func (a *FlightPhasesAirActivation) Update(delta time.Duration, in FlightPhasesAirIn) {
	groundImmediate := a.mtrig3.Update(in.GroundImmediate, delta) || in.GroundImmediate

	conf1Cond := a.trans1.Update(in.HGt800Ft)
	pulseCond := a.conf1.Update(conf1Cond, delta)
	hGt800FtPulse := a.pulse1.Update(pulseCond)

	mtrig1In := !in.HGt1500Ft && in.Eng1Or2ToPwr && !in.HFail && !groundImmediate
	phase5Cond := a.mtrig1.Update(mtrig1In, delta) && mtrig1In

	mtrig2In := !groundImmediate && !in.HFail && !in.Eng1Or2ToPwr &&
		!in.HGt1500Ft && !in.HGt800Ft && !hGt800FtPulse
	phase7Cond := a.mtrig2.Update(mtrig2In, delta) && mtrig2In

	a.phase5 = phase5Cond
	a.phase6 = !phase5Cond && !groundImmediate && !phase7Cond
	a.phase7 = phase7Cond && !in.Phase8
}

func (a *FlightPhasesAirActivation) Phase5() bool { return a.phase5 }
func (a *FlightPhasesAirActivation) Phase6() bool { return a.phase6 }
func (a *FlightPhasesAirActivation) Phase7() bool { return a.phase7 }

// #endregion phases-air
