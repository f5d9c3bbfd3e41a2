package sheets

import (
	"math"
	"time"

	"github.com/fwcsim/fwc/internal/arinc"
	"github.com/fwcsim/fwc/internal/logic"
)

// #region thresholds

// AltitudeAlertThresholdsIn carries the selected altitude and the picked
// barometric altitude.
type AltitudeAlertThresholdsIn struct {
	AltiSelect arinc.Word[float64]
	AltiBasic  float64
}

// AltitudeAlertThresholdsActivation compares the barometric altitude against
// the selected altitude at the 200 ft and 750 ft deviation bands.
type AltitudeAlertThresholdsActivation struct {
	alt200 bool
	alt750 bool
}

func NewAltitudeAlertThresholdsActivation() *AltitudeAlertThresholdsActivation {
	return &AltitudeAlertThresholdsActivation{}
}

func (a *AltitudeAlertThresholdsActivation) Update(_ time.Duration, in AltitudeAlertThresholdsIn) {
	difference := math.Abs(in.AltiBasic - in.AltiSelect.Value())
	a.alt200 = difference < 200.0
	a.alt750 = difference < 750.0
}

func (a *AltitudeAlertThresholdsActivation) Alt200() bool { return a.alt200 }
func (a *AltitudeAlertThresholdsActivation) Alt750() bool { return a.alt750 }

// #endregion thresholds

// #region inhibits

// AltitudeAlertSlatInhibitActivation inhibits the altitude alert with the
// gear downlocked, when a descent through the selected altitude is expected.
type AltitudeAlertSlatInhibitActivation struct {
	slatInhibit bool
}

func NewAltitudeAlertSlatInhibitActivation() *AltitudeAlertSlatInhibitActivation {
	return &AltitudeAlertSlatInhibitActivation{}
}

func (a *AltitudeAlertSlatInhibitActivation) Update(_ time.Duration, lgDownlocked bool) {
	a.slatInhibit = lgDownlocked
}

func (a *AltitudeAlertSlatInhibitActivation) SlatInhibit() bool { return a.slatInhibit }

// AltitudeAlertFmgcInhibitActivation inhibits the altitude alert while the
// glideslope mode is engaged.
type AltitudeAlertFmgcInhibitActivation struct {
	fmgcInhibit bool
}

func NewAltitudeAlertFmgcInhibitActivation() *AltitudeAlertFmgcInhibitActivation {
	return &AltitudeAlertFmgcInhibitActivation{}
}

func (a *AltitudeAlertFmgcInhibitActivation) Update(_ time.Duration, gsModeOn1 arinc.Word[bool]) {
	a.fmgcInhibit = gsModeOn1.Value()
}

func (a *AltitudeAlertFmgcInhibitActivation) FmgcInhibit() bool { return a.fmgcInhibit }

// AltitudeAlertGeneralInhibitIn carries the selected altitude word, the
// selection change discrete and the upstream inhibits.
type AltitudeAlertGeneralInhibitIn struct {
	AltiSelect   arinc.Word[float64]
	AltSelectChg arinc.Word[bool]
	SlatInhibit  bool
	FmgcInhibit  bool
}

// AltitudeAlertGeneralInhibitActivation combines the inhibit sources: a bad
// or changing altitude selection, the slat inhibit or the FMGC inhibit.
type AltitudeAlertGeneralInhibitActivation struct {
	generalInhibit bool
}

func NewAltitudeAlertGeneralInhibitActivation() *AltitudeAlertGeneralInhibitActivation {
	return &AltitudeAlertGeneralInhibitActivation{}
}

func (a *AltitudeAlertGeneralInhibitActivation) Update(_ time.Duration, in AltitudeAlertGeneralInhibitIn) {
	badAltiSelect := in.AltiSelect.IsNcd() || in.AltiSelect.IsInv()
	a.generalInhibit = badAltiSelect || in.AltSelectChg.Value() ||
		in.SlatInhibit || in.FmgcInhibit
}

func (a *AltitudeAlertGeneralInhibitActivation) GeneralInhibit() bool { return a.generalInhibit }

// #endregion inhibits

// #region ap-tcas

// ApTcasInhibitIn carries the TCAS engagement, selection change and the
// upstream threshold, inhibit and gear outputs.
type ApTcasInhibitIn struct {
	TcasEngaged    arinc.Word[bool]
	AltSelectChg   arinc.Word[bool]
	LgDownlocked   bool
	Alt200         bool
	Alt750         bool
	GeneralInhibit bool
}

// ApTcasInhibitActivation latches the aural altitude alert inhibit when the
// altitude deviation was initiated by AP TCAS.
type ApTcasInhibitActivation struct {
	pulse1                *logic.PulseNode
	pulse2                *logic.PulseNode
	pulse3                *logic.PulseNode
	pulse4                *logic.PulseNode
	mrtrig1               *logic.MonostableTriggerNode
	mrtrig2               *logic.MonostableTriggerNode
	memAltitudeAlertInhib *logic.MemoryNode

	apTcasModeEng bool
	altAlertInib  bool
}

func NewApTcasInhibitActivation() *ApTcasInhibitActivation {
	return &ApTcasInhibitActivation{
		pulse1:                logic.NewPulseFalling(),
		pulse2:                logic.NewPulseLeading(),
		pulse3:                logic.NewPulseFalling(),
		pulse4:                logic.NewPulseFalling(),
		mrtrig1:               logic.NewMonostableRetriggerable(true, 1*time.Second),
		mrtrig2:               logic.NewMonostableRetriggerable(true, 1*time.Second),
		memAltitudeAlertInhib: logic.NewMemoryNode(true),
	}
}

func (a *ApTcasInhibitActivation) Update(delta time.Duration, in ApTcasInhibitIn) {
	a.apTcasModeEng = in.TcasEngaged.Value()

	pulse1Out := a.pulse1.Update(in.Alt200 && in.Alt750 && !in.GeneralInhibit)

	pulse23In := !in.Alt200 && !in.Alt750 && !in.GeneralInhibit
	pulse2Out := a.pulse2.Update(pulse23In)

	set := a.apTcasModeEng && (pulse1Out || pulse2Out)

	pulse3Out := a.pulse3.Update(pulse23In)
	pulse4Out := a.pulse4.Update(in.LgDownlocked)

	mrtrig1Out := a.mrtrig1.Update(in.LgDownlocked, delta)
	mrtrig2Out := a.mrtrig2.Update(in.AltSelectChg.Value(), delta)

	reset := pulse3Out || pulse4Out || mrtrig1Out || mrtrig2Out
	a.altAlertInib = a.memAltitudeAlertInhib.Update(set, reset)
}

func (a *ApTcasInhibitActivation) ApTcasModeEng() bool { return a.apTcasModeEng }
func (a *ApTcasInhibitActivation) AltAlertInib() bool  { return a.altAlertInib }

// #endregion ap-tcas

// #region altitude-alert

// AltitudeAlertIn carries everything the alert computation needs from the
// upstream sheets.
type AltitudeAlertIn struct {
	AltSelectChg   arinc.Word[bool]
	Ground         bool
	OneApEngd      bool
	ApTcasModeEng  bool
	AltAlertInib   bool
	Alt200         bool
	Alt750         bool
	GeneralInhibit bool
	LgDownlocked   bool
}

// AltitudeAlertActivation drives the altitude alert: a steady light within
// the 750 ft band, a flashing light after leaving a band towards the
// selection, and the C chord aural.
type AltitudeAlertActivation struct {
	pulse1       *logic.PulseNode
	mtrig1       *logic.MonostableTriggerNode
	mtrig2       *logic.MonostableTriggerNode
	mtrig3       *logic.MonostableTriggerNode
	mtrig4       *logic.MonostableTriggerNode
	memWithin200 *logic.MemoryNode
	memWithin750 *logic.MemoryNode

	cChord        bool
	steadyLight   bool
	flashingLight bool
}

func NewAltitudeAlertActivation() *AltitudeAlertActivation {
	return &AltitudeAlertActivation{
		pulse1:       logic.NewPulseFalling(),
		mtrig1:       logic.NewMonostableLeading(1 * time.Second),
		mtrig2:       logic.NewMonostableLeading(1 * time.Second),
		mtrig3:       logic.NewMonostableLeading(1500 * time.Millisecond),
		mtrig4:       logic.NewMonostableLeading(1500 * time.Millisecond),
		memWithin200: logic.NewMemoryNode(false),
		memWithin750: logic.NewMemoryNode(false),
	}
}

func (a *AltitudeAlertActivation) Update(delta time.Duration, in AltitudeAlertIn) {
	groundOrApTcas := in.Ground || in.ApTcasModeEng

	mtrig1Out := a.mtrig1.Update(in.AltSelectChg.Value(), delta)
	mtrig2Out := a.mtrig2.Update(in.LgDownlocked, delta)
	resetMems := mtrig1Out || mtrig2Out

	within200 := in.Alt200 && in.Alt750 && !in.GeneralInhibit
	within750 := !in.Alt200 && in.Alt750 && !in.GeneralInhibit
	not750 := !in.Alt200 && !in.Alt750 && !in.GeneralInhibit

	memWasWithin200 := a.memWithin200.Update(within200, not750 || resetMems)
	memWasWithin750 := a.memWithin750.Update(within750, resetMems)

	left200 := within750 && memWasWithin200
	left750 := not750 && memWasWithin750
	flashingLightCond := left200 || left750

	a.flashingLight = !groundOrApTcas && flashingLightCond
	a.steadyLight = !groundOrApTcas && within750 && !left200

	mtrig3Out := a.mtrig3.Update(!in.OneApEngd && within750, delta)

	mtrig4In := !in.OneApEngd && a.pulse1.Update(in.ApTcasModeEng) && !in.GeneralInhibit
	approachingAlt := a.mtrig4.Update(mtrig4In, delta)

	a.cChord = !groundOrApTcas &&
		(mtrig3Out || approachingAlt || (!in.AltAlertInib && flashingLightCond))
}

func (a *AltitudeAlertActivation) CChord() bool        { return a.cChord }
func (a *AltitudeAlertActivation) SteadyLight() bool   { return a.steadyLight }
func (a *AltitudeAlertActivation) FlashingLight() bool { return a.flashingLight }

// AltitudeAlertCChordActivation is the warning wrapper carrying the C chord
// to the monitor.
type AltitudeAlertCChordActivation struct {
	cChord bool
}

func NewAltitudeAlertCChordActivation() *AltitudeAlertCChordActivation {
	return &AltitudeAlertCChordActivation{}
}

func (a *AltitudeAlertCChordActivation) Update(_ time.Duration, cChord bool) {
	a.cChord = cChord
}

func (a *AltitudeAlertCChordActivation) Warning() bool { return a.cChord }
func (a *AltitudeAlertCChordActivation) Audio() bool   { return a.cChord }

// #endregion altitude-alert
