package sheets

import (
	"time"

	"github.com/fwcsim/fwc/internal/arinc"
	"github.com/fwcsim/fwc/internal/logic"
)

// #region triggers-1

type AltitudeThresholdTriggers1In struct {
	AutoCallOut2500Ft       arinc.DiscreteParameter
	AutoCallOut2500B        arinc.DiscreteParameter
	AutoCallOut2000Ft       arinc.DiscreteParameter
	AutoCallOut1000Ft       arinc.DiscreteParameter
	TcasAuralAdvisoryOutput arinc.DiscreteParameter
	RadioHeight             float64
	GpwsInhibition          bool
	Renvoi1                 bool
}

// AltitudeThresholdTriggers1Activation arms the high altitude callouts
// once the radio height settles inside a band.
type AltitudeThresholdTriggers1Activation struct {
	seuil2500Ft  bool
	seuil2500BFt bool
	seuil2000Ft  bool
	seuil1000Ft  bool
	seuil500Ft   bool
	conf1        *logic.ConfirmationNode
	conf2        *logic.ConfirmationNode
	conf3        *logic.ConfirmationNode
	conf4        *logic.ConfirmationNode
	tcasMtrig    *logic.MonostableTriggerNode
}

func NewAltitudeThresholdTriggers1Activation() *AltitudeThresholdTriggers1Activation {
	return &AltitudeThresholdTriggers1Activation{
		conf1:     logic.NewConfirmationLeading(200 * time.Millisecond),
		conf2:     logic.NewConfirmationLeading(200 * time.Millisecond),
		conf3:     logic.NewConfirmationLeading(200 * time.Millisecond),
		conf4:     logic.NewConfirmationLeading(200 * time.Millisecond),
		tcasMtrig: logic.NewMonostableLeading(5 * time.Second),
	}
}

func (a *AltitudeThresholdTriggers1Activation) Update(delta time.Duration, in AltitudeThresholdTriggers1In) {
	rh := in.RadioHeight
	tcasInhibit := a.tcasMtrig.Update(in.TcasAuralAdvisoryOutput.Value(), delta)
	gpwsOrTcasInhibit := in.GpwsInhibition || tcasInhibit
	lowerInhibit := in.Renvoi1 || tcasInhibit

	pin2500Ft := in.AutoCallOut2500Ft.Value()
	pin2500B := in.AutoCallOut2500B.Value()
	pin2000Ft := in.AutoCallOut2000Ft.Value()
	pin1000Ft := in.AutoCallOut1000Ft.Value()

	cond2500Ft := a.conf1.Update(2500 <= rh && rh < 2530, delta)
	cond2000Ft := a.conf2.Update(2000 <= rh && rh < 2020, delta)
	cond1000Ft := a.conf3.Update(1000 <= rh && rh < 1020, delta)
	cond500Ft := a.conf4.Update(500 <= rh && rh < 513, delta)

	a.seuil2500Ft = pin2500Ft && cond2500Ft && !gpwsOrTcasInhibit
	a.seuil2500BFt = pin2500B && cond2500Ft && !gpwsOrTcasInhibit
	a.seuil2000Ft = pin2000Ft && cond2000Ft && !gpwsOrTcasInhibit
	a.seuil1000Ft = pin1000Ft && cond1000Ft && !lowerInhibit
	a.seuil500Ft = cond500Ft && !lowerInhibit
}

func (a *AltitudeThresholdTriggers1Activation) Seuil2500Ft() bool  { return a.seuil2500Ft }
func (a *AltitudeThresholdTriggers1Activation) Seuil2500BFt() bool { return a.seuil2500BFt }
func (a *AltitudeThresholdTriggers1Activation) Seuil2000Ft() bool  { return a.seuil2000Ft }
func (a *AltitudeThresholdTriggers1Activation) Seuil1000Ft() bool  { return a.seuil1000Ft }
func (a *AltitudeThresholdTriggers1Activation) Seuil500Ft() bool   { return a.seuil500Ft }

// #endregion triggers-1

// #region triggers-2

type AltitudeThresholdTriggers2In struct {
	AutoCallOut400Ft arinc.DiscreteParameter
	AutoCallOut300Ft arinc.DiscreteParameter
	AutoCallOut200Ft arinc.DiscreteParameter
	AutoCallOut100Ft arinc.DiscreteParameter
	AutoCallOut50Ft  arinc.DiscreteParameter
	Alt400Ft         bool
	Alt300Ft         bool
	Alt200Ft         bool
	Alt100Ft         bool
	Alt50Ft          bool
	Renvoi1          bool
}

// AltitudeThresholdTriggers2Activation arms the mid altitude callouts.
type AltitudeThresholdTriggers2Activation struct {
	seuil400Ft bool
	seuil300Ft bool
	seuil200Ft bool
	seuil100Ft bool
	seuil50Ft  bool
}

func NewAltitudeThresholdTriggers2Activation() *AltitudeThresholdTriggers2Activation {
	return &AltitudeThresholdTriggers2Activation{}
}

func (a *AltitudeThresholdTriggers2Activation) Update(_ time.Duration, in AltitudeThresholdTriggers2In) {
	a.seuil400Ft = in.AutoCallOut400Ft.Value() && in.Alt400Ft && !in.Renvoi1
	a.seuil300Ft = in.AutoCallOut300Ft.Value() && in.Alt300Ft && !in.Renvoi1
	a.seuil200Ft = in.AutoCallOut200Ft.Value() && in.Alt200Ft && !in.Renvoi1
	a.seuil100Ft = in.AutoCallOut100Ft.Value() && in.Alt100Ft && !in.Renvoi1
	a.seuil50Ft = in.AutoCallOut50Ft.Value() && in.Alt50Ft && !in.Renvoi1
}

func (a *AltitudeThresholdTriggers2Activation) Seuil400Ft() bool { return a.seuil400Ft }
func (a *AltitudeThresholdTriggers2Activation) Seuil300Ft() bool { return a.seuil300Ft }
func (a *AltitudeThresholdTriggers2Activation) Seuil200Ft() bool { return a.seuil200Ft }
func (a *AltitudeThresholdTriggers2Activation) Seuil100Ft() bool { return a.seuil100Ft }
func (a *AltitudeThresholdTriggers2Activation) Seuil50Ft() bool  { return a.seuil50Ft }

// #endregion triggers-2

// #region triggers-3

type AltitudeThresholdTriggers3In struct {
	AutoCallOut40Ft  arinc.DiscreteParameter
	AutoCallOut30Ft  arinc.DiscreteParameter
	AutoCallOut20Ft  arinc.DiscreteParameter
	AutoCallOut10Ft  arinc.DiscreteParameter
	AutoCallOut5Ft   arinc.DiscreteParameter
	RaFunctionalTest bool
	Alt40Ft          bool
	Alt30Ft          bool
	Alt20Ft          bool
	Alt10Ft          bool
	Alt5Ft           bool
	Renvoi2          bool
	Renvoi3          bool
}

// AltitudeThresholdTriggers3Activation arms the low altitude callouts.
// The 40ft callout also fires during a radio altimeter functional test.
type AltitudeThresholdTriggers3Activation struct {
	seuil40Ft bool
	seuil30Ft bool
	seuil20Ft bool
	seuil10Ft bool
	seuil5Ft  bool
}

func NewAltitudeThresholdTriggers3Activation() *AltitudeThresholdTriggers3Activation {
	return &AltitudeThresholdTriggers3Activation{}
}

func (a *AltitudeThresholdTriggers3Activation) Update(_ time.Duration, in AltitudeThresholdTriggers3In) {
	a.seuil40Ft = in.Alt40Ft && (in.RaFunctionalTest || (!in.Renvoi2 && in.AutoCallOut40Ft.Value()))
	a.seuil30Ft = in.Alt30Ft && in.AutoCallOut30Ft.Value() && !in.Renvoi2
	a.seuil20Ft = in.Alt20Ft && in.AutoCallOut20Ft.Value() && !in.Renvoi2
	a.seuil10Ft = in.Alt10Ft && in.AutoCallOut10Ft.Value() && !in.Renvoi3
	a.seuil5Ft = in.Alt5Ft && in.AutoCallOut5Ft.Value() && !in.Renvoi3
}

func (a *AltitudeThresholdTriggers3Activation) Seuil40Ft() bool { return a.seuil40Ft }
func (a *AltitudeThresholdTriggers3Activation) Seuil30Ft() bool { return a.seuil30Ft }
func (a *AltitudeThresholdTriggers3Activation) Seuil20Ft() bool { return a.seuil20Ft }
func (a *AltitudeThresholdTriggers3Activation) Seuil10Ft() bool { return a.seuil10Ft }
func (a *AltitudeThresholdTriggers3Activation) Seuil5Ft() bool  { return a.seuil5Ft }

// #endregion triggers-3
