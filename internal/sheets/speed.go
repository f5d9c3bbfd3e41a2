package sheets

import (
	"time"

	"github.com/fwcsim/fwc/internal/arinc"
	"github.com/fwcsim/fwc/internal/logic"
)

// SpeedDetectionIn carries the computed airspeed from all three ADCs.
type SpeedDetectionIn struct {
	ComputedSpeed1 arinc.Word[float64]
	ComputedSpeed2 arinc.Word[float64]
	ComputedSpeed3 arinc.Word[float64]
}

// SpeedDetectionActivation latches the above-80-kt condition using a 2-of-3
// vote over the ADCs at 83 kt, with a synthetic fourth vote when any ADC is
// unusable. The latch releases on a 2-of-3 vote below 77 kt. An ADC in
// functional test inhibits speed-dependent logic for 1.5 seconds.
type SpeedDetectionActivation struct {
	conf1  *logic.ConfirmationNode
	conf2  *logic.ConfirmationNode
	conf3  *logic.ConfirmationNode
	memory *logic.MemoryNode
	mtrig1 *logic.MonostableTriggerNode
	mtrig2 *logic.MonostableTriggerNode

	acSpeedAbove80Kt bool
	adcTestInhib     bool
}

func NewSpeedDetectionActivation() *SpeedDetectionActivation {
	return &SpeedDetectionActivation{
		conf1:  logic.NewConfirmationLeading(1 * time.Second),
		conf2:  logic.NewConfirmationLeading(1 * time.Second),
		conf3:  logic.NewConfirmationLeading(1 * time.Second),
		memory: logic.NewMemoryNode(true),
		mtrig1: logic.NewMonostableFalling(500 * time.Millisecond),
		mtrig2: logic.NewMonostableFalling(1500 * time.Millisecond),
	}
}

func (a *SpeedDetectionActivation) Update(delta time.Duration, in SpeedDetectionIn) {
	adc1Invalid := in.ComputedSpeed1.IsInv() || in.ComputedSpeed1.IsNcd()
	adc2Invalid := in.ComputedSpeed2.IsInv() || in.ComputedSpeed2.IsNcd()
	adc3Invalid := in.ComputedSpeed3.IsInv() || in.ComputedSpeed3.IsNcd()
	anyAdcInvalid := adc1Invalid || adc2Invalid || adc3Invalid

	conf1Out := a.conf1.Update(in.ComputedSpeed1.Value() > 50.0 && !adc1Invalid, delta)
	conf2Out := a.conf2.Update(in.ComputedSpeed2.Value() > 50.0 && !adc2Invalid, delta)
	conf3Out := a.conf3.Update(in.ComputedSpeed3.Value() > 50.0 && !adc3Invalid, delta)

	adc1Above80Kt := conf1Out && !adc1Invalid && in.ComputedSpeed1.Value() > 83.0
	adc2Above80Kt := conf2Out && !adc2Invalid && in.ComputedSpeed2.Value() > 83.0
	adc3Above80Kt := conf3Out && !adc3Invalid && in.ComputedSpeed3.Value() > 83.0
	anyAdcAbove80Kt := adc1Above80Kt || adc2Above80Kt || adc3Above80Kt

	setMemory := countTrue(
		adc1Above80Kt,
		adc2Above80Kt,
		adc3Above80Kt,
		anyAdcAbove80Kt && anyAdcInvalid,
	) > 1

	adc1Below77Kt := in.ComputedSpeed1.Value() < 77.0 && !adc1Invalid
	adc2Below77Kt := in.ComputedSpeed2.Value() < 77.0 && !adc2Invalid
	adc3Below77Kt := in.ComputedSpeed3.Value() < 77.0 && !adc3Invalid
	anyAdcBelow77Kt := adc1Below77Kt || adc2Below77Kt || adc3Below77Kt

	anyAdcFault := in.ComputedSpeed1.IsFt() || in.ComputedSpeed2.IsFt() || in.ComputedSpeed3.IsFt()

	resetMemory := countTrue(
		adc1Below77Kt,
		adc2Below77Kt,
		adc3Below77Kt,
		anyAdcBelow77Kt && anyAdcInvalid,
	) > 1 || a.mtrig1.Update(anyAdcFault, delta)

	a.acSpeedAbove80Kt = a.memory.Update(setMemory, resetMemory)
	a.adcTestInhib = a.mtrig2.Update(anyAdcFault, delta)
}

func (a *SpeedDetectionActivation) AcSpeedAbove80Kt() bool { return a.acSpeedAbove80Kt }
func (a *SpeedDetectionActivation) AdcTestInhib() bool     { return a.adcTestInhib }

func countTrue(values ...bool) int {
	n := 0
	for _, v := range values {
		if v {
			n++
		}
	}
	return n
}
