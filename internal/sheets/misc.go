package sheets

import (
	"time"

	"github.com/fwcsim/fwc/internal/arinc"
	"github.com/fwcsim/fwc/internal/logic"
)

// #region general-cancel

// GeneralCancelIn carries the master warning and master caution cancel
// buttons from both sides.
type GeneralCancelIn struct {
	CaptMwCancelOn arinc.DiscreteParameter
	FoMwCancelOn   arinc.DiscreteParameter
	CaptMcCancelOn arinc.DiscreteParameter
	FoMcCancelOn   arinc.DiscreteParameter
}

// GeneralCancelActivation turns the cancel buttons into single-tick pulses
// for the warning monitor.
type GeneralCancelActivation struct {
	captMwPulse *logic.PulseNode
	foMwPulse   *logic.PulseNode
	captMcPulse *logic.PulseNode
	foMcPulse   *logic.PulseNode

	mwCancelPulseUp bool
	mcCancelPulseUp bool
}

func NewGeneralCancelActivation() *GeneralCancelActivation {
	return &GeneralCancelActivation{
		captMwPulse: logic.NewPulseLeading(),
		foMwPulse:   logic.NewPulseLeading(),
		captMcPulse: logic.NewPulseLeading(),
		foMcPulse:   logic.NewPulseLeading(),
	}
}

func (a *GeneralCancelActivation) Update(_ time.Duration, in GeneralCancelIn) {
	a.mwCancelPulseUp = a.captMwPulse.Update(in.CaptMwCancelOn.Value()) ||
		a.foMwPulse.Update(in.FoMwCancelOn.Value())
	a.mcCancelPulseUp = a.captMcPulse.Update(in.CaptMcCancelOn.Value()) ||
		a.foMcPulse.Update(in.FoMcCancelOn.Value())
}

func (a *GeneralCancelActivation) MwCancelPulseUp() bool { return a.mwCancelPulseUp }
func (a *GeneralCancelActivation) McCancelPulseUp() bool { return a.mcCancelPulseUp }

// #endregion general-cancel

// #region audio-attenuation

// AudioAttenuationIn carries the ground and engine running states.
type AudioAttenuationIn struct {
	Ground         bool
	Eng1NotRunning bool
	Eng2NotRunning bool
}

// AudioAttenuationActivation lowers the aural volume on the ground with
// both engines shut down.
type AudioAttenuationActivation struct {
	audioAttenuation bool
}

func NewAudioAttenuationActivation() *AudioAttenuationActivation {
	return &AudioAttenuationActivation{}
}

func (a *AudioAttenuationActivation) Update(_ time.Duration, in AudioAttenuationIn) {
	a.audioAttenuation = in.Ground && in.Eng1NotRunning && in.Eng2NotRunning
}

func (a *AudioAttenuationActivation) AudioAttenuation() bool { return a.audioAttenuation }

// #endregion audio-attenuation
