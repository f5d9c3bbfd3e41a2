package runtime

import (
	"time"

	"github.com/fwcsim/fwc/internal/arinc"
	"github.com/fwcsim/fwc/internal/voice"
)

// MonitorInput carries the per-tick discretes the monitor needs besides
// the active warning list.
type MonitorInput struct {
	MwCancelPulseUp     bool
	McCancelPulseUp     bool
	RadioHeight         arinc.Word[float64]
	AutoCallOutInhib    bool
	IntermediateCallOut bool
}

// Monitor turns the per-tick warning list into outputs: the continuous
// C chord, the synthetic voice stream and the feedback discretes the
// callout sheets listen to.
type Monitor struct {
	voice   *voice.Manager
	active  []WarningCode
	pending []WarningCode

	playingCode  WarningCode
	playingVoice bool
	intermediate bool

	cChord          bool
	cChordCancelled bool

	minimumGenerated      bool
	hundredAboveGenerated bool
	autoCallOutGenerated  bool
}

func NewMonitor() *Monitor {
	return &Monitor{voice: voice.NewManager()}
}

// Update consumes the warnings collected this tick. Voiced warnings enter
// a priority queue; a more urgent callout interrupts whatever is playing.
func (m *Monitor) Update(delta time.Duration, in MonitorInput, warnings []WarningCode) {
	wasActive := make(map[WarningCode]bool, len(m.active))
	for _, c := range m.active {
		wasActive[c] = true
	}
	m.active = append(m.active[:0], warnings...)

	m.updateCChord(in)

	// Rising edges queue a single announcement each.
	for _, c := range m.active {
		if wasActive[c] {
			continue
		}
		if _, voiced := warningSounds[c]; !voiced {
			continue
		}
		if in.AutoCallOutInhib {
			continue
		}
		m.enqueue(c)
	}

	m.minimumGenerated = false
	m.hundredAboveGenerated = false
	m.autoCallOutGenerated = false

	var parts []voice.Sound
	cancel := false
	if len(m.pending) > 0 {
		next := m.pending[0]
		interrupt := m.playingVoice && !m.voice.ReadyIn(delta) &&
			priorityIndex(next) < priorityIndex(m.playingCode)
		if m.voice.ReadyIn(delta) || interrupt || m.intermediate {
			m.pending = m.pending[1:]
			parts = warningSounds[next]
			cancel = interrupt || m.intermediate
			m.playingCode = next
			m.playingVoice = true
			m.intermediate = false
			m.markGenerated(next)
		}
	} else if in.IntermediateCallOut && m.voice.ReadyIn(delta) && !in.AutoCallOutInhib {
		if in.RadioHeight.IsVal() {
			parts = voice.TranslateHeight(in.RadioHeight.Value())
			if parts != nil {
				m.intermediate = true
				m.playingVoice = false
			}
		}
	}

	m.voice.Update(delta, parts, cancel)

	if m.voice.Ready() {
		m.playingVoice = false
		m.intermediate = false
	}
}

func (m *Monitor) updateCChord(in MonitorInput) {
	active := false
	for _, c := range m.active {
		if c == CodeCChord {
			active = true
			break
		}
	}
	if !active {
		m.cChordCancelled = false
	} else if in.MwCancelPulseUp {
		m.cChordCancelled = true
	}
	m.cChord = active && !m.cChordCancelled
}

func (m *Monitor) enqueue(code WarningCode) {
	for _, c := range m.pending {
		if c == code {
			return
		}
	}
	m.pending = append(m.pending, code)
	for i := len(m.pending) - 1; i > 0; i-- {
		if priorityIndex(m.pending[i]) < priorityIndex(m.pending[i-1]) {
			m.pending[i], m.pending[i-1] = m.pending[i-1], m.pending[i]
		}
	}
}

func (m *Monitor) markGenerated(code WarningCode) {
	switch {
	case code == CodeMinimum:
		m.minimumGenerated = true
	case code == CodeHundredAbove:
		m.hundredAboveGenerated = true
	case code.Ata == 34:
		m.autoCallOutGenerated = true
	}
}

// CChord reports whether the altitude alert chord is sounding.
func (m *Monitor) CChord() bool { return m.cChord }

// SyntheticVoiceIndex returns the id of the voice fragment playing.
func (m *Monitor) SyntheticVoiceIndex() (uint8, bool) { return m.voice.SoundID() }

// InterAudio reports an intermediate height announcement in progress.
func (m *Monitor) InterAudio() bool { return m.intermediate }

// ActiveWarnings returns the warning codes raised this tick.
func (m *Monitor) ActiveWarnings() []WarningCode { return m.active }

// Feedback discretes read by the callout sheets on the next tick.
func (m *Monitor) MinimumGenerated() bool      { return m.minimumGenerated }
func (m *Monitor) HundredAboveGenerated() bool { return m.hundredAboveGenerated }
func (m *Monitor) AutoCallOutGenerated() bool  { return m.autoCallOutGenerated }
