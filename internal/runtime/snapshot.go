package runtime

// Snapshot is the externally visible output state after a tick, in a form
// that serializes cleanly for the trace recorder and the status API.
type Snapshot struct {
	FlightPhase           int      `json:"flight_phase"`
	ShowToMemo            bool     `json:"show_to_memo"`
	ShowLdgMemo           bool     `json:"show_ldg_memo"`
	CChord                bool     `json:"c_chord"`
	AltAlertLightOn       bool     `json:"alt_alert_light_on"`
	AltAlertFlashingLight bool     `json:"alt_alert_flashing_light"`
	CavalryCharge         bool     `json:"cavalry_charge"`
	ApOffText             bool     `json:"ap_off_text"`
	ApOffWarning          bool     `json:"ap_off_warning"`
	AudioVolume           float64  `json:"audio_volume"`
	SoundID               *uint8   `json:"sound_id,omitempty"`
	Warnings              []string `json:"warnings,omitempty"`
}

// Snapshot captures the current outputs.
func (r *Runtime) Snapshot() Snapshot {
	s := Snapshot{
		FlightPhase:           r.FlightPhase(),
		ShowToMemo:            r.ShowToMemo(),
		ShowLdgMemo:           r.ShowLdgMemo(),
		CChord:                r.CChord(),
		AltAlertLightOn:       r.AltAlertLightOn(),
		AltAlertFlashingLight: r.AltAlertFlashingLight(),
		CavalryCharge:         r.CavalryCharge(),
		ApOffText:             r.ApOffText(),
		ApOffWarning:          r.ApOffWarning(),
		AudioVolume:           r.AudioVolume(),
	}
	if id, ok := r.CalloutSoundID(); ok {
		s.SoundID = &id
	}
	for _, c := range r.ActiveWarnings() {
		s.Warnings = append(s.Warnings, c.String())
	}
	return s
}
