// Package params holds the acquisition store: every input parameter the
// warning computer reads, keyed by a typed signal ID. Parameters that have
// not been written since the last tick read back as invalid, which is
// exactly how a missing label behaves on the real data buses.
package params

import "github.com/fwcsim/fwc/internal/arinc"

// SignalID identifies one acquired parameter.
type SignalID int

// #region signal-ids

const (
	// side identification and landing gear
	FwcIdentSide1 SignalID = iota
	FwcIdentSide2
	LhLgCompressed1
	LhLgCompressed2
	EssLhLgCompressed
	NormLhLgCompressed
	LhGearDownLock1
	LhGearDownLock2
	RhGearDownLock1
	RhGearDownLock2
	NoseGearDownLock1
	NoseGearDownLock2

	// air data and radio altimeters
	RadioHeight1
	RadioHeight2
	ComputedSpeed1
	ComputedSpeed2
	ComputedSpeed3
	Altitude1
	Altitude2
	Altitude3
	AltiSelect
	AltSelectChg

	// engines
	Eng1MasterLeverSelectOn
	Eng2MasterLeverSelectOn
	Eng1CoreSpeedAtOrAboveIdleA
	Eng1CoreSpeedAtOrAboveIdleB
	Eng2CoreSpeedAtOrAboveIdleA
	Eng2CoreSpeedAtOrAboveIdleB
	Eng1FirePbOut
	ToConfigTest
	Eng1TlaA
	Eng1TlaB
	Eng2TlaA
	Eng2TlaB
	Eng1TlaFtoA
	Eng1TlaFtoB
	Eng2TlaFtoA
	Eng2TlaFtoB
	Eng1AutoTogaA
	Eng1AutoTogaB
	Eng2AutoTogaA
	Eng2AutoTogaB
	Eng1LimitModeSoftGaA
	Eng1LimitModeSoftGaB
	Eng2LimitModeSoftGaA
	Eng2LimitModeSoftGaB
	Eng1N1SelectedActualA
	Eng1N1SelectedActualB
	Eng2N1SelectedActualA
	Eng2N1SelectedActualB
	Tla1IdlePwrA
	Tla1IdlePwrB
	Tla2IdlePwrA
	Tla2IdlePwrB
	Eng1ChannelAInControl
	Eng1ChannelBInControl
	Eng2ChannelAInControl
	Eng2ChannelBInControl

	// autoflight
	Ap1EngdCom
	Ap1EngdMon
	Ap2EngdCom
	Ap2EngdMon
	InstincDiscnct1ApEngd
	InstincDiscnct2ApEngd
	LandTrkModeOn1
	LandTrkModeOn2
	AThrEngaged
	TcasEngaged
	TcasAuralAdvisoryOutput
	GsModeOn1
	GsModeOn2
	GlideDeviation1
	GlideDeviation2

	// flight deck controls
	CaptMwCancelOn
	FoMwCancelOn
	CaptMcCancelOn
	FoMcCancelOn
	EcpEmerCancelOn

	// hydraulics
	BlueSysLoPr
	YellowSysLoPr
	GreenSysLoPr

	// ground proximity
	GpwsModesOn
	GsVisualAlertOn

	// decision height and callout pin programming
	DecisionHeight1
	DecisionHeight2
	DecisionHeightCodeA
	DecisionHeightCodeB
	DecisionHeightPlus100FtCodeA
	DecisionHeightPlus100FtCodeB
	HundredAboveForMdaMdhRequest1
	HundredAboveForMdaMdhRequest2
	MinimumForMdaMdhRequest1
	MinimumForMdaMdhRequest2
	AutoCallOut2500Ft
	AutoCallOut2500B
	AutoCallOut2000Ft
	AutoCallOut1000Ft
	AutoCallOut500Ft
	AutoCallOut500FtGlideDeviation
	AutoCallOut400Ft
	AutoCallOut300Ft
	AutoCallOut200Ft
	AutoCallOut100Ft
	AutoCallOut50Ft
	AutoCallOut40Ft
	AutoCallOut30Ft
	AutoCallOut20Ft
	AutoCallOut10Ft
	AutoCallOut5Ft

	signalCount
)

// #endregion signal-ids

var signalNames = map[SignalID]string{
	FwcIdentSide1:                  "fwc_ident_side1",
	FwcIdentSide2:                  "fwc_ident_side2",
	LhLgCompressed1:                "lh_lg_compressed_1",
	LhLgCompressed2:                "lh_lg_compressed_2",
	EssLhLgCompressed:              "ess_lh_lg_compressed",
	NormLhLgCompressed:             "norm_lh_lg_compressed",
	LhGearDownLock1:                "lh_gear_down_lock_1",
	LhGearDownLock2:                "lh_gear_down_lock_2",
	RhGearDownLock1:                "rh_gear_down_lock_1",
	RhGearDownLock2:                "rh_gear_down_lock_2",
	NoseGearDownLock1:              "nose_gear_down_lock_1",
	NoseGearDownLock2:              "nose_gear_down_lock_2",
	RadioHeight1:                   "radio_height_1",
	RadioHeight2:                   "radio_height_2",
	ComputedSpeed1:                 "computed_speed_1",
	ComputedSpeed2:                 "computed_speed_2",
	ComputedSpeed3:                 "computed_speed_3",
	Altitude1:                      "altitude_1",
	Altitude2:                      "altitude_2",
	Altitude3:                      "altitude_3",
	AltiSelect:                     "alti_select",
	AltSelectChg:                   "alt_select_chg",
	Eng1MasterLeverSelectOn:        "eng1_master_lever_select_on",
	Eng2MasterLeverSelectOn:        "eng2_master_lever_select_on",
	Eng1CoreSpeedAtOrAboveIdleA:    "eng1_core_speed_at_or_above_idle_a",
	Eng1CoreSpeedAtOrAboveIdleB:    "eng1_core_speed_at_or_above_idle_b",
	Eng2CoreSpeedAtOrAboveIdleA:    "eng2_core_speed_at_or_above_idle_a",
	Eng2CoreSpeedAtOrAboveIdleB:    "eng2_core_speed_at_or_above_idle_b",
	Eng1FirePbOut:                  "eng_1_fire_pb_out",
	ToConfigTest:                   "to_config_test",
	Eng1TlaA:                       "eng1_tla_a",
	Eng1TlaB:                       "eng1_tla_b",
	Eng2TlaA:                       "eng2_tla_a",
	Eng2TlaB:                       "eng2_tla_b",
	Eng1TlaFtoA:                    "eng1_tla_fto_a",
	Eng1TlaFtoB:                    "eng1_tla_fto_b",
	Eng2TlaFtoA:                    "eng2_tla_fto_a",
	Eng2TlaFtoB:                    "eng2_tla_fto_b",
	Eng1AutoTogaA:                  "eng_1_auto_toga_a",
	Eng1AutoTogaB:                  "eng_1_auto_toga_b",
	Eng2AutoTogaA:                  "eng_2_auto_toga_a",
	Eng2AutoTogaB:                  "eng_2_auto_toga_b",
	Eng1LimitModeSoftGaA:           "eng_1_limit_mode_soft_ga_a",
	Eng1LimitModeSoftGaB:           "eng_1_limit_mode_soft_ga_b",
	Eng2LimitModeSoftGaA:           "eng_2_limit_mode_soft_ga_a",
	Eng2LimitModeSoftGaB:           "eng_2_limit_mode_soft_ga_b",
	Eng1N1SelectedActualA:          "eng1_n1_selected_actual_a",
	Eng1N1SelectedActualB:          "eng1_n1_selected_actual_b",
	Eng2N1SelectedActualA:          "eng2_n1_selected_actual_a",
	Eng2N1SelectedActualB:          "eng2_n1_selected_actual_b",
	Tla1IdlePwrA:                   "tla1_idle_pwr_a",
	Tla1IdlePwrB:                   "tla1_idle_pwr_b",
	Tla2IdlePwrA:                   "tla2_idle_pwr_a",
	Tla2IdlePwrB:                   "tla2_idle_pwr_b",
	Eng1ChannelAInControl:          "eng1_channel_a_in_control",
	Eng1ChannelBInControl:          "eng1_channel_b_in_control",
	Eng2ChannelAInControl:          "eng2_channel_a_in_control",
	Eng2ChannelBInControl:          "eng2_channel_b_in_control",
	Ap1EngdCom:                     "ap1_engd_com",
	Ap1EngdMon:                     "ap1_engd_mon",
	Ap2EngdCom:                     "ap2_engd_com",
	Ap2EngdMon:                     "ap2_engd_mon",
	InstincDiscnct1ApEngd:          "instinc_discnct_1ap_engd",
	InstincDiscnct2ApEngd:          "instinc_discnct_2ap_engd",
	LandTrkModeOn1:                 "land_trk_mode_on_1",
	LandTrkModeOn2:                 "land_trk_mode_on_2",
	AThrEngaged:                    "athr_engaged",
	TcasEngaged:                    "tcas_engaged",
	TcasAuralAdvisoryOutput:        "tcas_aural_advisory_output",
	GsModeOn1:                      "gs_mode_on_1",
	GsModeOn2:                      "gs_mode_on_2",
	GlideDeviation1:                "glide_deviation_1",
	GlideDeviation2:                "glide_deviation_2",
	CaptMwCancelOn:                 "capt_mw_cancel_on",
	FoMwCancelOn:                   "fo_mw_cancel_on",
	CaptMcCancelOn:                 "capt_mc_cancel_on",
	FoMcCancelOn:                   "fo_mc_cancel_on",
	EcpEmerCancelOn:                "ecp_emer_cancel_on",
	BlueSysLoPr:                    "blue_sys_lo_pr",
	YellowSysLoPr:                  "yellow_sys_lo_pr",
	GreenSysLoPr:                   "green_sys_lo_pr",
	GpwsModesOn:                    "gpws_modes_on",
	GsVisualAlertOn:                "gs_visual_alert_on",
	DecisionHeight1:                "decision_height_1",
	DecisionHeight2:                "decision_height_2",
	DecisionHeightCodeA:            "decision_height_code_a",
	DecisionHeightCodeB:            "decision_height_code_b",
	DecisionHeightPlus100FtCodeA:   "decision_height_plus_100_ft_code_a",
	DecisionHeightPlus100FtCodeB:   "decision_height_plus_100_ft_code_b",
	HundredAboveForMdaMdhRequest1:  "hundred_above_for_mda_mdh_request_1",
	HundredAboveForMdaMdhRequest2:  "hundred_above_for_mda_mdh_request_2",
	MinimumForMdaMdhRequest1:       "minimum_for_mda_mdh_request_1",
	MinimumForMdaMdhRequest2:       "minimum_for_mda_mdh_request_2",
	AutoCallOut2500Ft:              "auto_call_out_2500_ft",
	AutoCallOut2500B:               "auto_call_out_2500b",
	AutoCallOut2000Ft:              "auto_call_out_2000_ft",
	AutoCallOut1000Ft:              "auto_call_out_1000_ft",
	AutoCallOut500Ft:               "auto_call_out_500_ft",
	AutoCallOut500FtGlideDeviation: "auto_call_out_500_ft_glide_deviation",
	AutoCallOut400Ft:               "auto_call_out_400_ft",
	AutoCallOut300Ft:               "auto_call_out_300_ft",
	AutoCallOut200Ft:               "auto_call_out_200_ft",
	AutoCallOut100Ft:               "auto_call_out_100_ft",
	AutoCallOut50Ft:                "auto_call_out_50_ft",
	AutoCallOut40Ft:                "auto_call_out_40_ft",
	AutoCallOut30Ft:                "auto_call_out_30_ft",
	AutoCallOut20Ft:                "auto_call_out_20_ft",
	AutoCallOut10Ft:                "auto_call_out_10_ft",
	AutoCallOut5Ft:                 "auto_call_out_5_ft",
}

// String returns the wire name of the signal, matching the names used in
// fixture files and the trace database.
func (id SignalID) String() string {
	if name, ok := signalNames[id]; ok {
		return name
	}
	return "unknown"
}

// ByName resolves a wire name back to its signal ID.
func ByName(name string) (SignalID, bool) {
	for id, n := range signalNames {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// All returns every known signal ID in declaration order.
func All() []SignalID {
	ids := make([]SignalID, 0, signalCount)
	for id := SignalID(0); id < signalCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// #region store

// Store holds the current value of every acquired parameter. Writes replace
// the stored parameter wholesale; reads of signals that were never written
// return an invalid parameter of the right family.
type Store struct {
	discretes map[SignalID]arinc.DiscreteParameter
	flags     map[SignalID]arinc.Word[bool]
	numbers   map[SignalID]arinc.Word[float64]
}

// NewStore returns an empty store. Every signal reads back invalid.
func NewStore() *Store {
	return &Store{
		discretes: make(map[SignalID]arinc.DiscreteParameter),
		flags:     make(map[SignalID]arinc.Word[bool]),
		numbers:   make(map[SignalID]arinc.Word[float64]),
	}
}

// Discrete reads a discrete parameter.
func (s *Store) Discrete(id SignalID) arinc.DiscreteParameter {
	if p, ok := s.discretes[id]; ok {
		return p
	}
	return arinc.NewDiscreteInv(false)
}

// Flag reads a boolean bus word.
func (s *Store) Flag(id SignalID) arinc.Word[bool] {
	if p, ok := s.flags[id]; ok {
		return p
	}
	return arinc.NewWordInv(false)
}

// Number reads a numeric bus word.
func (s *Store) Number(id SignalID) arinc.Word[float64] {
	if p, ok := s.numbers[id]; ok {
		return p
	}
	return arinc.NewWordInv(0.0)
}

// SetDiscrete writes a discrete parameter.
func (s *Store) SetDiscrete(id SignalID, p arinc.DiscreteParameter) {
	s.discretes[id] = p
}

// SetFlag writes a boolean bus word.
func (s *Store) SetFlag(id SignalID, p arinc.Word[bool]) {
	s.flags[id] = p
}

// SetNumber writes a numeric bus word.
func (s *Store) SetNumber(id SignalID, p arinc.Word[float64]) {
	s.numbers[id] = p
}

// Reset clears every stored parameter back to invalid.
func (s *Store) Reset() {
	clear(s.discretes)
	clear(s.flags)
	clear(s.numbers)
}

// #endregion store

// #region indexed

// RadioHeightID maps a radio altimeter index (1 or 2) to its signal.
func RadioHeightID(index int) SignalID {
	if index == 2 {
		return RadioHeight2
	}
	return RadioHeight1
}

// ComputedSpeedID maps an ADC index (1 to 3) to its signal.
func ComputedSpeedID(index int) SignalID {
	switch index {
	case 2:
		return ComputedSpeed2
	case 3:
		return ComputedSpeed3
	default:
		return ComputedSpeed1
	}
}

// AltitudeID maps an ADR index (1 to 3) to its signal.
func AltitudeID(index int) SignalID {
	switch index {
	case 2:
		return Altitude2
	case 3:
		return Altitude3
	default:
		return Altitude1
	}
}

// #endregion indexed
