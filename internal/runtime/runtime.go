// Package runtime assembles the warning computer: the acquisition store,
// every activation sheet, the warning monitor and the synthetic voice.
// One Tick runs the sheets in dependency order and refreshes the outputs.
package runtime

import (
	"fmt"
	"time"

	"github.com/fwcsim/fwc/internal/arinc"
	"github.com/fwcsim/fwc/internal/params"
	"github.com/fwcsim/fwc/internal/scheduler"
	"github.com/fwcsim/fwc/internal/sheets"
)

// #region config

// Config carries airframe options that gate optional logic.
type Config struct {
	// BussInstalled enables the backup speed scale wiring on the baro
	// altitude selection.
	BussInstalled bool
	// GpsAltUsedAndInvalid marks the GPS altitude substitution as failed
	// on airframes that carry it.
	GpsAltUsedAndInvalid bool
}

func DefaultConfig() Config {
	return Config{}
}

// #endregion config

// #region runtime

// Runtime is the software model of one flight warning computer channel.
type Runtime struct {
	cfg     Config
	store   *params.Store
	sched   *scheduler.Scheduler
	monitor *Monitor
	ready   bool

	// cavalry charge output of the previous tick, fed back into the
	// autopilot sheets at the start of the next one.
	cavalryEmitted bool

	newGround          *sheets.NewGroundActivation
	groundDetection    *sheets.GroundDetectionActivation
	speedDetection     *sheets.SpeedDetectionActivation
	enginesNotRunning  *sheets.EnginesNotRunningActivation
	engRunning         *sheets.EngRunningActivation
	altitudeDef        *sheets.AltitudeDefActivation
	neoEcu             *sheets.NeoEcuActivation
	tlaMctOrFlex       *sheets.TlaAtMctOrFlexToCfmActivation
	engTakeOffCfm      *sheets.EngTakeOffCfmActivation
	tlaPwrReverse      *sheets.TlaPwrReverseActivation
	tlaAtCl            *sheets.TlaAtClCfmActivation
	cfmFlightPhases    *sheets.CfmFlightPhasesDefActivation
	flightPhasesGround *sheets.FlightPhasesGroundActivation
	flightPhasesAir    *sheets.FlightPhasesAirActivation

	dhDtPositive  *sheets.GeneralDhDtPositiveActivation
	generalCancel *sheets.GeneralCancelActivation
	lgDownlocked  *sheets.LgDownlockedActivation
	eng1Start     *sheets.Eng1StartSequenceActivation
	eng2Start     *sheets.Eng2StartSequenceActivation

	apOffVoluntary   *sheets.AutopilotOffVoluntaryActivation
	apOffUnvoluntary *sheets.AutopilotOffUnvoluntaryActivation

	baroAltitude    *sheets.AutoFlightBaroAltitudeActivation
	alertThresholds *sheets.AltitudeAlertThresholdsActivation
	alertSlats      *sheets.AltitudeAlertSlatInhibitActivation
	alertFmgc       *sheets.AltitudeAlertFmgcInhibitActivation
	alertInhibit    *sheets.AltitudeAlertGeneralInhibitActivation
	alertApTcas     *sheets.ApTcasInhibitActivation
	altitudeAlert   *sheets.AltitudeAlertActivation
	alertCChord     *sheets.AltitudeAlertCChordActivation

	hoistedGpws       *sheets.HoistedGpwsInhibitionActivation
	audioGenerated    *sheets.AudioGeneratedActivation
	threshold1        *sheets.AltitudeThreshold1Activation
	calloutInhibit    *sheets.AutomaticCallOutInhibitionActivation
	decisionHeightVal *sheets.DecisionHeightValActivation
	mdaMdhInhib       *sheets.MdaMdhInhibitionActivation
	hundredAbove      *sheets.HundredAboveActivation
	minimum           *sheets.MinimumActivation
	threshold2        *sheets.AltitudeThreshold2Activation
	threshold3        *sheets.AltitudeThreshold3Activation
	triggers1         *sheets.AltitudeThresholdTriggers1Activation
	triggers2         *sheets.AltitudeThresholdTriggers2Activation
	triggers3         *sheets.AltitudeThresholdTriggers3Activation

	twentyRetard *sheets.AutoCallOutTwentyRetardAnnounceActivation
	tenRetard    *sheets.AutoCallOutTenRetardAnnounceActivation
	callout5     *sheets.AltitudeCallout5FtAnnounceActivation
	callout10    *sheets.AltitudeCallout10FtAnnounceActivation
	callout20    *sheets.AltitudeCallout20FtAnnounceActivation
	callout30    *sheets.AltitudeCallout30FtAnnounceActivation
	callout40    *sheets.AltitudeCallout40FtAnnounceActivation
	callout50    *sheets.AltitudeCallout50FtAnnounceActivation
	callout100   *sheets.AltitudeCallout100FtAnnounceActivation
	callout200   *sheets.AltitudeCallout200FtAnnounceActivation
	callout300   *sheets.AltitudeCallout300FtAnnounceActivation
	callout400   *sheets.AltitudeCallout400FtAnnounceActivation
	callout500   *sheets.AltitudeCallout500FtAnnounceActivation
	callout1000  *sheets.AltitudeCallout1000FtAnnounceActivation
	callout2000  *sheets.AltitudeCallout2000FtAnnounceActivation
	callout2500  *sheets.AltitudeCallout2500FtAnnounceActivation
	callout2500B *sheets.AltitudeCallout2500BFtAnnounceActivation

	thresholdDetection *sheets.AltitudeCalloutThresholdDetectionActivation
	intermediateAudio  *sheets.IntermediateAudioActivation
	audioAttenuation   *sheets.AudioAttenuationActivation
	toMemo             *sheets.ToMemoActivation
	ldgMemo            *sheets.LdgMemoActivation
}

// New builds a runtime with a fresh parameter store and resolves the
// sheet schedule.
func New(cfg Config) (*Runtime, error) {
	r := &Runtime{
		cfg:     cfg,
		store:   params.NewStore(),
		sched:   scheduler.New(),
		monitor: NewMonitor(),

		newGround:          sheets.NewNewGroundActivation(),
		groundDetection:    sheets.NewGroundDetectionActivation(),
		speedDetection:     sheets.NewSpeedDetectionActivation(),
		enginesNotRunning:  sheets.NewEnginesNotRunningActivation(),
		engRunning:         sheets.NewEngRunningActivation(),
		altitudeDef:        sheets.NewAltitudeDefActivation(),
		neoEcu:             sheets.NewNeoEcuActivation(),
		tlaMctOrFlex:       sheets.NewTlaAtMctOrFlexToCfmActivation(),
		engTakeOffCfm:      sheets.NewEngTakeOffCfmActivation(),
		tlaPwrReverse:      sheets.NewTlaPwrReverseActivation(),
		tlaAtCl:            sheets.NewTlaAtClCfmActivation(),
		cfmFlightPhases:    sheets.NewCfmFlightPhasesDefActivation(),
		flightPhasesGround: sheets.NewFlightPhasesGroundActivation(),
		flightPhasesAir:    sheets.NewFlightPhasesAirActivation(),

		dhDtPositive:  sheets.NewGeneralDhDtPositiveActivation(),
		generalCancel: sheets.NewGeneralCancelActivation(),
		lgDownlocked:  sheets.NewLgDownlockedActivation(),
		eng1Start:     sheets.NewEng1StartSequenceActivation(),
		eng2Start:     sheets.NewEng2StartSequenceActivation(),

		apOffVoluntary:   sheets.NewAutopilotOffVoluntaryActivation(),
		apOffUnvoluntary: sheets.NewAutopilotOffUnvoluntaryActivation(),

		baroAltitude:    sheets.NewAutoFlightBaroAltitudeActivation(),
		alertThresholds: sheets.NewAltitudeAlertThresholdsActivation(),
		alertSlats:      sheets.NewAltitudeAlertSlatInhibitActivation(),
		alertFmgc:       sheets.NewAltitudeAlertFmgcInhibitActivation(),
		alertInhibit:    sheets.NewAltitudeAlertGeneralInhibitActivation(),
		alertApTcas:     sheets.NewApTcasInhibitActivation(),
		altitudeAlert:   sheets.NewAltitudeAlertActivation(),
		alertCChord:     sheets.NewAltitudeAlertCChordActivation(),

		hoistedGpws:       sheets.NewHoistedGpwsInhibitionActivation(),
		audioGenerated:    sheets.NewAudioGeneratedActivation(),
		threshold1:        sheets.NewAltitudeThreshold1Activation(),
		calloutInhibit:    sheets.NewAutomaticCallOutInhibitionActivation(),
		decisionHeightVal: sheets.NewDecisionHeightValActivation(),
		mdaMdhInhib:       sheets.NewMdaMdhInhibitionActivation(),
		hundredAbove:      sheets.NewHundredAboveActivation(),
		minimum:           sheets.NewMinimumActivation(),
		threshold2:        sheets.NewAltitudeThreshold2Activation(),
		threshold3:        sheets.NewAltitudeThreshold3Activation(),
		triggers1:         sheets.NewAltitudeThresholdTriggers1Activation(),
		triggers2:         sheets.NewAltitudeThresholdTriggers2Activation(),
		triggers3:         sheets.NewAltitudeThresholdTriggers3Activation(),

		twentyRetard: sheets.NewAutoCallOutTwentyRetardAnnounceActivation(),
		tenRetard:    sheets.NewAutoCallOutTenRetardAnnounceActivation(),
		callout5:     sheets.NewAltitudeCallout5FtAnnounceActivation(),
		callout10:    sheets.NewAltitudeCallout10FtAnnounceActivation(),
		callout20:    sheets.NewAltitudeCallout20FtAnnounceActivation(),
		callout30:    sheets.NewAltitudeCallout30FtAnnounceActivation(),
		callout40:    sheets.NewAltitudeCallout40FtAnnounceActivation(),
		callout50:    sheets.NewAltitudeCallout50FtAnnounceActivation(),
		callout100:   sheets.NewAltitudeCallout100FtAnnounceActivation(),
		callout200:   sheets.NewAltitudeCallout200FtAnnounceActivation(),
		callout300:   sheets.NewAltitudeCallout300FtAnnounceActivation(),
		callout400:   sheets.NewAltitudeCallout400FtAnnounceActivation(),
		callout500:   sheets.NewAltitudeCallout500FtAnnounceActivation(),
		callout1000:  sheets.NewAltitudeCallout1000FtAnnounceActivation(),
		callout2000:  sheets.NewAltitudeCallout2000FtAnnounceActivation(),
		callout2500:  sheets.NewAltitudeCallout2500FtAnnounceActivation(),
		callout2500B: sheets.NewAltitudeCallout2500BFtAnnounceActivation(),

		thresholdDetection: sheets.NewAltitudeCalloutThresholdDetectionActivation(),
		intermediateAudio:  sheets.NewIntermediateAudioActivation(),
		audioAttenuation:   sheets.NewAudioAttenuationActivation(),
		toMemo:             sheets.NewToMemoActivation(),
		ldgMemo:            sheets.NewLdgMemoActivation(),
	}

	r.registerSheets()
	if err := r.sched.Resolve(); err != nil {
		return nil, fmt.Errorf("sheet schedule: %w", err)
	}
	return r, nil
}

// Store exposes the acquisition store for parameter feeding.
func (r *Runtime) Store() *params.Store {
	return r.store
}

// Ready reports whether at least one tick has run.
func (r *Runtime) Ready() bool {
	return r.ready
}

// Tick advances the runtime by delta: the sheets run in schedule order,
// then the monitor consumes the collected warnings.
func (r *Runtime) Tick(delta time.Duration) {
	r.cavalryEmitted = r.CavalryCharge()
	// New resolves the schedule before returning, so Run cannot fail here.
	if err := r.sched.Run(delta); err != nil {
		panic(err)
	}
	r.updateMonitor(delta)
	r.ready = true
}

// #endregion runtime

// #region wiring

func (r *Runtime) tla() sheets.TlaIn {
	return sheets.TlaIn{
		Eng1TlaA: r.store.Number(params.Eng1TlaA),
		Eng1TlaB: r.store.Number(params.Eng1TlaB),
		Eng2TlaA: r.store.Number(params.Eng2TlaA),
		Eng2TlaB: r.store.Number(params.Eng2TlaB),
	}
}

func (r *Runtime) registerSheets() {
	s := r.sched
	st := r.store

	s.Register("new_ground", nil, func(d time.Duration) {
		r.newGround.Update(d, sheets.NewGroundIn{
			LhLgCompressed1:    st.Flag(params.LhLgCompressed1),
			LhLgCompressed2:    st.Flag(params.LhLgCompressed2),
			EssLhLgCompressed:  st.Discrete(params.EssLhLgCompressed),
			NormLhLgCompressed: st.Discrete(params.NormLhLgCompressed),
		})
	})
	s.Register("ground_detection", []string{"new_ground"}, func(d time.Duration) {
		r.groundDetection.Update(d, sheets.GroundDetectionIn{
			EssLhLgCompressed:  st.Discrete(params.EssLhLgCompressed),
			NormLhLgCompressed: st.Discrete(params.NormLhLgCompressed),
			RadioHeight1:       st.Number(params.RadioHeight1),
			RadioHeight2:       st.Number(params.RadioHeight2),
			NewGround:          r.newGround.NewGround(),
			Lgciu12Inv:         r.newGround.Lgciu12Inv(),
		})
	})
	s.Register("speed_detection", nil, func(d time.Duration) {
		r.speedDetection.Update(d, sheets.SpeedDetectionIn{
			ComputedSpeed1: st.Number(params.ComputedSpeed1),
			ComputedSpeed2: st.Number(params.ComputedSpeed2),
			ComputedSpeed3: st.Number(params.ComputedSpeed3),
		})
	})
	s.Register("engines_not_running", []string{"ground_detection"}, func(d time.Duration) {
		r.enginesNotRunning.Update(d, sheets.EnginesNotRunningIn{
			Eng1MasterLeverSelectOn: st.Flag(params.Eng1MasterLeverSelectOn),
			Eng2MasterLeverSelectOn: st.Flag(params.Eng2MasterLeverSelectOn),
			Eng1CoreSpeedAboveIdleA: st.Flag(params.Eng1CoreSpeedAtOrAboveIdleA),
			Eng1CoreSpeedAboveIdleB: st.Flag(params.Eng1CoreSpeedAtOrAboveIdleB),
			Eng2CoreSpeedAboveIdleA: st.Flag(params.Eng2CoreSpeedAtOrAboveIdleA),
			Eng2CoreSpeedAboveIdleB: st.Flag(params.Eng2CoreSpeedAtOrAboveIdleB),
			Eng1FirePbOut:           st.Discrete(params.Eng1FirePbOut),
			Ground:                  r.groundDetection.Ground(),
		})
	})
	s.Register("eng_running", []string{"engines_not_running"}, func(d time.Duration) {
		r.engRunning.Update(d, sheets.EngRunningIn{
			Eng1CoreSpeedAboveIdleA: st.Flag(params.Eng1CoreSpeedAtOrAboveIdleA),
			Eng1CoreSpeedAboveIdleB: st.Flag(params.Eng1CoreSpeedAtOrAboveIdleB),
			Eng2CoreSpeedAboveIdleA: st.Flag(params.Eng2CoreSpeedAtOrAboveIdleA),
			Eng2CoreSpeedAboveIdleB: st.Flag(params.Eng2CoreSpeedAtOrAboveIdleB),
			Eng1NotRunning:          r.enginesNotRunning.Eng1NotRunning(),
			Eng2NotRunning:          r.enginesNotRunning.Eng2NotRunning(),
		})
	})
	s.Register("altitude_def", nil, func(d time.Duration) {
		r.altitudeDef.Update(d, sheets.AltitudeDefIn{
			RadioHeight1: st.Number(params.RadioHeight1),
			RadioHeight2: st.Number(params.RadioHeight2),
		})
	})
	s.Register("neo_ecu", nil, func(d time.Duration) {
		r.neoEcu.Update(d, sheets.NeoEcuIn{
			Eng1AutoTogaA:        st.Flag(params.Eng1AutoTogaA),
			Eng1AutoTogaB:        st.Flag(params.Eng1AutoTogaB),
			Eng2AutoTogaA:        st.Flag(params.Eng2AutoTogaA),
			Eng2AutoTogaB:        st.Flag(params.Eng2AutoTogaB),
			Eng1LimitModeSoftGaA: st.Flag(params.Eng1LimitModeSoftGaA),
			Eng1LimitModeSoftGaB: st.Flag(params.Eng1LimitModeSoftGaB),
			Eng2LimitModeSoftGaA: st.Flag(params.Eng2LimitModeSoftGaA),
			Eng2LimitModeSoftGaB: st.Flag(params.Eng2LimitModeSoftGaB),
		})
	})
	s.Register("tla_at_mct_or_flex_to_cfm", nil, func(d time.Duration) {
		r.tlaMctOrFlex.Update(d, r.tla())
	})
	s.Register("eng_take_off_cfm", nil, func(d time.Duration) {
		r.engTakeOffCfm.Update(d, sheets.EngTakeOffCfmIn{
			Eng1N1SelectedActualA: st.Number(params.Eng1N1SelectedActualA),
			Eng1N1SelectedActualB: st.Number(params.Eng1N1SelectedActualB),
			Eng2N1SelectedActualA: st.Number(params.Eng2N1SelectedActualA),
			Eng2N1SelectedActualB: st.Number(params.Eng2N1SelectedActualB),
			Tla1IdlePwrA:          st.Flag(params.Tla1IdlePwrA),
			Tla1IdlePwrB:          st.Flag(params.Tla1IdlePwrB),
			Tla2IdlePwrA:          st.Flag(params.Tla2IdlePwrA),
			Tla2IdlePwrB:          st.Flag(params.Tla2IdlePwrB),
			Eng1ChannelAInControl: st.Flag(params.Eng1ChannelAInControl),
			Eng1ChannelBInControl: st.Flag(params.Eng1ChannelBInControl),
			Eng2ChannelAInControl: st.Flag(params.Eng2ChannelAInControl),
			Eng2ChannelBInControl: st.Flag(params.Eng2ChannelBInControl),
		})
	})
	s.Register("tla_pwr_reverse", []string{"eng_take_off_cfm"}, func(d time.Duration) {
		r.tlaPwrReverse.Update(d, sheets.TlaPwrReverseIn{
			Tla:       r.tla(),
			Eng1ToCfm: r.engTakeOffCfm.Eng1ToCfm(),
			Eng2ToCfm: r.engTakeOffCfm.Eng2ToCfm(),
		})
	})
	s.Register("tla_at_cl_cfm", nil, func(d time.Duration) {
		r.tlaAtCl.Update(d, r.tla())
	})
	s.Register("cfm_flight_phases", []string{
		"neo_ecu", "tla_at_mct_or_flex_to_cfm", "tla_pwr_reverse", "altitude_def", "tla_at_cl_cfm",
	}, func(d time.Duration) {
		r.cfmFlightPhases.Update(d, sheets.CfmFlightPhasesDefIn{
			Eng1TlaFtoA:         st.Flag(params.Eng1TlaFtoA),
			Eng1TlaFtoB:         st.Flag(params.Eng1TlaFtoB),
			Eng2TlaFtoA:         st.Flag(params.Eng2TlaFtoA),
			Eng2TlaFtoB:         st.Flag(params.Eng2TlaFtoB),
			Eng1AutoToga:        r.neoEcu.Eng1AutoToga(),
			Eng1LimitModeSoftGa: r.neoEcu.Eng1LimitModeSoftGa(),
			Eng2AutoToga:        r.neoEcu.Eng2AutoToga(),
			Eng2LimitModeSoftGa: r.neoEcu.Eng2LimitModeSoftGa(),
			Eng1TlaMctCfm:       r.tlaMctOrFlex.Eng1TlaMctCfm(),
			Eng1SupMctCfm:       r.tlaMctOrFlex.Eng1SupMctCfm(),
			Eng2TlaMctCfm:       r.tlaMctOrFlex.Eng2TlaMctCfm(),
			Eng2SupMctCfm:       r.tlaMctOrFlex.Eng2SupMctCfm(),
			Eng1TlaFullPwrCfm:   r.tlaPwrReverse.Eng1TlaFullPwrCfm(),
			Eng2TlaFullPwrCfm:   r.tlaPwrReverse.Eng2TlaFullPwrCfm(),
			HGt1500Ft:           r.altitudeDef.HGt1500Ft(),
			Eng12MclCfm:         r.tlaAtCl.Eng12MclCfm(),
		})
	})
	s.Register("flight_phases_ground", []string{
		"ground_detection", "speed_detection", "eng_running", "cfm_flight_phases", "engines_not_running",
	}, func(d time.Duration) {
		r.flightPhasesGround.Update(d, sheets.FlightPhasesGroundIn{
			Eng1FirePbOut:      st.Discrete(params.Eng1FirePbOut),
			ToConfigTest:       st.Flag(params.ToConfigTest),
			Ground:             r.groundDetection.Ground(),
			GroundImmediate:    r.groundDetection.GroundImmediate(),
			AcSpeedAbove80Kt:   r.speedDetection.AcSpeedAbove80Kt(),
			AdcTestInhib:       r.speedDetection.AdcTestInhib(),
			Eng1Or2Running:     r.engRunning.Eng1Or2Running(),
			OneEngRunning:      r.engRunning.OneEngRunning(),
			Eng1And2NotRunning: r.engRunning.Eng1And2NotRunning(),
			Eng1Or2ToPwr:       r.cfmFlightPhases.Eng1Or2ToPwr(),
		})
	})
	s.Register("flight_phases_air", []string{
		"ground_detection", "altitude_def", "cfm_flight_phases", "flight_phases_ground",
	}, func(d time.Duration) {
		r.flightPhasesAir.Update(d, sheets.FlightPhasesAirIn{
			GroundImmediate: r.groundDetection.GroundImmediate(),
			HFail:           r.altitudeDef.HFail(),
			HGt800Ft:        r.altitudeDef.HGt800Ft(),
			HGt1500Ft:       r.altitudeDef.HGt1500Ft(),
			Eng1Or2ToPwr:    r.cfmFlightPhases.Eng1Or2ToPwr(),
			Phase8:          r.flightPhasesGround.Phase8(),
		})
	})

	s.Register("dh_dt_positive", nil, func(d time.Duration) {
		r.dhDtPositive.Update(d, sheets.GeneralDhDtPositiveIn{
			RadioHeight1: st.Number(params.RadioHeight1),
			RadioHeight2: st.Number(params.RadioHeight2),
		})
	})
	s.Register("general_cancel", nil, func(d time.Duration) {
		r.generalCancel.Update(d, sheets.GeneralCancelIn{
			CaptMwCancelOn: st.Discrete(params.CaptMwCancelOn),
			FoMwCancelOn:   st.Discrete(params.FoMwCancelOn),
			CaptMcCancelOn: st.Discrete(params.CaptMcCancelOn),
			FoMcCancelOn:   st.Discrete(params.FoMcCancelOn),
		})
	})
	s.Register("lg_downlocked", nil, func(d time.Duration) {
		r.lgDownlocked.Update(d, sheets.LgDownlockedIn{
			LhGearDownLock1:   st.Flag(params.LhGearDownLock1),
			LhGearDownLock2:   st.Flag(params.LhGearDownLock2),
			RhGearDownLock1:   st.Flag(params.RhGearDownLock1),
			RhGearDownLock2:   st.Flag(params.RhGearDownLock2),
			NoseGearDownLock1: st.Flag(params.NoseGearDownLock1),
			NoseGearDownLock2: st.Flag(params.NoseGearDownLock2),
		})
	})
	s.Register("eng_1_start_sequence", nil, func(d time.Duration) {
		r.eng1Start.Update(d, sheets.EngStartSequenceIn{
			MasterLeverSelectOn: st.Flag(params.Eng1MasterLeverSelectOn),
		})
	})
	s.Register("eng_2_start_sequence", []string{"flight_phases_ground", "flight_phases_air"}, func(d time.Duration) {
		r.eng2Start.Update(d, sheets.Eng2StartSequenceIn{
			MasterLeverSelectOn: st.Flag(params.Eng2MasterLeverSelectOn),
			Phase4:              r.flightPhasesGround.Phase4(),
			Phase5:              r.flightPhasesAir.Phase5(),
		})
	})

	// The red warning and cavalry charge feedbacks are previous-tick
	// reads, so the autopilot sheets need no scheduler edge for them.
	s.Register("ap_off_voluntary", nil, func(d time.Duration) {
		r.apOffVoluntary.Update(d, sheets.AutopilotOffVoluntaryIn{
			Ap1EngdCom:            st.Discrete(params.Ap1EngdCom),
			Ap1EngdMon:            st.Discrete(params.Ap1EngdMon),
			Ap2EngdCom:            st.Discrete(params.Ap2EngdCom),
			Ap2EngdMon:            st.Discrete(params.Ap2EngdMon),
			CaptMwCancelOn:        st.Discrete(params.CaptMwCancelOn),
			FoMwCancelOn:          st.Discrete(params.FoMwCancelOn),
			InstincDiscnct1ApEngd: st.Discrete(params.InstincDiscnct1ApEngd),
			InstincDiscnct2ApEngd: st.Discrete(params.InstincDiscnct2ApEngd),
			CavalryChargeEmitted:  r.cavalryEmitted,
			RedWarning:            r.apOffUnvoluntary.ApOffWarning(),
		})
	})
	s.Register("ap_off_unvoluntary", []string{"ap_off_voluntary", "flight_phases_ground"}, func(d time.Duration) {
		r.apOffUnvoluntary.Update(d, sheets.AutopilotOffUnvoluntaryIn{
			Ap1EngdCom:            st.Discrete(params.Ap1EngdCom),
			Ap1EngdMon:            st.Discrete(params.Ap1EngdMon),
			Ap2EngdCom:            st.Discrete(params.Ap2EngdCom),
			Ap2EngdMon:            st.Discrete(params.Ap2EngdMon),
			CaptMwCancelOn:        st.Discrete(params.CaptMwCancelOn),
			FoMwCancelOn:          st.Discrete(params.FoMwCancelOn),
			InstincDiscnct1ApEngd: st.Discrete(params.InstincDiscnct1ApEngd),
			InstincDiscnct2ApEngd: st.Discrete(params.InstincDiscnct2ApEngd),
			BlueSysLoPr:           st.Discrete(params.BlueSysLoPr),
			YellowSysLoPr:         st.Discrete(params.YellowSysLoPr),
			GreenSysLoPr:          st.Discrete(params.GreenSysLoPr),
			Phase1:                r.flightPhasesGround.Phase1(),
			ApOffText:             r.apOffVoluntary.ApOffText(),
			CavalryChargeEmitted:  r.cavalryEmitted,
		})
	})

	s.Register("baro_altitude", nil, func(d time.Duration) {
		r.baroAltitude.Update(d, sheets.AutoFlightBaroAltitudeIn{
			Altitude1:            st.Number(params.Altitude1),
			Altitude2:            st.Number(params.Altitude2),
			Altitude3:            st.Number(params.Altitude3),
			BussInstalled:        r.cfg.BussInstalled,
			GpsAltUsedAndInvalid: r.cfg.GpsAltUsedAndInvalid,
		})
	})
	s.Register("altitude_alert_thresholds", []string{"baro_altitude"}, func(d time.Duration) {
		r.alertThresholds.Update(d, sheets.AltitudeAlertThresholdsIn{
			AltiSelect: st.Number(params.AltiSelect),
			AltiBasic:  r.baroAltitude.AltiBasic(),
		})
	})
	s.Register("altitude_alert_slats", []string{"lg_downlocked"}, func(d time.Duration) {
		r.alertSlats.Update(d, r.lgDownlocked.LgDownlocked())
	})
	s.Register("altitude_alert_fmgc", nil, func(d time.Duration) {
		r.alertFmgc.Update(d, st.Flag(params.GsModeOn1))
	})
	s.Register("altitude_alert_inhibit", []string{"altitude_alert_slats", "altitude_alert_fmgc"}, func(d time.Duration) {
		r.alertInhibit.Update(d, sheets.AltitudeAlertGeneralInhibitIn{
			AltiSelect:   st.Number(params.AltiSelect),
			AltSelectChg: st.Flag(params.AltSelectChg),
			SlatInhibit:  r.alertSlats.SlatInhibit(),
			FmgcInhibit:  r.alertFmgc.FmgcInhibit(),
		})
	})
	s.Register("altitude_alert_ap_tcas", []string{
		"lg_downlocked", "altitude_alert_thresholds", "altitude_alert_inhibit",
	}, func(d time.Duration) {
		r.alertApTcas.Update(d, sheets.ApTcasInhibitIn{
			TcasEngaged:    st.Flag(params.TcasEngaged),
			AltSelectChg:   st.Flag(params.AltSelectChg),
			LgDownlocked:   r.lgDownlocked.LgDownlocked(),
			Alt200:         r.alertThresholds.Alt200(),
			Alt750:         r.alertThresholds.Alt750(),
			GeneralInhibit: r.alertInhibit.GeneralInhibit(),
		})
	})
	s.Register("altitude_alert", []string{
		"ground_detection", "ap_off_voluntary", "altitude_alert_ap_tcas",
		"altitude_alert_thresholds", "altitude_alert_inhibit", "lg_downlocked",
	}, func(d time.Duration) {
		r.altitudeAlert.Update(d, sheets.AltitudeAlertIn{
			AltSelectChg:   st.Flag(params.AltSelectChg),
			Ground:         r.groundDetection.Ground(),
			OneApEngd:      r.apOffVoluntary.OneApEngd(),
			ApTcasModeEng:  r.alertApTcas.ApTcasModeEng(),
			AltAlertInib:   r.alertApTcas.AltAlertInib(),
			Alt200:         r.alertThresholds.Alt200(),
			Alt750:         r.alertThresholds.Alt750(),
			GeneralInhibit: r.alertInhibit.GeneralInhibit(),
			LgDownlocked:   r.lgDownlocked.LgDownlocked(),
		})
	})
	s.Register("altitude_alert_c_chord", []string{"altitude_alert"}, func(d time.Duration) {
		r.alertCChord.Update(d, r.altitudeAlert.CChord())
	})

	s.Register("hoisted_gpws_inhibition", nil, func(d time.Duration) {
		r.hoistedGpws.Update(d, sheets.HoistedGpwsInhibitionIn{
			GpwsModesOn:     st.Discrete(params.GpwsModesOn),
			GsVisualAlertOn: st.Discrete(params.GsVisualAlertOn),
		})
	})
	s.Register("audio_generated", nil, func(d time.Duration) {
		r.audioGenerated.Update(d, sheets.AudioGeneratedIn{
			MinimumGenerated:      r.monitor.MinimumGenerated(),
			HundredAboveGenerated: r.monitor.HundredAboveGenerated(),
		})
	})
	s.Register("altitude_callout_threshold1", nil, func(d time.Duration) {
		r.threshold1.Update(d, sheets.AltitudeThreshold1In{
			RadioHeight1: st.Number(params.RadioHeight1),
			RadioHeight2: st.Number(params.RadioHeight2),
		})
	})
	s.Register("altitude_callout_inhibit", []string{
		"altitude_callout_threshold1", "ground_detection", "cfm_flight_phases",
		"flight_phases_ground", "eng_1_start_sequence", "eng_2_start_sequence",
	}, func(d time.Duration) {
		r.calloutInhibit.Update(d, sheets.AutomaticCallOutInhibitionIn{
			EssLhLgCompressed:    st.Discrete(params.EssLhLgCompressed),
			NormLhLgCompressed:   st.Discrete(params.NormLhLgCompressed),
			RaFunctionalTest:     r.threshold1.RaFunctionalTest(),
			RaInvalid:            r.threshold1.RaInvalid(),
			RaNoComputedData:     r.threshold1.RaNoComputedData(),
			CfmFlex:              r.cfmFlightPhases.CfmFlex(),
			Eng1TempoMasterLever: r.eng1Start.Eng1TempoMasterLever1On(),
			Eng2TempoMasterLever: r.eng2Start.Eng2TempoMasterLever1On(),
			Ground:               r.groundDetection.Ground(),
			Phase8:               r.flightPhasesGround.Phase8(),
		})
	})

	s.Register("decision_height_val", nil, func(d time.Duration) {
		r.decisionHeightVal.Update(d, sheets.DecisionHeightValIn{
			RadioHeight1:    st.Number(params.RadioHeight1),
			RadioHeight2:    st.Number(params.RadioHeight2),
			DecisionHeight1: st.Number(params.DecisionHeight1),
			DecisionHeight2: st.Number(params.DecisionHeight2),
		})
	})
	s.Register("mda_mdh_inhibition", []string{
		"hoisted_gpws_inhibition", "decision_height_val", "altitude_callout_inhibit",
	}, func(d time.Duration) {
		r.mdaMdhInhib.Update(d, sheets.MdaMdhInhibitionIn{
			RadioHeight1:            st.Number(params.RadioHeight1),
			RadioHeight2:            st.Number(params.RadioHeight2),
			TcasAuralAdvisoryOutput: st.Discrete(params.TcasAuralAdvisoryOutput),
			GpwsInhibition:          r.hoistedGpws.GpwsInhibition(),
			DecisionHeightVal:       r.decisionHeightVal.DecisionHeightVal(),
			DecisionInv:             r.decisionHeightVal.DecisionInv(),
			AutoCallOutInhib:        r.calloutInhibit.AutoCallOutInhib(),
		})
	})
	s.Register("hundred_above", []string{
		"audio_generated", "decision_height_val", "mda_mdh_inhibition",
	}, func(d time.Duration) {
		r.hundredAbove.Update(d, sheets.HundredAboveIn{
			DecisionHeightPlus100FtCodeA:  st.Discrete(params.DecisionHeightPlus100FtCodeA),
			DecisionHeightPlus100FtCodeB:  st.Discrete(params.DecisionHeightPlus100FtCodeB),
			HundredAboveForMdaMdhRequest1: st.Flag(params.HundredAboveForMdaMdhRequest1),
			HundredAboveForMdaMdhRequest2: st.Flag(params.HundredAboveForMdaMdhRequest2),
			HundredAboveGenerated:         r.audioGenerated.HundredAboveGenerated(),
			RadioHeightVal:                r.decisionHeightVal.RadioHeightVal(),
			DecisionHeightVal:             r.decisionHeightVal.DecisionHeightVal(),
			AcoDhInhib:                    r.mdaMdhInhib.AcoDhInhib(),
			AcoMdaMdhInhib:                r.mdaMdhInhib.AcoMdaMdhInhib(),
		})
	})
	s.Register("minimum", []string{
		"hundred_above", "audio_generated", "decision_height_val", "mda_mdh_inhibition",
	}, func(d time.Duration) {
		r.minimum.Update(d, sheets.MinimumIn{
			DecisionHeightCodeA:      st.Discrete(params.DecisionHeightCodeA),
			DecisionHeightCodeB:      st.Discrete(params.DecisionHeightCodeB),
			MinimumForMdaMdhRequest1: st.Flag(params.MinimumForMdaMdhRequest1),
			MinimumForMdaMdhRequest2: st.Flag(params.MinimumForMdaMdhRequest2),
			MinimumGenerated:         r.audioGenerated.MinimumGenerated(),
			DhHundredAbove:           r.hundredAbove.DhHundredAbove(),
			RadioHeightVal:           r.decisionHeightVal.RadioHeightVal(),
			DecisionHeightVal:        r.decisionHeightVal.DecisionHeightVal(),
			AcoDhInhib:               r.mdaMdhInhib.AcoDhInhib(),
			AcoMdaMdhInhib:           r.mdaMdhInhib.AcoMdaMdhInhib(),
		})
	})

	s.Register("altitude_callout_threshold2", []string{"altitude_callout_threshold1"}, func(d time.Duration) {
		r.threshold2.Update(d, sheets.AltitudeThreshold2In{
			RadioHeight: r.threshold1.RadioHeight(),
			RaInvalid:   r.threshold1.RaInvalid(),
		})
	})
	s.Register("altitude_callout_threshold3", []string{
		"hoisted_gpws_inhibition", "dh_dt_positive", "altitude_callout_threshold1",
		"altitude_callout_threshold2", "minimum",
	}, func(d time.Duration) {
		r.threshold3.Update(d, sheets.AltitudeThreshold3In{
			GpwsInhibition: r.hoistedGpws.GpwsInhibition(),
			DhPositive:     r.dhDtPositive.DhPositive(),
			Alt400Ft:       r.threshold1.Alt400Ft(),
			Alt300Ft:       r.threshold1.Alt300Ft(),
			Alt200Ft:       r.threshold1.Alt200Ft(),
			Alt100Ft:       r.threshold1.Alt100Ft(),
			Alt50Ft:        r.threshold1.Alt50Ft(),
			Alt40Ft:        r.threshold2.Alt40Ft(),
			Alt30Ft:        r.threshold2.Alt30Ft(),
			Alt20Ft:        r.threshold2.Alt20Ft(),
			Alt10Ft:        r.threshold2.Alt10Ft(),
			Alt5Ft:         r.threshold2.Alt5Ft(),
			AltInf3Ft:      r.threshold2.AltInf3Ft(),
			DhGenerated:    r.minimum.DhGenerated(),
			DhInhibition:   r.threshold2.DhInhibition(),
		})
	})
	s.Register("altitude_callout_triggers1", []string{
		"altitude_callout_threshold1", "altitude_callout_threshold3",
	}, func(d time.Duration) {
		r.triggers1.Update(d, sheets.AltitudeThresholdTriggers1In{
			AutoCallOut2500Ft:       st.Discrete(params.AutoCallOut2500Ft),
			AutoCallOut2500B:        st.Discrete(params.AutoCallOut2500B),
			AutoCallOut2000Ft:       st.Discrete(params.AutoCallOut2000Ft),
			AutoCallOut1000Ft:       st.Discrete(params.AutoCallOut1000Ft),
			TcasAuralAdvisoryOutput: st.Discrete(params.TcasAuralAdvisoryOutput),
			RadioHeight:             r.threshold1.RadioHeight(),
			GpwsInhibition:          r.threshold3.GpwsInhibition(),
			Renvoi1:                 r.threshold3.Renvoi1(),
		})
	})
	s.Register("altitude_callout_triggers2", []string{
		"altitude_callout_threshold1", "altitude_callout_threshold3",
	}, func(d time.Duration) {
		r.triggers2.Update(d, sheets.AltitudeThresholdTriggers2In{
			AutoCallOut400Ft: st.Discrete(params.AutoCallOut400Ft),
			AutoCallOut300Ft: st.Discrete(params.AutoCallOut300Ft),
			AutoCallOut200Ft: st.Discrete(params.AutoCallOut200Ft),
			AutoCallOut100Ft: st.Discrete(params.AutoCallOut100Ft),
			AutoCallOut50Ft:  st.Discrete(params.AutoCallOut50Ft),
			Alt400Ft:         r.threshold1.Alt400Ft(),
			Alt300Ft:         r.threshold1.Alt300Ft(),
			Alt200Ft:         r.threshold1.Alt200Ft(),
			Alt100Ft:         r.threshold1.Alt100Ft(),
			Alt50Ft:          r.threshold1.Alt50Ft(),
			Renvoi1:          r.threshold3.Renvoi1(),
		})
	})
	s.Register("altitude_callout_triggers3", []string{
		"altitude_callout_threshold1", "altitude_callout_threshold2", "altitude_callout_threshold3",
	}, func(d time.Duration) {
		r.triggers3.Update(d, sheets.AltitudeThresholdTriggers3In{
			AutoCallOut40Ft:  st.Discrete(params.AutoCallOut40Ft),
			AutoCallOut30Ft:  st.Discrete(params.AutoCallOut30Ft),
			AutoCallOut20Ft:  st.Discrete(params.AutoCallOut20Ft),
			AutoCallOut10Ft:  st.Discrete(params.AutoCallOut10Ft),
			AutoCallOut5Ft:   st.Discrete(params.AutoCallOut5Ft),
			RaFunctionalTest: r.threshold1.RaFunctionalTest(),
			Alt40Ft:          r.threshold2.Alt40Ft(),
			Alt30Ft:          r.threshold2.Alt30Ft(),
			Alt20Ft:          r.threshold2.Alt20Ft(),
			Alt10Ft:          r.threshold2.Alt10Ft(),
			Alt5Ft:           r.threshold2.Alt5Ft(),
			Renvoi2:          r.threshold3.Renvoi2(),
			Renvoi3:          r.threshold3.Renvoi3(),
		})
	})

	s.Register("twenty_retard_callout", []string{
		"altitude_callout_inhibit", "tla_at_mct_or_flex_to_cfm", "flight_phases_ground",
		"altitude_callout_triggers3", "ap_off_voluntary",
	}, func(d time.Duration) {
		r.twentyRetard.Update(d, sheets.AutoCallOutTwentyRetardAnnounceIn{
			Eng1Tla:          st.Number(params.Eng1TlaA),
			Eng2Tla:          st.Number(params.Eng2TlaA),
			LandTrkModeOn1:   st.Flag(params.LandTrkModeOn1),
			LandTrkModeOn2:   st.Flag(params.LandTrkModeOn2),
			AThrEngaged:      st.Discrete(params.AThrEngaged),
			Eng1SupMctCfm:    r.tlaMctOrFlex.Eng1SupMctCfm(),
			Eng2SupMctCfm:    r.tlaMctOrFlex.Eng2SupMctCfm(),
			Phase8:           r.flightPhasesGround.Phase8(),
			RetardInhib:      r.calloutInhibit.RetardInhib(),
			AutoCallOutInhib: r.calloutInhibit.AutoCallOutInhib(),
			Seuil20Ft:        r.triggers3.Seuil20Ft(),
			Ap1Engd:          r.apOffVoluntary.Ap1Engd(),
			Ap2Engd:          r.apOffVoluntary.Ap2Engd(),
		})
	})
	s.Register("ten_retard_callout", []string{
		"altitude_callout_inhibit", "twenty_retard_callout", "altitude_callout_triggers3", "ap_off_voluntary",
	}, func(d time.Duration) {
		r.tenRetard.Update(d, sheets.AutoCallOutTenRetardAnnounceIn{
			LandTrkModeOn1:   st.Flag(params.LandTrkModeOn1),
			LandTrkModeOn2:   st.Flag(params.LandTrkModeOn2),
			AThrEngaged:      st.Discrete(params.AThrEngaged),
			Toga:             r.twentyRetard.Toga(),
			AutoCallOutInhib: r.calloutInhibit.AutoCallOutInhib(),
			Seuil10Ft:        r.triggers3.Seuil10Ft(),
			Ap1Engd:          r.apOffVoluntary.Ap1Engd(),
			Ap2Engd:          r.apOffVoluntary.Ap2Engd(),
		})
	})

	s.Register("altitude_callout_5_ft", []string{
		"altitude_callout_inhibit", "altitude_callout_triggers3",
	}, func(d time.Duration) {
		r.callout5.Update(d, sheets.PulseCalloutIn{
			Seuil:            r.triggers3.Seuil5Ft(),
			AutoCallOutInhib: r.calloutInhibit.AutoCallOutInhib(),
		})
	})
	s.Register("altitude_callout_10_ft", []string{
		"altitude_callout_5_ft", "altitude_callout_triggers3", "ap_off_voluntary",
	}, func(d time.Duration) {
		r.callout10.Update(d, sheets.AltitudeCallout10FtAnnounceIn{
			LandTrkModeOn1:   st.Flag(params.LandTrkModeOn1),
			LandTrkModeOn2:   st.Flag(params.LandTrkModeOn2),
			AThrEngaged:      st.Discrete(params.AThrEngaged),
			Ap1Engd:          r.apOffVoluntary.Ap1Engd(),
			Ap2Engd:          r.apOffVoluntary.Ap2Engd(),
			Seuil10Ft:        r.triggers3.Seuil10Ft(),
			AutoCallOutInhib: r.calloutInhibit.AutoCallOutInhib(),
			Audio5:           r.callout5.Audio5(),
		})
	})
	s.Register("altitude_callout_20_ft", []string{
		"altitude_callout_10_ft", "altitude_callout_triggers3", "ap_off_voluntary",
	}, func(d time.Duration) {
		r.callout20.Update(d, sheets.AltitudeCallout20FtAnnounceIn{
			LandTrkModeOn1:   st.Flag(params.LandTrkModeOn1),
			LandTrkModeOn2:   st.Flag(params.LandTrkModeOn2),
			AThrEngaged:      st.Discrete(params.AThrEngaged),
			Ap1Engd:          r.apOffVoluntary.Ap1Engd(),
			Ap2Engd:          r.apOffVoluntary.Ap2Engd(),
			Seuil20Ft:        r.triggers3.Seuil20Ft(),
			AutoCallOutInhib: r.calloutInhibit.AutoCallOutInhib(),
			Audio10:          r.callout10.Audio10(),
		})
	})
	s.Register("altitude_callout_30_ft", []string{
		"altitude_callout_20_ft", "altitude_callout_triggers3",
	}, func(d time.Duration) {
		r.callout30.Update(d, sheets.ChainedCalloutIn{
			Seuil:             r.triggers3.Seuil30Ft(),
			AutoCallOutInhib:  r.calloutInhibit.AutoCallOutInhib(),
			LowerCalloutAudio: r.callout20.Audio20(),
		})
	})
	s.Register("altitude_callout_40_ft", []string{
		"altitude_callout_30_ft", "altitude_callout_triggers3",
	}, func(d time.Duration) {
		r.callout40.Update(d, sheets.ChainedCalloutIn{
			Seuil:             r.triggers3.Seuil40Ft(),
			AutoCallOutInhib:  r.calloutInhibit.AutoCallOutInhib(),
			LowerCalloutAudio: r.callout30.Audio30(),
		})
	})
	s.Register("altitude_callout_50_ft", []string{
		"altitude_callout_40_ft", "altitude_callout_triggers2",
	}, func(d time.Duration) {
		r.callout50.Update(d, sheets.ChainedCalloutIn{
			Seuil:             r.triggers2.Seuil50Ft(),
			AutoCallOutInhib:  r.calloutInhibit.AutoCallOutInhib(),
			LowerCalloutAudio: r.callout40.Audio40(),
		})
	})
	s.Register("altitude_callout_100_ft", []string{
		"altitude_callout_inhibit", "altitude_callout_triggers2",
	}, func(d time.Duration) {
		r.callout100.Update(d, sheets.PulseCalloutIn{
			Seuil:            r.triggers2.Seuil100Ft(),
			AutoCallOutInhib: r.calloutInhibit.AutoCallOutInhib(),
		})
	})
	s.Register("altitude_callout_200_ft", []string{
		"altitude_callout_inhibit", "altitude_callout_triggers2",
	}, func(d time.Duration) {
		r.callout200.Update(d, sheets.PulseCalloutIn{
			Seuil:            r.triggers2.Seuil200Ft(),
			AutoCallOutInhib: r.calloutInhibit.AutoCallOutInhib(),
		})
	})
	s.Register("altitude_callout_300_ft", []string{
		"altitude_callout_inhibit", "altitude_callout_triggers2",
	}, func(d time.Duration) {
		r.callout300.Update(d, sheets.PulseCalloutIn{
			Seuil:            r.triggers2.Seuil300Ft(),
			AutoCallOutInhib: r.calloutInhibit.AutoCallOutInhib(),
		})
	})
	s.Register("altitude_callout_400_ft", []string{
		"altitude_callout_inhibit", "altitude_callout_triggers2",
	}, func(d time.Duration) {
		r.callout400.Update(d, sheets.PulseCalloutIn{
			Seuil:            r.triggers2.Seuil400Ft(),
			AutoCallOutInhib: r.calloutInhibit.AutoCallOutInhib(),
		})
	})
	s.Register("altitude_callout_500_ft", []string{
		"altitude_callout_inhibit", "altitude_callout_triggers1",
	}, func(d time.Duration) {
		r.callout500.Update(d, sheets.AltitudeCallout500FtAnnounceIn{
			GlideDeviation1:                st.Number(params.GlideDeviation1),
			GlideDeviation2:                st.Number(params.GlideDeviation2),
			AutoCallOut500FtGlideDeviation: st.Discrete(params.AutoCallOut500FtGlideDeviation),
			AutoCallOut500Ft:               st.Discrete(params.AutoCallOut500Ft),
			AutoCallOutInhib:               r.calloutInhibit.AutoCallOutInhib(),
			Seuil500Ft:                     r.triggers1.Seuil500Ft(),
		})
	})
	s.Register("altitude_callout_1000_ft", []string{
		"altitude_callout_inhibit", "altitude_callout_triggers1",
	}, func(d time.Duration) {
		r.callout1000.Update(d, sheets.HysteresisCalloutIn{
			RadioHeight:      r.threshold1.RadioHeight(),
			Seuil:            r.triggers1.Seuil1000Ft(),
			AutoCallOutInhib: r.calloutInhibit.AutoCallOutInhib(),
		})
	})
	s.Register("altitude_callout_2000_ft", []string{
		"altitude_callout_inhibit", "altitude_callout_triggers1",
	}, func(d time.Duration) {
		r.callout2000.Update(d, sheets.HysteresisCalloutIn{
			RadioHeight:      r.threshold1.RadioHeight(),
			Seuil:            r.triggers1.Seuil2000Ft(),
			AutoCallOutInhib: r.calloutInhibit.AutoCallOutInhib(),
		})
	})
	s.Register("altitude_callout_2500_ft", []string{
		"altitude_callout_inhibit", "altitude_callout_triggers1",
	}, func(d time.Duration) {
		r.callout2500.Update(d, sheets.HysteresisCalloutIn{
			RadioHeight:      r.threshold1.RadioHeight(),
			Seuil:            r.triggers1.Seuil2500Ft(),
			AutoCallOutInhib: r.calloutInhibit.AutoCallOutInhib(),
		})
	})
	s.Register("altitude_callout_2500b_ft", []string{
		"altitude_callout_inhibit", "altitude_callout_triggers1",
	}, func(d time.Duration) {
		r.callout2500B.Update(d, sheets.HysteresisCalloutIn{
			RadioHeight:      r.threshold1.RadioHeight(),
			Seuil:            r.triggers1.Seuil2500BFt(),
			AutoCallOutInhib: r.calloutInhibit.AutoCallOutInhib(),
		})
	})

	s.Register("altitude_callout_threshold_detection", []string{
		"altitude_callout_triggers2", "altitude_callout_triggers3",
	}, func(d time.Duration) {
		r.thresholdDetection.Update(d, sheets.AltitudeCalloutThresholdDetectionIn{
			Seuil400Ft: r.triggers2.Seuil400Ft(),
			Seuil300Ft: r.triggers2.Seuil300Ft(),
			Seuil200Ft: r.triggers2.Seuil200Ft(),
			Seuil100Ft: r.triggers2.Seuil100Ft(),
			Seuil50Ft:  r.triggers2.Seuil50Ft(),
			Seuil40Ft:  r.triggers3.Seuil40Ft(),
			Seuil30Ft:  r.triggers3.Seuil30Ft(),
			Seuil20Ft:  r.triggers3.Seuil20Ft(),
			Seuil10Ft:  r.triggers3.Seuil10Ft(),
		})
	})
	s.Register("altitude_callout_intermediate_audio", []string{
		"altitude_callout_threshold1", "altitude_callout_threshold3",
		"altitude_callout_threshold_detection", "minimum",
	}, func(d time.Duration) {
		r.intermediateAudio.Update(d, sheets.IntermediateAudioIn{
			AltSup410Ft:                    r.threshold1.AltSup410Ft(),
			AltSup50Ft:                     r.threshold1.AltSup50Ft(),
			ToAndGroundDetection:           r.threshold3.ToAndGroundDetection(),
			GpwsInhibition:                 r.threshold3.GpwsInhibition(),
			ThresholdDetection:             r.threshold3.ThresholdDetection(),
			NonInhibitedThresholdDetection: r.thresholdDetection.NonInhibitedThresholdDetection(),
			DhGenerated:                    r.minimum.DhGenerated(),
			AutoCallOutGenerated:           r.monitor.AutoCallOutGenerated(),
			InterAudio:                     r.monitor.InterAudio(),
		})
	})

	s.Register("audio_attenuation", []string{"ground_detection", "engines_not_running"}, func(d time.Duration) {
		r.audioAttenuation.Update(d, sheets.AudioAttenuationIn{
			Ground:         r.groundDetection.Ground(),
			Eng1NotRunning: r.enginesNotRunning.Eng1NotRunning(),
			Eng2NotRunning: r.enginesNotRunning.Eng2NotRunning(),
		})
	})
	s.Register("to_memo", []string{
		"engines_not_running", "flight_phases_ground", "flight_phases_air",
	}, func(d time.Duration) {
		r.toMemo.Update(d, sheets.ToMemoIn{
			ToConfigTest:   st.Flag(params.ToConfigTest),
			Eng1NotRunning: r.enginesNotRunning.Eng1NotRunning(),
			Eng2NotRunning: r.enginesNotRunning.Eng2NotRunning(),
			Phase1:         r.flightPhasesGround.Phase1(),
			Phase2:         r.flightPhasesGround.Phase2(),
			Phase3:         r.flightPhasesGround.Phase3(),
			Phase6:         r.flightPhasesAir.Phase6(),
			Phase9:         r.flightPhasesGround.Phase9(),
			Phase10:        r.flightPhasesGround.Phase10(),
		})
	})
	s.Register("ldg_memo", []string{
		"flight_phases_ground", "flight_phases_air", "lg_downlocked", "to_memo",
	}, func(d time.Duration) {
		r.ldgMemo.Update(d, sheets.LdgMemoIn{
			RadioHeight1:   st.Number(params.RadioHeight1),
			RadioHeight2:   st.Number(params.RadioHeight2),
			LgDownlocked:   r.lgDownlocked.LgDownlocked(),
			Phase6:         r.flightPhasesAir.Phase6(),
			Phase7:         r.flightPhasesAir.Phase7(),
			Phase8:         r.flightPhasesGround.Phase8(),
			ToMemoComputed: r.toMemo.ToMemoComputed(),
		})
	})
}

// #endregion wiring

// #region monitor

func (r *Runtime) updateMonitor(delta time.Duration) {
	var warnings []WarningCode

	push := func(active bool, code WarningCode) {
		if active {
			warnings = append(warnings, code)
		}
	}
	push(r.tenRetard.Warning(), CodeTenRetard)
	push(r.twentyRetard.Warning(), CodeTwentyRetard)
	push(r.hundredAbove.Warning(), CodeHundredAbove)
	push(r.minimum.Warning(), CodeMinimum)
	push(r.callout5.Warning(), CodeCallout5Ft)
	push(r.callout10.Warning(), CodeCallout10Ft)
	push(r.callout20.Warning(), CodeCallout20Ft)
	push(r.callout30.Warning(), CodeCallout30Ft)
	push(r.callout40.Warning(), CodeCallout40Ft)
	push(r.callout50.Warning(), CodeCallout50Ft)
	push(r.callout100.Warning(), CodeCallout100Ft)
	push(r.callout200.Warning(), CodeCallout200Ft)
	push(r.callout300.Warning(), CodeCallout300Ft)
	push(r.callout400.Warning(), CodeCallout400Ft)
	push(r.callout500.Warning(), CodeCallout500Ft)
	push(r.callout1000.Warning(), CodeCallout1000Ft)
	push(r.callout2000.Warning(), CodeCallout2000Ft)
	push(r.callout2500.Warning(), CodeCallout2500Ft)
	push(r.callout2500B.Warning(), CodeCallout2500B)
	push(r.alertCChord.Audio(), CodeCChord)

	radioHeight := arinc.NewWordInv(0.0)
	if !r.threshold1.RaInvalid() {
		radioHeight = arinc.NewWord(r.threshold1.RadioHeight())
	}

	r.monitor.Update(delta, MonitorInput{
		MwCancelPulseUp:     r.generalCancel.MwCancelPulseUp(),
		McCancelPulseUp:     r.generalCancel.McCancelPulseUp(),
		RadioHeight:         radioHeight,
		AutoCallOutInhib:    r.calloutInhibit.AutoCallOutInhib(),
		IntermediateCallOut: r.intermediateAudio.IntermediateCallOut(),
	}, warnings)
}

// #endregion monitor

// #region queries

// FlightPhase returns the first active flight phase, defaulting to phase 6
// when no phase condition holds.
func (r *Runtime) FlightPhase() int {
	switch {
	case r.flightPhasesGround.Phase1():
		return 1
	case r.flightPhasesGround.Phase2():
		return 2
	case r.flightPhasesGround.Phase3():
		return 3
	case r.flightPhasesGround.Phase4():
		return 4
	case r.flightPhasesAir.Phase5():
		return 5
	case r.flightPhasesAir.Phase6():
		return 6
	case r.flightPhasesAir.Phase7():
		return 7
	case r.flightPhasesGround.Phase8():
		return 8
	case r.flightPhasesGround.Phase9():
		return 9
	case r.flightPhasesGround.Phase10():
		return 10
	default:
		return 6
	}
}

func (r *Runtime) ShowToMemo() bool {
	return r.toMemo.ToMemoComputed()
}

func (r *Runtime) ShowLdgMemo() bool {
	return r.ldgMemo.LdgMemo()
}

func (r *Runtime) AudioAttenuation() bool {
	return r.audioAttenuation.AudioAttenuation()
}

// AudioVolume returns the relative loudspeaker volume, halved while the
// attenuation condition holds.
func (r *Runtime) AudioVolume() float64 {
	if r.AudioAttenuation() {
		return 0.5
	}
	return 1.0
}

func (r *Runtime) CChord() bool {
	return r.monitor.CChord()
}

func (r *Runtime) AltAlertLightOn() bool {
	return r.altitudeAlert.SteadyLight() || r.altitudeAlert.FlashingLight()
}

func (r *Runtime) AltAlertFlashingLight() bool {
	return r.altitudeAlert.FlashingLight() && !r.altitudeAlert.SteadyLight()
}

func (r *Runtime) CavalryCharge() bool {
	return r.apOffVoluntary.ApOffAudio() || r.apOffUnvoluntary.Audio()
}

func (r *Runtime) ApOffText() bool {
	return r.apOffVoluntary.ApOffText()
}

func (r *Runtime) ApOffWarning() bool {
	return r.apOffUnvoluntary.ApOffWarning()
}

// CalloutSoundID returns the id of the synthetic voice fragment playing.
func (r *Runtime) CalloutSoundID() (uint8, bool) {
	return r.monitor.SyntheticVoiceIndex()
}

// ActiveWarnings returns the warning codes raised on the last tick.
func (r *Runtime) ActiveWarnings() []WarningCode {
	return r.monitor.ActiveWarnings()
}

// #endregion queries

// #region nvm

// NvmState reads the non-volatile latches for persistence.
func (r *Runtime) NvmState() map[string]bool {
	return map[string]bool{
		"phase9": r.flightPhasesGround.Phase9Latch().Output(),
	}
}

// RestoreNvm reloads previously persisted non-volatile latches.
func (r *Runtime) RestoreNvm(state map[string]bool) {
	if v, ok := state["phase9"]; ok {
		r.flightPhasesGround.Phase9Latch().Restore(v)
	}
}

// #endregion nvm
