// Package replay runs recorded parameter timelines against a fresh
// warning computer and checks the outputs against expectations. Fixtures
// are JSON files, optionally zstd compressed.
package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/fwcsim/fwc/internal/params"
	"github.com/fwcsim/fwc/internal/runtime"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string        `json:"description"`
	Config      FixtureConfig `json:"config"`
	Steps       []FixtureStep `json:"steps"`
}

// FixtureConfig mirrors runtime.Config with JSON tags.
type FixtureConfig struct {
	BussInstalled        bool `json:"buss_installed"`
	GpsAltUsedAndInvalid bool `json:"gps_alt_used_and_invalid"`
}

// FixtureStep injects parameters, advances the computer and optionally
// checks the outputs afterwards. Ticks defaults to 1 and DeltaMs to the
// nominal 100ms cycle.
type FixtureStep struct {
	Ticks   int                `json:"ticks,omitempty"`
	DeltaMs int                `json:"delta_ms,omitempty"`
	Inject  []params.Injection `json:"inject,omitempty"`
	Expect  *FixtureExpect     `json:"expect,omitempty"`
}

// FixtureExpect lists output checks. Nil fields are not checked. Warnings
// are matched against every warning seen during the step, since most are
// single-tick pulses.
type FixtureExpect struct {
	FlightPhase   *int     `json:"flight_phase,omitempty"`
	ShowToMemo    *bool    `json:"show_to_memo,omitempty"`
	ShowLdgMemo   *bool    `json:"show_ldg_memo,omitempty"`
	CChord        *bool    `json:"c_chord,omitempty"`
	CavalryCharge *bool    `json:"cavalry_charge,omitempty"`
	AudioVolume   *float64 `json:"audio_volume,omitempty"`
	Warnings      []string `json:"warnings,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a fixture file. Files ending in .zst are
// decompressed first.
func LoadFixture(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture %s: %w", path, err)
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(path, ".zst") {
		zr, err := zstd.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("zstd reader %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// WriteFixture serializes a fixture, compressing when the path ends in
// .zst. fixture-export uses this to turn recorded runs into fixtures.
func WriteFixture(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create fixture %s: %w", path, err)
	}
	defer file.Close()

	var w io.Writer = file
	var zw *zstd.Encoder
	if strings.HasSuffix(path, ".zst") {
		zw, err = zstd.NewWriter(file)
		if err != nil {
			return fmt.Errorf("zstd writer %s: %w", path, err)
		}
		w = zw
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			return fmt.Errorf("flush fixture %s: %w", path, err)
		}
	}
	return file.Close()
}

// ToRuntimeConfig converts a FixtureConfig to a runtime.Config.
func (c *FixtureConfig) ToRuntimeConfig() runtime.Config {
	return runtime.Config{
		BussInstalled:        c.BussInstalled,
		GpsAltUsedAndInvalid: c.GpsAltUsedAndInvalid,
	}
}

// #endregion fixture-loader
