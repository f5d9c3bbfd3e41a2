package voice

import (
	"testing"
	"time"
)

const tick = 100 * time.Millisecond

func soundsEqual(a, b []Sound) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTranslateHeightSingleDigits(t *testing.T) {
	if got := TranslateHeight(4.3); !soundsEqual(got, []Sound{Four}) {
		t.Fatalf("expected 4.3 ft to round down to four, got %v", got)
	}
	if got := TranslateHeight(4.5); !soundsEqual(got, []Sound{Five}) {
		t.Fatalf("expected 4.5 ft to round up to five, got %v", got)
	}
}

func TestTranslateHeightTeens(t *testing.T) {
	if got := TranslateHeight(11); !soundsEqual(got, []Sound{Eleven}) {
		t.Fatalf("expected single-word eleven, got %v", got)
	}
}

func TestTranslateHeightCompoundTens(t *testing.T) {
	if got := TranslateHeight(21); !soundsEqual(got, []Sound{TwentyC, One}) {
		t.Fatalf("expected twenty-one, got %v", got)
	}
	if got := TranslateHeight(42); !soundsEqual(got, []Sound{FortyC, Two}) {
		t.Fatalf("expected forty-two, got %v", got)
	}
	if got := TranslateHeight(93); !soundsEqual(got, []Sound{NinetyC, Three}) {
		t.Fatalf("expected ninety-three, got %v", got)
	}
}

func TestTranslateHeightHundreds(t *testing.T) {
	if got := TranslateHeight(194); !soundsEqual(got, []Sound{OneC, Hundredand, Ninety}) {
		t.Fatalf("expected one hundred and ninety, got %v", got)
	}
	if got := TranslateHeight(195); !soundsEqual(got, []Sound{TwoHundred}) {
		t.Fatalf("expected 195 ft to round up to two hundred, got %v", got)
	}
	if got := TranslateHeight(200); !soundsEqual(got, []Sound{TwoHundred}) {
		t.Fatalf("expected two hundred, got %v", got)
	}
	if got := TranslateHeight(204); !soundsEqual(got, []Sound{TwoHundred}) {
		t.Fatalf("expected 204 ft to round down to two hundred, got %v", got)
	}
	if got := TranslateHeight(209); !soundsEqual(got, []Sound{TwoC, Hundredand, Ten}) {
		t.Fatalf("expected two hundred and ten, got %v", got)
	}
	if got := TranslateHeight(210.1); !soundsEqual(got, []Sound{TwoC, Hundredand, Ten}) {
		t.Fatalf("expected two hundred and ten, got %v", got)
	}
}

func TestTranslateHeightOutOfRange(t *testing.T) {
	if got := TranslateHeight(0); got != nil {
		t.Fatalf("expected no callout below one foot, got %v", got)
	}
	if got := TranslateHeight(0.9); got != nil {
		t.Fatalf("expected no callout below one foot, got %v", got)
	}
	if got := TranslateHeight(400); got != nil {
		t.Fatalf("expected no callout at or above 400 ft, got %v", got)
	}
}

func TestTranslateHeightFullRangeResolves(t *testing.T) {
	for h := 1; h < 400; h++ {
		if got := TranslateHeight(float64(h)); len(got) == 0 {
			t.Fatalf("expected a callout for %d ft", h)
		}
	}
}

func TestSynthesizerPlaysForDuration(t *testing.T) {
	s := NewSynthesizer()
	if !s.Ready() {
		t.Fatal("expected a fresh synthesizer to be ready")
	}

	s.Update(tick, Minimum)
	if id, ok := s.SoundID(); !ok || id != 80 {
		t.Fatalf("expected sound id 80 playing, got %d %v", id, ok)
	}
	if s.Ready() {
		t.Fatal("expected synthesizer busy while playing")
	}

	// 670ms fragment: six full ticks leave 70ms remaining.
	for i := 0; i < 6; i++ {
		s.Update(tick, SoundNone)
	}
	if !s.Playing() {
		t.Fatal("expected fragment still playing at 600ms")
	}
	if !s.ReadyIn(tick) {
		t.Fatal("expected synthesizer ready within the next tick")
	}
	s.Update(tick, SoundNone)
	if !s.Ready() {
		t.Fatal("expected fragment finished after 700ms")
	}
}

func TestSynthesizerRequestReplacesPlaying(t *testing.T) {
	s := NewSynthesizer()
	s.Update(tick, One)
	s.Update(tick, Two)
	if id, ok := s.SoundID(); !ok || id != 102 {
		t.Fatalf("expected new request to replace playing sound, got %d %v", id, ok)
	}
}

func TestManagerPlaysSequence(t *testing.T) {
	m := NewManager()
	m.Update(tick, []Sound{TwentyC, One}, false)
	if id, ok := m.SoundID(); !ok || id != 152 {
		t.Fatalf("expected twenty prefix first, got %d %v", id, ok)
	}

	// 299ms prefix finishes within the fourth tick, the suffix follows on.
	m.Update(tick, nil, false)
	m.Update(tick, nil, false)
	m.Update(tick, nil, false)
	if id, ok := m.SoundID(); !ok || id != 101 {
		t.Fatalf("expected suffix after prefix, got %d %v", id, ok)
	}

	// 339ms suffix: done after four more ticks with nothing queued.
	for i := 0; i < 4; i++ {
		m.Update(tick, nil, false)
	}
	if !m.Ready() {
		t.Fatal("expected manager idle after sequence")
	}
}

func TestManagerIgnoresRequestWhilePlaying(t *testing.T) {
	m := NewManager()
	m.Update(tick, []Sound{FiveHundred}, false)
	m.Update(tick, []Sound{Ten}, false)
	if id, ok := m.SoundID(); !ok || id != 135 {
		t.Fatalf("expected five hundred to keep playing, got %d %v", id, ok)
	}
}

func TestManagerCancelInterruptsWithNewCallout(t *testing.T) {
	m := NewManager()
	m.Update(tick, []Sound{OneC, Hundredand, Ninety}, false)
	if id, ok := m.SoundID(); !ok || id != 141 {
		t.Fatalf("expected first fragment, got %d %v", id, ok)
	}

	// A higher priority callout cancels the sequence mid-fragment.
	m.Update(tick, []Sound{Fifty}, true)
	if id, ok := m.SoundID(); !ok || id != 125 {
		t.Fatalf("expected cancel to start the new callout, got %d %v", id, ok)
	}
}

func TestManagerCancelWithoutPartsDefersFragment(t *testing.T) {
	m := NewManager()
	m.Update(tick, []Sound{TwentyC, One}, false)
	m.Update(tick, nil, false)
	m.Update(tick, nil, false)

	// Cancel on the tick the prefix finishes withholds the suffix.
	m.Update(tick, nil, true)
	if !m.Ready() {
		t.Fatal("expected fragment withheld while cancelled")
	}

	// The remainder resumes once cancel is released.
	m.Update(tick, nil, false)
	if id, ok := m.SoundID(); !ok || id != 101 {
		t.Fatalf("expected suffix after cancel released, got %d %v", id, ok)
	}
}
