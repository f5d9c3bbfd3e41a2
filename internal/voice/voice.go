// Package voice models the synthetic voice unit: a bank of pre-recorded
// callout fragments, a synthesizer that plays one fragment at a time and a
// manager that strings fragments into full callouts.
package voice

import "time"

// Sound identifies a single pre-recorded voice fragment.
type Sound int

const (
	SoundNone Sound = iota
	Minimum
	HundredAbove
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Eleven
	Twelve
	Thirteen
	Fourteen
	Fifteen
	Sixteen
	Seventeen
	Eighteen
	Nineteen
	Twenty
	Thirty
	Forty
	Fifty
	Sixty
	Seventy
	Eighty
	Ninety
	OneHundred
	TwoHundred
	ThreeHundred
	FourHundred
	FiveHundred
	OneThousand
	TwoThousand
	TwoThousandFiveHundred
	TwentyFiveHundred
	OneC
	TwoC
	ThreeC
	FourC
	FiveC
	TwentyC
	ThirtyC
	FortyC
	FiftyC
	SixtyC
	SeventyC
	EightyC
	NinetyC
	Hundredand
)

type soundFile struct {
	id       uint8
	duration time.Duration
}

// ID space of the voice bank:
// 80s: minimum, hundred above
// 100s: 1, 2, ..9
// 110s: 10, 11, 12, ..19
// 120s: 20, 30, 40, ..90
// 130s: 100, 200, 300, 400, 500, 1000, 2000, 2500, twenty-five-hundred
// 140s: 1c, 2c, 3c, 4c, 5c (compound prefixes)
// 150s: 20c, 30c, ..90c
// 160: hundredand
var soundFiles = map[Sound]soundFile{
	Minimum:                {id: 80, duration: 670 * time.Millisecond},
	HundredAbove:           {id: 81, duration: 720 * time.Millisecond},
	One:                    {id: 101, duration: 339 * time.Millisecond},
	Two:                    {id: 102, duration: 436 * time.Millisecond},
	Three:                  {id: 103, duration: 445 * time.Millisecond},
	Four:                   {id: 104, duration: 370 * time.Millisecond},
	Five:                   {id: 105, duration: 483 * time.Millisecond},
	Six:                    {id: 106, duration: 525 * time.Millisecond},
	Seven:                  {id: 107, duration: 538 * time.Millisecond},
	Eight:                  {id: 108, duration: 393 * time.Millisecond},
	Nine:                   {id: 109, duration: 435 * time.Millisecond},
	Ten:                    {id: 110, duration: 340 * time.Millisecond},
	Eleven:                 {id: 111, duration: 656 * time.Millisecond},
	Twelve:                 {id: 112, duration: 576 * time.Millisecond},
	Thirteen:               {id: 113, duration: 728 * time.Millisecond},
	Fourteen:               {id: 114, duration: 775 * time.Millisecond},
	Fifteen:                {id: 115, duration: 715 * time.Millisecond},
	Sixteen:                {id: 116, duration: 766 * time.Millisecond},
	Seventeen:              {id: 117, duration: 812 * time.Millisecond},
	Eighteen:               {id: 118, duration: 698 * time.Millisecond},
	Nineteen:               {id: 119, duration: 830 * time.Millisecond},
	Twenty:                 {id: 122, duration: 480 * time.Millisecond},
	Thirty:                 {id: 123, duration: 499 * time.Millisecond},
	Forty:                  {id: 124, duration: 493 * time.Millisecond},
	Fifty:                  {id: 125, duration: 537 * time.Millisecond},
	Sixty:                  {id: 126, duration: 506 * time.Millisecond},
	Seventy:                {id: 127, duration: 537 * time.Millisecond},
	Eighty:                 {id: 128, duration: 394 * time.Millisecond},
	Ninety:                 {id: 129, duration: 473 * time.Millisecond},
	OneHundred:             {id: 131, duration: 652 * time.Millisecond},
	TwoHundred:             {id: 132, duration: 685 * time.Millisecond},
	ThreeHundred:           {id: 133, duration: 731 * time.Millisecond},
	FourHundred:            {id: 134, duration: 753 * time.Millisecond},
	FiveHundred:            {id: 135, duration: 739 * time.Millisecond},
	OneThousand:            {id: 136, duration: 790 * time.Millisecond},
	TwoThousand:            {id: 137, duration: 711 * time.Millisecond},
	TwoThousandFiveHundred: {id: 138, duration: 1331 * time.Millisecond},
	TwentyFiveHundred:      {id: 139, duration: 1047 * time.Millisecond},
	OneC:                   {id: 141, duration: 228 * time.Millisecond},
	TwoC:                   {id: 142, duration: 229 * time.Millisecond},
	ThreeC:                 {id: 143, duration: 255 * time.Millisecond},
	FourC:                  {id: 144, duration: 286 * time.Millisecond},
	FiveC:                  {id: 145, duration: 309 * time.Millisecond},
	TwentyC:                {id: 152, duration: 299 * time.Millisecond},
	ThirtyC:                {id: 153, duration: 389 * time.Millisecond},
	FortyC:                 {id: 154, duration: 392 * time.Millisecond},
	FiftyC:                 {id: 155, duration: 314 * time.Millisecond},
	SixtyC:                 {id: 156, duration: 403 * time.Millisecond},
	SeventyC:               {id: 157, duration: 536 * time.Millisecond},
	EightyC:                {id: 158, duration: 295 * time.Millisecond},
	NinetyC:                {id: 159, duration: 538 * time.Millisecond},
	Hundredand:             {id: 160, duration: 442 * time.Millisecond},
}

type playingSound struct {
	file    soundFile
	elapsed time.Duration
}

func (p *playingSound) remaining() time.Duration {
	return p.file.duration - p.elapsed
}

// Synthesizer plays a single voice fragment at a time. A new request
// replaces whatever is playing.
type Synthesizer struct {
	playing *playingSound
}

func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Update advances the synthesizer by delta. A requested sound other than
// SoundNone starts playing immediately.
func (s *Synthesizer) Update(delta time.Duration, requested Sound) {
	if requested != SoundNone {
		s.playing = &playingSound{file: soundFiles[requested]}
		return
	}
	if s.playing != nil {
		s.playing.elapsed += delta
		if s.playing.elapsed >= s.playing.file.duration {
			s.playing = nil
		}
	}
}

// SoundID returns the voice bank id of the playing fragment and whether
// anything is playing.
func (s *Synthesizer) SoundID() (uint8, bool) {
	if s.playing == nil {
		return 0, false
	}
	return s.playing.file.id, true
}

func (s *Synthesizer) Playing() bool { return s.playing != nil }

func (s *Synthesizer) Ready() bool { return s.playing == nil }

// ReadyIn reports whether the current fragment finishes within delta, so
// the caller can queue the next fragment without a silent tick.
func (s *Synthesizer) ReadyIn(delta time.Duration) bool {
	if s.playing == nil {
		return true
	}
	return s.playing.remaining() <= delta
}

// Manager strings fragments into complete callouts and feeds them to the
// synthesizer one by one.
type Manager struct {
	sequence    []Sound
	nextIndex   int
	synthesizer Synthesizer
}

func NewManager() *Manager {
	return &Manager{}
}

// Update advances the manager by delta. A non-empty parts slice is picked
// up once the current sequence has finished; cancel drops the remainder
// of the current sequence.
func (m *Manager) Update(delta time.Duration, parts []Sound, cancel bool) {
	requested := SoundNone
	if m.synthesizer.ReadyIn(delta) || cancel {
		if m.nextIndex < len(m.sequence) && !cancel {
			requested = m.sequence[m.nextIndex]
			m.nextIndex++
		} else if len(parts) > 0 {
			m.sequence = parts
			requested = m.sequence[0]
			m.nextIndex = 1
		}
	}
	m.synthesizer.Update(delta, requested)
}

func (m *Manager) SoundID() (uint8, bool) { return m.synthesizer.SoundID() }

func (m *Manager) Ready() bool { return m.synthesizer.Ready() }

func (m *Manager) ReadyIn(delta time.Duration) bool { return m.synthesizer.ReadyIn(delta) }

var onesSounds = map[int]Sound{
	1: One, 2: Two, 3: Three, 4: Four, 5: Five,
	6: Six, 7: Seven, 8: Eight, 9: Nine,
}

var teensSounds = map[int]Sound{
	10: Ten, 11: Eleven, 12: Twelve, 13: Thirteen, 14: Fourteen,
	15: Fifteen, 16: Sixteen, 17: Seventeen, 18: Eighteen, 19: Nineteen,
}

var tensSounds = map[int]Sound{
	2: Twenty, 3: Thirty, 4: Forty, 5: Fifty,
	6: Sixty, 7: Seventy, 8: Eighty, 9: Ninety,
}

var tensPrefixSounds = map[int]Sound{
	2: TwentyC, 3: ThirtyC, 4: FortyC, 5: FiftyC,
	6: SixtyC, 7: SeventyC, 8: EightyC, 9: NinetyC,
}

var hundredsSounds = map[int]Sound{
	1: OneHundred, 2: TwoHundred, 3: ThreeHundred, 4: FourHundred,
}

var hundredsPrefixSounds = map[int]Sound{
	1: OneC, 2: TwoC, 3: ThreeC, 4: FourC,
}

// TranslateHeight converts a radio height in feet into the fragment
// sequence announcing it. Heights below 100 ft are rounded to the nearest
// foot, heights above to the nearest ten feet; heights outside [1, 400)
// yield nil.
func TranslateHeight(rawHeight float64) []Sound {
	if rawHeight < 1 || rawHeight >= 400 {
		return nil
	}

	var height int
	if rawHeight < 100 {
		height = int(rawHeight + 0.5)
	} else {
		height = int(rawHeight/10+0.5) * 10
	}
	if height > 400 {
		return nil
	}

	if height < 100 {
		if height < 20 {
			if s, ok := onesSounds[height]; ok {
				return []Sound{s}
			}
			if s, ok := teensSounds[height]; ok {
				return []Sound{s}
			}
			return nil
		}
		if height%10 == 0 {
			return []Sound{tensSounds[height/10]}
		}
		return []Sound{tensPrefixSounds[height/10], onesSounds[height%10]}
	}

	if height%100 == 0 {
		return []Sound{hundredsSounds[height/100]}
	}
	return []Sound{hundredsPrefixSounds[height/100], Hundredand, tensSounds[(height%100)/10]}
}
