package runtime

import (
	"fmt"

	"github.com/fwcsim/fwc/internal/voice"
)

// WarningCode identifies a warning by ATA chapter, section and subject.
type WarningCode struct {
	Ata    uint8
	SubAta uint8
	ID     uint16
}

func NewWarningCode(ata, subAta uint8, id uint16) WarningCode {
	return WarningCode{Ata: ata, SubAta: subAta, ID: id}
}

func (c WarningCode) String() string {
	return fmt.Sprintf("%02d-%02d-%03d", c.Ata, c.SubAta, c.ID)
}

var (
	CodeCChord       = NewWarningCode(22, 0, 50)
	CodeHundredAbove = NewWarningCode(22, 0, 60)
	CodeMinimum      = NewWarningCode(22, 0, 70)

	CodeCallout400Ft  = NewWarningCode(34, 0, 255)
	CodeCallout300Ft  = NewWarningCode(34, 0, 260)
	CodeCallout200Ft  = NewWarningCode(34, 0, 270)
	CodeCallout100Ft  = NewWarningCode(34, 0, 280)
	CodeCallout50Ft   = NewWarningCode(34, 0, 290)
	CodeCallout40Ft   = NewWarningCode(34, 0, 300)
	CodeCallout30Ft   = NewWarningCode(34, 0, 310)
	CodeCallout20Ft   = NewWarningCode(34, 0, 320)
	CodeCallout10Ft   = NewWarningCode(34, 0, 330)
	CodeCallout5Ft    = NewWarningCode(34, 0, 340)
	CodeTwentyRetard  = NewWarningCode(34, 0, 350)
	CodeTenRetard     = NewWarningCode(34, 0, 360)
	CodeCallout500Ft  = NewWarningCode(34, 0, 380)
	CodeCallout1000Ft = NewWarningCode(34, 0, 390)
	CodeCallout2500B  = NewWarningCode(34, 0, 400)
	CodeCallout2000Ft = NewWarningCode(34, 0, 410)
	CodeCallout2500Ft = NewWarningCode(34, 0, 420)
)

// voicePriority lists every voiced warning from most to least urgent. The
// monitor interrupts a playing callout for anything listed earlier.
var voicePriority = []WarningCode{
	CodeTenRetard,
	CodeTwentyRetard,
	CodeHundredAbove,
	CodeMinimum,
	CodeCallout5Ft,
	CodeCallout10Ft,
	CodeCallout20Ft,
	CodeCallout30Ft,
	CodeCallout40Ft,
	CodeCallout50Ft,
	CodeCallout100Ft,
	CodeCallout200Ft,
	CodeCallout300Ft,
	CodeCallout400Ft,
	CodeCallout500Ft,
	CodeCallout1000Ft,
	CodeCallout2000Ft,
	CodeCallout2500Ft,
	CodeCallout2500B,
}

// warningSounds maps each voiced warning to the fragments announcing it.
// The retard callouts have no entry; their phrase is not in the voice bank
// and they surface as discrete warnings only.
var warningSounds = map[WarningCode][]voice.Sound{
	CodeHundredAbove:  {voice.HundredAbove},
	CodeMinimum:       {voice.Minimum},
	CodeCallout5Ft:    {voice.Five},
	CodeCallout10Ft:   {voice.Ten},
	CodeCallout20Ft:   {voice.Twenty},
	CodeCallout30Ft:   {voice.Thirty},
	CodeCallout40Ft:   {voice.Forty},
	CodeCallout50Ft:   {voice.Fifty},
	CodeCallout100Ft:  {voice.OneHundred},
	CodeCallout200Ft:  {voice.TwoHundred},
	CodeCallout300Ft:  {voice.ThreeHundred},
	CodeCallout400Ft:  {voice.FourHundred},
	CodeCallout500Ft:  {voice.FiveHundred},
	CodeCallout1000Ft: {voice.OneThousand},
	CodeCallout2000Ft: {voice.TwoThousand},
	CodeCallout2500Ft: {voice.TwoThousandFiveHundred},
	CodeCallout2500B:  {voice.TwentyFiveHundred},
}

func priorityIndex(code WarningCode) int {
	for i, c := range voicePriority {
		if c == code {
			return i
		}
	}
	return len(voicePriority)
}
