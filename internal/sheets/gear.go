package sheets

import (
	"time"

	"github.com/fwcsim/fwc/internal/arinc"
)

// LgDownlockedIn carries the down-lock signals from both LGCIUs per gear.
type LgDownlockedIn struct {
	LhGearDownLock1   arinc.Word[bool]
	LhGearDownLock2   arinc.Word[bool]
	RhGearDownLock1   arinc.Word[bool]
	RhGearDownLock2   arinc.Word[bool]
	NoseGearDownLock1 arinc.Word[bool]
	NoseGearDownLock2 arinc.Word[bool]
}

// LgDownlockedActivation votes the gear down-lock per leg: both LGCIUs
// agreeing, or a single one reporting down while the other is invalid.
type LgDownlockedActivation struct {
	mainLgDownlocked bool
	lgDownlocked     bool
}

func NewLgDownlockedActivation() *LgDownlockedActivation {
	return &LgDownlockedActivation{}
}

func gearDownlocked(lock1, lock2 arinc.Word[bool]) bool {
	invalid := lock1.IsInv() || lock2.IsInv()
	norm := lock1.Value() && lock2.Value()
	abnorm := invalid && (lock1.Value() || lock2.Value())
	return norm || abnorm
}

func (a *LgDownlockedActivation) Update(_ time.Duration, in LgDownlockedIn) {
	lhDownlocked := gearDownlocked(in.LhGearDownLock1, in.LhGearDownLock2)
	rhDownlocked := gearDownlocked(in.RhGearDownLock1, in.RhGearDownLock2)
	a.mainLgDownlocked = lhDownlocked && rhDownlocked

	noseDownlocked := gearDownlocked(in.NoseGearDownLock1, in.NoseGearDownLock2)
	a.lgDownlocked = a.mainLgDownlocked && noseDownlocked
}

func (a *LgDownlockedActivation) MainLgDownlocked() bool { return a.mainLgDownlocked }
func (a *LgDownlockedActivation) LgDownlocked() bool     { return a.lgDownlocked }
