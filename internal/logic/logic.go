// Package logic implements the stateful temporal circuits the warning
// computer is built from: confirmations, monostable triggers, pulses,
// memories, hysteresis and delay registers. Every node is updated exactly
// once per tick with the elapsed delta.
package logic

import (
	"fmt"
	"time"
)

// #region delay-check

// checkDelay rejects zero and negative windows at construction. The delays
// are fixed wiring constants, so a bad one is a startup defect.
func checkDelay(kind string, d time.Duration) time.Duration {
	if d <= 0 {
		panic(fmt.Sprintf("logic: %s delay must be positive, got %v", kind, d))
	}
	return d
}

// #endregion delay-check

// #region confirmation

// ConfirmationNode passes a signal only once it has been stable for a
// configured amount of time. When it detects the watched edge (rising or
// falling) it waits for up to the delay and emits the incoming signal if it
// was stable throughout. If the signal reverts at any point during the delay
// the timer fully resets and the original signal is emitted again.
type ConfirmationNode struct {
	leadingEdge    bool
	timeDelay      time.Duration
	conditionSince time.Duration
	output         bool
}

// NewConfirmationNode returns a confirmation on the given edge polarity.
func NewConfirmationNode(leadingEdge bool, timeDelay time.Duration) *ConfirmationNode {
	return &ConfirmationNode{leadingEdge: leadingEdge, timeDelay: checkDelay("confirmation", timeDelay)}
}

// NewConfirmationLeading returns a confirmation on the rising edge.
func NewConfirmationLeading(timeDelay time.Duration) *ConfirmationNode {
	return NewConfirmationNode(true, timeDelay)
}

// NewConfirmationFalling returns a confirmation on the falling edge.
func NewConfirmationFalling(timeDelay time.Duration) *ConfirmationNode {
	return NewConfirmationNode(false, timeDelay)
}

// Update advances the node by delta and returns the confirmed output.
func (n *ConfirmationNode) Update(hi bool, delta time.Duration) bool {
	if hi == n.leadingEdge {
		n.conditionSince += delta
		if n.conditionSince >= n.timeDelay {
			n.output = n.leadingEdge
		} else {
			n.output = !n.leadingEdge
		}
	} else {
		n.conditionSince = 0
		n.output = !n.leadingEdge
	}
	return n.output
}

// Output returns the last computed output without advancing the node.
func (n *ConfirmationNode) Output() bool {
	return n.output
}

// #endregion confirmation

// #region monostable

// MonostableTriggerNode outputs lo until it detects the watched edge, then
// outputs hi until its delay has elapsed. A retriggerable node restarts the
// timer on every matching edge; a plain node ignores edges until the window
// has run out.
type MonostableTriggerNode struct {
	leadingEdge      bool
	timeDelay        time.Duration
	retriggerable    bool
	remainingTrigger time.Duration
	lastHi           bool
	output           bool
}

// NewMonostableNode returns a one-shot trigger on the given edge polarity.
func NewMonostableNode(leadingEdge bool, timeDelay time.Duration) *MonostableTriggerNode {
	return &MonostableTriggerNode{leadingEdge: leadingEdge, timeDelay: checkDelay("monostable", timeDelay)}
}

// NewMonostableRetriggerable returns a trigger whose window restarts on every
// matching edge.
func NewMonostableRetriggerable(leadingEdge bool, timeDelay time.Duration) *MonostableTriggerNode {
	return &MonostableTriggerNode{leadingEdge: leadingEdge, timeDelay: checkDelay("monostable", timeDelay), retriggerable: true}
}

// NewMonostableLeading returns a one-shot trigger on the rising edge.
func NewMonostableLeading(timeDelay time.Duration) *MonostableTriggerNode {
	return NewMonostableNode(true, timeDelay)
}

// NewMonostableFalling returns a one-shot trigger on the falling edge.
func NewMonostableFalling(timeDelay time.Duration) *MonostableTriggerNode {
	return NewMonostableNode(false, timeDelay)
}

// Update advances the node by delta and returns whether the window is open.
// The remaining window is consumed before edge detection, so a window of
// exactly delta closes on this call.
func (n *MonostableTriggerNode) Update(hi bool, delta time.Duration) bool {
	n.remainingTrigger -= delta
	if n.remainingTrigger < 0 {
		n.remainingTrigger = 0
	}
	if n.retriggerable || n.remainingTrigger == 0 {
		if n.lastHi != hi && hi == n.leadingEdge {
			n.remainingTrigger = n.timeDelay
		}
	}
	n.lastHi = hi
	n.output = n.remainingTrigger > 0
	return n.output
}

// Output returns the last computed output without advancing the node.
func (n *MonostableTriggerNode) Output() bool {
	return n.output
}

// #endregion monostable

// #region pulse

// PulseNode triggers for exactly one tick when it detects the watched edge.
// While the output is held hi it cannot re-trigger, so back-to-back edges a
// single tick apart produce alternating pulses.
type PulseNode struct {
	leadingEdge bool
	lastHi      bool
	output      bool
}

// NewPulseNode returns a pulse on the given edge polarity.
func NewPulseNode(leadingEdge bool) *PulseNode {
	return &PulseNode{leadingEdge: leadingEdge}
}

// NewPulseLeading returns a pulse on the rising edge.
func NewPulseLeading() *PulseNode {
	return NewPulseNode(true)
}

// NewPulseFalling returns a pulse on the falling edge.
func NewPulseFalling() *PulseNode {
	return NewPulseNode(false)
}

// Update advances the node and returns the pulse output.
func (n *PulseNode) Update(hi bool) bool {
	switch {
	case n.output:
		n.output = false
	case n.leadingEdge:
		n.output = !n.lastHi && hi
	default:
		n.output = n.lastHi && !hi
	}
	n.lastHi = hi
	return n.output
}

// Output returns the last computed output without advancing the node.
func (n *PulseNode) Output() bool {
	return n.output
}

// #endregion pulse

// #region memory

// MemoryNode is a set/reset flip-flop. It emits false until the set input
// fires, then true until the reset input fires. When both fire on the same
// tick the input with precedence wins; precedence is fixed per instance at
// construction.
type MemoryNode struct {
	hasSetPrecedence bool
	nvm              bool
	output           bool
}

// NewMemoryNode returns a volatile flip-flop. hasSetPrecedence selects which
// input wins when both fire at once.
func NewMemoryNode(hasSetPrecedence bool) *MemoryNode {
	return &MemoryNode{hasSetPrecedence: hasSetPrecedence}
}

// NewMemoryNodeNvm returns a flip-flop flagged as non-volatile. The runtime
// persists and restores NVM latches across restarts.
func NewMemoryNodeNvm(hasSetPrecedence bool) *MemoryNode {
	return &MemoryNode{hasSetPrecedence: hasSetPrecedence, nvm: true}
}

// Update applies set/reset and returns the stored bit.
func (n *MemoryNode) Update(set, reset bool) bool {
	switch {
	case set && reset:
		n.output = n.hasSetPrecedence
	case set:
		n.output = true
	case reset:
		n.output = false
	}
	return n.output
}

// Output returns the stored bit without applying inputs.
func (n *MemoryNode) Output() bool {
	return n.output
}

// Nvm reports whether this latch participates in non-volatile persistence.
func (n *MemoryNode) Nvm() bool {
	return n.nvm
}

// Restore forces the stored bit, used when reloading NVM state.
func (n *MemoryNode) Restore(output bool) {
	n.output = output
}

// #endregion memory

// #region hysteresis

// HysteresisNode switches between a high and a low state using two distinct
// thresholds to prevent chatter on minor fluctuations. It outputs lo until
// value >= up, then hi until value <= dn.
type HysteresisNode struct {
	up     float64
	dn     float64
	output bool
}

// NewHysteresisNode returns a hysteresis with the given down and up
// thresholds (dn < up).
func NewHysteresisNode(dn, up float64) *HysteresisNode {
	return &HysteresisNode{up: up, dn: dn}
}

// Update applies the value and returns the hysteresis state.
func (n *HysteresisNode) Update(value float64) bool {
	if n.output {
		if value <= n.dn {
			n.output = false
		}
	} else {
		if value >= n.up {
			n.output = true
		}
	}
	return n.output
}

// Output returns the last computed output without applying a value.
func (n *HysteresisNode) Output() bool {
	return n.output
}

// #endregion hysteresis

// #region preceding-value

// PrecedingValueNode is a one-tick delay register: Value returns what was
// stored by the previous Update. It breaks feedback loops between sheets
// that read their own prior output.
type PrecedingValueNode struct {
	predecessor bool
}

// NewPrecedingValueNode returns a delay register holding false.
func NewPrecedingValueNode() *PrecedingValueNode {
	return &PrecedingValueNode{}
}

// Value returns the value stored on the previous Update.
func (n *PrecedingValueNode) Value() bool {
	return n.predecessor
}

// Update stores the value for the next tick.
func (n *PrecedingValueNode) Update(value bool) {
	n.predecessor = value
}

// #endregion preceding-value

// #region transient

// TransientDetectionNode emits its change signal for the tick on which the
// input differs from the previous tick, and the inverse signal otherwise.
type TransientDetectionNode struct {
	changeSignal bool
	predecessor  bool
}

// NewTransientDetectionNode returns a transient detector that emits
// changeSignal while the input is changing.
func NewTransientDetectionNode(changeSignal bool) *TransientDetectionNode {
	return &TransientDetectionNode{changeSignal: changeSignal}
}

// Update applies the value and returns the change indication.
func (n *TransientDetectionNode) Update(value bool) bool {
	changed := value != n.predecessor
	n.predecessor = value
	if changed {
		return n.changeSignal
	}
	return !n.changeSignal
}

// #endregion transient
