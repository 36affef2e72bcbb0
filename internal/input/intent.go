package input

import "fmt"

// Modifiers is the set of modifier keys held during a pointer event.
type Modifiers uint8

const (
	// ModCtrl is the Control (or Command) key.
	ModCtrl Modifiers = 1 << iota
	// ModShift is the Shift key.
	ModShift
)

// Has reports whether all bits of m are held.
func (mods Modifiers) Has(m Modifiers) bool { return mods&m == m }

// Intent is the mutation a pointer event asks for.
type Intent int

const (
	// IntentToggle flips a single cell.
	IntentToggle Intent = iota
	// IntentGlider stamps a glider.
	IntentGlider
	// IntentPulsar stamps a pulsar precursor.
	IntentPulsar
)

func (i Intent) String() string {
	switch i {
	case IntentToggle:
		return "toggle"
	case IntentGlider:
		return "glider"
	case IntentPulsar:
		return "pulsar"
	default:
		return fmt.Sprintf("Intent(%d)", int(i))
	}
}

// bindings is checked top to bottom; the first held modifier wins.
var bindings = []struct {
	mod    Modifiers
	intent Intent
}{
	{ModCtrl, IntentGlider},
	{ModShift, IntentPulsar},
}

// Classify maps held modifiers to exactly one intent: Ctrl beats Shift, and
// no modifier means toggle.
func Classify(mods Modifiers) Intent {
	for _, b := range bindings {
		if mods.Has(b.mod) {
			return b.intent
		}
	}
	return IntentToggle
}
