package game

// Key is a logical (host-independent) held key.
type Key uint8

const (
	KeyForward Key = iota
	KeyBack
	KeyStrafeLeft
	KeyStrafeRight
	KeyTurnLeft
	KeyTurnRight
	KeyCount // number of logical keys, not a key
)

// Input is the normalized snapshot a host hands to Session.Tick once per
// tick. Held keys are levels; the remaining fields are edges collected since
// the previous tick.
type Input struct {
	Held [KeyCount]bool

	// PointerDX is horizontal pointer motion in pixels since the last tick.
	// Hosts should only report it while the pointer is captured.
	PointerDX float64

	Click    bool // primary button press: start / fire / restart
	Fire     bool // dedicated fire key
	MenuUp   bool
	MenuDown bool
	Confirm  bool
}

// Press marks k as held and returns the input for chaining.
func (in Input) Press(keys ...Key) Input {
	for _, k := range keys {
		if k < KeyCount {
			in.Held[k] = true
		}
	}
	return in
}

// IsHeld reports whether k is held.
func (in *Input) IsHeld(k Key) bool {
	return k < KeyCount && in.Held[k]
}
