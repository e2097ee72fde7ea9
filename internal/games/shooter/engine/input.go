package engine

// Direction is a held movement direction.
type Direction int

const (
	DirLeft Direction = iota + 1
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Intent is the input resolved for one tick.
type Intent struct {
	DeltaX float64 // horizontal movement to apply
	Shots  int     // bullets to fire
}

// InputTracker accumulates input between ticks.
//
// A drag target replaces any relative movement queued before it. Relative
// moves after a target shift the target. Held directions persist across
// ticks and move the player by one speed step per tick each.
type InputTracker struct {
	target    float64
	hasTarget bool
	pendingDX float64

	left, right bool
	shots       int
}

// MoveTo requests an absolute player x.
func (t *InputTracker) MoveTo(x float64) {
	t.target = x
	t.hasTarget = true
	t.pendingDX = 0
}

// MoveBy requests a relative horizontal move.
func (t *InputTracker) MoveBy(dx float64) {
	if t.hasTarget {
		t.target += dx
		return
	}
	t.pendingDX += dx
}

// Press marks a direction as held.
func (t *InputTracker) Press(d Direction) {
	t.setHeld(d, true)
}

// Release clears a held direction.
func (t *InputTracker) Release(d Direction) {
	t.setHeld(d, false)
}

func (t *InputTracker) setHeld(d Direction, held bool) {
	switch d {
	case DirLeft:
		t.left = held
	case DirRight:
		t.right = held
	}
}

// Shoot queues one bullet.
func (t *InputTracker) Shoot() {
	t.shots++
}

// Held reports whether d is held.
func (t *InputTracker) Held(d Direction) bool {
	switch d {
	case DirLeft:
		return t.left
	case DirRight:
		return t.right
	}
	return false
}

// Resolve turns the accumulated input into one intent and clears the
// one-shot parts. Held directions stay.
func (t *InputTracker) Resolve(currentX, speed float64) Intent {
	intent := Intent{Shots: t.shots}

	if t.hasTarget {
		intent.DeltaX = t.target - currentX
	} else {
		intent.DeltaX = t.pendingDX
	}
	if t.left {
		intent.DeltaX -= speed
	}
	if t.right {
		intent.DeltaX += speed
	}

	t.hasTarget = false
	t.target = 0
	t.pendingDX = 0
	t.shots = 0
	return intent
}

// Reset drops all pending and held input.
func (t *InputTracker) Reset() {
	*t = InputTracker{}
}
