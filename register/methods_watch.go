package register

// Watch marks the bit at pos so that mutations flipping it invoke the
// callback installed with SetWatchFunc.
// Returns ErrBitRange when pos is beyond the register width.
func (r *Register) Watch(pos uint) error {
	if err := r.checkPos(pos); err != nil {
		return err
	}
	r.watched |= 1 << pos
	return nil
}

// Unwatch removes the watchpoint at pos. Unknown positions are a no-op.
func (r *Register) Unwatch(pos uint) {
	if pos < r.width {
		r.watched &^= 1 << pos
	}
}

// SetWatchFunc installs the callback fired when a watched bit changes.
// A nil fn disables notification without clearing the watched set.
func (r *Register) SetWatchFunc(fn WatchFunc) {
	r.onWatch = fn
}

// History returns a copy of all mutations recorded so far, oldest first.
func (r *Register) History() []Event {
	out := make([]Event, len(r.history))
	copy(out, r.history)
	return out
}

// ClearHistory drops the recorded mutations.
func (r *Register) ClearHistory() {
	r.history = r.history[:0]
}
