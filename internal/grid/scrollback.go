package grid

// DefaultScrollbackCap is the default bound on stored scrollback rows
// (spec §3, "Open questions": not currently tunable via external config,
// but exposed here as SetCap for implementations/tests that want it).
const DefaultScrollbackCap = 10000

// Scrollback is a bounded FIFO of evicted rows. Rows are immutable once
// pushed; the head is dropped once length exceeds the cap.
type Scrollback struct {
	rows []Row
	cap  int
}

// NewScrollback returns an empty scrollback bounded at cap rows.
func NewScrollback(cap int) *Scrollback {
	if cap < 0 {
		cap = 0
	}
	return &Scrollback{cap: cap}
}

// Push appends row to the tail, then drops from the head until the cap is
// respected.
func (s *Scrollback) Push(row Row) {
	s.rows = append(s.rows, row.Clone())
	s.trim()
}

func (s *Scrollback) trim() {
	if s.cap <= 0 {
		s.rows = s.rows[:0]
		return
	}
	if over := len(s.rows) - s.cap; over > 0 {
		s.rows = append([]Row(nil), s.rows[over:]...)
	}
}

// Len returns the number of stored rows.
func (s *Scrollback) Len() int {
	return len(s.rows)
}

// Row returns the row at index, where 0 is the oldest. Panics are avoided
// by returning the zero Row when index is out of range.
func (s *Scrollback) Row(index int) Row {
	if index < 0 || index >= len(s.rows) {
		return Row{}
	}
	return s.rows[index]
}

// Rows returns all stored rows, oldest first. The returned slice is owned
// by the caller.
func (s *Scrollback) Rows() []Row {
	out := make([]Row, len(s.rows))
	copy(out, s.rows)
	return out
}

// Clear discards all stored rows.
func (s *Scrollback) Clear() {
	s.rows = nil
}

// Cap returns the current maximum capacity.
func (s *Scrollback) Cap() int {
	return s.cap
}

// SetCap changes the maximum capacity, trimming from the head if the
// scrollback is already over the new limit.
func (s *Scrollback) SetCap(cap int) {
	if cap < 0 {
		cap = 0
	}
	s.cap = cap
	s.trim()
}

// Replace discards all stored rows and replaces them with rows, in order,
// oldest first, trimming to cap. Used by reflow when rebuilding the
// transcript at a new width.
func (s *Scrollback) Replace(rows []Row) {
	s.rows = make([]Row, len(rows))
	for i, r := range rows {
		s.rows[i] = r.Clone()
	}
	s.trim()
}
