package clock

import "time"

// Clock supplies the current calendar date. The engine takes a Clock
// rather than reading the wall clock so the backward streak walk is
// deterministic under test and steerable in dev mode.
type Clock interface {
	Today() Date
}

// System reads the real wall clock in the local timezone.
type System struct{}

func (System) Today() Date { return DateOf(time.Now()) }

// Fixed always reports the same date. Used by tests and by dev mode,
// where the simulated date is loaded from settings at startup.
type Fixed Date

func (f Fixed) Today() Date { return Date(f) }
