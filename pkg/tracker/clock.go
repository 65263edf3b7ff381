package tracker

import "time"

// Clock fixes the two ambient time inputs of a report run: the instant
// that closes open intervals and the offset that buckets starts into
// local dates. Tests substitute a fixed clock.
type Clock struct {
	Now   time.Time
	Local *time.Location
}

// SystemClock captures the wall clock and the process's current UTC
// offset. The single offset applies uniformly across the whole range;
// DST transitions inside it are not corrected.
func SystemClock() Clock {
	now := time.Now()
	_, offset := now.Zone()
	return Clock{
		Now:   now.UTC(),
		Local: time.FixedZone("local", offset),
	}
}
