// Package extract implements the dispatch move extraction engine: a
// stateful, line-oriented scanner that classifies each line of a normalized
// email body and emits zero or more complete move records per email.
//
// The scan is single-pass with no backtracking. Date, time and vehicle
// counts observed on earlier lines carry forward as ambient context and
// backfill moves that lack their own values at flush time.
package extract

import "dispatch-move-logger/internal/models"

// scanContext is the per-email ambient state: the last-seen date and time,
// and the running sum of vehicle counts. It lives for exactly one Extract
// call. The counts are cumulative and never reset mid-email, so moves
// without their own counts inherit the same running snapshot.
type scanContext struct {
	date   string
	time   string
	counts models.VehicleCounts
}

// scan drives one extraction pass over normalized lines.
type scan struct {
	ctx     scanContext
	pending models.Move
	out     []models.Move
}

// flush finalizes the pending move: backfills date and time from context,
// inherits the running context counts when the move has none of its own,
// cleans the places, and appends the move to the output unless every
// non-count field is empty. A fresh pending move replaces it.
func (s *scan) flush() {
	if s.pending.Date == "" {
		s.pending.Date = s.ctx.date
	}
	if s.pending.Time == "" {
		s.pending.Time = s.ctx.time
	}
	if s.pending.Counts.Total() == 0 && s.ctx.counts.Total() > 0 {
		s.pending.Counts = s.ctx.counts
	}
	s.pending.Origin = CleanPlace(s.pending.Origin)
	s.pending.Destination = CleanPlace(s.pending.Destination)
	if !s.pending.Empty() {
		s.out = append(s.out, s.pending)
	}
	s.pending = models.Move{}
}

// step applies the classifiers to one normalized, non-ignored line in
// priority order. It returns after the first exclusive classifier fires;
// the time and vehicle classifiers are non-exclusive and always run on
// generic lines before labeled-field handling.
func (s *scan) step(line string) {
	if date, ok := matchWeekdayHeader(line); ok {
		s.flush()
		s.ctx.date = date
		if t, ok := findTime(line); ok {
			s.ctx.time = t
		}
		return
	}
	if date, ok := matchBareDate(line); ok {
		s.ctx.date = date
		return
	}

	if t, ok := findTime(line); ok {
		s.ctx.time = t
	}
	s.ctx.counts = s.ctx.counts.Add(countVehicles(line))

	if place, ok := matchLabeledPlace(fromLabelRe, line); ok {
		s.pending.Origin = place
		return
	}
	if place, ok := matchLabeledPlace(toLabelRe, line); ok {
		s.pending.Destination = place
		return
	}
	if t, place, ok := matchAddressField(collectionRe, line); ok {
		if t != "" {
			s.pending.Time = t
		}
		s.pending.Origin = place
		return
	}
	if t, place, ok := matchAddressField(dropOffRe, line); ok {
		if t != "" {
			s.pending.Time = t
		}
		s.pending.Destination = place
		return
	}
	if origin, destination, ok := matchRoutePhrase(line); ok {
		if s.pending.Origin == "" && s.pending.Destination == "" {
			s.pending.Origin = origin
			s.pending.Destination = destination
		}
		return
	}
	if isBoundary(line) {
		s.flush()
	}
}

// Extract scans one email body and returns the moves it asserts, in order
// of appearance. Lines that match no classifier are no-ops; malformed
// input degrades to an empty result rather than an error.
func Extract(body string) []models.Move {
	s := &scan{}
	for _, raw := range splitLines(body) {
		line := NormalizeLine(raw)
		if line == "" || isIgnorable(line) {
			continue
		}
		s.step(line)
	}
	s.flush()
	return s.out
}
