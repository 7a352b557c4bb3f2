package dispatch

// Stats are the engine's lookup counters since creation.
type Stats struct {
	Lookups     uint64
	ChecksDone  uint64
	ChecksSaved uint64
}

// SavedPercent is the share of rule evaluations avoided by group skipping.
func (s Stats) SavedPercent() float64 {
	total := s.ChecksDone + s.ChecksSaved
	if total == 0 {
		return 0
	}
	return float64(s.ChecksSaved) * 100 / float64(total)
}

// Stats returns the current counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Lookups:     e.lookups.Load(),
		ChecksDone:  e.checksDone.Load(),
		ChecksSaved: e.checksSaved.Load(),
	}
}

// logStats logs the counters every 20 lookups up to 100, then every 100.
func (e *Engine) logStats(n uint64) {
	if n < 100 && n%20 != 0 || n >= 100 && n%100 != 0 {
		return
	}
	s := e.Stats()
	e.logger.Debug().
		Uint64("lookups", s.Lookups).
		Uint64("checksDone", s.ChecksDone).
		Uint64("checksSaved", s.ChecksSaved).
		Float64("savedPercent", s.SavedPercent()).
		Msg("Lookup statistics")
}
