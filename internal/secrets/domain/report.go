package domain

// ValidationEntry is the outcome for one descriptor of a validation run.
type ValidationEntry struct {
	Name         string
	Source       Source
	Required     bool
	ResolvedFrom ResolvedFrom
	OK           bool
	Error        string
}

// ValidationReport lists validation outcomes in descriptor order.
type ValidationReport struct {
	Entries []ValidationEntry
}

// Passed reports whether every required entry resolved.
func (r *ValidationReport) Passed() bool {
	for _, entry := range r.Entries {
		if entry.Required && !entry.OK {
			return false
		}
	}
	return true
}

// Failed returns the entries that did not resolve.
func (r *ValidationReport) Failed() []ValidationEntry {
	failed := []ValidationEntry{}
	for _, entry := range r.Entries {
		if !entry.OK {
			failed = append(failed, entry)
		}
	}
	return failed
}
