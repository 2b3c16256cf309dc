package vault

import "fmt"

// LoadFailure records one remote record that could not be brought into
// the cache, typically because it does not decrypt under the session
// key.
type LoadFailure struct {
	Kind string // "credential" or "note"
	ID   string
	Err  error
}

func (f LoadFailure) String() string {
	return fmt.Sprintf("%s %s: %v", f.Kind, f.ID, f.Err)
}

// LoadReport summarises a full cache reload. Failures are per-record:
// one undecryptable record never blocks the rest of the vault.
type LoadReport struct {
	Credentials int
	Notes       int
	Failures    []LoadFailure
}

// Partial reports whether any record was skipped.
func (r LoadReport) Partial() bool {
	return len(r.Failures) > 0
}
