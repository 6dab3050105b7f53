package diagnostics

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// RunStats summarizes one resolver run: how many declarations were emitted
// at each completeness, and how long it took. A convenience for callers
// (tests, the dump tool) that would otherwise have to count emit callbacks
// themselves.
type RunStats struct {
	RunID    uuid.UUID
	Partial  int
	Complete int
	Elapsed  time.Duration
}

// Total is the count of emit calls made during the run.
func (s RunStats) Total() int { return s.Partial + s.Complete }

// String renders a one-line human-readable summary, e.g.
// "run 3fa8...: 42 declarations (17 partial, 25 complete) in now". The
// elapsed part is humanize.RelTime's wording at whole-second resolution:
// "now" for anything under one second, "N seconds" and coarser units above.
func (s RunStats) String() string {
	return fmt.Sprintf(
		"run %s: %s declarations (%d partial, %d complete) in %s",
		s.RunID, humanize.Comma(int64(s.Total())), s.Partial, s.Complete,
		humanize.RelTime(time.Now().Add(-s.Elapsed), time.Now(), "", ""),
	)
}
