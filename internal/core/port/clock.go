package port

import "time"

// Clock supplies the reference instant for status decisions, period
// boundaries and ledger windows. Injecting it keeps every computation
// deterministic under test.
type Clock interface {
	Now() time.Time
}

// UTCClock is the production clock. All scheduling and dayparting runs
// on UTC; timezone-aware dayparting is out of scope.
type UTCClock struct{}

func (UTCClock) Now() time.Time { return time.Now().UTC() }
