// Package time contains time related helpers
package time

import (
	"fmt"
	"time"
)

// CommitLayout is the only accepted wire format for commit dates:
// UTC, second precision, literal Z, no offset or fraction
const CommitLayout = "2006-01-02T15:04:05Z"

// Now is the process clock. Tests swap it with testkit.Swap
var Now = time.Now

// ParseCommit parses s strictly in CommitLayout.
// time.Parse tolerates a fraction after the seconds field, so length is checked first
func ParseCommit(s string) (time.Time, error) {
	if len(s) != len(CommitLayout) {
		return time.Time{}, fmt.Errorf("commit date %q: want layout %s", s, CommitLayout)
	}
	return time.Parse(CommitLayout, s)
}
