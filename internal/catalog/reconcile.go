package catalog

import "hurghada-dream/go_backend/internal/domain/activity"

type Decision int

const (
	Keep Decision = iota
	Replace
)

func (d Decision) String() string {
	if d == Replace {
		return "replace"
	}
	return "keep"
}

// Decide compares a fetched snapshot with the local one. Identical snapshots
// (same order, same contents) are kept; anything else is replaced wholesale.
func Decide(current, fetched []activity.Activity) Decision {
	if activity.EqualSnapshots(current, fetched) {
		return Keep
	}
	return Replace
}
