package fsm

import "errors"

var (
	// ErrDegenerateFilter is returned by Table.Remove and Table.Has when no
	// filters are supplied. A filterless call would match every row, which
	// is always a programming mistake rather than a transient condition.
	ErrDegenerateFilter = errors.New("fsm: filter matches all transitions; narrow it with MatchFrom, MatchTo or MatchCondition")
)
