package fsm

import (
	"reflect"
	"slices"
)

// transition is one rule row. Rows marked removed are tombstones: they keep
// matching while the machine still sits in their source state and are swept
// on the first poll performed from any other state.
type transition[T comparable] struct {
	from    StateType
	to      StateType
	cond    Condition[T]
	removed bool
}

// Table is an ordered transition rule set consulted by a Machine on every
// tick. Insertion order is significant: the first matching row whose
// condition holds wins. Tables follow the runtime's single-goroutine model
// and are not safe for concurrent use.
type Table[T comparable] struct {
	rows  []*transition[T]
	start StateType
	sweep bool
}

// NewTable creates an empty transition table.
func NewTable[T comparable]() *Table[T] {
	return &Table[T]{}
}

// Start configures the state a machine enters on its first poll, before any
// state is active. StateNone clears it.
func (t *Table[T]) Start(st StateType) {
	t.start = st
}

// Add appends a rule unless an identical (from, to, condition) triple is
// already present. Conditions are compared by function identity.
func (t *Table[T]) Add(from, to StateType, cond Condition[T]) {
	if t.contains(from, to, cond) {
		return
	}
	t.rows = append(t.rows, &transition[T]{from: from, to: to, cond: cond})
}

// AddGlobal appends a wildcard rule matching any current state.
func (t *Table[T]) AddGlobal(to StateType, cond Condition[T]) {
	t.Add(StateAny, to, cond)
}

// Filter narrows Remove and Has to a subset of rows. Dimensions without a
// filter are wildcards.
type Filter[T comparable] func(*rowFilter[T])

type rowFilter[T comparable] struct {
	from, to *StateType
	cond     Condition[T]
}

// MatchFrom restricts to rows with the given source state. StateAny matches
// only global rules, not every row.
func MatchFrom[T comparable](st StateType) Filter[T] {
	return func(f *rowFilter[T]) { f.from = &st }
}

// MatchTo restricts to rows with the given target state.
func MatchTo[T comparable](st StateType) Filter[T] {
	return func(f *rowFilter[T]) { f.to = &st }
}

// MatchCondition restricts to rows carrying the given predicate, compared by
// function identity.
func MatchCondition[T comparable](cond Condition[T]) Filter[T] {
	return func(f *rowFilter[T]) { f.cond = cond }
}

// Remove deletes every live rule matched by the filters. With now the rows
// are dropped immediately; otherwise they are tombstoned and swept once the
// owning machine has moved off their source state, so a rule matching the
// current state never vanishes mid-tick. Zero filters is rejected with
// ErrDegenerateFilter and no rows are touched.
func (t *Table[T]) Remove(now bool, filters ...Filter[T]) error {
	f, err := buildFilter(filters)
	if err != nil {
		return err
	}
	for i := len(t.rows) - 1; i >= 0; i-- {
		row := t.rows[i]
		if row.removed || !f.matches(row) {
			continue
		}
		if now {
			t.rows = slices.Delete(t.rows, i, i+1)
			continue
		}
		row.removed = true
		t.sweep = true
	}
	return nil
}

// Has reports whether any live rule matches the filters. Zero filters is
// rejected with ErrDegenerateFilter.
func (t *Table[T]) Has(filters ...Filter[T]) (bool, error) {
	f, err := buildFilter(filters)
	if err != nil {
		return false, err
	}
	for _, row := range t.rows {
		if !row.removed && f.matches(row) {
			return true, nil
		}
	}
	return false, nil
}

// Replace rewrites every live rule touching target so it refers to
// replacement instead, preserving the rule's other endpoint and condition,
// then removes the originals under the same immediate/deferred policy as
// Remove.
func (t *Table[T]) Replace(target, replacement StateType, now bool) {
	if target == replacement {
		return
	}
	var obsolete []*transition[T]
	for _, row := range t.rows {
		if row.removed || (row.from != target && row.to != target) {
			continue
		}
		from, to := row.from, row.to
		if from == target {
			from = replacement
		}
		if to == target {
			to = replacement
		}
		obsolete = append(obsolete, row)
		t.Add(from, to, row.cond)
	}
	for _, row := range obsolete {
		if now {
			if i := slices.Index(t.rows, row); i >= 0 {
				t.rows = slices.Delete(t.rows, i, i+1)
			}
			continue
		}
		row.removed = true
		t.sweep = true
	}
}

// Poll resolves the next state for a machine currently in current. It
// returns the configured start state when no state is active yet, otherwise
// the target of the first matching rule whose condition holds, or current
// unchanged when nothing matches.
func (t *Table[T]) Poll(current StateType, owner T) StateType {
	if current == StateNone && t.start != StateNone {
		return t.start
	}

	if t.sweep {
		// Tombstones whose source is still the current state stay
		// matchable until the machine leaves it; everything else is
		// dropped now.
		t.sweep = false
		for i := len(t.rows) - 1; i >= 0; i-- {
			row := t.rows[i]
			if !row.removed {
				continue
			}
			if row.from == current {
				t.sweep = true
				continue
			}
			t.rows = slices.Delete(t.rows, i, i+1)
		}
	}

	for _, row := range t.rows {
		if row.from != StateAny && row.from != current {
			continue
		}
		if row.cond != nil && !row.cond(owner) {
			continue
		}
		return row.to
	}
	return current
}

// Len returns the number of live rules.
func (t *Table[T]) Len() int {
	n := 0
	for _, row := range t.rows {
		if !row.removed {
			n++
		}
	}
	return n
}

func (t *Table[T]) contains(from, to StateType, cond Condition[T]) bool {
	for _, row := range t.rows {
		if !row.removed && row.from == from && row.to == to && sameCondition(row.cond, cond) {
			return true
		}
	}
	return false
}

func buildFilter[T comparable](filters []Filter[T]) (*rowFilter[T], error) {
	if len(filters) == 0 {
		return nil, ErrDegenerateFilter
	}
	f := &rowFilter[T]{}
	for _, apply := range filters {
		apply(f)
	}
	if f.from == nil && f.to == nil && f.cond == nil {
		return nil, ErrDegenerateFilter
	}
	return f, nil
}

func (f *rowFilter[T]) matches(row *transition[T]) bool {
	if f.from != nil && row.from != *f.from {
		return false
	}
	if f.to != nil && row.to != *f.to {
		return false
	}
	if f.cond != nil && !sameCondition(row.cond, f.cond) {
		return false
	}
	return true
}

// sameCondition compares predicates by function identity. Reflection is used
// only for pointer comparison, never for construction.
func sameCondition[T comparable](a, b Condition[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
