package position

import "sort"

// Conflict is one rank held by two or more elements.
type Conflict struct {
	Position int      `json:"position"`
	IDs      []string `json:"ids"`
}

// ConflictReport is the result of DetectPositionConflicts.
type ConflictReport struct {
	HasConflicts bool       `json:"hasConflicts"`
	Conflicts    []Conflict `json:"conflicts"`
}

// DetectPositionConflicts groups elements by stored rank and reports every
// rank held more than once. Elements without a rank are not yet assigned
// and are skipped. Conflicts are sorted by rank; ids keep input order.
func DetectPositionConflicts[T any, P Ranked[T]](items []T) ConflictReport {
	groups := make(map[int][]string)
	for i := range items {
		p := P(&items[i])
		rank, ok := p.Slot()
		if !ok {
			continue
		}
		groups[rank] = append(groups[rank], p.Key())
	}

	report := ConflictReport{Conflicts: []Conflict{}}
	for rank, ids := range groups {
		if len(ids) > 1 {
			report.Conflicts = append(report.Conflicts, Conflict{Position: rank, IDs: ids})
		}
	}
	sort.Slice(report.Conflicts, func(i, j int) bool {
		return report.Conflicts[i].Position < report.Conflicts[j].Position
	})
	report.HasConflicts = len(report.Conflicts) > 0
	return report
}

// Diagnosis is a fuller health check of one scope.
type Diagnosis struct {
	ConflictReport

	// Missing lists ranks in 0..n-1 that no element holds.
	Missing []int `json:"missing,omitempty"`

	// Negative lists ids whose stored rank is below zero.
	Negative []string `json:"negative,omitempty"`

	// OutOfRange lists ids whose stored rank is n or greater.
	OutOfRange []string `json:"outOfRange,omitempty"`

	// Unassigned lists ids with no stored rank.
	Unassigned []string `json:"unassigned,omitempty"`

	// Misordered is true when some stored rank differs from its slice index.
	Misordered bool `json:"misordered,omitempty"`
}

// Clean reports whether the scope already satisfies 0..n-1 in slice order.
func (d Diagnosis) Clean() bool {
	return !d.HasConflicts && len(d.Missing) == 0 && len(d.Negative) == 0 &&
		len(d.OutOfRange) == 0 && len(d.Unassigned) == 0 && !d.Misordered
}

// Diagnose inspects a scope without changing it.
func Diagnose[T any, P Ranked[T]](items []T) Diagnosis {
	d := Diagnosis{ConflictReport: DetectPositionConflicts[T, P](items)}
	n := len(items)
	held := make([]bool, n)
	for i := range items {
		p := P(&items[i])
		rank, ok := p.Slot()
		switch {
		case !ok:
			d.Unassigned = append(d.Unassigned, p.Key())
		case rank < 0:
			d.Negative = append(d.Negative, p.Key())
		case rank >= n:
			d.OutOfRange = append(d.OutOfRange, p.Key())
		default:
			held[rank] = true
		}
		if ok && rank != i {
			d.Misordered = true
		}
	}
	for rank, ok := range held {
		if !ok {
			d.Missing = append(d.Missing, rank)
		}
	}
	return d
}

// IsContiguous reports whether ranks are exactly 0..n-1 in slice order.
func IsContiguous[T any, P Ranked[T]](items []T) bool {
	return Diagnose[T, P](items).Clean()
}
