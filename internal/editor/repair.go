package editor

import (
	"github.com/roach88/cookbook/internal/position"
	"github.com/roach88/cookbook/internal/recipe"
)

// ScopeRepair records one scope whose ranks were rewritten.
type ScopeRepair struct {
	List      List               `json:"list"`
	Scope     string             `json:"scope"`
	Diagnosis position.Diagnosis `json:"diagnosis"`
}

// RepairReport lists every scope Repair touched. Clean scopes are omitted.
type RepairReport struct {
	Scopes []ScopeRepair `json:"scopes"`
}

// Diagnose inspects every scope of the session without changing it.
func (s *Session) Diagnose() RepairReport {
	report := RepairReport{Scopes: []ScopeRepair{}}
	report.Scopes = append(report.Scopes, diagnoseLayout(Ingredients, s.ingredients)...)
	report.Scopes = append(report.Scopes, diagnoseLoose(Ingredients, s.looseIngredients)...)
	report.Scopes = append(report.Scopes, diagnoseLayout(Instructions, s.instructions)...)
	report.Scopes = append(report.Scopes, diagnoseLoose(Instructions, s.looseInstructions)...)
	return report
}

// Repair renumbers every scope that is not already contiguous, keeping the
// current slice order. Section order and item positions are both covered.
func (s *Session) Repair() RepairReport {
	report := s.Diagnose()
	if len(report.Scopes) == 0 {
		return report
	}
	s.ingredients = repairLayout(s.ingredients)
	s.instructions = repairLayout(s.instructions)
	if len(s.looseIngredients) > 0 {
		s.looseIngredients = position.AutoCorrectPositions(s.looseIngredients)
	}
	if len(s.looseInstructions) > 0 {
		s.looseInstructions = position.AutoCorrectPositions(s.looseInstructions)
	}
	for _, sc := range report.Scopes {
		s.logger.Debug("positions repaired", "list", sc.List, "scope", sc.Scope,
			"conflicts", len(sc.Diagnosis.Conflicts), "missing", len(sc.Diagnosis.Missing))
	}
	return report
}

func diagnoseLayout[T any, P recipe.Item[T]](list List, l recipe.Layout[T]) []ScopeRepair {
	var out []ScopeRepair
	if l.Mode() == recipe.ModeFlat {
		if d := position.Diagnose[T, P](l.Items()); !d.Clean() {
			out = append(out, ScopeRepair{List: list, Scope: FlatScope, Diagnosis: d})
		}
		return out
	}
	secs := l.Sections()
	if d := position.Diagnose(secs); !d.Clean() {
		out = append(out, ScopeRepair{List: list, Scope: SectionList, Diagnosis: d})
	}
	for _, sec := range secs {
		if d := position.Diagnose[T, P](sec.Items); !d.Clean() {
			out = append(out, ScopeRepair{List: list, Scope: sec.ID, Diagnosis: d})
		}
	}
	return out
}

// diagnoseLoose reports flat items kept next to sections under FlatScope.
func diagnoseLoose[T any, P recipe.Item[T]](list List, loose []T) []ScopeRepair {
	if len(loose) == 0 {
		return nil
	}
	if d := position.Diagnose[T, P](loose); !d.Clean() {
		return []ScopeRepair{{List: list, Scope: FlatScope, Diagnosis: d}}
	}
	return nil
}

func repairLayout[T any, P recipe.Item[T]](l recipe.Layout[T]) recipe.Layout[T] {
	if l.Mode() == recipe.ModeFlat {
		return recipe.Flat(position.AutoCorrectPositions[T, P](recipe.CloneItems[T, P](l.Items())))
	}
	secs := position.AutoCorrectPositions(l.Sections())
	for i := range secs {
		secs[i].Items = position.AutoCorrectPositions[T, P](recipe.CloneItems[T, P](secs[i].Items))
	}
	return recipe.Sectioned(secs)
}
