package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/roach88/cookbook/internal/editor"
	"github.com/roach88/cookbook/internal/recipe"
	"github.com/roach88/cookbook/internal/store"
)

// renderDocument writes the human-readable form of a recipe.
func renderDocument(w io.Writer, doc recipe.Document) {
	fmt.Fprintf(w, "Recipe: %s\n", doc.Title)
	fmt.Fprintf(w, "ID: %s\n", doc.ID)

	fmt.Fprintln(w)
	renderLayout(w, "Ingredients", doc.IngredientLayout(), ingredientLine)
	fmt.Fprintln(w)
	renderLayout(w, "Instructions", doc.InstructionLayout(), instructionLine)
}

func renderLayout[T any, P recipe.Item[T]](w io.Writer, title string, l recipe.Layout[T], line func(T) string) {
	fmt.Fprintf(w, "%s (%s)\n", title, l.Mode())
	if l.Mode() == recipe.ModeFlat {
		renderItems[T, P](w, "  ", l.Items(), line)
		return
	}
	for i := range l.Sections() {
		sec := &l.Sections()[i]
		fmt.Fprintf(w, "  #%s %s <%s>\n", slot(sec.Slot()), sec.Name, sec.ID)
		if len(sec.Items) == 0 {
			fmt.Fprintln(w, "    (empty)")
			continue
		}
		renderItems[T, P](w, "    ", sec.Items, line)
	}
}

func renderItems[T any, P recipe.Item[T]](w io.Writer, indent string, items []T, line func(T) string) {
	if len(items) == 0 {
		fmt.Fprintf(w, "%s(empty)\n", indent)
		return
	}
	for i := range items {
		fmt.Fprintf(w, "%s[%s] %s\n", indent, slot(P(&items[i]).Slot()), line(items[i]))
	}
}

func ingredientLine(ing recipe.Ingredient) string {
	var b strings.Builder
	b.WriteString(ing.Name)
	if ing.Amount != nil {
		b.WriteString(" - ")
		b.WriteString(number(*ing.Amount))
		if ing.Unit != "" {
			b.WriteString(" " + ing.Unit)
		}
	}
	if ing.Notes != "" {
		b.WriteString(" (" + ing.Notes + ")")
	}
	return b.String()
}

func instructionLine(ins recipe.Instruction) string {
	s := fmt.Sprintf("%s. %s", number(ins.Step), ins.Content)
	if ins.Duration != nil {
		s += fmt.Sprintf(" (%s min)", number(*ins.Duration))
	}
	return s
}

func slot(n int, ok bool) string {
	if !ok {
		return "-"
	}
	return strconv.Itoa(n)
}

func number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// renderRepair writes one line per scope that needs renumbering.
func renderRepair(w io.Writer, report editor.RepairReport) {
	if len(report.Scopes) == 0 {
		fmt.Fprintln(w, "✓ Positions are contiguous")
		return
	}
	fmt.Fprintf(w, "Found position problems in %d scope(s)\n", len(report.Scopes))
	for _, sc := range report.Scopes {
		fmt.Fprintf(w, "  %s/%s:", sc.List, sc.Scope)
		d := sc.Diagnosis
		for _, c := range d.Conflicts {
			fmt.Fprintf(w, " duplicate %d (%s);", c.Position, strings.Join(c.IDs, ", "))
		}
		if len(d.Missing) > 0 {
			fmt.Fprintf(w, " missing %s;", joinInts(d.Missing))
		}
		if len(d.Negative) > 0 {
			fmt.Fprintf(w, " negative %s;", strings.Join(d.Negative, ", "))
		}
		if len(d.OutOfRange) > 0 {
			fmt.Fprintf(w, " out of range %s;", strings.Join(d.OutOfRange, ", "))
		}
		if len(d.Unassigned) > 0 {
			fmt.Fprintf(w, " unassigned %s;", strings.Join(d.Unassigned, ", "))
		}
		if d.Misordered {
			fmt.Fprint(w, " misordered;")
		}
		fmt.Fprintln(w)
	}
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

func renderSummaries(w io.Writer, summaries []store.Summary) {
	if len(summaries) == 0 {
		fmt.Fprintln(w, "No recipes stored")
		return
	}
	for _, s := range summaries {
		fmt.Fprintf(w, "%s  v%d  %s  (ingredients: %s, instructions: %s)\n",
			s.ID, s.Version, s.Title, s.IngredientMode, s.InstructionMode)
	}
}
