package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/clausius/internal/domain"
	"github.com/alexanderramin/clausius/internal/service"
)

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// FormatSubstanceList renders a table of substances with their triple and
// critical points.
func FormatSubstanceList(substances []*domain.Substance) string {
	headers := []string{"NAME", "TRIPLE (K / Pa)", "CRITICAL (K / Pa)"}
	rows := make([][]string, 0, len(substances))
	for _, s := range substances {
		rows = append(rows, []string{
			Bold(s.Name),
			fmt.Sprintf("%s / %s", num(s.TripleT), num(s.TripleP)),
			fmt.Sprintf("%s / %s", num(s.CriticalT), num(s.CriticalP)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatSubstance renders the full parameter set of one substance.
func FormatSubstance(s *domain.Substance) string {
	var b strings.Builder

	b.WriteString(Header(s.Name))
	b.WriteString("\n\n")

	line := func(label, value, unit string) {
		b.WriteString(fmt.Sprintf("  %-28s %s %s\n", Dim(label), value, Dim(unit)))
	}

	line("Triple point", num(s.TripleT)+" K at "+num(s.TripleP), "Pa")
	line("Critical point", num(s.CriticalT)+" K at "+num(s.CriticalP), "Pa")
	line("Melting enthalpy", num(s.EnthalpyMelt), "J/mol")
	line("Sublimation enthalpy", num(s.EnthalpySub), "J/mol")
	line("Vaporization enthalpy", num(s.EnthalpyVap), "J/mol")
	line("Melting volume change", num(s.VolumeMelt), "cm³/mol")

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s\n", Dim("Antoine coefficients (log10 P/bar, T/K)")))
	line("  at triple point", fmt.Sprintf("A=%s B=%s C=%s",
		num(s.AntoineTriple.A), num(s.AntoineTriple.B), num(s.AntoineTriple.C)), "")
	line("  at critical point", fmt.Sprintf("A=%s B=%s C=%s",
		num(s.AntoineCritical.A), num(s.AntoineCritical.B), num(s.AntoineCritical.C)), "")

	return strings.TrimRight(b.String(), "\n")
}

// FormatRenderResult summarizes a finished render: output path plus one
// line per plotted curve.
func FormatRenderResult(r *service.RenderResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Saved %s to %s\n",
		Bold("phase diagram of "+r.Substance.Name), StyleGreen.Render(r.OutputPath)))
	for _, c := range r.Curves {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			StyleBlue.Render("•"), c.Label, Dim(fmt.Sprintf("(%d points)", c.Points))))
	}

	return strings.TrimRight(b.String(), "\n")
}
