package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/clausius/internal/cli/formatter"
	"github.com/alexanderramin/clausius/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// clausiusHuhTheme returns a custom huh theme using the formatter palette.
func clausiusHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// substanceAnswers collects the raw form values before conversion.
type substanceAnswers struct {
	Name string

	TripleT, TripleP     string
	CriticalT, CriticalP string

	EnthalpyMelt, EnthalpySub, EnthalpyVap string
	VolumeMelt                             string

	AntoineTripleA, AntoineTripleB, AntoineTripleC       string
	AntoineCriticalA, AntoineCriticalB, AntoineCriticalC string
}

// validateFloat accepts any parseable number.
func validateFloat(s string) error {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

// validatePositiveFloat accepts a strictly positive number.
func validatePositiveFloat(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateNonZeroFloat accepts any non-zero number (the melting volume may
// be negative, as for water).
func validateNonZeroFloat(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v == 0 {
		return fmt.Errorf("enter a non-zero number")
	}
	return nil
}

func validateRequired(title string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", title)
		}
		return nil
	}
}

func numInput(title, placeholder string, value *string, validate func(string) error) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validate)
}

// substanceForm builds the interactive parameter entry form. Attention to
// units: kelvin, pascal, J/mol and cm³/mol, converted nowhere downstream.
func substanceForm(a *substanceAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Substance name").
				Placeholder("water").
				Value(&a.Name).
				Validate(validateRequired("substance name")),
		),
		huh.NewGroup(
			numInput("Triple-point temperature (K)", "273.16", &a.TripleT, validatePositiveFloat),
			numInput("Triple-point pressure (Pa)", "611.657", &a.TripleP, validatePositiveFloat),
			numInput("Critical temperature (K)", "647.096", &a.CriticalT, validatePositiveFloat),
			numInput("Critical pressure (Pa)", "22064000", &a.CriticalP, validatePositiveFloat),
		),
		huh.NewGroup(
			numInput("Melting enthalpy (J/mol)", "6010", &a.EnthalpyMelt, validatePositiveFloat),
			numInput("Sublimation enthalpy (J/mol)", "51060", &a.EnthalpySub, validatePositiveFloat),
			numInput("Vaporization enthalpy (J/mol)", "40660", &a.EnthalpyVap, validatePositiveFloat),
			numInput("Melting volume change (cm³/mol)", "-1.63", &a.VolumeMelt, validateNonZeroFloat),
		),
		huh.NewGroup(
			numInput("Antoine A at the triple point", "4.6543", &a.AntoineTripleA, validateFloat),
			numInput("Antoine B at the triple point", "1435.264", &a.AntoineTripleB, validateFloat),
			numInput("Antoine C at the triple point", "-64.848", &a.AntoineTripleC, validateFloat),
			numInput("Antoine A at the critical point", "3.55959", &a.AntoineCriticalA, validateFloat),
			numInput("Antoine B at the critical point", "643.748", &a.AntoineCriticalB, validateFloat),
			numInput("Antoine C at the critical point", "-198.043", &a.AntoineCriticalC, validateFloat),
		),
	).WithTheme(clausiusHuhTheme()).WithShowHelp(false)
}

// toSubstance converts validated form answers into a domain substance.
// Parsing cannot fail after form validation, but errors are still surfaced
// in case the answers came from flags.
func (a *substanceAnswers) toSubstance() (*domain.Substance, error) {
	parse := func(field, s string) (float64, error) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q: %w", field, s, err)
		}
		return v, nil
	}

	sub := &domain.Substance{Name: a.Name}
	fields := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"triple-point temperature", a.TripleT, &sub.TripleT},
		{"triple-point pressure", a.TripleP, &sub.TripleP},
		{"critical temperature", a.CriticalT, &sub.CriticalT},
		{"critical pressure", a.CriticalP, &sub.CriticalP},
		{"melting enthalpy", a.EnthalpyMelt, &sub.EnthalpyMelt},
		{"sublimation enthalpy", a.EnthalpySub, &sub.EnthalpySub},
		{"vaporization enthalpy", a.EnthalpyVap, &sub.EnthalpyVap},
		{"melting volume", a.VolumeMelt, &sub.VolumeMelt},
		{"Antoine A (triple)", a.AntoineTripleA, &sub.AntoineTriple.A},
		{"Antoine B (triple)", a.AntoineTripleB, &sub.AntoineTriple.B},
		{"Antoine C (triple)", a.AntoineTripleC, &sub.AntoineTriple.C},
		{"Antoine A (critical)", a.AntoineCriticalA, &sub.AntoineCritical.A},
		{"Antoine B (critical)", a.AntoineCriticalB, &sub.AntoineCritical.B},
		{"Antoine C (critical)", a.AntoineCriticalC, &sub.AntoineCritical.C},
	}
	for _, f := range fields {
		v, err := parse(f.name, f.raw)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}
	return sub, nil
}
