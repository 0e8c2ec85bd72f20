package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// itineraHuhTheme returns a custom huh theme using the formatter palette.
func itineraHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// tripAnswers holds the raw wizard input before it becomes a request.
type tripAnswers struct {
	arrival   string
	departure string
	stay      string
	adults    string
	ages      string
	seniors   bool
}

func validateDate(s string) error {
	if _, err := time.Parse(contract.DateLayout, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

func validateAges(s string) error {
	_, err := parseAges(s)
	return err
}

// parseAges reads "5, 8, 1" into ages. Blank input means no children.
func parseAges(s string) ([]int, error) {
	var ages []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		age, err := strconv.Atoi(part)
		if err != nil || age < 0 || age > 17 {
			return nil, fmt.Errorf("ages are whole numbers from 0 to 17")
		}
		ages = append(ages, age)
	}
	return ages, nil
}

// request turns validated answers plus per-day picks into a plan request.
// picks[i] holds the activity ids chosen for day i+1.
func (a tripAnswers) request(picks [][]string) (*contract.PlanRequest, error) {
	ages, err := parseAges(a.ages)
	if err != nil {
		return nil, err
	}
	adults := 0
	if a.adults != "" {
		if adults, err = strconv.Atoi(a.adults); err != nil {
			return nil, fmt.Errorf("invalid adult count %q", a.adults)
		}
	}

	req := &contract.PlanRequest{
		Arrival:         strings.TrimSpace(a.arrival),
		Departure:       strings.TrimSpace(a.departure),
		AccommodationID: a.stay,
		Party: contract.PartyRequest{
			Adults:     adults,
			Children:   len(ages),
			ChildAges:  ages,
			HasSeniors: a.seniors,
		},
	}
	for i, ids := range picks {
		if len(ids) > 0 {
			req.Days = append(req.Days, contract.DaySelection{Day: i + 1, ActivityIDs: ids})
		}
	}
	return req, nil
}

func (a tripAnswers) tripDates() (domain.TripDates, error) {
	arrival, err := time.Parse(contract.DateLayout, strings.TrimSpace(a.arrival))
	if err != nil {
		return domain.TripDates{}, err
	}
	departure, err := time.Parse(contract.DateLayout, strings.TrimSpace(a.departure))
	if err != nil {
		return domain.TripDates{}, err
	}
	return domain.NewTripDates(arrival, departure)
}

// runPlanWizard asks for the trip basics, then for the activities of each
// trip day.
func runPlanWizard(ctx context.Context, app *App) (*contract.PlanRequest, error) {
	accs, err := app.Catalog.ListAccommodations(ctx)
	if err != nil {
		return nil, err
	}
	if len(accs) == 0 {
		return nil, fmt.Errorf("the catalog has no accommodations; run 'itinera catalog import' first")
	}
	stayOptions := make([]huh.Option[string], 0, len(accs))
	for _, acc := range accs {
		stayOptions = append(stayOptions, huh.NewOption(fmt.Sprintf("%s (%s)", acc.Name, acc.Location), acc.ID))
	}

	answers := tripAnswers{adults: "2"}
	basics := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Chegada (YYYY-MM-DD)").Placeholder("2025-01-10").Value(&answers.arrival).Validate(validateDate),
			huh.NewInput().Title("Partida (YYYY-MM-DD)").Placeholder("2025-01-13").Value(&answers.departure).Validate(validateDate),
			huh.NewSelect[string]().Title("Hospedagem").Options(stayOptions...).Value(&answers.stay),
		),
		huh.NewGroup(
			huh.NewInput().Title("Adultos").Value(&answers.adults).Validate(validateNonNegativeInt),
			huh.NewInput().Title("Idades das crianças").Description("separadas por vírgula; em branco se não houver").Value(&answers.ages).Validate(validateAges),
			huh.NewConfirm().Title("Há pessoas com 60+ anos?").Value(&answers.seniors),
		),
	).WithTheme(itineraHuhTheme()).WithShowHelp(false)
	if err := basics.RunWithContext(ctx); err != nil {
		return nil, err
	}

	dates, err := answers.tripDates()
	if err != nil {
		return nil, err
	}

	acts, err := app.Catalog.ListActivities(ctx, nil)
	if err != nil {
		return nil, err
	}
	actOptions := make([]huh.Option[string], 0, len(acts))
	for _, a := range acts {
		label := fmt.Sprintf("%s · %s · %s", a.Name, a.Type.Label(), a.Pricing.Adult)
		actOptions = append(actOptions, huh.NewOption(label, a.ID))
	}

	picks := make([][]string, dates.Days)
	groups := make([]*huh.Group, dates.Days)
	for i := range picks {
		groups[i] = huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(fmt.Sprintf("Dia %d · %s", i+1, formatter.ShortDate(dates.DateOfDay(i+1)))).
				Description("nenhuma seleção deixa o dia livre").
				Options(actOptions...).
				Value(&picks[i]),
		)
	}
	dayForm := huh.NewForm(groups...).WithTheme(itineraHuhTheme()).WithShowHelp(false)
	if err := dayForm.RunWithContext(ctx); err != nil {
		return nil, err
	}

	return answers.request(picks)
}
