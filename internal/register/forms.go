package register

import (
	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/medstock/internal/theme"
)

// buildForm returns the huh form for a step, bound to app's fields.
func buildForm(stepID int, app *Application) *huh.Form {
	var groups []*huh.Group

	switch stepID {
	case StepAccount:
		options := make([]huh.Option[string], 0, len(theme.UserTypes()))
		for _, u := range theme.UserTypes() {
			options = append(options, huh.NewOption(u.Label(), string(u)))
		}
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title("Account type").
				Description("The storefront is tailored to how you stock and sell").
				Options(options...).
				Value(&app.UserType),
		))

	case StepBusiness:
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Business name").
				Placeholder("Northside Pharmacy").
				Value(&app.BusinessName),
			huh.NewInput().
				Title("License number").
				Description("Optional; you can add it later").
				Placeholder("PH-000000").
				Value(&app.License),
		))

	case StepContact:
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Contact name").
				Value(&app.ContactName),
			huh.NewInput().
				Title("Email").
				Placeholder("orders@example.com").
				Value(&app.Email),
			huh.NewInput().
				Title("Phone").
				Value(&app.Phone),
		))

	default:
		groups = append(groups, huh.NewGroup(
			huh.NewConfirm().
				Title("Submit application?").
				Description(reviewText(app)).
				Affirmative("Submit").
				Negative("Edit").
				Value(&app.Submit),
		))
	}

	return huh.NewForm(groups...).WithShowHelp(false)
}

func reviewText(app *Application) string {
	return "Account: " + app.Summary(StepAccount) + "\n" +
		"Business: " + app.Summary(StepBusiness) + "\n" +
		"Contact: " + app.Summary(StepContact)
}
