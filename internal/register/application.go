package register

import (
	"fmt"

	"github.com/rileyhilliard/medstock/internal/steps"
	"github.com/rileyhilliard/medstock/internal/theme"
)

// Step ids of the registration flow.
const (
	StepAccount  = 1
	StepBusiness = 2
	StepContact  = 3
	StepReview   = 4
)

// DefaultSteps returns the registration steps in order.
func DefaultSteps() []steps.Step {
	return []steps.Step{
		{ID: StepAccount, Title: "Account type", Subtitle: "Who is signing up"},
		{ID: StepBusiness, Title: "Business details", Subtitle: "Name and license on file"},
		{ID: StepContact, Title: "Contact", Subtitle: "Who we reach about orders"},
		{ID: StepReview, Title: "Review", Subtitle: "Check and submit"},
	}
}

// Application accumulates what the forms collect.
type Application struct {
	UserType     string
	BusinessName string
	License      string
	ContactName  string
	Email        string
	Phone        string

	// Submit is the review step's answer.
	Submit bool
	// Reference is assigned when the application is submitted.
	Reference string
}

// NewApplication starts with the default user type selected.
func NewApplication() *Application {
	return &Application{UserType: string(theme.DefaultUserType)}
}

// Summary returns a one-line recap of what a step collected.
func (a *Application) Summary(stepID int) string {
	switch stepID {
	case StepAccount:
		return theme.UserType(a.UserType).Label()
	case StepBusiness:
		if a.License == "" {
			return a.BusinessName
		}
		return fmt.Sprintf("%s (license %s)", a.BusinessName, a.License)
	case StepContact:
		return fmt.Sprintf("%s <%s> %s", a.ContactName, a.Email, a.Phone)
	}
	return ""
}
