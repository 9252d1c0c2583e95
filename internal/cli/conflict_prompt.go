package cli

import (
	"fmt"
	"strings"

	studyapp "github.com/alexanderramin/studyplan/internal/app"
	"github.com/charmbracelet/huh"
)

// autoChoice is the prompt value for "let the planner decide". Item names
// are never empty.
const autoChoice = ""

// conflictPrompt asks which conflicting item goes first. It returns
// autoChoice to force automatic ordering. Tests replace it.
var conflictPrompt = runConflictPrompt

func conflictForm(c *studyapp.ConflictView, choice *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(c.Options)+1)
	for _, name := range c.Options {
		options = append(options, huh.NewOption(name, name))
	}
	options = append(options, huh.NewOption("Let the planner decide", autoChoice))

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which should come first?").
				Description(fmt.Sprintf("%s share priority %d and are due on %s.",
					strings.Join(c.Options, " and "), c.Priority, c.Date)).
				Options(options...).
				Value(choice),
		),
	).WithTheme(studyplanHuhTheme()).WithShowHelp(false)
}

func runConflictPrompt(c *studyapp.ConflictView) (string, error) {
	choice := autoChoice
	if err := conflictForm(c, &choice).Run(); err != nil {
		return "", err
	}
	return choice, nil
}
