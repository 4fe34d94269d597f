package tui

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled
// via MOSRUN_NON_INTERACTIVE or when no TTY is available
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled; select environments with -e")

// checkInteractiveAllowed returns an error if interactive mode is unavailable
func checkInteractiveAllowed() error {
	if os.Getenv("MOSRUN_NON_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	if !IsTTY() {
		return ErrInteractiveDisabled
	}
	return nil
}

// PromptEnvironments asks the user to pick environments to run.
// Names declared in the default envlist are preselected.
func PromptEnvironments(names, defaults []string) ([]string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return nil, err
	}

	var selected []string
	prompt := &survey.MultiSelect{
		Message: "Select environments to run",
		Options: names,
		Default: defaults,
	}
	if err := survey.AskOne(prompt, &selected, survey.WithValidator(survey.MinItems(1))); err != nil {
		return nil, fmt.Errorf("canceled")
	}
	return selected, nil
}

// PromptConfirm asks a yes/no question
func PromptConfirm(message string, defaultYes bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	confirmed := defaultYes
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultYes,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, fmt.Errorf("canceled")
	}
	return confirmed, nil
}
