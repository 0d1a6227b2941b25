package main

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// errAborted signals the user aborted the prompt (e.g., Ctrl+C).
var errAborted = errors.New("outputfield: aborted")

// fieldPicker asks the user to choose one of the catalog fields.
type fieldPicker interface {
	Pick(ctx context.Context, message string, options []string) (string, error)
}

type surveyPicker struct{}

func (surveyPicker) Pick(ctx context.Context, message string, options []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(options) == 0 {
		return "", errors.New("outputfield: no fields to choose from")
	}

	var out string
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", errAborted
		}
		return "", err
	}
	return out, nil
}
