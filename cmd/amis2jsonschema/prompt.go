package main

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

var errAborted = errors.New("prompt aborted")

// promptConfig asks for the settings a run cannot proceed without.
func promptConfig(cfg *Config, formats []string) error {
	if cfg.Source == "" {
		prompt := &survey.Input{
			Message: "amis form to convert:",
			Help:    "A file path (JSON or YAML) or an http(s) URL.",
		}
		if err := survey.AskOne(prompt, &cfg.Source, survey.WithValidator(survey.Required)); err != nil {
			return translateSurveyErr(err)
		}
	}

	prompt := &survey.Select{
		Message: "Output format:",
		Options: formats,
		Default: cfg.Format,
	}
	if err := survey.AskOne(prompt, &cfg.Format); err != nil {
		return translateSurveyErr(err)
	}
	return nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return fmt.Errorf("prompt: %w", err)
}
