// Package prompt wraps promptui with an injectable reader so interactive
// flows stay scriptable in tests and piped runs.
package prompt

import (
	"io"

	"github.com/manifoldco/promptui"
)

// SimplePrompt asks for a free-text line and passes it to handler.
func SimplePrompt(stdin io.Reader, label string, handler func(input string) error) error {
	p := promptui.Prompt{
		Label: label,
		Stdin: io.NopCloser(stdin),
	}

	input, err := p.Run()
	if err != nil {
		return err
	}
	return handler(input)
}

// SelectPrompt asks the operator to pick one of choices.
func SelectPrompt(stdin io.Reader, label string, choices []string, handler func(choice string) error) error {
	s := promptui.Select{
		Label: label,
		Items: choices,
		Stdin: io.NopCloser(stdin),
	}

	_, choice, err := s.Run()
	if err != nil {
		return err
	}
	return handler(choice)
}

// YesNoPrompt asks a yes/no question. The first entry (Yes) is the default,
// so a bare return confirms.
func YesNoPrompt(stdin io.Reader, label string) (answer bool, err error) {
	err = SelectPrompt(stdin, label, []string{"Yes", "No"}, func(choice string) error {
		answer = choice == "Yes"
		return nil
	})
	return answer, err
}
