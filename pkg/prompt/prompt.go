// Package prompt wraps the interactive stdin prompts used by the add and
// manage commands and by the importer's date confirmation.
package prompt

import (
	"errors"
	"strconv"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/shopspring/decimal"

	"github.com/haibun/haibun/pkg/models"
)

// Prompter asks a human for values on stdin.
type Prompter struct{}

// New creates a Prompter.
func New() *Prompter {
	return &Prompter{}
}

// Confirm asks a yes/no question. Declining is not an error.
func (p *Prompter) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{Label: label, IsConfirm: true}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Text asks for a free-text value.
func (p *Prompter) Text(label string) (string, error) {
	prompt := promptui.Prompt{Label: label}
	return prompt.Run()
}

// Int asks for an integer, re-prompting until the input parses.
func (p *Prompter) Int(label string) (int64, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: validateInt,
	}
	s, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(s, 10, 64)
}

// Decimal asks for an exact decimal amount.
func (p *Prompter) Decimal(label string) (decimal.Decimal, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: validateDecimal,
	}
	s, err := prompt.Run()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromString(s)
}

// Date asks for a YYYY-MM-DD calendar date.
func (p *Prompter) Date(label string) (time.Time, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: validateDate,
	}
	s, err := prompt.Run()
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(models.DateLayout, s)
}

func validateInt(s string) error {
	_, err := strconv.ParseInt(s, 10, 64)
	return err
}

func validateDecimal(s string) error {
	_, err := decimal.NewFromString(s)
	return err
}

func validateDate(s string) error {
	_, err := time.Parse(models.DateLayout, s)
	return err
}
