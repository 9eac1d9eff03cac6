// Copyright (C) 2025 Specter Ops, Inc.
//
// This file is part of PIMHound.
//
// PIMHound is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PIMHound is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package prompt isolates terminal interaction behind the Prompter
// interface so the resolution and execution engines stay testable with a
// scripted fake.
package prompt

import (
	"errors"

	"github.com/manifoldco/promptui"

	"github.com/bloodhoundad/pimhound/errs"
)

type Choice struct {
	Id    string
	Label string
}

type Prompter interface {
	// Confirm asks a yes/no question; declining is not an error.
	Confirm(message string) (bool, error)

	// SelectSubset lets the operator pick any number of choices, including
	// none. The returned ids preserve pick order.
	SelectSubset(label string, choices []Choice) ([]string, error)

	// SelectOne forces the operator to pick exactly one choice.
	SelectOne(label string, choices []Choice) (string, error)
}

func NewConsolePrompter() Prompter {
	return consolePrompter{}
}

type consolePrompter struct{}

func (s consolePrompter) Confirm(message string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     message,
		IsConfirm: true,
	}
	if _, err := prompt.Run(); errors.Is(err, promptui.ErrAbort) {
		return false, nil
	} else if errors.Is(err, promptui.ErrInterrupt) {
		return false, nil
	} else if err != nil {
		return false, err
	} else {
		return true, nil
	}
}

func (s consolePrompter) SelectOne(label string, choices []Choice) (string, error) {
	items := make([]string, 0, len(choices))
	for _, choice := range choices {
		items = append(items, choice.Label)
	}

	sel := promptui.Select{
		Label: label,
		Items: items,
		Size:  10,
	}

	if index, _, err := sel.Run(); errors.Is(err, promptui.ErrInterrupt) {
		return "", errs.ErrCancelled
	} else if err != nil {
		return "", err
	} else {
		return choices[index].Id, nil
	}
}

const doneItem = "[done]"

func (s consolePrompter) SelectSubset(label string, choices []Choice) ([]string, error) {
	var (
		selected  []string
		remaining = append([]Choice{}, choices...)
	)

	for len(remaining) > 0 {
		items := make([]string, 0, len(remaining)+1)
		for _, choice := range remaining {
			items = append(items, choice.Label)
		}
		items = append(items, doneItem)

		sel := promptui.Select{
			Label: label,
			Items: items,
			Size:  10,
		}

		if index, _, err := sel.Run(); errors.Is(err, promptui.ErrInterrupt) {
			return nil, errs.ErrCancelled
		} else if err != nil {
			return nil, err
		} else if index == len(remaining) {
			break
		} else {
			selected = append(selected, remaining[index].Id)
			remaining = append(remaining[:index], remaining[index+1:]...)
		}
	}

	return selected, nil
}
