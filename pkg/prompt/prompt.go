// Package prompt wraps the interactive prompts used by the CLI. The
// functions are variables so command tests can answer them.
package prompt

import (
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/erikgeiser/promptkit/selection"
)

const pageSize = 10

var Confirm = func(question string) (bool, error) {
	return confirmation.New(question, confirmation.No).RunPrompt()
}

var Select = func(question string, choices []string) (string, error) {
	sel := selection.New(question, choices)
	sel.PageSize = pageSize
	return sel.RunPrompt()
}
