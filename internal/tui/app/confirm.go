package app

type exitChoice int

const (
	exitApply exitChoice = iota
	exitDiscard
	exitCancel
	exitChoiceCount
)

// exitConfirm asks what to do with checked to-print rows before leaving the
// report or quitting.
type exitConfirm struct {
	quit   bool
	choice exitChoice
}

func newExitConfirm(quit bool) *exitConfirm {
	return &exitConfirm{quit: quit, choice: exitApply}
}

func (c *exitConfirm) next() {
	c.choice = (c.choice + 1) % exitChoiceCount
}

func (c *exitConfirm) previous() {
	c.choice = (c.choice + exitChoiceCount - 1) % exitChoiceCount
}

func (c *exitConfirm) title() string {
	if c.quit {
		return "Exit Application"
	}
	return "Leave To Print"
}

func (c *exitConfirm) message() string {
	if c.quit {
		return "You have marked songs as added. Apply the changes before quitting?"
	}
	return "You have marked songs as added. Apply the changes before leaving?"
}

func (c *exitConfirm) labels() [exitChoiceCount]string {
	if c.quit {
		return [exitChoiceCount]string{"Apply & Quit", "Discard & Quit", "Cancel"}
	}
	return [exitChoiceCount]string{"Apply & Leave", "Discard & Leave", "Cancel"}
}
