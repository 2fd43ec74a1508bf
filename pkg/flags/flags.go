package flags

import (
	"fmt"

	"github.com/spf13/cobra"
)

func AddYes(cmd *cobra.Command) {
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

func HandleYes(cmd *cobra.Command) (bool, error) {
	yes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return false, fmt.Errorf("error retrieving yes flag: %w", err)
	}
	return yes, nil
}

// AddBinder registers --binder. A negative default means "not given".
func AddBinder(cmd *cobra.Command, usage string) {
	cmd.Flags().Int64P("binder", "b", -1, usage)
}

// HandleBinder returns the --binder number and whether it was set.
func HandleBinder(cmd *cobra.Command) (int64, bool, error) {
	number, err := cmd.Flags().GetInt64("binder")
	if err != nil {
		return 0, false, fmt.Errorf("error retrieving binder flag: %w", err)
	}
	return number, cmd.Flags().Changed("binder"), nil
}
