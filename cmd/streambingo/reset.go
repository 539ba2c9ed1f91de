package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type resetOptions struct {
	force bool
}

func newResetCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resetOptions{}

	cmd := &cobra.Command{
		Use:   "reset <card-id>",
		Short: "Clear a card's play progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Reset without confirmation")

	return cmd
}

func runReset(cmd *cobra.Command, rootFlags *rootFlags, cardID string, opts *resetOptions) error {
	if strings.TrimSpace(cardID) == "" {
		return newCommandError("reset", "validating card ID", errors.New("card ID cannot be empty"), "Provide the card ID you wish to reset.")
	}

	app, err := openAppEnv(rootFlags)
	if err != nil {
		return err
	}
	defer app.Close()

	c, ok := app.store.GetCard(cardID)
	if !ok {
		return newCommandError("reset", fmt.Sprintf("looking up card %q", cardID), errors.New("card not found"), "Run 'streambingo list' to view saved cards.")
	}

	if !opts.force {
		confirmed, err := confirmAction(cmd, fmt.Sprintf("Clear progress for card '%s' (%s)? [y/N]: ", cardID, c.Title))
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	if err := app.store.ClearProgress(cardID); err != nil {
		return newCommandError("reset", fmt.Sprintf("clearing progress for card %q", cardID), err, "Check state directory permissions and try again.")
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Cleared progress for card '%s'\n", cardID)
	return nil
}
