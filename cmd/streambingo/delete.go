package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type deleteOptions struct {
	force bool
}

func newDeleteCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &deleteOptions{}

	cmd := &cobra.Command{
		Use:   "delete <card-id>",
		Short: "Delete a card and its progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Delete without confirmation")

	return cmd
}

func runDelete(cmd *cobra.Command, rootFlags *rootFlags, cardID string, opts *deleteOptions) error {
	if strings.TrimSpace(cardID) == "" {
		return newCommandError("delete", "validating card ID", errors.New("card ID cannot be empty"), "Provide the card ID you wish to delete.")
	}

	app, err := openAppEnv(rootFlags)
	if err != nil {
		return err
	}
	defer app.Close()

	c, ok := app.store.GetCard(cardID)
	if !ok {
		return newCommandError("delete", fmt.Sprintf("looking up card %q", cardID), errors.New("card not found"), "Run 'streambingo list' to view saved cards.")
	}

	if !opts.force {
		confirmed, err := confirmAction(cmd, fmt.Sprintf("Delete card '%s' (%s) and its progress? [y/N]: ", cardID, c.Title))
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	if err := app.store.DeleteCard(cardID); err != nil {
		return newCommandError("delete", fmt.Sprintf("deleting card %q", cardID), err, "Check state directory permissions and try again.")
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted card '%s'\n", cardID)
	return nil
}

func confirmAction(cmd *cobra.Command, prompt string) (bool, error) {
	if !isTerminal(cmd.InOrStdin()) {
		return false, newCommandError("confirm", "prompting for confirmation", errors.New("not a terminal"), "Use --force when running in non-interactive environments.")
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), prompt)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false, scanner.Err()
	}

	answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return answer == "y" || answer == "yes", nil
}

func isTerminal(reader any) bool {
	if file, ok := reader.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
