package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/civicpulse/civicpulse-cli/internal/adapters/primary/term"
	apperrors "github.com/civicpulse/civicpulse-cli/internal/core/errors"
)

func runTrack(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	view, err := a.tracking.Lookup(cmd.Context(), args[0])
	if err != nil {
		if apperrors.IsNotFound(err) {
			return fmt.Errorf("no complaint found for tracking number %q", args[0])
		}
		return fmt.Errorf("tracking lookup failed: %w", err)
	}

	fmt.Println(term.RenderStatus(view))
	return nil
}
