package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func runDashboard(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	// Failed metrics were already logged by the loader; a sparse or
	// empty dashboard is an accepted degraded state, not an error.
	a.analytics.LoadAll(cmd.Context())
	defer a.charts.DestroyAll()

	if ministries := a.facets.Ministries(); len(ministries) > 0 {
		fmt.Println("Filter by ministry:", strings.Join(ministries, ", "))
	}
	if districts := a.facets.Districts(); len(districts) > 0 {
		fmt.Println("Filter by district:", strings.Join(districts, ", "))
	}
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	if err := a.report.Generate(cmd.Context()); err != nil {
		return fmt.Errorf("report generation failed: %w", err)
	}
	fmt.Println("Report generation started.")
	return nil
}
