package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	user, err := a.auth.Login(cmd.Context(), flagNIN, flagPassword)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Printf("Welcome, %s", user.Name)
	if user.DistrictName != "" {
		fmt.Printf(" (%s)", user.DistrictName)
	}
	fmt.Println()
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if err := a.auth.Logout(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	fmt.Println("Logged out.")
	return nil
}
