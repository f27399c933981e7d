package main

import (
	"github.com/spf13/cobra"
)

// --- Global Flag Variables ---
var (
	// login
	flagNIN      string
	flagPassword string

	// shared submission identity
	flagName  string
	flagPhone string

	// feedback
	flagPolicyID string
	flagText     string

	// complaint
	flagCategory    string
	flagLocation    string
	flagDescription string

	// rating
	flagServiceType string
	flagRating      int
	flagComment     string

	rootCmd = &cobra.Command{
		Use:   "civicpulse",
		Short: "A cli for the CivicPulse citizen feedback platform",
		Long: `CivicPulse lets citizens submit policy feedback, complaints and
service ratings, track complaint resolution, and view the public
accountability dashboard.`,
		SilenceUsage: true,
	}

	// --- Auth ---
	loginCmd = &cobra.Command{
		Use:   "login",
		Short: "Sign in with your national ID number",
		RunE:  runLogin, // Defined in cmd_auth.go
	}
	logoutCmd = &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE:  runLogout, // Defined in cmd_auth.go
	}

	// --- Dashboard / Analytics ---
	dashboardCmd = &cobra.Command{
		Use:   "dashboard",
		Short: "Render the full analytics dashboard",
		RunE:  runDashboard, // Defined in cmd_dashboard.go
	}
	reportCmd = &cobra.Command{
		Use:   "report",
		Short: "Trigger backend report generation (admin)",
		RunE:  runReport, // Defined in cmd_dashboard.go
	}

	// --- Submissions ---
	submitCmd = &cobra.Command{
		Use:   "submit",
		Short: "Submit feedback, a complaint or a service rating",
	}
	submitFeedbackCmd = &cobra.Command{
		Use:   "feedback",
		Short: "Submit feedback on a government policy",
		RunE:  runSubmitFeedback, // Defined in cmd_submit.go
	}
	submitComplaintCmd = &cobra.Command{
		Use:   "complaint",
		Short: "File a complaint and receive a tracking number",
		RunE:  runSubmitComplaint, // Defined in cmd_submit.go
	}
	submitRatingCmd = &cobra.Command{
		Use:   "rating",
		Short: "Rate a government service",
		RunE:  runSubmitRating, // Defined in cmd_submit.go
	}

	// --- Tracking ---
	trackCmd = &cobra.Command{
		Use:   "track [tracking-number]",
		Short: "Look up a complaint by its tracking number",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrack, // Defined in cmd_track.go
	}
)

func init() {
	loginCmd.Flags().StringVar(&flagNIN, "nin", "", "National ID number")
	loginCmd.Flags().StringVar(&flagPassword, "password", "", "Account password")
	_ = loginCmd.MarkFlagRequired("nin")
	_ = loginCmd.MarkFlagRequired("password")

	for _, cmd := range []*cobra.Command{submitFeedbackCmd, submitComplaintCmd, submitRatingCmd} {
		cmd.Flags().StringVar(&flagName, "name", "", "Your full name")
		cmd.Flags().StringVar(&flagPhone, "phone", "", "Your phone number")
	}

	submitFeedbackCmd.Flags().StringVar(&flagPolicyID, "policy", "", "Policy identifier")
	submitFeedbackCmd.Flags().StringVar(&flagText, "text", "", "Feedback text")

	submitComplaintCmd.Flags().StringVar(&flagCategory, "category", "", "Complaint category")
	submitComplaintCmd.Flags().StringVar(&flagLocation, "location", "", "Where the issue is")
	submitComplaintCmd.Flags().StringVar(&flagDescription, "description", "", "What happened")

	submitRatingCmd.Flags().StringVar(&flagServiceType, "service", "", "Service being rated")
	submitRatingCmd.Flags().StringVar(&flagLocation, "location", "", "Service location")
	submitRatingCmd.Flags().IntVar(&flagRating, "rating", 0, "Rating from 1 to 5")
	submitRatingCmd.Flags().StringVar(&flagComment, "comment", "", "Optional comment")

	submitCmd.AddCommand(submitFeedbackCmd, submitComplaintCmd, submitRatingCmd)
	rootCmd.AddCommand(loginCmd, logoutCmd, dashboardCmd, reportCmd, submitCmd, trackCmd)
}
