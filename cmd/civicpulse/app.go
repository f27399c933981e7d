package main

import (
	"fmt"
	"os"

	"github.com/civicpulse/civicpulse-cli/internal/adapters/primary/term"
	"github.com/civicpulse/civicpulse-cli/internal/adapters/secondary/api"
	"github.com/civicpulse/civicpulse-cli/internal/config"
	"github.com/civicpulse/civicpulse-cli/internal/core/ports"
	"github.com/civicpulse/civicpulse-cli/internal/core/services"
	"github.com/civicpulse/civicpulse-cli/internal/infrastructure/logging"
	"github.com/civicpulse/civicpulse-cli/internal/session"
)

// app holds the wired dependency graph for one command invocation.
type app struct {
	cfg     *config.Config
	session *session.Store
	gateway ports.Gateway

	auth      ports.AuthService
	analytics ports.AnalyticsLoader
	tracking  ports.TrackingService
	report    ports.ReportService
	charts    *services.ChartManager
	facets    *services.FacetStore

	feedback  *services.FeedbackController
	complaint *services.ComplaintController
	rating    *services.RatingController

	feedbackView  *term.FormView
	complaintView *term.FormView
	ratingView    *term.FormView
}

// newApp wires the full dependency graph.
func newApp() (*app, error) {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	// 2. Initialize Structured Logger
	logger := logging.NewLogger(logging.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Output:      os.Stderr,
		ServiceName: cfg.App.Name,
		Environment: cfg.App.Environment,
	})

	// 3. Initialize Session Store
	store := session.NewStore(cfg.Session.FilePath)

	// 4. Initialize API Gateway
	gateway := api.NewClient(api.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.RequestTimeout,
		RateLimit: cfg.RateLimit,
		Session:   store,
		Logger:    logger,
		OnSessionExpired: func() {
			fmt.Fprintln(os.Stderr, "Your session has expired. Run `civicpulse login` to sign in again.")
		},
	})

	// 5. Rendering Surfaces (Primary Adapters)
	renderer := term.NewRenderer(os.Stdout)
	statPanel := term.NewStatPanel(os.Stdout)
	table := term.NewTable(os.Stdout)
	tags := term.NewTagCloud(os.Stdout)
	feedbackView := term.NewFormView(os.Stdout)
	complaintView := term.NewFormView(os.Stdout)
	ratingView := term.NewFormView(os.Stdout)

	// 6. Dependency Injection (Wiring the Core)
	charts := services.NewChartManager(renderer, logger)
	facets := services.NewFacetStore()
	resolver := services.NewCitizenService(gateway, logger)

	return &app{
		cfg:       cfg,
		session:   store,
		gateway:   gateway,
		auth:      services.NewAuthService(gateway, store, logger),
		analytics: services.NewAnalyticsService(gateway, charts, facets, statPanel, table, tags, logger),
		tracking:  services.NewTrackingQuery(gateway, logger),
		report:    services.NewReportGenerator(gateway, store, logger),
		charts:    charts,
		facets:    facets,
		feedback: services.NewFeedbackController(
			gateway, resolver, feedbackView, term.RenderFeedbackReceipt, logger),
		complaint: services.NewComplaintController(
			gateway, resolver, complaintView, term.RenderComplaintReceipt, logger),
		rating: services.NewRatingController(
			gateway, resolver, ratingView, term.RenderRatingReceipt, logger),
		feedbackView:  feedbackView,
		complaintView: complaintView,
		ratingView:    ratingView,
	}, nil
}

// requireLogin gates the authenticated commands.
func (a *app) requireLogin() error {
	if !a.session.Authenticated() {
		return fmt.Errorf("this command requires a login: run `civicpulse login` first")
	}
	return nil
}
