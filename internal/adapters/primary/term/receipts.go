package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
)

const (
	starFilled = "★"
	starEmpty  = "☆"
	maxStars   = 5
)

// RenderFeedbackReceipt formats the sentiment analysis of an accepted
// policy feedback submission.
func RenderFeedbackReceipt(r domain.FeedbackReceipt) string {
	return fmt.Sprintf("%s %s\n%s %s",
		styleLabel.Render("Sentiment:"),
		sentimentStyle(r.Analysis.Sentiment).Render(r.Analysis.Sentiment),
		styleLabel.Render("Themes:"),
		strings.Join(r.Analysis.Themes, ", "))
}

// RenderComplaintReceipt formats an accepted complaint with its
// tracking number and triage result.
func RenderComplaintReceipt(r domain.ComplaintReceipt) string {
	return fmt.Sprintf("%s %s\n%s %s\n%s %s",
		styleLabel.Render("Tracking Number:"),
		styleValue.Render(r.TrackingNumber),
		styleLabel.Render("Category:"),
		r.Complaint.Category,
		styleLabel.Render("Priority:"),
		priorityStyle(r.Complaint.Priority).Render(r.Complaint.Priority))
}

// RenderRatingReceipt echoes an accepted service rating with the star
// row.
func RenderRatingReceipt(r domain.RatingReceipt) string {
	return fmt.Sprintf("%s %s\n%s %s\n%s %s",
		styleLabel.Render("Service:"),
		r.ServiceType,
		styleLabel.Render("Location:"),
		r.Location,
		styleLabel.Render("Rating:"),
		StarLine(r.Rating))
}

// RenderStatus formats a tracking lookup result.
func RenderStatus(view domain.ComplaintStatusView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", styleLabel.Render("Tracking Number:"), styleValue.Render(view.TrackingNumber))
	fmt.Fprintf(&b, "%s %s\n", styleLabel.Render("Status:"), statusStyle(view.Status).Render(view.Status))
	fmt.Fprintf(&b, "%s %s\n", styleLabel.Render("Category:"), view.Category)
	fmt.Fprintf(&b, "%s %s\n", styleLabel.Render("Priority:"), priorityStyle(view.Priority).Render(view.Priority))
	fmt.Fprintf(&b, "%s %s\n", styleLabel.Render("Location:"), view.Location)
	fmt.Fprintf(&b, "%s %s", styleLabel.Render("Submitted:"), view.CreatedAt)
	if view.ResolvedAt != "" {
		fmt.Fprintf(&b, "\n%s %s", styleLabel.Render("Resolved:"), view.ResolvedAt)
	}
	return b.String()
}

// StarLine renders a rating as filled and empty star glyphs.
func StarLine(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > maxStars {
		rating = maxStars
	}
	return styleWarning.Render(strings.Repeat(starFilled, rating)) +
		styleMuted.Render(strings.Repeat(starEmpty, maxStars-rating))
}

func sentimentStyle(sentiment string) lipgloss.Style {
	switch strings.ToLower(sentiment) {
	case "positive":
		return styleSuccess
	case "negative":
		return styleError
	default:
		return styleValue
	}
}

func priorityStyle(priority string) lipgloss.Style {
	switch strings.ToLower(priority) {
	case "high", "critical":
		return styleError
	case "medium":
		return styleWarning
	default:
		return styleValue
	}
}

func statusStyle(status string) lipgloss.Style {
	switch strings.ToLower(status) {
	case "resolved":
		return styleSuccess
	case "in progress":
		return styleWarning
	default:
		return styleValue
	}
}
