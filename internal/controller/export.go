package controller

import (
	"context"
	"fmt"

	"github.com/disamze/eduplatform-frontend/pkg/export"
	apperrors "github.com/disamze/eduplatform-frontend/pkg/errors"
)

// ResultsCSV renders the full result list as a CSV document. Teacher only.
func (c *Controller) ResultsCSV(ctx context.Context) ([]byte, error) {
	if !c.CurrentUser().IsTeacher() {
		return nil, apperrors.New(apperrors.CodeValidation, 403, "Only teachers can export results")
	}
	results, err := c.api.Results(ctx)
	if err != nil {
		return nil, err
	}
	data := export.Dataset{
		Headers: []string{"Student", "Exam", "Subject", "Class", "Date", "Marks", "Total", "Percentage", "Grade"},
	}
	for _, r := range results {
		data.Rows = append(data.Rows, export.Row(
			"Student", r.Student.DisplayName(),
			"Exam", r.ExamName,
			"Subject", r.Subject,
			"Class", r.Class,
			"Date", r.ExamDate,
			"Marks", fmt.Sprintf("%.0f", r.MarksObtained),
			"Total", fmt.Sprintf("%.0f", r.TotalMarks),
			"Percentage", fmt.Sprintf("%.1f%%", r.Percentage),
			"Grade", r.Grade,
		))
	}
	return export.NewCSVExporter().Render(data)
}

// LeaderboardPDF renders the class ranking as a PDF document. Teacher only.
func (c *Controller) LeaderboardPDF(ctx context.Context) ([]byte, error) {
	if !c.CurrentUser().IsTeacher() {
		return nil, apperrors.New(apperrors.CodeValidation, 403, "Only teachers can export the leaderboard")
	}
	entries, err := c.api.Leaderboard(ctx)
	if err != nil {
		return nil, err
	}
	data := export.Dataset{
		Headers: []string{"Rank", "Name", "Email", "Average", "Exams", "Highest"},
	}
	for _, e := range entries {
		data.Rows = append(data.Rows, export.Row(
			"Rank", fmt.Sprintf("%d", e.Rank),
			"Name", e.Name,
			"Email", e.Email,
			"Average", fmt.Sprintf("%.1f%%", e.AveragePercentage),
			"Exams", fmt.Sprintf("%d", e.TotalExams),
			"Highest", fmt.Sprintf("%.1f%%", e.HighestScore),
		))
	}
	return export.NewPDFExporter().Render(data, "Class Leaderboard")
}
