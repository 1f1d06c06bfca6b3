package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Generator produces text from a prompt. Satisfied by the Groq client;
// faked in tests.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// DescriptionRequest carries the event fields the prompt is built from.
// All fields are required.
type DescriptionRequest struct {
	Title     string `json:"title"`
	Venue     string `json:"venue"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Cost      string `json:"cost"`
}

// DescriptionService generates promotional event copy via an injected
// text generator. Best-effort: a generator failure surfaces as-is, no retry.
type DescriptionService struct {
	gen Generator
}

// NewDescriptionService constructs a DescriptionService. A nil generator
// means the feature is not configured.
func NewDescriptionService(gen Generator) *DescriptionService {
	return &DescriptionService{gen: gen}
}

var errGeneratorUnconfigured = errors.New("description generator is not configured")

// GenerateDescription builds the prompt, calls the generator and returns
// plain prose with markdown emphasis and heading markers stripped.
func (s *DescriptionService) GenerateDescription(ctx context.Context, req *DescriptionRequest) (string, error) {
	if req.Title == "" || req.Venue == "" || req.StartDate == "" || req.EndDate == "" ||
		req.StartTime == "" || req.EndTime == "" || req.Cost == "" {
		return "", badRequest("All event details are required to generate a description")
	}

	if s.gen == nil {
		return "", errGeneratorUnconfigured
	}

	prompt := fmt.Sprintf(`Write a short promotional description for the following event.
Keep it to two or three sentences of plain prose, no lists and no markdown.

Title: %s
Venue: %s
Dates: %s to %s
Time: %s to %s
Cost: %s`,
		req.Title, req.Venue, req.StartDate, req.EndDate, req.StartTime, req.EndTime, req.Cost)

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	return stripMarkdown(text), nil
}

var (
	headingRe  = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	emphasisRe = regexp.MustCompile(`\*{1,2}|_{2}`)
)

// stripMarkdown removes emphasis and heading markers the model sometimes
// emits despite instructions.
func stripMarkdown(s string) string {
	s = headingRe.ReplaceAllString(s, "")
	s = emphasisRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
