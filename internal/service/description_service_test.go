package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	response string
	err      error
	prompt   string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.response, g.err
}

func validDescriptionRequest() *DescriptionRequest {
	return &DescriptionRequest{
		Title:     "Go Conference",
		Venue:     "City Hall",
		StartDate: "2025-01-01",
		EndDate:   "2025-01-02",
		StartTime: "10:00",
		EndTime:   "18:00",
		Cost:      "500",
	}
}

func TestGenerateDescriptionRequiresAllFields(t *testing.T) {
	svc := NewDescriptionService(&fakeGenerator{response: "ok"})

	req := validDescriptionRequest()
	req.Cost = ""

	_, err := svc.GenerateDescription(context.Background(), req)
	var br *BadRequestError
	require.ErrorAs(t, err, &br)
}

func TestGenerateDescriptionBuildsPrompt(t *testing.T) {
	gen := &fakeGenerator{response: "Join us at City Hall."}
	svc := NewDescriptionService(gen)

	out, err := svc.GenerateDescription(context.Background(), validDescriptionRequest())
	require.NoError(t, err)
	assert.Equal(t, "Join us at City Hall.", out)
	assert.Contains(t, gen.prompt, "Go Conference")
	assert.Contains(t, gen.prompt, "City Hall")
	assert.Contains(t, gen.prompt, "2025-01-01")
}

func TestGenerateDescriptionStripsMarkdown(t *testing.T) {
	gen := &fakeGenerator{response: "# Big Event\n\nCome see **amazing** things at *City Hall*!"}
	svc := NewDescriptionService(gen)

	out, err := svc.GenerateDescription(context.Background(), validDescriptionRequest())
	require.NoError(t, err)
	assert.Equal(t, "Big Event\n\nCome see amazing things at City Hall!", out)
}

func TestGenerateDescriptionGeneratorFailure(t *testing.T) {
	svc := NewDescriptionService(&fakeGenerator{err: errors.New("upstream down")})

	_, err := svc.GenerateDescription(context.Background(), validDescriptionRequest())
	require.Error(t, err)
	var br *BadRequestError
	assert.False(t, errors.As(err, &br))
}

func TestGenerateDescriptionUnconfigured(t *testing.T) {
	svc := NewDescriptionService(nil)

	_, err := svc.GenerateDescription(context.Background(), validDescriptionRequest())
	assert.ErrorIs(t, err, errGeneratorUnconfigured)
}
