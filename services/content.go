package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"social-bridge/helpers"
	"social-bridge/models"

	"google.golang.org/genai"
)

const (
	// FailedTextFallback is returned when the provider answers without text.
	FailedTextFallback = "Failed to generate content."
	// ErrorTextFallback is returned when the provider call itself fails.
	ErrorTextFallback = "Error generating content. Please check your API key."

	imageAspectRatio = "16:9"
	defaultImageMIME = "image/png"
)

var ErrMissingAPIKey = errors.New("gemini api key is not set")

// Generator is the subset of the genai models API the content service needs.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// NewGeminiGenerator creates a Gemini API client. httpClient may be nil.
func NewGeminiGenerator(ctx context.Context, apiKey string, httpClient *http.Client) (Generator, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return client.Models, nil
}

type ContentConfig struct {
	TextModel  string
	ImageModel string
	Logger     *slog.Logger
}

// ContentService drafts post text and images for a project. It never
// returns errors: failures become a fallback string (text) or nil (image).
type ContentService struct {
	generator  Generator
	textModel  string
	imageModel string
	logger     *slog.Logger
}

// NewContentService accepts a nil generator; every call then yields the
// fallback result without network I/O.
func NewContentService(generator Generator, cfg ContentConfig) *ContentService {
	return &ContentService{
		generator:  generator,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		logger:     helpers.LoggerOrDiscard(cfg.Logger),
	}
}

func (s *ContentService) GenerateText(ctx context.Context, project models.Project, trend string) string {
	if s.generator == nil {
		s.logger.Warn("Content generation skipped", "reason", ErrMissingAPIKey.Error(), "project", project.Name)
		return ErrorTextFallback
	}

	prompt, err := BuildPostPrompt(project, trend)
	if err != nil {
		s.logger.Error("Failed to build post prompt", "project", project.Name, "error", err)
		return ErrorTextFallback
	}

	resp, err := s.generator.GenerateContent(ctx, s.textModel, genai.Text(prompt), nil)
	if err != nil {
		s.logger.Error("Error generating tweet", "project", project.Name, "model", s.textModel, "error", err)
		return ErrorTextFallback
	}

	text := responseText(resp)
	if text == "" {
		s.logger.Warn("No text in AI response", "project", project.Name, "model", s.textModel)
		return FailedTextFallback
	}

	s.logger.Info("AI Response", "project", project.Name, "trend", trend, "length", len(text))
	return text
}

// GenerateImage returns the first inline image of the response as a data
// URI, or nil.
func (s *ContentService) GenerateImage(ctx context.Context, project models.Project, concept string) *string {
	if s.generator == nil {
		s.logger.Warn("Image generation skipped", "reason", ErrMissingAPIKey.Error(), "project", project.Name)
		return nil
	}

	prompt, err := BuildImagePrompt(project, concept)
	if err != nil {
		s.logger.Error("Failed to build image prompt", "project", project.Name, "error", err)
		return nil
	}

	config := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{
			AspectRatio: imageAspectRatio,
		},
	}
	resp, err := s.generator.GenerateContent(ctx, s.imageModel, genai.Text(prompt), config)
	if err != nil {
		s.logger.Error("Error generating image", "project", project.Name, "model", s.imageModel, "error", err)
		return nil
	}

	uri := inlineImage(resp)
	if uri == nil {
		s.logger.Warn("No inline image in AI response", "project", project.Name, "model", s.imageModel)
	}
	return uri
}

func firstCandidateParts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return nil
	}
	return resp.Candidates[0].Content.Parts
}

func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, part := range firstCandidateParts(resp) {
		if part != nil && !part.Thought && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

func inlineImage(resp *genai.GenerateContentResponse) *string {
	for _, part := range firstCandidateParts(resp) {
		if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		mimeType := part.InlineData.MIMEType
		if mimeType == "" {
			mimeType = defaultImageMIME
		}
		uri := helpers.DataURI(mimeType, part.InlineData.Data)
		return &uri
	}
	return nil
}
