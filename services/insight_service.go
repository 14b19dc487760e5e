package services

import (
	"context"
	"fmt"
	"strings"

	"storefront/models"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Fallback copy used whenever the text-generation service is unavailable or
// returns nothing. Generated copy is never required for correctness.
const (
	fallbackDescription      = "Could not generate description. Please try again."
	emptyDescription         = "No description generated."
	fallbackBusinessInsight  = "Could not generate business insights at this time."
	emptyBusinessInsight     = "Analysis unavailable."
	generativeModel          = "gemini-2.5-flash"
	recentSalesForCommentary = 5
)

// TextGenerator is the opaque external text-generation capability.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator backs TextGenerator with the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
}

func NewGeminiGenerator(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiGenerator{client: client}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, generativeModel, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// InsightService produces AI-written product copy and sales commentary.
type InsightService struct {
	generator TextGenerator
}

func NewInsightService(generator TextGenerator) *InsightService {
	return &InsightService{generator: generator}
}

// ProductDescription writes short marketing copy for a product. Any failure
// degrades to a fixed fallback string rather than an error.
func (s *InsightService) ProductDescription(ctx context.Context, name, category string) string {
	if category == "" {
		category = "General"
	}
	prompt := fmt.Sprintf(
		"Write a compelling, short (2 sentences max) marketing description for a product named %q in the category %q. Focus on benefits and quality.",
		name, category,
	)

	text, err := s.generate(ctx, prompt)
	if err != nil {
		zap.L().Warn("Description generation failed", zap.String("product", name), zap.Error(err))
		return fallbackDescription
	}
	if text == "" {
		return emptyDescription
	}
	return text
}

// BusinessInsight summarizes ledger performance. sales must be in insertion
// order; only the newest entries feed the prompt.
func (s *InsightService) BusinessInsight(ctx context.Context, sales []models.Sale) string {
	totalRevenue := 0.0
	for _, sale := range sales {
		totalRevenue += sale.TotalAmount
	}

	recent := sales
	if len(recent) > recentSalesForCommentary {
		recent = recent[len(recent)-recentSalesForCommentary:]
	}
	summaries := make([]string, 0, len(recent))
	for _, sale := range recent {
		summaries = append(summaries, fmt.Sprintf("%s bought items worth $%.2f", sale.UserName, sale.TotalAmount))
	}

	prompt := fmt.Sprintf(
		"Analyze these sales stats:\nTotal Revenue: $%.2f\nRecent Transactions: %s\n\nProvide a brief (1 short paragraph) executive summary of the business performance and a suggestion for growth.\nBe professional but concise.",
		totalRevenue, strings.Join(summaries, ", "),
	)

	text, err := s.generate(ctx, prompt)
	if err != nil {
		zap.L().Warn("Insight generation failed", zap.Error(err))
		return fallbackBusinessInsight
	}
	if text == "" {
		return emptyBusinessInsight
	}
	return text
}

func (s *InsightService) generate(ctx context.Context, prompt string) (string, error) {
	if s.generator == nil {
		return "", fmt.Errorf("text generation is not configured")
	}
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
