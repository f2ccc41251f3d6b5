package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/recipegenie/backend/pkg/errors"
)

// DefaultGeminiURL is the generateContent endpoint of the model used for
// recipe generation.
const DefaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// GeminiService calls the Gemini text-generation API. One request per
// invocation, no retry, no streaming.
type GeminiService struct {
	apiKey string
	apiURL string
	client *http.Client
	logger *zap.Logger
}

// NewGeminiService creates a new GeminiService instance. An empty apiURL
// selects the default endpoint.
func NewGeminiService(apiKey, apiURL string, logger *zap.Logger) *GeminiService {
	if apiURL == "" {
		apiURL = DefaultGeminiURL
	}
	return &GeminiService{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{Timeout: 60 * time.Second},
		logger: logger,
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateContent sends a single prompt to the model and returns its raw text
// output.
func (s *GeminiService) GenerateContent(ctx context.Context, prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", apperrors.NewUpstreamError("failed to marshal request", err)
	}

	url := fmt.Sprintf("%s?key=%s", s.apiURL, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", apperrors.NewUpstreamError("failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", apperrors.NewUpstreamError("failed to call Gemini API", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.NewUpstreamError("failed to read Gemini response", err)
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("Gemini API request failed",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return "", apperrors.NewUpstreamError(
			fmt.Sprintf("Gemini API request failed with status %d", resp.StatusCode), nil)
	}

	var result geminiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", apperrors.NewUpstreamError("failed to decode Gemini response", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", apperrors.NewUpstreamError("no candidates in Gemini response", nil)
	}

	text := result.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", apperrors.NewUpstreamError("empty output from Gemini", nil)
	}
	return text, nil
}
