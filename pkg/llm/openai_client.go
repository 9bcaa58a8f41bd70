package llm

import (
	"Journal-Backend/domain"
	"Journal-Backend/internal/utils"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	openAIChatURL = "https://api.openai.com/v1/chat/completions"

	extractionPrompt = "What does the text in this image say? " +
		"Respond with only the text in the image, no newline statements, just the raw text itself. " +
		"Make it syntactically correct and properly punctuated, with no crossed out words."

	correctionPrompt = "Fix the grammar and punctuation of the journal entry the user provides. " +
		"Do not alter its meaning or add content. Respond with only the corrected text."

	analysisPrompt = "A user is providing a journal entry from today, reflecting on their personal " +
		"experiences and feelings. Analyze the content of the journal entry, and offer thoughtful " +
		"insights or advice that will help the user focus on positive elements and what may be " +
		"important to keep in mind for the rest of the day."
)

type (
	LlmClient interface {
		// Correct returns the model's corrected version of rawText verbatim.
		Correct(ctx context.Context, rawText string) (string, error)
		// ExtractTextFromImage runs the vision model on a fetchable image url
		// and returns near-final text in one round trip.
		ExtractTextFromImage(ctx context.Context, imageURL string) (string, error)
		AnalyzeEntries(ctx context.Context, entriesText string) (string, error)
	}

	openAIClient struct {
		httpClient  *http.Client
		apiKey      string
		model       string
		visionModel string
	}

	chatMessage struct {
		Role    string      `json:"role"`
		Content interface{} `json:"content"`
	}

	chatRequest struct {
		Model     string        `json:"model"`
		Messages  []chatMessage `json:"messages"`
		MaxTokens int           `json:"max_tokens"`
	}
)

func NewOpenAIClient() LlmClient {
	return &openAIClient{
		httpClient:  &http.Client{Timeout: 60 * time.Second},
		apiKey:      utils.GetConfig("OPENAI_API_KEY"),
		model:       utils.GetConfig("OPENAI_MODEL"),
		visionModel: utils.GetConfig("OPENAI_VISION_MODEL"),
	}
}

func (c *openAIClient) Correct(ctx context.Context, rawText string) (string, error) {
	text, err := c.complete(ctx, chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: correctionPrompt},
			{Role: "user", Content: rawText},
		},
		MaxTokens: 1500,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrNormalization, err)
	}
	return text, nil
}

func (c *openAIClient) ExtractTextFromImage(ctx context.Context, imageURL string) (string, error) {
	text, err := c.complete(ctx, chatRequest{
		Model: c.visionModel,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []map[string]interface{}{
					{"type": "text", "text": extractionPrompt},
					{"type": "image_url", "image_url": map[string]string{"url": imageURL}},
				},
			},
		},
		MaxTokens: 300,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrEmptyExtraction, err)
	}
	return text, nil
}

func (c *openAIClient) AnalyzeEntries(ctx context.Context, entriesText string) (string, error) {
	return c.complete(ctx, chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: analysisPrompt},
			{Role: "user", Content: entriesText},
		},
		MaxTokens: 1500,
	})
}

func (c *openAIClient) complete(ctx context.Context, reqBody chatRequest) (string, error) {
	requestJSON, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", openAIChatURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var chatResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai response empty")
	}

	return chatResp.Choices[0].Message.Content, nil
}
