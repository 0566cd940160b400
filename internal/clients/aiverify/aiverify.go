package aiverify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/RationSeva/ration_service/internal/domain"
	"github.com/RationSeva/ration_service/internal/dto"
)

const systemMessage = "You are an expert at detecting fake documents and verifying ration card applications. " +
	"Analyze the provided information and determine if it appears genuine or fake."

type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

func New(apiKey, baseURL, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Verify asks the model whether the application looks genuine. The reply is
// classified fake iff its upper-cased text contains the token "FAKE"; any
// adapter failure degrades to the "error" classification instead of failing
// the caller.
func (c *Client) Verify(ctx context.Context, card *domain.RationCard) *dto.VerificationOutcome {
	reply, err := c.send(ctx, buildPrompt(card))
	if err != nil {
		return &dto.VerificationOutcome{Result: "error", Details: err.Error()}
	}

	result := "genuine"
	if strings.Contains(strings.ToUpper(reply), "FAKE") {
		result = "fake"
	}
	return &dto.VerificationOutcome{Result: result, Details: reply}
}

func buildPrompt(card *domain.RationCard) string {
	return fmt.Sprintf(`Analyze this ration card application:
Name: %s
Address: %s
Family Members: %d
Aadhaar: %s

Check for:
1. Aadhaar format validity (12 digits)
2. Reasonable family member count
3. Address completeness
4. Any suspicious patterns

Respond with: GENUINE or FAKE followed by a brief reason.`,
		card.Name, card.Address, card.FamilyMembers, card.Aadhaar)
}

func (c *Client) send(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("missing llm api key")
	}

	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemMessage},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}

	url := c.baseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e chatResponse
		if json.Unmarshal(body, &e) == nil && e.Error != nil && e.Error.Message != "" {
			return "", fmt.Errorf("llm error (%d): %s", resp.StatusCode, e.Error.Message)
		}
		return "", fmt.Errorf("llm http error (%d): %s", resp.StatusCode, string(body))
	}

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", errors.New("llm returned no choices")
	}

	return out.Choices[0].Message.Content, nil
}
