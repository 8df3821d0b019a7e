package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	apiHost  = "https://api.stability.ai"
	engineID = "stable-diffusion-xl-1024-v1-0"
)

// UpstreamError carries the third party's status and body verbatim; the
// handler passes both straight through to the caller.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("image generation upstream returned %d", e.StatusCode)
}

type Client struct {
	apiKey string
	http   *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		http:   &http.Client{Timeout: 120 * time.Second},
	}
}

type textPrompt struct {
	Text string `json:"text"`
}

type generationRequest struct {
	TextPrompts        []textPrompt `json:"text_prompts"`
	CfgScale           int          `json:"cfg_scale"`
	ClipGuidancePreset string       `json:"clip_guidance_preset"`
	Height             int          `json:"height"`
	Width              int          `json:"width"`
	Samples            int          `json:"samples"`
	Steps              int          `json:"steps"`
}

type generationResponse struct {
	Artifacts []struct {
		Base64 string `json:"base64"`
	} `json:"artifacts"`
}

// Generate produces one image for the prompt and returns the raw bytes plus
// the base64 payload as received.
func (c *Client) Generate(ctx context.Context, prompt string) (imageData []byte, imageBase64 string, err error) {
	payload := generationRequest{
		TextPrompts:        []textPrompt{{Text: prompt}},
		CfgScale:           7,
		ClipGuidancePreset: "FAST_BLUE",
		Height:             896,
		Width:              1152,
		Samples:            1,
		Steps:              30,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, "", err
	}

	url := fmt.Sprintf("%s/v1/generation/%s/text-to-image", apiHost, engineID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "", &UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	var parsed generationResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, "", err
	}
	if len(parsed.Artifacts) == 0 {
		return nil, "", fmt.Errorf("image generation returned no artifacts")
	}

	imageBase64 = parsed.Artifacts[0].Base64
	imageData, err = base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return nil, "", err
	}

	return imageData, imageBase64, nil
}
