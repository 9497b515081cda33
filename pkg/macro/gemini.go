package macro

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/macromate/macromate-backend/domain"
	"github.com/macromate/macromate-backend/internal/utils"
)

const textPromptTemplate = `You are a nutrition expert. Analyze the following food description and calculate the approximate macronutrients.

IMPORTANT: Respond ONLY with a valid JSON object in the exact format specified below. Do not include any additional text, markdown formatting, or explanations.
All food is from the uk and when a brand is mentioned you need to use google search to locate the nutritional information online if possible. If exact information is not available, use reasonable estimates based on common nutritional values, use the lower bound of protein content ensuring you do not overshoot protein values.
Food description: "%s"

Analyze this food description and provide the macronutrient breakdown. If quantities are not specified, assume reasonable serving sizes. If you cannot identify the food or calculate macros, return zeros.

Required JSON format (respond with this format only):
{
  "protein_g": <number>,
  "carbs_g": <number>,
  "fats_g": <number>,
  "calories": <number>,
  "parsed_food_item": "<string describing the food as you understood it>"
}

Examples:
Input: "1 slice whole wheat bread, 20g peanut butter"
Output: {"protein_g": 10.5, "carbs_g": 25.1, "fats_g": 18.2, "parsed_food_item": "1 slice whole wheat bread, 20g peanut butter"}

Input: "100g chicken breast"
Output: {"protein_g": 31.0, "carbs_g": 0.0, "fats_g": 3.6, "parsed_food_item": "100g chicken breast"}

Now analyze: "%s"`

const imagePromptTemplate = `You are a nutrition expert. Analyze the following image of a food nutrition label and then calculate the macronutrients for the weight specified in the prompt.

IMPORTANT: Respond ONLY with a valid JSON object in the exact format specified below. Do not include any additional text, markdown formatting, or explanations.

Weight : "%s"

Analyze this nutrition label and the weight provided and provide the macronutrient breakdown. If quantities are not specified, assume reasonable serving sizes. If you cannot identify the food or calculate macros, return zeros.
All food is from the uk and when a brand is mentioned you need to use google search to locate the nutritional information online if possible. If exact information is not available, use reasonable estimates based on common nutritional values, use the lower bound of protein content ensuring you do not overshoot protein values.

Required JSON format (respond with this format only):
{
  "protein_g": <number>,
  "carbs_g": <number>,
  "fats_g": <number>,
  "calories": <number>,
  "parsed_food_item": "<string describing the food as you understood it>"
}

Examples:
Input: "An image of a frozen pizza food nutrition label stating that 100g has 20g protein, 30g carbs, 10g fats, 500kcal and the weight provided is 50g"
Output: {"protein_g": 10, "carbs_g": 15, "fats_g": 5, "calories": 250, "parsed_food_item": "A frozen pizza"}

Now analyze the image with weight: "%s"`

type (
	// Extractor sends a fixed instructional prompt to the generative
	// completion API and returns the model's raw reply text.
	Extractor interface {
		ExtractFromText(ctx context.Context, foodDescription string) (string, error)
		ExtractFromImage(ctx context.Context, imageData []byte, mimeType, weight string) (string, error)
	}

	geminiExtractor struct {
		baseURL    string
		httpClient *http.Client
	}

	geminiRequest struct {
		Contents []geminiContent `json:"contents"`
	}

	geminiContent struct {
		Parts []geminiPart `json:"parts"`
	}

	geminiPart struct {
		Text       string            `json:"text,omitempty"`
		InlineData *geminiInlineData `json:"inline_data,omitempty"`
	}

	geminiInlineData struct {
		MimeType string `json:"mime_type"`
		Data     string `json:"data"`
	}

	geminiResponse struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
)

func NewGeminiExtractor() Extractor {
	return &geminiExtractor{
		baseURL:    "https://generativelanguage.googleapis.com",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *geminiExtractor) ExtractFromText(ctx context.Context, foodDescription string) (string, error) {
	prompt := fmt.Sprintf(textPromptTemplate, foodDescription, foodDescription)
	return g.generateContent(ctx, []geminiPart{{Text: prompt}})
}

func (g *geminiExtractor) ExtractFromImage(ctx context.Context, imageData []byte, mimeType, weight string) (string, error) {
	prompt := fmt.Sprintf(imagePromptTemplate, weight, weight)
	return g.generateContent(ctx, []geminiPart{
		{InlineData: &geminiInlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(imageData),
		}},
		{Text: prompt},
	})
}

func (g *geminiExtractor) generateContent(ctx context.Context, parts []geminiPart) (string, error) {
	apiKey := utils.GetConfig("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY is not configured")
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		g.baseURL, utils.GetConfig("GEMINI_MODEL"), apiKey)

	requestJSON, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: parts}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrUpstreamUnavailable
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}
