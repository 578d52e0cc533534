package receipt

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

const prompt = `Analyze the receipt in the image and answer with a JSON object with these keys:
- "date": the date of the receipt as YYYY-MM-DD. Dates like "09-01-24" are day-month-year.
- "total": the total of the purchase as a number, without currency symbols.
- "category": exactly one of %s.
- "description": a short description of the purchase that fits the category.
Answer with the JSON object only.`

// OpenAI scans receipts with a vision model behind an OpenAI compatible API.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI returns a scanner. baseURL may be empty to use the OpenAI API.
func NewOpenAI(apiKey, model, baseURL string) *OpenAI {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = strings.TrimRight(baseURL, "/")
	}

	return &OpenAI{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (o *OpenAI) Scan(ctx context.Context, image []byte, mimeType string, categories []string) (Draft, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	quoted := make([]string, 0, len(categories))
	for _, c := range categories {
		quoted = append(quoted, fmt.Sprintf("%q", c))
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: fmt.Sprintf(prompt, strings.Join(quoted, ", ")),
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURL,
							Detail: openai.ImageURLDetailAuto,
						},
					},
				},
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return Draft{}, fmt.Errorf("%w: %v", ErrScanFailed, err)
	}

	if len(resp.Choices) == 0 {
		return Draft{}, ErrNotRecognized
	}

	content := resp.Choices[0].Message.Content
	log.Debug().Str("model", resp.Model).Int("tokens", resp.Usage.TotalTokens).Msg("receipt scanned")

	return ParseReply(content, categories)
}
