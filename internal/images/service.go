package images

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// basePrompt frames every generated picture for the audience. The
// description from the marker is appended to it.
const basePrompt = "Create a simple, colorful, child-friendly cartoon illustration. " +
	"Style: Bright colors, clean lines, friendly appearance, " +
	"suitable for children ages 6-7. " +
	"No text in the image. White or simple background. "

// Config holds image generation configuration.
type Config struct {
	APIKey string
	Model  string // Default: "dall-e-2"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Model: openai.CreateImageModelDallE2,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if k := os.Getenv("LEARNO_OPENAI_API_KEY"); k != "" {
		cfg.APIKey = k
	} else if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.APIKey = k
	}
	if m := os.Getenv("LEARNO_IMAGE_MODEL"); m != "" {
		cfg.Model = m
	}

	return cfg
}

// Generator produces illustration URLs from text descriptions.
type Generator struct {
	client *openai.Client
	model  string
	cache  *urlCache
}

// NewGenerator creates an image generator backed by the OpenAI images
// API.
func NewGenerator(cfg Config) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required for image generation")
	}

	model := cfg.Model
	if model == "" {
		model = openai.CreateImageModelDallE2
	}

	return &Generator{
		client: openai.NewClient(cfg.APIKey),
		model:  model,
		cache:  newURLCache(),
	}, nil
}

// Generate returns a hosted URL for an illustration of description.
// Identical descriptions are served from cache.
func (g *Generator) Generate(ctx context.Context, description string) (string, error) {
	key := cacheKey(description)
	if url, ok := g.cache.get(key); ok {
		return url, nil
	}

	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Model:          g.model,
		Prompt:         basePrompt + "Content: " + description,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		Quality:        openai.CreateImageQualityStandard,
		Style:          openai.CreateImageStyleVivid,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return "", fmt.Errorf("image generation failed: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", fmt.Errorf("image generation returned no URL")
	}

	url := resp.Data[0].URL
	g.cache.put(key, url)
	return url, nil
}

// ModelID returns the image model in use.
func (g *Generator) ModelID() string {
	return g.model
}
