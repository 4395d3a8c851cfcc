package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Anant2019/home-kitchen-app/internal/llm"
	"go.uber.org/zap"
)

const dishPromptTemplate = `Generate a short, appetizing description (max 20 words) and a single, specific keyword for an image search for the food item: %q.
The image keyword should be specific enough to get a good result from a general image search (e.g. "paneer butter masala", "chocolate cake slice").
Return JSON with keys: "description" and "image_keyword".`

type DishContent struct {
	Description  string `json:"description"`
	ImageKeyword string `json:"image_keyword"`
}

type GenerateService struct {
	generator llm.Generator
	logger    *zap.SugaredLogger
}

func NewGenerateService(generator llm.Generator, logger *zap.SugaredLogger) *GenerateService {
	return &GenerateService{
		generator: generator,
		logger:    logger,
	}
}

func (s *GenerateService) GenerateDishContent(ctx context.Context, dishName string) (*DishContent, error) {
	raw, err := s.generator.Generate(ctx, fmt.Sprintf(dishPromptTemplate, dishName))
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	var content DishContent
	if err := json.Unmarshal([]byte(llm.StripCodeFences(raw)), &content); err != nil {
		return nil, fmt.Errorf("invalid model response: %w", err)
	}

	if content.Description == "" || content.ImageKeyword == "" {
		return nil, fmt.Errorf("model response missing description or image keyword")
	}

	s.logger.Infow("dish content generated", "dish_name", dishName, "image_keyword", content.ImageKeyword)

	return &content, nil
}
