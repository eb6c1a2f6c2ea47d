package essay

import (
	"context"
	"fmt"
	"strings"
	"time"

	"grammarlab/internal/domain"
	"grammarlab/internal/logger"
	"grammarlab/internal/port"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// ollamaEssayGrader implements port.EssayGrader on a local Ollama model.
type ollamaEssayGrader struct {
	llmClient *ollama.LLM
}

// NewOllamaEssayGrader creates a new instance of ollamaEssayGrader.
func NewOllamaEssayGrader(llm *ollama.LLM) port.EssayGrader {
	return &ollamaEssayGrader{
		llmClient: llm,
	}
}

// GradeEssay implements port.EssayGrader
func (g *ollamaEssayGrader) GradeEssay(ctx context.Context, prompt string, keyPoints []string, essay string) (string, error) {
	l := logger.Get()

	llmPrompt := fmt.Sprintf(`You are an English writing tutor. A learner wrote a short essay for the prompt below. Respond with 2-4 sentences of plain-text feedback on their grammar and how well they covered the expected points. Do not assign a numeric score.

Prompt: %s
Expected points: %s

Learner's essay:
%s`, prompt, strings.Join(keyPoints, ", "), essay)

	callCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	response, err := g.llmClient.Call(callCtx, llmPrompt, llms.WithTemperature(0.2))
	if err != nil {
		l.Error("Failed to get essay feedback from LLM", zap.Error(err))
		return "", domain.NewEssayServiceError(fmt.Errorf("LLM call failed: %w", err))
	}

	cleaned := strings.TrimSpace(response)

	// Reasoning models wrap their deliberation in <think> tags; strip it.
	if thinkStart := strings.Index(cleaned, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(cleaned, "</think>"); thinkEnd > thinkStart {
			cleaned = strings.TrimSpace(cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):])
		}
	}
	if cleaned == "" {
		return "", domain.NewEssayServiceError(fmt.Errorf("empty response from LLM"))
	}
	return cleaned, nil
}
