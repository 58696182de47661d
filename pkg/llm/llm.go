package llm

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"
)

// ChatModel is a minimal abstraction for chat-based LLMs.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

const overviewPrompt = `You write one-paragraph overviews of resumes for a recruiter dashboard.
Answer with at most two sentences of plain text: role, seniority and strongest skills.
Do not invent facts that are not in the resume.`

// maxInputRunes bounds how much resume text is sent to the model.
const maxInputRunes = 6000

var ErrEmptyAnswer = errors.New("llm returned an empty overview")

// Summarizer turns extracted resume text into a card overview.
type Summarizer struct {
	model ChatModel
}

func NewSummarizer(m ChatModel) *Summarizer { return &Summarizer{model: m} }

func (s *Summarizer) Overview(ctx context.Context, resumeText string) (string, error) {
	text := strings.TrimSpace(resumeText)
	if utf8.RuneCountInString(text) > maxInputRunes {
		text = string([]rune(text)[:maxInputRunes])
	}
	out, err := s.model.Ask(ctx, overviewPrompt, text)
	if err != nil {
		return "", err
	}
	out = strings.Join(strings.Fields(out), " ")
	if out == "" {
		return "", ErrEmptyAnswer
	}
	return out, nil
}
