package intelligence

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/tianji/internal/llm"
	"github.com/alexanderramin/tianji/internal/zhouyi"
)

// Reading is one generated analysis and its provenance.
type Reading struct {
	Text  string
	Model string
	// Source is "llm", "deterministic", or "refused".
	Source string
}

// AnalysisRequest carries the chart context and conversation state for
// one reading.
type AnalysisRequest struct {
	Context ContextInput
	History []HistoryEntry
	// First marks the session's first reading; later readings drop the
	// opening pleasantries.
	First bool
}

// AnalysisService produces readings over a derived chart. Every method
// degrades to a deterministic reading when the LLM is unavailable or
// fails: a reading request never errors because the model did.
type AnalysisService interface {
	// TopicReading generates a reading for one of the fixed topics.
	TopicReading(ctx context.Context, req AnalysisRequest, topic string) (*Reading, error)

	// QuestionReading answers a free question against the chart.
	QuestionReading(ctx context.Context, req AnalysisRequest, question string) (*Reading, error)

	// DivinationReading interprets an already-cast hexagram.
	DivinationReading(ctx context.Context, cast zhouyi.CastResult, question string, now time.Time) (*Reading, error)
}

type analysisService struct {
	client   llm.LLMClient
	observer llm.Observer
}

// NewAnalysisService creates an AnalysisService backed by an LLM client.
func NewAnalysisService(client llm.LLMClient, observer llm.Observer) AnalysisService {
	return &analysisService{client: client, observer: observer}
}

func (s *analysisService) TopicReading(ctx context.Context, req AnalysisRequest, topic string) (*Reading, error) {
	in := req.Context
	in.Now = readingClock(in)
	userPrompt := TopicUserPrompt(BuildUserContext(in), req.History, topic, in.Now)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAnalysis,
		SystemPrompt: SystemPrompt(req.First, in.Now),
		UserPrompt:   userPrompt,
	})
	if err != nil {
		return &Reading{Text: DeterministicTopicReading(in, topic), Source: "deterministic"}, nil
	}
	return &Reading{Text: strings.TrimSpace(resp.Text), Model: resp.Model, Source: "llm"}, nil
}

func (s *analysisService) QuestionReading(ctx context.Context, req AnalysisRequest, question string) (*Reading, error) {
	if !IsSafeInput(question) {
		return &Reading{Text: UnsafeInputMessage, Source: "refused"}, nil
	}

	in := req.Context
	in.Now = readingClock(in)
	userPrompt := QuestionUserPrompt(BuildUserContext(in), req.History, question, in.Now)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskQuestion,
		SystemPrompt: SystemPrompt(req.First, in.Now),
		UserPrompt:   userPrompt,
	})
	if err != nil {
		return &Reading{Text: DeterministicQuestionReading(in.Chart, question), Source: "deterministic"}, nil
	}
	return &Reading{Text: strings.TrimSpace(resp.Text), Model: resp.Model, Source: "llm"}, nil
}

func (s *analysisService) DivinationReading(ctx context.Context, cast zhouyi.CastResult, question string, now time.Time) (*Reading, error) {
	if !IsSafeInput(question) {
		return &Reading{Text: UnsafeInputMessage, Source: "refused"}, nil
	}
	if now.IsZero() {
		now = time.Now()
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskDivination,
		SystemPrompt: SystemPrompt(true, now),
		UserPrompt:   DivinationUserPrompt(zhouyi.FormatCast(cast), question, now),
	})
	if err != nil {
		return &Reading{Text: DeterministicDivinationReading(cast, question), Source: "deterministic"}, nil
	}
	return &Reading{Text: strings.TrimSpace(resp.Text), Model: resp.Model, Source: "llm"}, nil
}

// readingClock anchors year substitution and age brackets; a zero Now
// falls back to the wall clock.
func readingClock(in ContextInput) time.Time {
	if in.Now.IsZero() {
		return time.Now()
	}
	return in.Now
}
