package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskAnalysis   TaskType = "analysis"
	TaskQuestion   TaskType = "question"
	TaskPersona    TaskType = "persona"
	TaskCompat     TaskType = "compat"
	TaskDivination TaskType = "divination"
)

// TaskConfig holds per-task LLM parameters. Sampling temperature is not
// per-task: it follows the model registry (see TemperatureFor).
type TaskConfig struct {
	MaxTokens int
	TimeoutMs int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	BaseURL    string
	APIKey     string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with sensible defaults.
// The LLM is disabled until an API key is configured.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:    false,
		LogCalls:   false,
		BaseURL:    "https://api.deepseek.com",
		Model:      "deepseek-chat",
		TimeoutMs:  60000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskAnalysis:   {MaxTokens: 2048, TimeoutMs: 60000},
			TaskQuestion:   {MaxTokens: 2048, TimeoutMs: 60000},
			TaskPersona:    {MaxTokens: 512, TimeoutMs: 20000},
			TaskCompat:     {MaxTokens: 2048, TimeoutMs: 60000},
			TaskDivination: {MaxTokens: 1024, TimeoutMs: 45000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("TIANJI_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	} else if v := os.Getenv("DEEPSEEK_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	// A key on its own switches the LLM on; TIANJI_LLM_ENABLED has the
	// final word in either direction.
	cfg.Enabled = cfg.APIKey != ""
	if v := os.Getenv("TIANJI_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("TIANJI_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("TIANJI_LLM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("TIANJI_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("TIANJI_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("TIANJI_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskAnalysis, "TIANJI_LLM_ANALYSIS_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskQuestion, "TIANJI_LLM_QUESTION_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskPersona, "TIANJI_LLM_PERSONA_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskCompat, "TIANJI_LLM_COMPAT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskDivination, "TIANJI_LLM_DIVINATION_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}

// modelTemperatures maps chat models to the sampling temperature that
// reads best for long-form fortune prose on that model. Reasoning
// models run cooler, chatty models a touch warmer.
var modelTemperatures = map[string]float64{
	"gemini-2.0-flash-exp":       0.8,
	"gemini-1.5-pro":             0.7,
	"gemini-1.5-flash":           0.8,
	"deepseek-chat":              0.7,
	"deepseek-reasoner":          0.6,
	"gpt-4o":                     0.7,
	"gpt-4o-mini":                0.7,
	"gpt-4-turbo":                0.7,
	"gpt-3.5-turbo":              0.8,
	"claude-3-5-sonnet-20241022": 0.7,
	"claude-3-haiku-20240307":    0.7,
	"moonshot-v1-8k":             0.7,
	"moonshot-v1-32k":            0.7,
	"moonshot-v1-128k":           0.7,
	"glm-4-plus":                 0.7,
	"glm-4":                      0.7,
	"glm-4-flash":                0.8,
}

// TemperatureFor returns the registry temperature for a model,
// defaulting to 0.7 for models not listed.
func TemperatureFor(model string) float64 {
	if t, ok := modelTemperatures[model]; ok {
		return t
	}
	return 0.7
}
