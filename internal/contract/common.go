package contract

// ReadingView is generated prose with its provenance: the model that
// wrote it, or whether the deterministic fallback / safety refusal
// answered instead.
type ReadingView struct {
	Text  string
	Model string
	// Source is "llm", "deterministic", or "refused".
	Source string
}
