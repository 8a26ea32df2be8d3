package study

// Config holds analysis generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for analysis generation.
// The output carries a summary, a glossary, and a quiz, so the token
// budget is generous.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.4,
	}
}
