package cmd

import (
	"fmt"
	"os"

	"github.com/nmehta/studysnap/internal/app"
	"github.com/nmehta/studysnap/internal/llm"
	"github.com/nmehta/studysnap/internal/store"
	"github.com/nmehta/studysnap/internal/study"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	var opts app.Options

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Analysis will be unavailable.")
	} else {
		opts.Analyzer = study.NewAnalyzer(provider, study.DefaultConfig())
	}

	return app.Run(opts)
}
