package cmd

import (
	"fmt"
	"os"

	"github.com/ekaplan/mathquest/internal/app"
	"github.com/ekaplan/mathquest/internal/llm"
	"github.com/ekaplan/mathquest/internal/questiongen"
	"github.com/ekaplan/mathquest/internal/store"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func runPlay(cmd *cobra.Command) error {
	ctx := cmd.Context()

	// Open store for LLM telemetry. Quiz state itself stays in memory.
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set MATHQUEST_LLM_PROVIDER and the matching API key, e.g.")
		fmt.Fprintln(os.Stderr, "  MATHQUEST_LLM_PROVIDER=anthropic MATHQUEST_ANTHROPIC_API_KEY=... mathquest play")
		return err
	}

	gen := questiongen.New(provider, questiongen.DefaultConfig())
	return app.Run(gen)
}
