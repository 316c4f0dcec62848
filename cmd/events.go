package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/store"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show recent pipeline events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		generations, _ := cmd.Flags().GetBool("generations")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		opts := store.QueryOpts{Limit: limit}
		if generations {
			return printGenerationEvents(ctx, s.EventRepo(), opts)
		}
		return printLLMEvents(ctx, s.EventRepo(), opts)
	},
}

func printLLMEvents(ctx context.Context, repo store.EventRepo, opts store.QueryOpts) error {
	events, err := repo.QueryLLMEvents(ctx, opts)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tPROVIDER\tMODEL\tPURPOSE\tIN\tOUT\tMS\tCOST\tOK")
	for _, e := range events {
		cost := "-"
		if mc := llm.LookupCost(e.Model); mc != nil {
			cost = fmt.Sprintf("$%.4f", mc.Cost(e.InputTokens, e.OutputTokens))
		}
		ok := "yes"
		if !e.Success {
			ok = "no"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			e.Timestamp.Format("01-02 15:04:05"), e.Provider, e.Model, e.Purpose,
			e.InputTokens, e.OutputTokens, e.LatencyMs, cost, ok)
	}
	return w.Flush()
}

func printGenerationEvents(ctx context.Context, repo store.EventRepo, opts store.QueryOpts) error {
	events, err := repo.QueryGenerations(ctx, opts)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tSUBJECT\tTOPIC\tTYPE\tDIFFICULTY\tOUTCOME\tATTEMPTS\tMS")
	for _, e := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\t%d\n",
			e.Timestamp.Format("01-02 15:04:05"), e.Subject, e.Topic, e.Type,
			e.Difficulty, e.Outcome, e.Attempts, e.LatencyMs)
	}
	return w.Flush()
}

func init() {
	eventsCmd.Flags().Int("limit", 50, "Maximum number of events to show")
	eventsCmd.Flags().Bool("generations", false, "Show generation outcome events instead of LLM request events")
}
