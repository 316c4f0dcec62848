package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/abhisek/quizforge/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate quiz questions for a topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		topic, _ := cmd.Flags().GetString("topic")
		count, _ := cmd.Flags().GetInt("count")
		qtype, _ := cmd.Flags().GetString("type")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		grade, _ := cmd.Flags().GetInt("grade")

		if topic == "" {
			return fmt.Errorf("--topic is required")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()
		events := s.EventRepo()

		llmCfg := llm.ConfigFromEnv()
		if discovered, ok := llm.DiscoverConfig(); ok && llmCfg.Validate() != nil {
			llmCfg = discovered
		}
		if err := llmCfg.Validate(); err != nil {
			return err
		}

		ctx := context.Background()
		provider, err := llm.NewProvider(ctx, llmCfg, events)
		if err != nil {
			return err
		}

		gen := quizgen.New(provider, quizgen.DefaultConfig(), events)
		req := quizgen.GenerationRequest{
			Subject:    subject,
			Topic:      topic,
			Difficulty: quizgen.Difficulty(difficulty),
			GradeLevel: grade,
		}

		var questions []quizgen.Question
		if qtype == "auto" {
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			questions = gen.GenerateMixed(ctx, req, count, rng)
		} else {
			req.Type = quizgen.QuestionType(qtype)
			questions = gen.GenerateQuestions(ctx, req, count)
		}

		for i, q := range questions {
			fmt.Printf("%d. [%s] %s\n", i+1, q.Type, q.Text)
			for j, opt := range q.Options {
				fmt.Printf("   %c) %s\n", 'a'+j, opt)
			}
			fmt.Printf("   Answer: %s\n", q.CorrectAnswer)
			if q.Explanation != "" {
				fmt.Printf("   Explanation: %s\n", q.Explanation)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().String("subject", "General Knowledge", "Subject area")
	generateCmd.Flags().String("topic", "", "Topic to generate questions about")
	generateCmd.Flags().Int("count", 5, "Number of questions to generate")
	generateCmd.Flags().String("type", string(quizgen.MultipleChoice), "Question type: multiple_choice, true_false, fill_in_blank, short_answer, or auto (grade-weighted draw per question)")
	generateCmd.Flags().String("difficulty", string(quizgen.Medium), "Difficulty: easy, medium, hard, adaptive")
	generateCmd.Flags().Int("grade", 0, "Grade level for age-appropriate phrasing (0 = unspecified)")
}
