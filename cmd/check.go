package cmd

import (
	"fmt"

	"github.com/abhisek/quizforge/internal/answercheck"
	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a user answer against a question's correct answer",
	RunE: func(cmd *cobra.Command, args []string) error {
		question, _ := cmd.Flags().GetString("question")
		correct, _ := cmd.Flags().GetString("correct")
		answer, _ := cmd.Flags().GetString("answer")
		qtype, _ := cmd.Flags().GetString("type")
		options, _ := cmd.Flags().GetStringSlice("option")

		if correct == "" {
			return fmt.Errorf("--correct is required")
		}

		q := &quizgen.Question{
			Text:          question,
			Type:          quizgen.QuestionType(qtype),
			Options:       options,
			CorrectAnswer: correct,
		}
		if answercheck.Check(answer, q) {
			fmt.Println("correct")
			return nil
		}
		fmt.Println("incorrect")
		return nil
	},
}

func init() {
	checkCmd.Flags().String("question", "", "Question text")
	checkCmd.Flags().String("correct", "", "The expected correct answer")
	checkCmd.Flags().String("answer", "", "The user's answer to evaluate")
	checkCmd.Flags().String("type", string(quizgen.ShortAnswer), "Question type: multiple_choice, true_false, fill_in_blank, short_answer")
	checkCmd.Flags().StringSlice("option", nil, "Answer option (repeatable, for multiple choice)")
}
