package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcollings/studyhub/internal/tui"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Create, list and play multiple-choice quizzes",
}

var quizListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved quizzes, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, cleanup, err := openHub(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		subject, err := subjectFlag(cmd)
		if err != nil {
			return err
		}
		quizzes, err := h.Quizzes(subject.ID)
		if err != nil {
			return err
		}
		if len(quizzes) == 0 {
			fmt.Println("No quizzes yet.")
			return nil
		}
		for _, q := range quizzes {
			fmt.Printf("%s  %s (%d questions)\n", q.ID, q.Title, len(q.Questions))
		}
		return nil
	},
}

var quizCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a quiz from line-based question text on stdin",
	Long: "Each line is one question in the form:\n\n" +
		"  What is 2+2? | 4 | 3 ; 5 ; 22\n\n" +
		"that is: question | correct answer | wrong answers separated by ';'.\n" +
		"Lines that do not contain at least one '|' are skipped.",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, cleanup, err := openHub(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		subject, err := subjectFlag(cmd)
		if err != nil {
			return err
		}
		raw, err := textArg(args)
		if err != nil {
			return err
		}
		title, _ := cmd.Flags().GetString("title")
		q, err := h.CreateQuiz(cmd.Context(), subject.ID, title, raw)
		if err != nil {
			return err
		}
		fmt.Printf("Saved quiz %s: %s (%d questions)\n", q.ID, q.Title, len(q.Questions))
		return nil
	},
}

var quizDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a quiz by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, cleanup, err := openHub(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		subject, err := subjectFlag(cmd)
		if err != nil {
			return err
		}
		return h.DeleteQuiz(cmd.Context(), subject.ID, args[0])
	},
}

var quizPlayCmd = &cobra.Command{
	Use:   "play [id]",
	Short: "Play a quiz (most recent when no id is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, cleanup, err := openHub(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		subject, err := subjectFlag(cmd)
		if err != nil {
			return err
		}
		id := ""
		if len(args) == 1 {
			id = args[0]
		}
		session, err := h.StartQuiz(subject.ID, id)
		if err != nil {
			return err
		}
		return tui.PlayQuiz(h, subject.ID, session)
	},
}

func init() {
	quizCreateCmd.Flags().StringP("title", "t", "", "Quiz title (defaults to \"Untitled Quiz\")")

	quizCmd.AddCommand(quizListCmd)
	quizCmd.AddCommand(quizCreateCmd)
	quizCmd.AddCommand(quizDeleteCmd)
	quizCmd.AddCommand(quizPlayCmd)
}
