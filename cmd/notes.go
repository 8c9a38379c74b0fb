package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcollings/studyhub/internal/hub"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Manage study notes",
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved notes, newest first",
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
		notes, err := h.Notes(subject.ID)
		if err != nil {
			return err
		}
		if len(notes) == 0 {
			fmt.Println("No notes yet.")
			return nil
		}
		for _, n := range notes {
			fmt.Printf("%s  %s\n    %s\n", n.ID, n.Created.Format("2006-01-02 15:04"), preview(n.Text, 80))
		}
		return nil
	},
}

var notesAddCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Save a note (reads stdin when no text is given)",
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
		text, err := textArg(args)
		if err != nil {
			return err
		}
		summarize, _ := cmd.Flags().GetBool("summarize")
		if summarize {
			text, err = h.SummarizeDraft(text)
			if err != nil {
				return err
			}
		}
		note, err := h.CreateNote(cmd.Context(), subject.ID, text)
		if err != nil {
			return err
		}
		fmt.Println("Saved note", note.ID)
		return nil
	},
}

var notesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note by id",
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
		return h.DeleteNote(cmd.Context(), subject.ID, args[0])
	},
}

var notesSummarizeCmd = &cobra.Command{
	Use:   "summarize [text]",
	Short: "Print a sentence-truncated summary of draft text",
	Long: fmt.Sprintf("Summarize keeps the first %d sentences of the input. "+
		"It is a truncation heuristic, not a real summarizer.", hub.SummarySentences),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, cleanup, err := openHub(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		text, err := textArg(args)
		if err != nil {
			return err
		}
		summary, err := h.SummarizeDraft(text)
		if err != nil {
			return err
		}
		fmt.Println(summary)
		return nil
	},
}

var notesExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Write a note's raw text to <subject>-notes.txt",
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
		note, err := h.Note(subject.ID, args[0])
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = fmt.Sprintf("%s-notes.txt", subject.ID)
		}
		if err := os.WriteFile(out, []byte(note.Text), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Println("Wrote", out)
		return nil
	},
}

func init() {
	notesAddCmd.Flags().Bool("summarize", false, "Summarize the text before saving")
	notesExportCmd.Flags().StringP("out", "o", "", "Output file path")

	notesCmd.AddCommand(notesListCmd)
	notesCmd.AddCommand(notesAddCmd)
	notesCmd.AddCommand(notesDeleteCmd)
	notesCmd.AddCommand(notesSummarizeCmd)
	notesCmd.AddCommand(notesExportCmd)
}

// textArg joins positional args into one text block, or reads stdin when
// none are given.
func textArg(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(raw), nil
}

// preview returns the first n runes of a single-line rendering of text.
func preview(text string, n int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "…"
}
