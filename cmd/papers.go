package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var papersCmd = &cobra.Command{
	Use:   "papers",
	Short: "Store and analyze past-paper text",
}

var papersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved past papers, newest first",
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
		papers, err := h.PastPapers(subject.ID)
		if err != nil {
			return err
		}
		if len(papers) == 0 {
			fmt.Println("No past papers saved.")
			return nil
		}
		for _, p := range papers {
			fmt.Printf("%s  %s\n    %s\n", p.ID, p.Created.Format("2006-01-02 15:04"), preview(p.Text, 80))
		}
		return nil
	},
}

var papersSaveCmd = &cobra.Command{
	Use:   "save [text]",
	Short: "Save past-paper text (reads stdin when no text is given)",
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
		paper, err := h.SavePastPaper(cmd.Context(), subject.ID, text)
		if err != nil {
			return err
		}
		fmt.Println("Saved past paper", paper.ID)
		return nil
	},
}

var papersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a past paper by id",
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
		return h.DeletePastPaper(cmd.Context(), subject.ID, args[0])
	},
}

var papersAnalyzeCmd = &cobra.Command{
	Use:   "analyze [id]",
	Short: "Extract keywords from a saved paper, or from stdin with no id",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, cleanup, err := openHub(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		var topics []string
		if len(args) == 1 {
			subject, err := subjectFlag(cmd)
			if err != nil {
				return err
			}
			topics, err = h.AnalyzePastPaper(subject.ID, args[0])
			if err != nil {
				return err
			}
		} else {
			text, err := textArg(nil)
			if err != nil {
				return err
			}
			topics, err = h.AnalyzeText(text)
			if err != nil {
				return err
			}
		}
		fmt.Println("Detected topics / keywords:", strings.Join(topics, ", "))
		return nil
	},
}

func init() {
	papersCmd.AddCommand(papersListCmd)
	papersCmd.AddCommand(papersSaveCmd)
	papersCmd.AddCommand(papersDeleteCmd)
	papersCmd.AddCommand(papersAnalyzeCmd)
}
