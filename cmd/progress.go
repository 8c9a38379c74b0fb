package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcollings/studyhub/internal/domain"
	"github.com/rcollings/studyhub/internal/ui/components"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show or reset per-subject mastery",
}

var progressShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show mastery for all subjects (or one with --subject)",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, cleanup, err := openHub(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		var filter domain.SubjectID
		if id, _ := cmd.Flags().GetString("subject"); id != "" {
			subject, err := subjectFlag(cmd)
			if err != nil {
				return err
			}
			filter = subject.ID
		}

		for _, e := range h.Progress(filter) {
			fmt.Println(e.Subject.Name)
			fmt.Printf("  Attempts: %d  Correct: %d\n", e.Record.Attempts, e.Record.Correct)
			bar := components.NewProgressBar("  Mastery", float64(e.Record.Mastery)/100, true, 48)
			fmt.Println(bar.View())
		}
		return nil
	},
}

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Zero a subject's progress record",
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

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(fmt.Sprintf("Reset progress for %s?", subject.Name)) {
			fmt.Println("Aborted.")
			return nil
		}
		if err := h.ResetProgress(cmd.Context(), subject.ID); err != nil {
			return err
		}
		fmt.Println("Progress reset for", subject.Name)
		return nil
	},
}

func init() {
	progressResetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	progressCmd.AddCommand(progressShowCmd)
	progressCmd.AddCommand(progressResetCmd)
}

// confirm asks a y/N question on stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
