package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcollings/studyhub/internal/domain"
	"github.com/rcollings/studyhub/internal/hub"
	"github.com/rcollings/studyhub/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studyhub",
	Short: "Local study hub for notes, quizzes and flashcards",
	Long: "StudyHub — a single-user terminal study tool that keeps notes, MCQ quizzes,\n" +
		"flashcard decks and past papers per subject, and tracks mastery from quiz results.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYHUB_DB env var)")
	rootCmd.PersistentFlags().StringP("subject", "s", "", "Subject id (maths-ocr, cs-ocr, econ-edx)")

	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(cardsCmd)
	rootCmd.AddCommand(papersCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then STUDYHUB_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openHub opens the store and loads the study document. The returned
// cleanup closes the store.
func openHub(cmd *cobra.Command) (*hub.Hub, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	h, err := hub.Open(cmd.Context(), st.Documents())
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load study document: %w", err)
	}
	return h, func() { st.Close() }, nil
}

// subjectFlag reads and validates the --subject flag.
func subjectFlag(cmd *cobra.Command) (domain.Subject, error) {
	id, _ := cmd.Flags().GetString("subject")
	if id == "" {
		return domain.Subject{}, fmt.Errorf("--subject is required (one of: %s)", subjectIDs())
	}
	s, ok := domain.SubjectByID(domain.SubjectID(id))
	if !ok {
		return domain.Subject{}, fmt.Errorf("unknown subject %q (one of: %s)", id, subjectIDs())
	}
	return s, nil
}

func subjectIDs() string {
	ids := ""
	for i, s := range domain.Subjects {
		if i > 0 {
			ids += ", "
		}
		ids += string(s.ID)
	}
	return ids
}
