package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcollings/studyhub/internal/flashcards"
	"github.com/rcollings/studyhub/internal/tui"
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Manage and study flashcards",
}

var cardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the subject's deck",
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
		deck, err := h.Deck(subject.ID)
		if err != nil {
			return err
		}
		if deck == nil || len(deck.Cards) == 0 {
			fmt.Println("No flashcards yet.")
			return nil
		}
		fmt.Printf("%s (%d cards)\n", deck.Name, len(deck.Cards))
		for _, c := range deck.Cards {
			fmt.Printf("  %s  %s — due %s, every %dd\n",
				c.ID, preview(c.Front, 40), c.NextDue.Format("2006-01-02"), c.Interval)
		}
		return nil
	},
}

var cardsAddCmd = &cobra.Command{
	Use:   "add [front] [back]",
	Short: "Add a flashcard (opens an interactive form with no args)",
	Args:  cobra.RangeArgs(0, 2),
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

		if len(args) == 0 {
			saved, err := tui.AddCards(h, subject.ID)
			if err != nil {
				return err
			}
			fmt.Printf("Saved %d cards.\n", saved)
			return nil
		}
		if len(args) != 2 {
			return flashcards.ErrInvalidCard
		}
		card, err := h.CreateCard(cmd.Context(), subject.ID, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println("Saved card", card.ID)
		return nil
	},
}

var cardsStudyCmd = &cobra.Command{
	Use:   "study",
	Short: "Study every card in the deck",
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
		session, err := h.StartStudy(subject.ID)
		if err != nil {
			return err
		}
		return tui.StudyCards(h, subject, session)
	},
}

func init() {
	cardsCmd.AddCommand(cardsListCmd)
	cardsCmd.AddCommand(cardsAddCmd)
	cardsCmd.AddCommand(cardsStudyCmd)
}
