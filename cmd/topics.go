package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/hayakil/internal/catalog"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List course topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.cleanup()

		printTopics(cmd.OutOrStdout(), rt.catalog)
		return nil
	},
}

func printTopics(w io.Writer, cat *catalog.Catalog) {
	fmt.Fprintf(w, "%-3s  %-12s  %9s  %s\n", "#", "ID", "Questions", "Name")
	fmt.Fprintln(w, strings.Repeat("─", 50))

	quizzes := 0
	for i, t := range cat.Topics() {
		fmt.Fprintf(w, "%-3d  %-12s  %9d  %s %s\n", i+1, t.ID, len(t.Questions), t.Icon, t.Name)
		if t.HasQuiz() {
			quizzes++
		}
	}

	fmt.Fprintf(w, "\n%d topics, %d with quizzes (catalog %s)\n", cat.Len(), quizzes, cat.Version())
}
