package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/hayakil/internal/catalog"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <topic>",
	Short: "Open the quiz of a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := catalog.ParseTopicID(args[0])
		if err != nil {
			return err
		}
		return runApp(cmd, id, true)
	},
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var ids []string
		for _, t := range catalog.Default().Topics() {
			if t.HasQuiz() {
				ids = append(ids, string(t.ID))
			}
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	},
}
