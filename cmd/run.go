package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/hayakil/internal/app"
	"github.com/abhisek/hayakil/internal/catalog"
)

// runApp resolves dependencies and launches the TUI. topic overrides the
// configured start topic; openQuiz starts on that topic's quiz.
func runApp(cmd *cobra.Command, topic catalog.TopicID, openQuiz bool) error {
	if topic == "" && cmd.Flags().Lookup("topic") != nil {
		raw, _ := cmd.Flags().GetString("topic")
		if raw != "" {
			id, err := catalog.ParseTopicID(raw)
			if err != nil {
				return err
			}
			topic = id
		}
	}

	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.cleanup()

	rt.log.Info("starting",
		zap.String("version", version),
		zap.String("topic", string(topic)),
		zap.Bool("quiz", openQuiz))

	return app.Run(app.Options{
		Catalog:    rt.catalog,
		Config:     rt.cfg,
		Logger:     rt.log,
		StartTopic: topic,
		OpenQuiz:   openQuiz,
	})
}
