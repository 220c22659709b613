package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/hayakil/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect topic catalogs",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a topics catalog document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(args[0])
		if err != nil {
			return err
		}

		questions := 0
		for _, t := range cat.Topics() {
			questions += len(t.Questions)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (version %s, %d topics, %d questions)\n",
			args[0], cat.Version(), cat.Len(), questions)
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the built-in catalog document",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(catalog.DefaultDocument())
		return err
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogExportCmd)
}
