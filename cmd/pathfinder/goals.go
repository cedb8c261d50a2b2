package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "List the career goals the recommender knows about",
	RunE:  runGoals,
}

func runGoals(cmd *cobra.Command, args []string) error {
	_, _, store, err := loadApp()
	if err != nil {
		return err
	}

	for _, g := range store.Goals() {
		line := fmt.Sprintf("%4d  %s", g.ID, g.Name)
		if len(g.PreferredTags) > 0 {
			line += "  [" + strings.Join(g.PreferredTags, ", ") + "]"
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
