package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gabrielc1317/mdc-pathfinder/internal/types"
)

var programsCmd = &cobra.Command{
	Use:   "programs [id]",
	Short: "List valid catalog programs, or show one by id",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPrograms,
}

func runPrograms(cmd *cobra.Command, args []string) error {
	_, _, store, err := loadApp()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return types.NewError(types.REQUEST_INVALID, "program id must be an integer")
		}
		p, ok := store.ValidProgramByID(id)
		if !ok {
			return types.NewError(types.PROGRAM_NOT_FOUND, fmt.Sprintf("program %d not found", id))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d  %s\n  award: %s  credits: %d  delivery: %s\n  %s\n",
			p.ID, p.Name, p.AwardLevel, p.TotalCredits, p.DeliveryMode, p.URL)
		return nil
	}

	for _, p := range store.ValidPrograms() {
		fmt.Fprintf(cmd.OutOrStdout(), "%6d  %-12s %3dcr  %s\n", p.ID, p.AwardLevel, p.TotalCredits, p.Name)
	}
	return nil
}
