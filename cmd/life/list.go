package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List seed strategies",
	Long:  `Shows the strategies that can produce a fresh grid.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	seeders := registry.List()

	if len(seeders) == 0 {
		fmt.Println("No seed strategies available.")
		return
	}

	fmt.Println("Seed strategies:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range seeders {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, s := range seeders {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'life play --start <id>' to start from a strategy.")
}
