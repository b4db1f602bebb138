package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagReportTable bool
	flagReportLimit int
	flagReportClear bool
)

var reportCmd = &cobra.Command{
	Use:   "report [variant]",
	Short: "Show recorded simulation results",
	Long: `Display results recorded by 'pong sim'.

Without a variant, prints one summary line per simulated variant.
With a variant, prints its most recent matches.

Examples:
  pong report
  pong report pong-classic --limit 20
  pong report --table
  pong report pong --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&flagReportTable, "table", false, "Browse results in an interactive table")
	reportCmd.Flags().IntVar(&flagReportLimit, "limit", 10, "Matches to print for a variant")
	reportCmd.Flags().BoolVar(&flagReportClear, "clear", false, "Delete recorded matches (of the variant, or all)")
}

func runReport(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	variant := ""
	if len(args) == 1 {
		variant = args[0]
	}

	switch {
	case flagReportClear:
		if err := store.ClearMatches(variant); err != nil {
			return err
		}
		if variant == "" {
			fmt.Println("Cleared all simulation records.")
		} else {
			fmt.Printf("Cleared simulation records for %s.\n", variant)
		}
		return nil

	case flagReportTable:
		cfg := runtimeConfig()
		_, err := tui.RunReport(store, cfg.ScreenW, cfg.ScreenH)
		return err

	case variant != "":
		return printVariant(store, variant)
	}

	return printAllVariants(store)
}

func printAllVariants(store *storage.Store) error {
	stats, err := store.GetAllVariantStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No simulations recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pong sim' to record some.")
		return nil
	}

	variants := make([]string, 0, len(stats))
	for v := range stats {
		variants = append(variants, v)
	}
	sort.Strings(variants)

	fmt.Println("Simulation results")
	fmt.Println()
	for _, v := range variants {
		s := stats[v]
		fmt.Printf("  %-14s %s  (last run %s)\n", v, tui.StatsLine(s), s.LastRun.Format("2006-01-02 15:04"))
	}
	return nil
}

func printVariant(store *storage.Store, variant string) error {
	records, err := store.RecentMatches(variant, flagReportLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Simulation results - %s\n\n", variant)
	if len(records) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'pong sim --variant %s' to record some.\n", variant)
		return nil
	}

	printRecords(records)

	stats, err := store.GetVariantStats(variant)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(tui.StatsLine(stats))
	return nil
}

// printRecords prints match records as an aligned text table.
func printRecords(records []storage.MatchRecord) {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, tui.ReportColumns)
	for _, r := range records {
		rows = append(rows, tui.RecordRow(r))
	}

	widths := make([]int, len(tui.ReportColumns))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Println("  " + strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}
