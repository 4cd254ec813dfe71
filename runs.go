package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/milk9111/dasher/storage"
	"github.com/spf13/cobra"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent runs and the best winning time",
	Long: `Display the most recent runs from the history database.

Examples:
  dasher runs
  dasher runs --limit 25`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 10, "Number of runs to show")
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	wonStyle    = cellStyle.Foreground(lipgloss.Color("2"))
	lostStyle   = cellStyle.Foreground(lipgloss.Color("1"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func runRuns(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.RecentRuns(runsLimit)
	if err != nil {
		return err
	}
	best, hasBest, err := store.BestWin()
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	var bestPtr *storage.RunRecord
	if hasBest {
		bestPtr = &best
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderRuns(runs, bestPtr, stats))
	return nil
}

func renderRuns(runs []storage.RunRecord, best *storage.RunRecord, stats storage.Stats) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Dapper Dasher - recent runs"))
	b.WriteString("\n\n")

	if len(runs) == 0 {
		b.WriteString("No runs recorded yet. Play with 'dasher play'.")
		return b.String()
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Outcome,
			fmt.Sprintf("%.1fs", r.Duration),
			fmt.Sprintf("%d/%d", r.Passed, r.Obstacles),
			fmt.Sprintf("%.0f", r.Distance),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Date", "Outcome", "Time", "Passed", "Distance").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 1 {
				switch rows[row][1] {
				case "won":
					return wonStyle
				case "lost":
					return lostStyle
				}
			}
			return cellStyle
		})
	b.WriteString(t.String())
	b.WriteString("\n")

	fmt.Fprintf(&b, "\n%d runs, %d won, %d lost\n", stats.Total, stats.Wins, stats.Losses)
	if best != nil {
		fmt.Fprintf(&b, "Best: %.1fs (%s)", best.Duration, best.CreatedAt.Format("2006-01-02"))
	} else {
		b.WriteString(mutedStyle.Render("No wins yet."))
	}
	return b.String()
}
