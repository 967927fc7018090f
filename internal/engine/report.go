// internal/engine/report.go
// Renders standings as a human-readable table, for CLI tools and debug
// endpoints that want something other than raw JSON.

package engine

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// FormatStandings writes the standings through the given round to w as
// an ASCII table, ranked in the order Standings returns.
func (t *Tournament) FormatStandings(w io.Writer, throughRound int) {
	rows := t.Standings(throughRound)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rank", "Player", "Score", "Median", "Cut-1", "Buchholz", "Progressive"})
	for i, row := range rows {
		name := row.PlayerID
		player, ok := t.Players[name]
		display := fmt.Sprintf("#%d", row.PlayerID)
		if ok {
			display = player.Name
		}
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			display,
			fmt.Sprintf("%.1f", float64(row.Score)/2),
			fmt.Sprintf("%.1f", float64(row.MedianBuchholz)/2),
			fmt.Sprintf("%.1f", float64(row.CutOneBuchholz)/2),
			fmt.Sprintf("%.1f", float64(row.Buchholz)/2),
			fmt.Sprintf("%.1f", float64(row.Progressive)/2),
		})
	}
	table.Render()
}
