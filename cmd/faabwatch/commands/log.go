package commands

import (
	"os"

	"faabwatch/lib/serviceutil"
	"faabwatch/lib/waiverlog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var logDb *string

func init() {
	logDb = logCmd.Flags().String("db", "waiverlog.db", "The database holding previously seen transactions.")
	rootCmd.AddCommand(logCmd)
}

var logCmd = &cobra.Command{
	Use:   "log [--db <path/to/waiverlog.db>]",
	Short: "Prints every transaction recorded in the waiver log.",
	Run: func(cmd *cobra.Command, args []string) {
		database, err := waiverlog.Open(*logDb)
		if err != nil {
			serviceutil.Fatal("failed to open waiver log", err)
		}
		defer database.Close()

		all, err := waiverlog.NewStore(database).LoadAll(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to read waiver log", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{
			"Player", "Winning Bid", "Next Highest Bidder",
			"Next Highest Bid", "Winner", "TransactionID", "Difference",
		})
		for _, r := range all {
			t.AppendRow(table.Row{
				r.Player, r.WinningBid, r.RunnerUp,
				r.RunnerUpBid, r.Winner, r.ID, r.Difference,
			})
		}
		t.Render()
	},
}
