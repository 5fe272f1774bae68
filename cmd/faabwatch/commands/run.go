package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"faabwatch/lib/configutil"
	"faabwatch/lib/groupme"
	"faabwatch/lib/scrapers/yahoo"
	"faabwatch/lib/serviceutil"
	"faabwatch/lib/waiverlog"
	"faabwatch/services/overbid"

	"github.com/spf13/cobra"
)

type Config struct {
	// the Yahoo league id from the league URL, the league must be
	// public
	LeagueID string `json:"league_id"`
	// the dollar difference between the winning bid and the second
	// highest bid above which a message is sent, must be positive
	Threshold int `json:"threshold"`
	// created on dev.groupme.com
	GroupmeBotID string `json:"groupme_bot_id"`
}

func (c Config) validate() error {
	if c.LeagueID == "" {
		return fmt.Errorf("league_id is required")
	}
	if c.GroupmeBotID == "" {
		return fmt.Errorf("groupme_bot_id is required")
	}
	// an absent threshold unmarshals to 0, which would notify on
	// every $1 overbid
	if c.Threshold <= 0 {
		return fmt.Errorf("threshold must be a positive dollar amount")
	}
	return nil
}

var runDb *string

func init() {
	runDb = runCmd.Flags().String("db", "waiverlog.db", "The database holding previously seen transactions.")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [--db <path/to/waiverlog.db>]",
	Short: "Runs one collection pass and notifies on any new overbids.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}
		err = cfg.validate()
		if err != nil {
			serviceutil.Fatal("incomplete config", err)
		}

		database, err := waiverlog.Open(*runDb)
		if err != nil {
			serviceutil.Fatal("failed to open waiver log", err)
		}
		defer database.Close()

		client, err := yahoo.NewClient(yahoo.ClientOptions{LeagueID: cfg.LeagueID})
		if err != nil {
			serviceutil.Fatal("failed to initialize yahoo client", err)
		}

		svc := overbid.NewService(
			client,
			waiverlog.NewStore(database),
			groupme.NewClient(groupme.ClientOptions{BotID: cfg.GroupmeBotID}),
			cfg.Threshold,
		)

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute*2)
		defer cancel()

		slog.Info("running collection pass", "league_id", cfg.LeagueID, "threshold", cfg.Threshold)
		t1 := time.Now()
		err = svc.Run(ctx)
		if err != nil {
			serviceutil.Fatal("collection pass failed", err)
		}
		slog.Info("collection pass time", "seconds", time.Since(t1).Seconds())
	},
}
