package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/harwood/mediamap/config"
	"github.com/harwood/mediamap/pkg/logger"
	"github.com/harwood/mediamap/pkg/reconcile"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// scanCmd represents the scan command: a one-shot reconciliation scan of an
// instance that prints the resulting items.
var scanCmd = &cobra.Command{
	Use:        "scan",
	Short:      "scan an instance for unmapped media folders",
	Long:       `scan an instance for unmapped media folders`,
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"instance"},
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		zlog := logger.Get()
		ctx = logger.WithCtx(ctx, zlog)

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalf("failed to read configurations: %v", err)
		}

		m, err := buildManager(ctx, cfg)
		if err != nil {
			log.Fatalf("failed to build manager: %v", err)
		}

		instance := args[0]
		started, err := m.StartScan(ctx, instance)
		if err != nil {
			log.Fatalf("failed to start scan: %v", err)
		}
		if !started {
			log.Fatal("a scan is already running for this instance")
		}

		var state reconcile.State
		for {
			state, err = m.GetReconciliationState(ctx, instance)
			if err != nil {
				log.Fatalf("failed to get reconciliation state: %v", err)
			}
			if !state.InProgress {
				break
			}
			time.Sleep(200 * time.Millisecond)
		}

		for _, item := range state.Items {
			printItem(item)
		}
		log.Printf("%d unmapped folders", len(state.Items))
	},
}

func printItem(item reconcile.Item) {
	year := "?"
	if item.ParsedYear != nil {
		year = fmt.Sprintf("%d", *item.ParsedYear)
	}

	match := "-"
	if item.BestMatch != nil {
		match = fmt.Sprintf("%s (score %d)", item.BestMatch.Title, item.BestMatch.Score)
	}

	log.Printf("%-8s %s (%s) -> %s [%d files, %s]",
		item.Status, item.ParsedTitle, year, match, item.FileCount, humanize.Bytes(uint64(item.TotalSizeBytes)))
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
