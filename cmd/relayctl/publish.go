package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dgnsrekt/match-relay/internal/batch"
	"github.com/dgnsrekt/match-relay/internal/data"
)

func publishMatchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish-matches FILE",
		Short: "Replace the match snapshot with the contents of FILE",
		Long: `Publish a match snapshot read from FILE.

FILE may hold a {"matches": [...]} object, a bare JSON array, or (with a
.jsonl extension) one match object per line.

Examples:
  relayctl publish-matches matches.json
  relayctl publish-matches today.jsonl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := data.LoadMatchesFile(args[0])
			if err != nil {
				return err
			}

			msg, err := newClient().PublishMatches(cmd.Context(), matches)
			if err != nil {
				logger.Error("publish failed", zap.String("file", args[0]), zap.Error(err))
				return err
			}

			logger.Info("matches published", zap.Int("count", len(matches)), zap.String("server", msg))
			return nil
		},
	}

	return cmd
}

func publishLinksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish-links WATCH_ID FILE",
		Short: "Store the JSON document in FILE as the stream links for WATCH_ID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			watchID, path := args[0], args[1]

			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			if !json.Valid(raw) {
				return fmt.Errorf("%s does not contain valid JSON", path)
			}

			msg, err := newClient().PublishStreamLinks(cmd.Context(), watchID, data.StreamLinks(raw))
			if err != nil {
				logger.Error("publish failed", zap.String("watchID", watchID), zap.Error(err))
				return err
			}

			logger.Info("stream links published", zap.String("watchID", watchID), zap.String("server", msg))
			return nil
		},
	}

	return cmd
}

func publishLinksDirCmd() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "publish-links-dir DIR",
		Short: "Publish every <watch_id>.json file in DIR as stream links",
		Long: `Publish a directory of stream-link documents. Each file named
<watch_id>.json is stored under its watch id. Files holding invalid JSON are
skipped.

Examples:
  relayctl publish-links-dir ./links --workers 8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := batch.TasksFromDir(args[0])
			if err != nil {
				return err
			}

			mgr := batch.NewManager(newClient(), workers, logger)
			result, err := mgr.Execute(cmd.Context(), tasks)
			if err != nil {
				return err
			}

			logger.Info("batch complete",
				zap.Int("total", result.Total),
				zap.Int("success", result.Success),
				zap.Int("skipped", result.Skipped),
				zap.Int("failed", result.Failed),
			)
			for _, e := range result.Errors {
				logger.Error("publish failed", zap.String("error", e))
			}
			if result.Failed > 0 {
				return fmt.Errorf("%d of %d publishes failed", result.Failed, result.Total)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "number of concurrent publishers")

	return cmd
}
