package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dgnsrekt/match-relay/internal/data"
	"github.com/dgnsrekt/match-relay/internal/output"
)

// emit prints out, or writes it to path when one is given.
func emit(cmd *cobra.Command, path string, out []byte) error {
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}
	if err := output.WriteFile(path, append(out, '\n')); err != nil {
		return err
	}
	logger.Info("written", zap.String("path", path), zap.Int("bytes", len(out)+1))
	return nil
}

func getMatchesCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "get-matches",
		Short: "Print the current match snapshot, waiting for the first publish",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := newClient().GetMatches(cmd.Context())
			if err != nil {
				logger.Error("read failed", zap.Error(err))
				return err
			}

			out, err := json.MarshalIndent(data.MatchesPayload{Matches: matches}, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding output: %w", err)
			}
			return emit(cmd, outPath, out)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to file instead of stdout")

	return cmd
}

func getLinksCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "get-links WATCH_ID",
		Short: "Print the stream links for WATCH_ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := newClient().GetStreamLinks(cmd.Context(), args[0])
			if err != nil {
				logger.Error("read failed", zap.String("watchID", args[0]), zap.Error(err))
				return err
			}

			var out bytes.Buffer
			if err := json.Indent(&out, payload, "", "  "); err != nil {
				out.Reset()
				out.Write(payload)
			}
			return emit(cmd, outPath, out.Bytes())
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to file instead of stdout")

	return cmd
}
