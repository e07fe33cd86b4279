package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aref-vc/youtube-content-analyzer/agents/channel-insights"
	"github.com/aref-vc/youtube-content-analyzer/internal/models"
)

var (
	analyzeInput       string
	analyzeOutput      string
	analyzeChannelName string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Build a channel report from a JSON file of video records",
	Long: `Build a channel report from a JSON file of video records without calling YouTube.
The input is either an array of videos or an object {"channel": {...}, "videos": [...]}.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "Path to the records JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Write the report here instead of stdout")
	analyzeCmd.Flags().StringVar(&analyzeChannelName, "channel-name", "", "Channel name for the report")
	_ = analyzeCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(analyzeCmd)
}

type recordsFile struct {
	Channel models.Channel `json:"channel"`
	Videos  []models.Video `json:"videos"`
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(analyzeInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	records, err := parseRecords(data)
	if err != nil {
		return err
	}
	if analyzeChannelName != "" {
		records.Channel.Name = analyzeChannelName
	}

	report, err := channelinsights.NewEngine(cfg).AnalyzeChannel(context.Background(), records.Channel, records.Videos)
	if err != nil {
		return fmt.Errorf("failed to analyze channel: %w", err)
	}

	var out io.Writer = cmd.OutOrStdout()
	if analyzeOutput != "" {
		f, err := os.Create(analyzeOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return writeJSON(out, report)
}

func parseRecords(data []byte) (recordsFile, error) {
	var records recordsFile
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &records.Videos); err != nil {
			return records, fmt.Errorf("failed to parse video records: %w", err)
		}
		return records, nil
	}

	if err := json.Unmarshal(data, &records); err != nil {
		return records, fmt.Errorf("failed to parse records file: %w", err)
	}
	return records, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
