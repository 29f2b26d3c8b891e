package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"resume-scorer/internal/resume"
	"resume-scorer/internal/scoring"
	"resume-scorer/internal/shared/telemetry"
)

type fileScore struct {
	File  string         `json:"file"`
	Score scoring.Result `json:"score"`
}

func newScoreCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "score <resume.json>...",
		Short: "Score one or more resume JSON records (- reads stdin)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := engine(v)
			if err != nil {
				return err
			}

			records := make([]resume.Resume, 0, len(args))
			for _, path := range args {
				raw, err := readInput(cmd.InOrStdin(), path)
				if err != nil {
					return err
				}
				r, err := resume.Decode(raw)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				records = append(records, r)
			}

			results, err := eng.EvaluateAll(cmd.Context(), records)
			if err != nil {
				return err
			}
			for i, res := range results {
				telemetry.L().Debug("scored", zap.String("file", args[i]), zap.Int("overall", res.Overall))
			}

			if len(results) == 1 {
				return writeJSON(cmd.OutOrStdout(), v, results[0])
			}
			out := make([]fileScore, len(results))
			for i, res := range results {
				out[i] = fileScore{File: args[i], Score: res}
			}
			return writeJSON(cmd.OutOrStdout(), v, out)
		},
	}
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return raw, nil
}
