package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"resume-scorer/internal/extract"
	"resume-scorer/internal/resume"
	"resume-scorer/internal/scoring"
	"resume-scorer/internal/shared/telemetry"
	"resume-scorer/internal/textparse"
)

type documentScore struct {
	Resume resume.Resume  `json:"resume"`
	Score  scoring.Result `json:"score"`
}

func newFileCmd(v *viper.Viper) *cobra.Command {
	var textOnly bool
	cmd := &cobra.Command{
		Use:   "file <resume.pdf|resume.docx>",
		Short: "Extract, parse and score a PDF or DOCX resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			name := filepath.Base(path)
			if !extract.Supported("", name, data) {
				return fmt.Errorf("%s: please provide a PDF or DOCX file", path)
			}

			text, err := extract.ExtractTextFromBytes(cmd.Context(), data, "", name)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			telemetry.L().Debug("extracted", zap.String("file", name), zap.Int("chars", len(text)))
			if textOnly {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
				return err
			}

			eng, err := engine(v)
			if err != nil {
				return err
			}
			parsed := textparse.Parse(text)
			return writeJSON(cmd.OutOrStdout(), v, documentScore{Resume: parsed, Score: eng.Evaluate(parsed)})
		},
	}
	cmd.Flags().BoolVar(&textOnly, "text", false, "print the extracted text instead of scoring it")
	return cmd
}
