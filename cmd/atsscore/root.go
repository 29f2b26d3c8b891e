package main

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resume-scorer/internal/bootstrap"
	"resume-scorer/internal/scoring"
	"resume-scorer/internal/shared/config"
	"resume-scorer/internal/shared/telemetry"
)

const app = "atsscore"

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(app)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:          app,
		Short:        "atsscore rates resumes the way an applicant tracking system would",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			format := "console"
			if v.GetBool("json") {
				format = "json"
			}
			level := "warn"
			if v.GetBool("debug") {
				level = "debug"
			}
			logger, err := telemetry.NewWithOutput(format, level, "stderr")
			if err != nil {
				return err
			}
			telemetry.SetLogger(logger)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.BoolP("debug", "d", false, "verbose/debug output")
	flags.BoolP("json", "j", false, "json format for logging")
	flags.Bool("deterministic", false, "use a fixed fallback keyword sample instead of a random one")
	flags.BoolP("pretty", "p", false, "indent JSON output")
	flags.String("library", "", "path to a keyword library JSON file")
	flags.Int("concurrency", 8, "resumes scored in parallel by the score command")
	for _, name := range []string{"debug", "json", "deterministic", "pretty", "library", "concurrency"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(newScoreCmd(v), newFileCmd(v), newSampleCmd(v))
	return root
}

// engine builds the scoring engine from flags and ATSSCORE_* variables.
func engine(v *viper.Viper) (*scoring.Engine, error) {
	return bootstrap.BuildEngine(config.Config{
		ScoringLibraryFile:   v.GetString("library"),
		ScoringDeterministic: v.GetBool("deterministic"),
		BatchConcurrency:     v.GetInt("concurrency"),
	})
}

func writeJSON(w io.Writer, v *viper.Viper, payload any) error {
	enc := json.NewEncoder(w)
	if v.GetBool("pretty") {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(payload)
}
