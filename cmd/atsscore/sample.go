package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resume-scorer/internal/resume"
)

func newSampleCmd(v *viper.Viper) *cobra.Command {
	var showResume bool
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Score the built-in sample resume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showResume {
				return writeJSON(cmd.OutOrStdout(), v, resume.Sample())
			}
			eng, err := engine(v)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), v, eng.Evaluate(resume.Sample()))
		},
	}
	cmd.Flags().BoolVar(&showResume, "resume", false, "print the sample resume instead of its score")
	return cmd
}
