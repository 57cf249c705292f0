package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/classgrid/internal/api"
	"github.com/jackzampolin/classgrid/version"
)

type versionInfo struct {
	Release string `json:"release" yaml:"release"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	Go      string `json:"go" yaml:"go"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := versionInfo{
			Release: version.GitRelease,
			Commit:  version.GitCommit,
			Date:    version.GitCommitDate,
			Go:      version.GoInfo,
		}
		// Structured only when asked for explicitly.
		if rootCmd.PersistentFlags().Changed("output") {
			return api.Output(info)
		}
		fmt.Printf("classgrid %s (%s, %s)\n%s\n", info.Release, info.Commit, info.Date, info.Go)
		return nil
	},
}
