package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/launchpath/appicon/pkg/config"
	"github.com/launchpath/appicon/pkg/iconfind"
)

var searchPathsCmd = &cobra.Command{
	Use:   "search-paths",
	Short: "Print the candidate icon directories for the install root",
	Long: `Search-paths prints every candidate directory the resolver would
probe for the install root, in probe order (largest declared size
first), together with the nominal size used to rank it. Useful for
debugging why an icon resolves the way it does.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot()
		if err != nil {
			return err
		}

		settings, err := config.Load()
		if err != nil {
			return err
		}

		finder := iconfind.New(root, iconfind.WithSettings(settings))
		searchPath := finder.SearchPath()

		if len(searchPath) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no candidate directories")
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderBold(fmt.Sprintf("%-6s %s", "SIZE", "PATH")))
		for _, dir := range searchPath {
			fmt.Fprintf(cmd.OutOrStdout(), "%-6d %s\n", dir.Size, dir.Path)
		}
		return nil
	},
}
