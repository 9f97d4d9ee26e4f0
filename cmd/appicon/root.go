package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/launchpath/appicon/pkg/logging"
	"github.com/launchpath/appicon/pkg/paths"
)

var (
	verbosity int
	baseRoot  string

	rootCmd = &cobra.Command{
		Use:   "appicon",
		Short: "Resolve application icons under an install root",
		Long: `appicon resolves an application's icon to a concrete image file,
searching the install root's icon themes, generic icons directory and
pixmaps the way the freedesktop Icon Theme Specification orders them:
largest declared size first.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&baseRoot, "root", "", "Install root to search (default $APPICON_BASE_ROOT, then cwd)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(manCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(searchPathsCmd)
}

// resolveRoot applies the --root flag and environment fallbacks,
// warning when the cwd fallback kicked in.
func resolveRoot() (string, error) {
	root, usedFallback, err := paths.ResolveBaseRoot(baseRoot)
	if err != nil {
		return "", err
	}
	if usedFallback {
		log.Warn().Str("root", root).Msg("no install root given, falling back to current directory")
	}
	return root, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("appicon version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `To load completions:

Bash:
  $ source <(appicon completion bash)

Zsh:
  $ appicon completion zsh > "${fpath[1]}/_appicon"

Fish:
  $ appicon completion fish | source

PowerShell:
  PS> appicon completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate bash completion")
			}
		case "zsh":
			if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate zsh completion")
			}
		case "fish":
			if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
				log.Error().Err(err).Msg("Failed to generate fish completion")
			}
		case "powershell":
			if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate powershell completion")
			}
		}
	},
}

var manCmd = &cobra.Command{
	Use:   "man",
	Short: "Generate man page",
	RunE: func(cmd *cobra.Command, args []string) error {
		header := &doc.GenManHeader{
			Title:   "APPICON",
			Section: "1",
		}
		return doc.GenManTree(rootCmd, header, "/tmp")
	},
}
