package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/launchpath/appicon/pkg/appid"
	"github.com/launchpath/appicon/pkg/config"
	"github.com/launchpath/appicon/pkg/errors"
	"github.com/launchpath/appicon/pkg/iconfind"
	"github.com/launchpath/appicon/pkg/logging"
)

var resolveAppID string

func init() {
	resolveCmd.Flags().StringVar(&resolveAppID, "appid", "", "Derive the icon name from an application id (package_app_version)")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [icon]",
	Short: "Resolve an icon name or path to an image file",
	Long: `Resolve takes a bare icon name (extension optional) or an explicit
icon path and prints the best matching image file under the install
root. With --appid, the icon name is derived from the application id
instead of being given directly.

Exits with status 1 when no icon matches; a miss is a routine outcome,
not an error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("cmd.resolve")

		iconName, err := iconArgument(args)
		if err != nil {
			return err
		}

		root, err := resolveRoot()
		if err != nil {
			return err
		}

		settings, err := config.Load()
		if err != nil {
			return err
		}

		logger.Info().Str("root", root).Str("icon", iconName).Msg("Resolving icon")

		finder := iconfind.New(root, iconfind.WithSettings(settings))
		resolved := finder.Find(iconName)
		if resolved == "" {
			// A miss is routine; it still exits non-zero so scripts
			// can branch on it.
			return errors.Newf(errors.ErrNotFound, "no icon for %q under %s", iconName, root)
		}

		fmt.Fprintln(cmd.OutOrStdout(), resolved)
		return nil
	},
}

// iconArgument picks the icon name from the positional argument or the
// --appid flag. Application ids conventionally name their icon after
// the application.
func iconArgument(args []string) (string, error) {
	if len(args) == 1 && resolveAppID != "" {
		return "", errors.New(errors.ErrInvalidInput, "give either an icon argument or --appid, not both")
	}
	if len(args) == 1 {
		return args[0], nil
	}
	if resolveAppID == "" {
		return "", errors.New(errors.ErrInvalidInput, "an icon argument or --appid is required")
	}

	id := appid.Find(resolveAppID)
	if id.Empty() || id.AppName == "" {
		return "", errors.Newf(errors.ErrAppID, "unparsable application id %q", resolveAppID)
	}
	return id.AppName, nil
}
