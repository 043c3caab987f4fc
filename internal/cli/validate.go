package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
)

func validateCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [content.yaml]",
		Short: "Check a content file without starting the server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				cfg, err := config.Load(*configFile)
				if err != nil {
					return err
				}
				path = cfg.ContentPath
			}

			c, err := content.Load(path)
			if err != nil {
				var verr *content.ValidationError
				if errors.As(err, &verr) {
					for _, p := range verr.Problems {
						fmt.Fprintln(cmd.ErrOrStderr(), "  -", p)
					}
				}
				return err
			}

			name := path
			if name == "" {
				name = "bundled content"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK %s: %d projects in %d categories, %d skills, %d roles\n",
				name,
				len(c.Projects),
				len(content.ProjectCategories(c.Projects))-1,
				len(c.Skills),
				len(c.Profile.Roles),
			)
			return nil
		},
	}
}
