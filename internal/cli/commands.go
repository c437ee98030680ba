package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/handiism/game-manager/internal/app"
	"github.com/handiism/game-manager/internal/config"
	ioutils "github.com/handiism/game-manager/internal/io"
	"github.com/handiism/game-manager/internal/logging"
	"github.com/handiism/game-manager/internal/model"
	"github.com/handiism/game-manager/internal/store"
	"github.com/spf13/cobra"
)

func (c *cli) initCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty catalog file if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.service(nil).Init(); err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "Catalog ready: %s\n", c.store.Path())
			return nil
		},
	}
}

func (c *cli) addCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME GENRE PRICE",
		Short: "Append a game to the catalog",
		Example: `  gamecat add Chess Strategy 9.99
  gamecat add "Space Trader" Simulation 14
  gamecat add -- Refund Misc -5`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.report(c.service(nil).Execute(app.Request{
				Command: app.CommandAdd,
				Name:    args[0],
				Genre:   args[1],
				Price:   args[2],
			}))
		},
	}
}

func (c *cli) removeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove NAME",
		Aliases: []string{"rm", "erase"},
		Short:   "Remove the first game with exactly this name",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.report(c.service(nil).Execute(app.Request{
				Command: app.CommandRemove,
				Name:    args[0],
			}))
		},
	}
}

func (c *cli) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show every game in stored order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := c.service(nil).Execute(app.Request{Command: app.CommandList})
			if !res.Outcome.OK() {
				return c.report(res)
			}

			if c.output != FormatTable {
				return writeData(c.stdout, c.output, toRecords(res.Games))
			}
			if len(res.Games) == 0 {
				return c.report(res)
			}
			return writeGameTable(c.stdout, res.Games)
		},
	}
}

func (c *cli) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show the first game with exactly this name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.store.Find(args[0])
			switch {
			case errors.Is(err, store.ErrNotFound):
				fmt.Fprintln(c.stdout, app.MsgNotFound)
				return nil
			case err != nil:
				return err
			}

			logger := logging.FromContext(cmd.Context())
			logger.Debug().Str("name", g.Name).Msg("game shown")
			if c.output != FormatTable {
				return writeData(c.stdout, c.output, toRecords([]model.Game{g})[0])
			}
			fmt.Fprintf(c.stdout, "Name: %s\nGenre: %s\nPrice: %s\n", g.Name, g.Genre, g.PriceText())
			return nil
		},
	}
}

func (c *cli) cheapestCommand() *cobra.Command {
	return c.extremeCommand(app.CommandCheapest, "cheapest", "Show the game with the lowest price")
}

func (c *cli) mostExpensiveCommand() *cobra.Command {
	return c.extremeCommand(app.CommandMostExpensive, "most-expensive", "Show the game with the highest price")
}

func (c *cli) extremeCommand(command app.Command, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Long:  short + ". On ties the game stored first wins.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := c.service(nil).Execute(app.Request{Command: command})
			g, ok := res.Game()
			if !res.Outcome.OK() || !ok || c.output == FormatTable {
				return c.report(res)
			}
			return writeData(c.stdout, c.output, toRecords([]model.Game{g})[0])
		},
	}
}

func (c *cli) exportCommand() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "export --to FILE",
		Short: "Copy the catalog to another file",
		Long: `Export writes the whole catalog to FILE. The document format follows
the extension of FILE: .json, .yaml or .yml, anything else is XML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := c.store.Load()
			if err != nil {
				return err
			}

			logger := logging.FromContext(cmd.Context())
			dst := store.New(to, store.WithLogger(logger))
			if err := dst.Save(catalog); err != nil {
				return err
			}

			logger.Info().Str("to", to).Int("games", catalog.Len()).Msg("catalog exported")
			fmt.Fprintf(c.stdout, "Exported %d game(s) to %s (%s).\n", catalog.Len(), to, dst.Codec().Name())
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "destination file")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (c *cli) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current settings to a config file",
		Long: `Init writes the settings in effect, including flag overrides such as
--file, to the --config path or to gamecat.yaml in the user config
directory. An existing file is kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := c.configPath
			if path == "" {
				path = filepath.Join(config.DefaultDir(), config.FileName+".yaml")
			}

			exists, err := ioutils.Exists(path)
			if err != nil {
				return err
			}
			if exists && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := c.settings.Save(path); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			logger := logging.FromContext(cmd.Context())
			logger.Info().Str("path", path).Msg("config written")
			fmt.Fprintf(c.stdout, "Config written to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	cmd.AddCommand(initCmd)
	return cmd
}
