package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/ajanda/internal/config"
	"github.com/faizmokh/ajanda/internal/files"
	"github.com/faizmokh/ajanda/internal/logger"
)

func newConfigCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	cmd.AddCommand(
		newConfigInitCommand(a),
		newConfigShowCommand(a),
		newConfigPathCommand(a),
	)
	return cmd
}

func newConfigInitCommand(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := a.resolvedConfigPath()

			data, err := config.Encode(config.Default())
			if err != nil {
				return err
			}
			if err := a.manager.WriteFile(path, data, force); err != nil {
				if errors.Is(err, files.ErrExists) {
					return fmt.Errorf("%s already exists, use --force to overwrite: %w", path, files.ErrExists)
				}
				return fmt.Errorf("write config: %w", err)
			}

			logger.Debug("config written", "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func newConfigShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(true)
			if err != nil {
				return err
			}

			data, err := config.Encode(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, w := range cfg.Warnings {
				fmt.Fprintf(out, "# warning: %s\n", w)
			}
			_, err = out.Write(data)
			return err
		},
	}
}

func newConfigPathCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the config file is read from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := a.resolvedConfigPath()
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
