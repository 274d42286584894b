package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"japanesereflect/config"
	"japanesereflect/errors"
)

// ConfigCmd groups configuration inspection.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect jareflect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show which project configuration file is in effect",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case configPath != "":
			fmt.Fprintln(cmd.OutOrStdout(), configPath)
		case config.FindProjectConfig() != "":
			fmt.Fprintln(cmd.OutOrStdout(), config.FindProjectConfig())
		default:
			fmt.Fprintln(cmd.OutOrStdout(), "(defaults and environment only)")
		}
		return nil
	},
}

var configFormat string

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configWhereCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	switch configFormat {
	case "json":
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(cfg)
	case "toml":
		data, err = toml.Marshal(cfg)
	default:
		return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", configFormat)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to marshal config to %s", configFormat)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
