package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

func init() {
	parseCmd.Flags().StringP("out", "o", "yaml", "Format [yaml, json]")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse config file",
	Long:  `Parse config file and print the effective configuration.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		baseDir, err := getBaseDir(cmd)
		if err != nil {
			return err
		}
		config, err := parseConfigFromFlag(cmd, baseDir)
		if err != nil {
			return err
		}

		outputFormat, _ := cmd.Flags().GetString("out")
		switch outputFormat {
		case "json":
			v, err := json.Marshal(config)
			if err != nil {
				return err
			}
			cmd.Println(string(v))
		case "yaml", "yml":
			v, err := yaml.Marshal(config)
			if err != nil {
				return err
			}
			cmd.Print(string(v))
		default:
			return fmt.Errorf("unknown format %s", outputFormat)
		}
		return nil
	},
}
