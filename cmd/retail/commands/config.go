package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/retail-samples/internal/constants"
	"github.com/fivetwenty-io/retail-samples/pkg/retail"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect CLI configuration",
		Long:  "Inspect the configuration resolved from flags, environment, .env and the config file",
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// resolvedConfig is the settings together with the derived resource names.
type resolvedConfig struct {
	ProjectNumber string               `json:"project_number" yaml:"project_number"`
	BucketName    string               `json:"bucket_name"    yaml:"bucket_name"`
	Endpoint      string               `json:"endpoint"       yaml:"endpoint"`
	Output        string               `json:"output"         yaml:"output"`
	LogLevel      string               `json:"log_level"      yaml:"log_level"`
	Timeout       string               `json:"timeout"        yaml:"timeout"`
	InventoryWait string               `json:"inventory_wait" yaml:"inventory_wait"`
	Concurrency   int                  `json:"concurrency"    yaml:"concurrency"`
	ConfigFile    string               `json:"config_file"    yaml:"config_file"`
	Names         *retail.ResourceNames `json:"names,omitempty" yaml:"names,omitempty"`
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the resolved configuration and the catalog resource names derived from it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}

			resolved := resolvedConfig{
				ProjectNumber: settings.ProjectNumber,
				BucketName:    settings.BucketName,
				Endpoint:      settings.Endpoint,
				Output:        settings.Output,
				LogLevel:      settings.LogLevel,
				Timeout:       settings.Timeout.String(),
				InventoryWait: settings.InventoryWait.String(),
				Concurrency:   settings.Concurrency,
				ConfigFile:    settings.ConfigFile,
			}

			if settings.ProjectNumber != "" {
				names := retail.NewResourceNames(settings.ProjectNumber)
				resolved.Names = &names
			}

			out := cmd.OutOrStdout()

			switch settings.Output {
			case constants.FormatJSON:
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")

				return encoder.Encode(resolved)
			case constants.FormatYAML:
				return yaml.NewEncoder(out).Encode(resolved)
			default:
				return displayConfigTable(cmd, resolved)
			}
		},
	}
}

func displayConfigTable(cmd *cobra.Command, resolved resolvedConfig) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Property", "Value")

	rows := [][]string{
		{"Project Number", valueOrNotSet(resolved.ProjectNumber)},
		{"Bucket Name", valueOrNotSet(resolved.BucketName)},
		{"Endpoint", resolved.Endpoint},
		{"Output", resolved.Output},
		{"Log Level", resolved.LogLevel},
		{"Timeout", resolved.Timeout},
		{"Inventory Wait", resolved.InventoryWait},
		{"Concurrency", strconv.Itoa(resolved.Concurrency)},
		{"Config File", valueOrNotSet(resolved.ConfigFile)},
	}

	if resolved.Names != nil {
		rows = append(rows,
			[]string{"Catalog", resolved.Names.Catalog},
			[]string{"Branch", resolved.Names.Branch},
			[]string{"Placement", resolved.Names.Placement},
		)
	}

	for _, row := range rows {
		_ = table.Append(row[0], row[1])
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func valueOrNotSet(value string) string {
	if value == "" {
		return "(not set)"
	}

	return value
}
