package cmd

import (
	"fmt"
	"os"

	"carbon-tracker/core/apidoc"
	"carbon-tracker/core/config"
	"carbon-tracker/core/loader"
	"carbon-tracker/feature/carbonevent"
	"carbon-tracker/feature/health"

	"github.com/spf13/cobra"
)

const (
	apiTitle       = "Carbon Tracker API"
	apiDescription = "Records carbon emission events and aggregates them over date ranges."
	apiVersion     = "1.0"
)

var (
	docsFormat string
	docsOutput string
)

// docsCmd represents the docs command
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Print the OpenAPI document",
	Long:  `Renders the OpenAPI document served by the start command, including the configured local server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Documenting needs no live dependencies
		mgr := loader.NewManager()
		mgr.Register(carbonevent.NewFeature(nil))
		mgr.Register(health.NewFeature(nil))

		spec, err := buildSpec(mgr, cfg)
		if err != nil {
			return err
		}

		var data []byte
		switch docsFormat {
		case "json":
			data = spec.JSON()
		case "yaml":
			data = spec.YAML()
		default:
			return fmt.Errorf("unknown format %q, expected json or yaml", docsFormat)
		}

		if docsOutput == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(docsOutput, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", docsOutput, err)
		}
		return nil
	},
}

// buildSpec documents every registered feature and advertises the configured local server.
func buildSpec(mgr *loader.Manager, cfg *config.Config) (*apidoc.Spec, error) {
	doc := apidoc.NewDocument(apiTitle, apiDescription, apiVersion)
	mgr.Document(doc)
	apidoc.WithServers(doc, cfg.Server)

	spec, err := apidoc.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render API document: %w", err)
	}
	return spec, nil
}

func init() {
	docsCmd.Flags().StringVarP(&docsFormat, "format", "f", "json", "Output format (json or yaml)")
	docsCmd.Flags().StringVarP(&docsOutput, "output", "o", "", "Write to file instead of stdout")
	RootCmd.AddCommand(docsCmd)
}
