package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/datocms-community/datocms-mcp/internal/client"
	"github.com/datocms-community/datocms-mcp/internal/handler"
	"github.com/datocms-community/datocms-mcp/internal/tools"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// NewToolsCommand creates the tools command.
func NewToolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the tools the MCP server exposes",
		Long:  "List every tool the server registers, with its annotations, without starting a transport.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listTools()
		},
	}
}

type toolInfo struct {
	Name        string `json:"name"        yaml:"name"`
	ReadOnly    bool   `json:"read_only"   yaml:"read_only"`
	Destructive bool   `json:"destructive" yaml:"destructive"`
	Description string `json:"description" yaml:"description"`
}

func listTools() error {
	// Declaring the tool surface needs no credentials or network access.
	manager, err := handler.NewClientManager(func(config *dato.Config) (dato.Client, error) {
		return client.New(config)
	}, dato.Config{}, 0)
	if err != nil {
		return fmt.Errorf("creating client manager: %w", err)
	}

	factory := handler.NewFactory(handler.NewRegistry(), manager, zap.NewNop(), false)

	infos := make([]toolInfo, 0)
	for _, tool := range tools.All(factory) {
		infos = append(infos, toolInfo{
			Name:        tool.Name,
			ReadOnly:    tool.ReadOnly,
			Destructive: tool.Destructive,
			Description: tool.Description,
		})
	}

	output := viper.GetString("output")
	switch output {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(infos)
	case "yaml":
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(infos)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Tool", "Read-only", "Destructive", "Description")

		for _, info := range infos {
			_ = table.Append(info.Name,
				fmt.Sprintf("%t", info.ReadOnly),
				fmt.Sprintf("%t", info.Destructive),
				info.Description)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		fmt.Printf("\n%d tools\n", len(infos))

		return nil
	}
}
