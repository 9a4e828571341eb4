package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check service health",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			health, err := apiClient.Health(ctx)
			if err != nil {
				return fmt.Errorf("service unreachable: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(health)
			}

			fmt.Printf("Service: %s\n", formatStatus(health.Status))
			return nil
		},
	}
}
