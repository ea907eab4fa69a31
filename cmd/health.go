package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aaronfloresserna/assistantUACH/pkg/api"
)

const healthTimeout = 10 * time.Second

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Verifica que el servicio del asistente esté disponible",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := initRuntime()
		if err != nil {
			return err
		}

		client, err := api.NewClient(&cfg)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), healthTimeout)
		defer cancel()

		health, err := client.Health(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("%s → %s\n", client.BaseURL(), health.Status)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(healthCmd)
}
