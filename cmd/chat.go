package cmd

import (
	"github.com/spf13/cobra"

	"github.com/aaronfloresserna/assistantUACH/pkg/api"
	"github.com/aaronfloresserna/assistantUACH/pkg/conversation"
	"github.com/aaronfloresserna/assistantUACH/pkg/ui/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Inicia una conversación interactiva con Luis Amigo",
	Long: `Abre la interfaz de chat en la terminal. Las respuestas se muestran en
markdown con sus fuentes consultadas. Los filtros de materia y semestre pueden
cambiarse durante la sesión con Ctrl+F y Ctrl+E.

Ejemplos:
  luisamigo chat
  luisamigo chat --materia constitucional
  luisamigo chat --materia civil --semestre 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := initRuntime()
		if err != nil {
			return err
		}

		client, err := api.NewClient(&cfg)
		if err != nil {
			return err
		}

		store := conversation.NewStore()
		dispatcher, err := conversation.NewDispatcher(store, client, api.TopK(&cfg), api.Timeout(&cfg))
		if err != nil {
			return err
		}

		filters, err := filtersFromFlags(cmd)
		if err != nil {
			return err
		}

		return tui.RunChat(store, dispatcher, filters)
	},
}

func init() {
	addFilterFlags(chatCmd)
	RootCmd.AddCommand(chatCmd)
}

// addFilterFlags registers the shared --materia and --semestre flags.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("materia", "",
		"Materia a filtrar (constitucional, civil, penal, mercantil, laboral, administrativo)")
	cmd.Flags().Int("semestre", 0, "Semestre a filtrar (1-10)")
}

// filtersFromFlags builds the initial filter state from the command flags.
func filtersFromFlags(cmd *cobra.Command) (*conversation.FilterState, error) {
	filters := conversation.NewFilterState()

	materia, err := cmd.Flags().GetString("materia")
	if err != nil {
		return nil, err
	}
	if err := filters.SetMateria(materia); err != nil {
		return nil, err
	}

	semester, err := cmd.Flags().GetInt("semestre")
	if err != nil {
		return nil, err
	}
	if err := filters.SetSemesterLevel(semester); err != nil {
		return nil, err
	}

	return filters, nil
}
