package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/aaronfloresserna/assistantUACH/pkg/api"
	"github.com/aaronfloresserna/assistantUACH/pkg/conversation"
	log "github.com/aaronfloresserna/assistantUACH/pkg/logger"
	"github.com/aaronfloresserna/assistantUACH/pkg/ui/tui"
)

const askOutputWidth = 100

var askCmd = &cobra.Command{
	Use:   "ask [pregunta]",
	Short: "Hace una pregunta a Luis Amigo sin abrir el chat",
	Long: `Envía una sola pregunta al asistente y muestra la respuesta con sus
fuentes consultadas.

Ejemplos:
  luisamigo ask "¿Qué dice el artículo 123?"
  luisamigo ask --materia constitucional --semestre 5 "¿Qué es el amparo?"
  luisamigo ask "¿Cuál es la diferencia entre dolo y culpa?"`,
	Args: cobra.MinimumNArgs(1),
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

		question := strings.Join(args, " ")
		request, accepted := dispatcher.Submit(question, filters.Current())
		if !accepted {
			log.Warn("empty question, nothing submitted")
			return nil
		}

		fmt.Fprintln(os.Stderr, "⚖️  Pensando...")
		message := dispatcher.Resolve(cmd.Context(), request)

		printAnswer(message)
		return nil
	},
}

func init() {
	addFilterFlags(askCmd)
	RootCmd.AddCommand(askCmd)
}

// printAnswer renders an assistant message for non-interactive output.
func printAnswer(message conversation.Message) {
	fmt.Println(renderAnswerMarkdown(message.Content))

	if len(message.Sources) > 0 {
		fmt.Println("Fuentes consultadas:")
		for _, source := range message.Sources {
			fmt.Printf("  %s — %s\n", tui.SourceLabel(source), tui.FormatSimilarity(source.SimilarityScore))
			if source.Text != "" {
				fmt.Printf("    %s\n", tui.ExcerptPreview(source.Text))
			}
		}
		fmt.Println()
	}

	if message.Metadata != nil {
		fmt.Printf("%d documentos consultados • %dms\n\n",
			message.Metadata.DocumentsRetrieved, message.Metadata.ProcessingTimeMs)
	}

	fmt.Println("Esto es material académico y no constituye asesoría jurídica profesional.")
}

// renderAnswerMarkdown renders the answer as terminal markdown, falling back
// to the raw text when the renderer is unavailable.
func renderAnswerMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(askOutputWidth),
	)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSpace(rendered) + "\n"
}
