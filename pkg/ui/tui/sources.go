package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aaronfloresserna/assistantUACH/pkg/api"
	"github.com/aaronfloresserna/assistantUACH/pkg/conversation"
	"github.com/aaronfloresserna/assistantUACH/pkg/ui/theme"
)

// ExcerptPreviewLimit is the maximum number of characters of a source excerpt
// shown in a citation block. Stored messages always keep the full excerpt;
// the cut happens here, at the presentation boundary only.
const ExcerptPreviewLimit = 150

// FormatSimilarity renders a similarity score in [0,1] as a percentage with
// one decimal, e.g. 0.873 -> "87.3% relevancia".
func FormatSimilarity(score float64) string {
	return fmt.Sprintf("%.1f%% relevancia", score*100)
}

// ExcerptPreview returns the display form of a source excerpt: the first 150
// characters followed by an ellipsis when longer, unmodified otherwise.
func ExcerptPreview(text string) string {
	runes := []rune(text)
	if len(runes) <= ExcerptPreviewLimit {
		return text
	}
	return string(runes[:ExcerptPreviewLimit]) + "..."
}

// SourceLabel returns the display label of a cited document, falling back to
// "Documento <id>" when the law reference is absent.
func SourceLabel(source api.SourceReference) string {
	if source.LawReference == "" {
		return fmt.Sprintf("Documento %d", source.DocumentID)
	}
	return source.LawReference
}

// renderSources renders the citation block under an assistant answer. User
// messages and fallback answers have no sources and produce nothing.
func (m *ChatModel) renderSources(msg conversation.Message) string {
	if len(msg.Sources) == 0 {
		return ""
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ColorYellow)).
		Bold(true).
		PaddingLeft(2)
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ColorGray)).
		Bold(true).
		PaddingLeft(4)
	scoreStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ColorMuted))
	excerptStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ColorMuted)).
		PaddingLeft(4).
		Width(m.viewport.Width - 6)

	parts := []string{headerStyle.Render("Fuentes consultadas:")}
	for _, source := range msg.Sources {
		header := fmt.Sprintf("%s %s",
			labelStyle.Render(SourceLabel(source)),
			scoreStyle.Render(FormatSimilarity(source.SimilarityScore)))
		parts = append(parts, header)
		if source.Text != "" {
			parts = append(parts, excerptStyle.Render(ExcerptPreview(source.Text)))
		}
	}

	return strings.Join(parts, newlineChar)
}

// renderMetadata renders the retrieval summary line under an assistant answer.
func renderMetadata(msg conversation.Message) string {
	if msg.Metadata == nil {
		return ""
	}

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ColorMuted)).
		Italic(true).
		PaddingLeft(2)

	return style.Render(fmt.Sprintf("%d documentos consultados • %dms",
		msg.Metadata.DocumentsRetrieved, msg.Metadata.ProcessingTimeMs))
}
