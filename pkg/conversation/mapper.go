package conversation

import (
	"github.com/aaronfloresserna/assistantUACH/pkg/api"
)

// MapResponse transforms a successful assistant service response into an
// assistant message. The answer, sources and metadata are copied verbatim; in
// particular similarity scores are not re-validated and excerpts are kept at
// full length, truncation being a rendering concern.
func MapResponse(response *api.AskResponse) Message {
	var sources []api.SourceReference
	if len(response.Sources) > 0 {
		sources = make([]api.SourceReference, len(response.Sources))
		copy(sources, response.Sources)
	}

	metadata := response.Metadata
	return NewAssistantMessage(response.Answer, sources, &metadata)
}
