package api

// AskRequest is the body of POST /api/ask. Materia and SemesterLevel are
// omitted from the payload when unset.
type AskRequest struct {
	Question      string `json:"question"`
	Materia       string `json:"materia,omitempty"`
	SemesterLevel int    `json:"semesterLevel,omitempty"`
	TopK          int    `json:"topK"`
}

// SourceReference is one cited document excerpt with a relevance score.
// SimilarityScore is produced in [0,1] by the retrieval step; the client does
// not re-validate the range.
type SourceReference struct {
	DocumentID int `json:"documentId"`
	// Text is the full excerpt. Display truncation is a rendering concern;
	// the stored value is never cut.
	Text            string  `json:"text"`
	LawReference    string  `json:"lawReference"`
	Source          string  `json:"source"`
	SimilarityScore float64 `json:"similarityScore"`
}

// ResponseMetadata describes how an answer was produced.
type ResponseMetadata struct {
	DocumentsRetrieved int    `json:"documentsRetrieved"`
	Materia            string `json:"materia"`
	Timestamp          string `json:"timestamp"`
	ProcessingTimeMs   int64  `json:"processingTimeMs"`
}

// AskResponse is the success body of POST /api/ask.
type AskResponse struct {
	Answer     string            `json:"answer"`
	Sources    []SourceReference `json:"sources"`
	Metadata   ResponseMetadata  `json:"metadata"`
	Disclaimer string            `json:"disclaimer"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}
