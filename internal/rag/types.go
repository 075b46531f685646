package rag

import "time"

// Example is a retrieved reference text. Distance is ascending: 0 is an exact match.
type Example struct {
	Text     string
	Metadata map[string]any
	Distance float64
}

// Source is the dataset the example came from, or "".
func (e Example) Source() string {
	if s, ok := e.Metadata[MetadataSource].(string); ok {
		return s
	}
	return ""
}

// Stats describes the index.
type Stats struct {
	DocumentCount  int
	CollectionName string
	EmbeddingModel string
	LastUpdated    *time.Time
}

// Document is one cleaned text ready to be embedded.
type Document struct {
	ID       string
	Text     string
	Metadata map[string]any
}

// LoadInput selects what to ingest. Empty Datasets means every configured dataset.
type LoadInput struct {
	Datasets      []string
	MaxPerDataset int
}

// IndexResult reports one ingestion run.
type IndexResult struct {
	Datasets     []DatasetResult
	TotalIndexed int
	StartedAt    time.Time
	FinishedAt   time.Time
}

// DatasetResult is the outcome for one dataset. A failed dataset does not stop the run.
type DatasetResult struct {
	Name    string
	Indexed int
	Error   string
}

const (
	MetadataSource = "source"
	MetadataSplit  = "split"
	MetadataText   = "text"
)
