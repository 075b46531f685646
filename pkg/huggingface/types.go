package huggingface

import "fmt"

// Split is one (config, split) pair of a dataset.
type Split struct {
	Dataset string `json:"dataset"`
	Config  string `json:"config"`
	Split   string `json:"split"`
}

type splitsResponse struct {
	Splits []Split `json:"splits"`
}

// RowsRequest selects one page of a split. Length is capped at MaxPageLength.
type RowsRequest struct {
	Dataset string
	Config  string
	Split   string
	Offset  int
	Length  int
}

// RowsPage is one page of rows.
type RowsPage struct {
	Rows         []Row `json:"rows"`
	NumRowsTotal int   `json:"num_rows_total"`
	Partial      bool  `json:"partial"`
}

// Row is one dataset row keyed by column name.
type Row struct {
	RowIdx int            `json:"row_idx"`
	Row    map[string]any `json:"row"`
}

// APIError is a non-200 answer from the datasets-server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("huggingface API error (%d): %s", e.StatusCode, e.Message)
}

type errorResponse struct {
	Error string `json:"error"`
}
