package huggingface

import "context"

// IDatasets reads public datasets through the Hugging Face datasets-server.
type IDatasets interface {
	Splits(ctx context.Context, dataset string) ([]Split, error)
	Rows(ctx context.Context, req RowsRequest) (*RowsPage, error)
}
