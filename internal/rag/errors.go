package rag

import "errors"

var (
	ErrIndexingInProgress = errors.New("indexing already in progress")
	ErrUnknownDataset     = errors.New("unknown dataset")
	ErrNoDocuments        = errors.New("no documents to index")
)
