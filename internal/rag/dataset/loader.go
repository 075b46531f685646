package dataset

import (
	"context"
	"fmt"

	"ai-therapist/internal/rag"
	"ai-therapist/pkg/huggingface"
	"ai-therapist/pkg/log"
)

// BatchFunc receives each full batch of cleaned documents.
type BatchFunc func(ctx context.Context, batch []rag.Document) error

// Loader pages dataset rows from the datasets-server and turns them into documents.
type Loader struct {
	hf huggingface.IDatasets
	l  log.Logger
}

// NewLoader returns a Loader.
func NewLoader(hf huggingface.IDatasets, l log.Logger) *Loader {
	return &Loader{hf: hf, l: l}
}

// Load streams every split of src in batches of batchSize and returns how many documents
// were handed to fn. maxRecords > 0 caps the count. Document ids are "<dataset>-<n>",
// with n counting cleaned documents across splits, so a rerun reproduces the same ids.
func (ld *Loader) Load(ctx context.Context, src Source, batchSize, maxRecords int, fn BatchFunc) (int, error) {
	if batchSize <= 0 {
		batchSize = huggingface.MaxPageLength
	}

	splits, err := ld.hf.Splits(ctx, src.Name)
	if err != nil {
		return 0, fmt.Errorf("list splits of %s: %w", src.Name, err)
	}

	total := 0
	batch := make([]rag.Document, 0, batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := fn(ctx, batch); err != nil {
			return err
		}
		total += len(batch)
		batch = make([]rag.Document, 0, batchSize)
		return nil
	}
	full := func() bool { return maxRecords > 0 && total+len(batch) >= maxRecords }

	for _, split := range splits {
		for offset := 0; !full(); {
			page, err := ld.hf.Rows(ctx, huggingface.RowsRequest{
				Dataset: src.Name,
				Config:  split.Config,
				Split:   split.Split,
				Offset:  offset,
				Length:  huggingface.MaxPageLength,
			})
			if err != nil {
				return total, fmt.Errorf("fetch rows of %s/%s at %d: %w", src.Name, split.Split, offset, err)
			}

			for _, row := range page.Rows {
				text, ok := CleanText(row.Row[src.TextColumn])
				if !ok {
					continue
				}

				meta := scalarColumns(row.Row, src.TextColumn)
				meta[rag.MetadataSource] = src.Name
				meta[rag.MetadataSplit] = split.Split

				batch = append(batch, rag.Document{
					ID:       fmt.Sprintf("%s-%d", src.Name, total+len(batch)),
					Text:     text,
					Metadata: meta,
				})
				if len(batch) == batchSize {
					if err := flush(); err != nil {
						return total, err
					}
				}
				if full() {
					break
				}
			}

			offset += len(page.Rows)
			if len(page.Rows) == 0 || offset >= page.NumRowsTotal {
				break
			}
		}
		if full() {
			break
		}
	}

	if err := flush(); err != nil {
		return total, err
	}
	ld.l.Infof(ctx, "dataset.Load: processed %d entries from %s", total, src.Name)
	return total, nil
}
