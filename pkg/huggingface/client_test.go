package huggingface_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-therapist/pkg/huggingface"
)

func TestHuggingFaceClient(t *testing.T) {
	var lastQuery map[string]string
	var lastAuth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastAuth = r.Header.Get("Authorization")
		lastQuery = map[string]string{}
		for k := range r.URL.Query() {
			lastQuery[k] = r.URL.Query().Get(k)
		}

		if r.URL.Query().Get("dataset") == "missing/dataset" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"The dataset does not exist."}`))
			return
		}

		switch r.URL.Path {
		case "/splits":
			w.Write([]byte(`{"splits":[
				{"dataset":"dair-ai/emotion","config":"split","split":"train"},
				{"dataset":"dair-ai/emotion","config":"split","split":"test"}
			]}`))
		case "/rows":
			w.Write([]byte(`{
				"features": [],
				"rows": [
					{"row_idx": 0, "row": {"text": "i feel anxious today", "label": 4}, "truncated_cells": []},
					{"row_idx": 1, "row": {"text": "i am happy", "label": 1}, "truncated_cells": []}
				],
				"num_rows_total": 2,
				"num_rows_per_page": 100,
				"partial": false
			}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	client := huggingface.New(ts.URL, "hf_token")
	ctx := context.Background()

	t.Run("Splits", func(t *testing.T) {
		splits, err := client.Splits(ctx, "dair-ai/emotion")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(splits) != 2 || splits[1].Split != "test" || splits[0].Config != "split" {
			t.Errorf("unexpected splits: %+v", splits)
		}
		if lastAuth != "Bearer hf_token" {
			t.Errorf("expected bearer token, got %q", lastAuth)
		}
	})

	t.Run("Rows caps page length", func(t *testing.T) {
		page, err := client.Rows(ctx, huggingface.RowsRequest{Dataset: "dair-ai/emotion", Split: "train", Offset: 200, Length: 500})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page.Rows) != 2 || page.Rows[0].Row["text"] != "i feel anxious today" || page.NumRowsTotal != 2 {
			t.Errorf("unexpected page: %+v", page)
		}
		if lastQuery["length"] != "100" || lastQuery["offset"] != "200" || lastQuery["config"] != "default" {
			t.Errorf("unexpected query: %v", lastQuery)
		}
	})

	t.Run("API error", func(t *testing.T) {
		_, err := client.Splits(ctx, "missing/dataset")
		var apiErr *huggingface.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound || apiErr.Message != "The dataset does not exist." {
			t.Fatalf("expected 404 APIError, got %v", err)
		}
	})

	t.Run("Anonymous client sends no token", func(t *testing.T) {
		anon := huggingface.New(ts.URL, "")
		if _, err := anon.Splits(ctx, "dair-ai/emotion"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastAuth != "" {
			t.Errorf("expected no auth header, got %q", lastAuth)
		}
	})
}
