package openapi

import (
	"encoding/json"
	"testing"
)

func decodeDocument(t *testing.T) map[string]any {
	t.Helper()
	var doc map[string]any
	if err := json.Unmarshal(Document(), &doc); err != nil {
		t.Fatalf("document is not valid json: %v", err)
	}
	return doc
}

func TestCreateOperationsDocumentCreatedStatus(t *testing.T) {
	doc := decodeDocument(t)
	paths, ok := doc["paths"].(map[string]any)
	if !ok || len(paths) == 0 {
		t.Fatalf("document has no paths")
	}

	posts := 0
	for path, raw := range paths {
		item := raw.(map[string]any)
		post, ok := item["post"].(map[string]any)
		if !ok {
			continue
		}
		posts++
		responses := post["responses"].(map[string]any)
		if _, ok := responses["201"]; !ok {
			t.Fatalf("create at %s must document 201, has %v", path, responses)
		}
		if _, ok := responses["200"]; ok {
			t.Fatalf("create at %s documents 200 but the handler responds 201", path)
		}
	}
	if posts == 0 {
		t.Fatalf("expected at least one create operation")
	}
}

func TestMutationsDocumentAuthResponses(t *testing.T) {
	doc := decodeDocument(t)
	paths := doc["paths"].(map[string]any)

	for path, raw := range paths {
		item := raw.(map[string]any)
		for _, method := range []string{"post", "put", "delete"} {
			op, ok := item[method].(map[string]any)
			if !ok {
				continue
			}
			responses := op["responses"].(map[string]any)
			if _, ok := responses["401"]; !ok {
				t.Fatalf("%s %s must document 401", method, path)
			}
			if _, ok := responses["403"]; !ok {
				t.Fatalf("%s %s must document 403", method, path)
			}
		}
	}
}
