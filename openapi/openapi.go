// Package openapi builds the machine-readable API description served at
// /openapi.json. Lookup paths are generated from the entity registry so the
// document never drifts from the routes actually registered.
package openapi

import (
	"encoding/json"
	"sync"

	"github.com/voyagehq/voyagecms/internal/registry"
)

type object = map[string]any

var (
	once sync.Once
	doc  []byte
)

// Document returns the serialized OpenAPI 3.0 description. The document is
// static per build; it is assembled once and cached.
func Document() []byte {
	once.Do(func() {
		var err error
		doc, err = json.Marshal(build())
		if err != nil {
			panic(err)
		}
	})
	return doc
}

func build() object {
	paths := object{}

	for _, kind := range registry.All() {
		paths["/api/"+kind.Key] = object{
			"get": operation(
				"List "+kind.DisplayName,
				response("200", "Array of {id, "+kind.APIField+"} records", arrayOf(lookupSchema(kind.APIField))),
			),
			"post": editorOperation(
				"Create a "+kind.DisplayName+" entry",
				withBody(object{kind.APIField: stringSchema()}),
				response("201", "The created record", lookupSchema(kind.APIField)),
				errorResponse("400", "Name missing or blank"),
			),
		}
		paths["/api/"+kind.Key+"/{id}"] = object{
			"parameters": []object{idParam()},
			"put": editorOperation(
				"Rename a "+kind.DisplayName+" entry",
				withBody(object{kind.APIField: stringSchema()}),
				response("200", "The updated record", lookupSchema(kind.APIField)),
				errorResponse("404", "No such record"),
			),
			"delete": editorOperation(
				"Delete a "+kind.DisplayName+" entry",
				response("200", "Deleted", object{"type": "object"}),
				errorResponse("409", "Record is referenced by dependent rows"),
			),
		}
	}

	for _, col := range []struct {
		path   string
		plural string
	}{
		{"/api/trips", "trips"},
		{"/api/events", "events"},
		{"/api/talent", "talent profiles"},
		{"/api/party-themes", "party themes"},
		{"/api/faqs", "FAQ entries"},
		{"/api/settings", "settings"},
		{"/api/locations", "locations"},
	} {
		paths[col.path] = object{
			"get": operation("List " + col.plural),
			"post": editorOperation("Create one of "+col.plural,
				response("201", "The created record", object{"type": "object"})),
		}
		paths[col.path+"/{id}"] = object{
			"parameters": []object{idParam()},
			"put": editorOperation("Update one of "+col.plural,
				response("200", "The updated record", object{"type": "object"})),
			"delete": editorOperation("Delete one of "+col.plural,
				response("200", "Deleted", object{"type": "object"})),
		}
	}

	paths["/api/trips/{id}"].(object)["get"] = operation("Fetch a trip by id or slug")
	paths["/api/trips/{id}/itinerary"] = object{
		"parameters": []object{idParam()},
		"get":        operation("List the ordered itinerary of a trip"),
		"put": editorOperation("Replace the full itinerary of a trip",
			response("200", "Replacement applied", object{"type": "object"})),
	}
	paths["/api/trips/{id}/info-sections"] = object{
		"parameters": []object{idParam()},
		"get":        operation("List the info sections of a trip"),
		"put": editorOperation("Replace the info sections of a trip",
			response("200", "Replacement applied", object{"type": "object"})),
	}
	paths["/api/trips/{id}/events"] = object{
		"parameters": []object{idParam()},
		"get":        operation("List the events scheduled on a trip"),
	}
	paths["/api/admin/lookup-tables/counts"] = object{
		"get": operation("Per-kind row counts for the lookup tables overview"),
	}

	return object{
		"openapi": "3.0.3",
		"info": object{
			"title":   "voyagecms",
			"version": "1.0.0",
		},
		"paths": paths,
		"components": object{
			"securitySchemes": object{
				"bearerAuth": object{
					"type":   "http",
					"scheme": "bearer",
				},
			},
		},
	}
}

func operation(summary string, responses ...object) object {
	op := object{"summary": summary}
	merged := object{}
	for _, r := range responses {
		for k, v := range r {
			merged[k] = v
		}
	}
	if len(merged) == 0 {
		merged["200"] = object{"description": "OK"}
	}
	op["responses"] = merged
	return op
}

func editorOperation(summary string, parts ...object) object {
	op := object{"summary": summary, "security": []object{{"bearerAuth": []any{}}}}
	merged := object{}
	for _, p := range parts {
		if body, ok := p["requestBody"]; ok {
			op["requestBody"] = body
			continue
		}
		for k, v := range p {
			merged[k] = v
		}
	}
	merged["401"] = object{"description": "Authentication required"}
	merged["403"] = object{"description": "Content editor role required"}
	op["responses"] = merged
	return op
}

func withBody(properties object) object {
	return object{
		"requestBody": object{
			"required": true,
			"content": object{
				"application/json": object{
					"schema": object{"type": "object", "properties": properties},
				},
			},
		},
	}
}

func response(code, description string, schema object) object {
	return object{
		code: object{
			"description": description,
			"content": object{
				"application/json": object{"schema": schema},
			},
		},
	}
}

func errorResponse(code, description string) object {
	return object{
		code: object{
			"description": description,
			"content": object{
				"application/json": object{
					"schema": object{
						"type":       "object",
						"properties": object{"error": stringSchema()},
					},
				},
			},
		},
	}
}

func lookupSchema(apiField string) object {
	return object{
		"type": "object",
		"properties": object{
			"id":     object{"type": "integer", "format": "int64"},
			apiField: stringSchema(),
		},
	}
}

func arrayOf(items object) object {
	return object{"type": "array", "items": items}
}

func stringSchema() object {
	return object{"type": "string"}
}

func idParam() object {
	return object{
		"name":     "id",
		"in":       "path",
		"required": true,
		"schema":   object{"type": "integer", "format": "int64"},
	}
}
