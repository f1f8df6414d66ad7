// Package tfc is a minimal Terraform Cloud API v2 client.
package tfc

import (
	"encoding/json"
	"fmt"
)

// Resource is a single JSON:API resource object
type Resource struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Attributes json.RawMessage `json:"attributes"`
}

// Links holds the pagination links of a listing response. Next is an
// opaque server-supplied URL; null or absent means the last page.
type Links struct {
	Next *string `json:"next"`
}

// Document is a JSON:API response envelope. Listing endpoints return an
// array under "data", show endpoints a single object; both decode into
// Data so callers handle one shape.
type Document struct {
	Data  []Resource
	Links Links
}

// UnmarshalJSON accepts both array and single-object "data" payloads
func (d *Document) UnmarshalJSON(b []byte) error {
	var raw struct {
		Data  json.RawMessage `json:"data"`
		Links Links           `json:"links"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	d.Links = raw.Links
	d.Data = nil

	if len(raw.Data) == 0 || string(raw.Data) == "null" {
		return nil
	}

	switch raw.Data[0] {
	case '[':
		return json.Unmarshal(raw.Data, &d.Data)
	case '{':
		var one Resource
		if err := json.Unmarshal(raw.Data, &one); err != nil {
			return err
		}
		d.Data = []Resource{one}
		return nil
	default:
		return fmt.Errorf("unexpected data payload: %s", truncatePayload(raw.Data))
	}
}

func truncatePayload(b []byte) string {
	const max = 64
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}

// Workspace is the subset of workspace attributes this tool uses. ID is
// the stable key; Name is for display and lookup.
type Workspace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type workspaceAttributes struct {
	Name string `json:"name"`
}

type stateOutputAttributes struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}
