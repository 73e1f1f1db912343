package client

import (
	"encoding/json"
	"fmt"
)

// The CMA speaks JSON:API: every payload is a document whose data member is
// an entity (or list of entities) with type, id, attributes, relationships
// and meta. The helpers here translate between that wire shape and the flat
// structs in pkg/dato.

type entity struct {
	ID            string                  `json:"id,omitempty"`
	Type          string                  `json:"type"`
	Attributes    json.RawMessage         `json:"attributes,omitempty"`
	Relationships map[string]relationship `json:"relationships,omitempty"`
	Meta          json.RawMessage         `json:"meta,omitempty"`
}

type relationship struct {
	Data *resourceRef `json:"data"`
}

type resourceRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type document struct {
	Data entity `json:"data"`
}

type listDocument struct {
	Data []entity `json:"data"`
	Meta struct {
		TotalCount int `json:"total_count"`
	} `json:"meta"`
}

// relID returns the ID of a to-one relationship, or "" when absent.
func (e *entity) relID(name string) string {
	rel, ok := e.Relationships[name]
	if !ok || rel.Data == nil {
		return ""
	}

	return rel.Data.ID
}

// decodeAttributes unmarshals the entity's attributes into target.
func (e *entity) decodeAttributes(target any) error {
	if len(e.Attributes) == 0 {
		return nil
	}

	if err := json.Unmarshal(e.Attributes, target); err != nil {
		return fmt.Errorf("decoding %s attributes: %w", e.Type, err)
	}

	return nil
}

// decodeMeta unmarshals the entity's meta into target.
func (e *entity) decodeMeta(target any) error {
	if len(e.Meta) == 0 {
		return nil
	}

	if err := json.Unmarshal(e.Meta, target); err != nil {
		return fmt.Errorf("decoding %s meta: %w", e.Type, err)
	}

	return nil
}

// decodeOne parses a single-entity document.
func decodeOne(body []byte) (*entity, error) {
	var doc document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parsing response document: %w", err)
	}

	return &doc.Data, nil
}

// decodeMany parses a list document, returning the entities and the total
// count when the endpoint paginates.
func decodeMany(body []byte) ([]entity, int, error) {
	var doc listDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, 0, fmt.Errorf("parsing response document: %w", err)
	}

	return doc.Data, doc.Meta.TotalCount, nil
}

// newEntity builds an entity from flat attribute data. Relationship keys in
// stripKeys are removed from the attribute map since they travel in the
// relationships member instead.
func newEntity(entityType, id string, attrs any, rels map[string]relationship, stripKeys ...string) (*entity, error) {
	attrMap, err := attributeMap(attrs, stripKeys...)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(attrMap)
	if err != nil {
		return nil, fmt.Errorf("encoding attributes: %w", err)
	}

	e := &entity{
		ID:         id,
		Type:       entityType,
		Attributes: raw,
	}

	if len(rels) > 0 {
		e.Relationships = rels
	}

	return e, nil
}

// payload wraps an entity into a request document.
func payload(e *entity) *document {
	return &document{Data: *e}
}

// attributeMap flattens a request struct into a JSON attribute map,
// dropping relationship keys that must not appear among attributes.
func attributeMap(attrs any, stripKeys ...string) (map[string]any, error) {
	raw, err := json.Marshal(attrs)
	if err != nil {
		return nil, fmt.Errorf("encoding attributes: %w", err)
	}

	attrMap := map[string]any{}
	if err := json.Unmarshal(raw, &attrMap); err != nil {
		return nil, fmt.Errorf("flattening attributes: %w", err)
	}

	for _, key := range stripKeys {
		delete(attrMap, key)
	}

	return attrMap, nil
}

// toOne builds a to-one relationship.
func toOne(refType, id string) relationship {
	return relationship{Data: &resourceRef{Type: refType, ID: id}}
}
