package model

import "time"

// ContentEntry is the simplified view of one CMS entry consumed by the
// reference scanner. Data holds the collection-specific fields; which of
// them carry media references is declared by a ReferenceMap, never inferred
// from the document shape.
type ContentEntry struct {
	ID         string         `bson:"_id"`
	Collection string         `bson:"collection"`
	Data       map[string]any `bson:"data"`
	UpdatedAt  time.Time      `bson:"updated_at"`
}

// Reference field shapes.
const (
	ShapeSingle = "single"
	ShapeList   = "list"
)

// ReferenceField declares one media-reference field on a collection.
type ReferenceField struct {
	Field string `yaml:"field"`
	Shape string `yaml:"shape"`
}

// ReferenceMap maps a collection name to its media-reference fields. It is
// supplied through configuration by the host application.
type ReferenceMap map[string][]ReferenceField
