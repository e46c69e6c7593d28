// Code generated by ent, DO NOT EDIT.

package memoryentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the memoryentry type in the database.
	Label = "memory_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "memory_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldLayer holds the string denoting the layer field in the database.
	FieldLayer = "layer"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the memoryentry in the database.
	Table = "memory_entries"
)

// Columns holds all SQL columns for memoryentry fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldGroupID,
	FieldLayer,
	FieldContent,
	FieldMetadata,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Layer defines the type for the "layer" enum field.
type Layer string

// Layer values.
const (
	LayerProfile   Layer = "profile"
	LayerEpisodic  Layer = "episodic"
	LayerForesight Layer = "foresight"
	LayerEventLog  Layer = "event_log"
	LayerDocument  Layer = "document"
)

func (l Layer) String() string {
	return string(l)
}

// LayerValidator is a validator for the "layer" field enum values. It is called by the builders before save.
func LayerValidator(l Layer) error {
	switch l {
	case LayerProfile, LayerEpisodic, LayerForesight, LayerEventLog, LayerDocument:
		return nil
	default:
		return fmt.Errorf("memoryentry: invalid enum value for layer field: %q", l)
	}
}

// OrderOption defines the ordering options for the MemoryEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByLayer orders the results by the layer field.
func ByLayer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLayer, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
