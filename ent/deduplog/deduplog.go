// Code generated by ent, DO NOT EDIT.

package deduplog

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the deduplog type in the database.
	Label = "dedup_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "log_id"
	// FieldKeptMemoryID holds the string denoting the kept_memory_id field in the database.
	FieldKeptMemoryID = "kept_memory_id"
	// FieldNewMemoryContent holds the string denoting the new_memory_content field in the database.
	FieldNewMemoryContent = "new_memory_content"
	// FieldNewMemoryType holds the string denoting the new_memory_type field in the database.
	FieldNewMemoryType = "new_memory_type"
	// FieldNewMemoryMetadata holds the string denoting the new_memory_metadata field in the database.
	FieldNewMemoryMetadata = "new_memory_metadata"
	// FieldKeptMemoryContent holds the string denoting the kept_memory_content field in the database.
	FieldKeptMemoryContent = "kept_memory_content"
	// FieldVectorDistance holds the string denoting the vector_distance field in the database.
	FieldVectorDistance = "vector_distance"
	// FieldLlmReasoning holds the string denoting the llm_reasoning field in the database.
	FieldLlmReasoning = "llm_reasoning"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldRolledBack holds the string denoting the rolled_back field in the database.
	FieldRolledBack = "rolled_back"
	// Table holds the table name of the deduplog in the database.
	Table = "dedup_logs"
)

// Columns holds all SQL columns for deduplog fields.
var Columns = []string{
	FieldID,
	FieldKeptMemoryID,
	FieldNewMemoryContent,
	FieldNewMemoryType,
	FieldNewMemoryMetadata,
	FieldKeptMemoryContent,
	FieldVectorDistance,
	FieldLlmReasoning,
	FieldUserID,
	FieldGroupID,
	FieldCreatedAt,
	FieldRolledBack,
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
	// DefaultRolledBack holds the default value on creation for the "rolled_back" field.
	DefaultRolledBack bool
)

// OrderOption defines the ordering options for the DedupLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKeptMemoryID orders the results by the kept_memory_id field.
func ByKeptMemoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeptMemoryID, opts...).ToFunc()
}

// ByNewMemoryContent orders the results by the new_memory_content field.
func ByNewMemoryContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewMemoryContent, opts...).ToFunc()
}

// ByNewMemoryType orders the results by the new_memory_type field.
func ByNewMemoryType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewMemoryType, opts...).ToFunc()
}

// ByKeptMemoryContent orders the results by the kept_memory_content field.
func ByKeptMemoryContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeptMemoryContent, opts...).ToFunc()
}

// ByVectorDistance orders the results by the vector_distance field.
func ByVectorDistance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVectorDistance, opts...).ToFunc()
}

// ByLlmReasoning orders the results by the llm_reasoning field.
func ByLlmReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmReasoning, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRolledBack orders the results by the rolled_back field.
func ByRolledBack(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRolledBack, opts...).ToFunc()
}
