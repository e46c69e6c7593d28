// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hymnly133/prizm/ent/deduplog"
)

// DedupLog is the model entity for the DedupLog schema.
type DedupLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// KeptMemoryID holds the value of the "kept_memory_id" field.
	KeptMemoryID string `json:"kept_memory_id,omitempty"`
	// NewMemoryContent holds the value of the "new_memory_content" field.
	NewMemoryContent string `json:"new_memory_content,omitempty"`
	// NewMemoryType holds the value of the "new_memory_type" field.
	NewMemoryType string `json:"new_memory_type,omitempty"`
	// NewMemoryMetadata holds the value of the "new_memory_metadata" field.
	NewMemoryMetadata map[string]interface{} `json:"new_memory_metadata,omitempty"`
	// KeptMemoryContent holds the value of the "kept_memory_content" field.
	KeptMemoryContent string `json:"kept_memory_content,omitempty"`
	// VectorDistance holds the value of the "vector_distance" field.
	VectorDistance float64 `json:"vector_distance,omitempty"`
	// Contains SAME for judge decisions, vector-only for fallback
	LlmReasoning string `json:"llm_reasoning,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// GroupID holds the value of the "group_id" field.
	GroupID *string `json:"group_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// RolledBack holds the value of the "rolled_back" field.
	RolledBack   bool `json:"rolled_back,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DedupLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deduplog.FieldNewMemoryMetadata:
			values[i] = new([]byte)
		case deduplog.FieldRolledBack:
			values[i] = new(sql.NullBool)
		case deduplog.FieldVectorDistance:
			values[i] = new(sql.NullFloat64)
		case deduplog.FieldID, deduplog.FieldKeptMemoryID, deduplog.FieldNewMemoryContent, deduplog.FieldNewMemoryType, deduplog.FieldKeptMemoryContent, deduplog.FieldLlmReasoning, deduplog.FieldUserID, deduplog.FieldGroupID:
			values[i] = new(sql.NullString)
		case deduplog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DedupLog fields.
func (_m *DedupLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deduplog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case deduplog.FieldKeptMemoryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kept_memory_id", values[i])
			} else if value.Valid {
				_m.KeptMemoryID = value.String
			}
		case deduplog.FieldNewMemoryContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_memory_content", values[i])
			} else if value.Valid {
				_m.NewMemoryContent = value.String
			}
		case deduplog.FieldNewMemoryType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_memory_type", values[i])
			} else if value.Valid {
				_m.NewMemoryType = value.String
			}
		case deduplog.FieldNewMemoryMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field new_memory_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NewMemoryMetadata); err != nil {
					return fmt.Errorf("unmarshal field new_memory_metadata: %w", err)
				}
			}
		case deduplog.FieldKeptMemoryContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kept_memory_content", values[i])
			} else if value.Valid {
				_m.KeptMemoryContent = value.String
			}
		case deduplog.FieldVectorDistance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field vector_distance", values[i])
			} else if value.Valid {
				_m.VectorDistance = value.Float64
			}
		case deduplog.FieldLlmReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_reasoning", values[i])
			} else if value.Valid {
				_m.LlmReasoning = value.String
			}
		case deduplog.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case deduplog.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = new(string)
				*_m.GroupID = value.String
			}
		case deduplog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case deduplog.FieldRolledBack:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field rolled_back", values[i])
			} else if value.Valid {
				_m.RolledBack = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DedupLog.
// This includes values selected through modifiers, order, etc.
func (_m *DedupLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DedupLog.
// Note that you need to call DedupLog.Unwrap() before calling this method if this DedupLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DedupLog) Update() *DedupLogUpdateOne {
	return NewDedupLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DedupLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DedupLog) Unwrap() *DedupLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DedupLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DedupLog) String() string {
	var builder strings.Builder
	builder.WriteString("DedupLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("kept_memory_id=")
	builder.WriteString(_m.KeptMemoryID)
	builder.WriteString(", ")
	builder.WriteString("new_memory_content=")
	builder.WriteString(_m.NewMemoryContent)
	builder.WriteString(", ")
	builder.WriteString("new_memory_type=")
	builder.WriteString(_m.NewMemoryType)
	builder.WriteString(", ")
	builder.WriteString("new_memory_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewMemoryMetadata))
	builder.WriteString(", ")
	builder.WriteString("kept_memory_content=")
	builder.WriteString(_m.KeptMemoryContent)
	builder.WriteString(", ")
	builder.WriteString("vector_distance=")
	builder.WriteString(fmt.Sprintf("%v", _m.VectorDistance))
	builder.WriteString(", ")
	builder.WriteString("llm_reasoning=")
	builder.WriteString(_m.LlmReasoning)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	if v := _m.GroupID; v != nil {
		builder.WriteString("group_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("rolled_back=")
	builder.WriteString(fmt.Sprintf("%v", _m.RolledBack))
	builder.WriteByte(')')
	return builder.String()
}

// DedupLogs is a parsable slice of DedupLog.
type DedupLogs []*DedupLog
