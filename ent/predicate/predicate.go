// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditEntry is the predicate function for auditentry builders.
type AuditEntry func(*sql.Selector)

// DedupLog is the predicate function for deduplog builders.
type DedupLog func(*sql.Selector)

// MemoryEntry is the predicate function for memoryentry builders.
type MemoryEntry func(*sql.Selector)

// Schedule is the predicate function for schedule builders.
type Schedule func(*sql.Selector)

// WorkflowRun is the predicate function for workflowrun builders.
type WorkflowRun func(*sql.Selector)
