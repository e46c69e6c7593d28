// Code generated by ent, DO NOT EDIT.

package deduplog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hymnly133/prizm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldContainsFold(FieldID, id))
}

// KeptMemoryID applies equality check predicate on the "kept_memory_id" field. It's identical to KeptMemoryIDEQ.
func KeptMemoryID(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEQ(FieldKeptMemoryID, v))
}

// NewMemoryContent applies equality check predicate on the "new_memory_content" field. It's identical to NewMemoryContentEQ.
func NewMemoryContent(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEQ(FieldNewMemoryContent, v))
}

// NewMemoryType applies equality check predicate on the "new_memory_type" field. It's identical to NewMemoryTypeEQ.
func NewMemoryType(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEQ(FieldNewMemoryType, v))
}

// KeptMemoryContent applies equality check predicate on the "kept_memory_content" field. It's identical to KeptMemoryContentEQ.
func KeptMemoryContent(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEQ(FieldKeptMemoryContent, v))
}

// VectorDistance applies equality check predicate on the "vector_distance" field. It's identical to VectorDistanceEQ.
func VectorDistance(v float64) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEQ(FieldVectorDistance, v))
}

// LlmReasoning applies equality check predicate on the "llm_reasoning" field. It's identical to LlmReasoningEQ.
func LlmReasoning(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEQ(FieldLlmReasoning, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEQ(FieldUserID, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEQ(FieldGroupID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEQ(FieldCreatedAt, v))
}

// RolledBack applies equality check predicate on the "rolled_back" field. It's identical to RolledBackEQ.
func RolledBack(v bool) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEQ(FieldRolledBack, v))
}

// KeptMemoryIDEQ applies the EQ predicate on the "kept_memory_id" field.
func KeptMemoryIDEQ(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEQ(FieldKeptMemoryID, v))
}

// KeptMemoryIDNEQ applies the NEQ predicate on the "kept_memory_id" field.
func KeptMemoryIDNEQ(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNEQ(FieldKeptMemoryID, v))
}

// KeptMemoryIDIn applies the In predicate on the "kept_memory_id" field.
func KeptMemoryIDIn(vs ...string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldIn(FieldKeptMemoryID, vs...))
}

// KeptMemoryIDNotIn applies the NotIn predicate on the "kept_memory_id" field.
func KeptMemoryIDNotIn(vs ...string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNotIn(FieldKeptMemoryID, vs...))
}

// KeptMemoryIDGT applies the GT predicate on the "kept_memory_id" field.
func KeptMemoryIDGT(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldGT(FieldKeptMemoryID, v))
}

// KeptMemoryIDGTE applies the GTE predicate on the "kept_memory_id" field.
func KeptMemoryIDGTE(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldGTE(FieldKeptMemoryID, v))
}

// KeptMemoryIDLT applies the LT predicate on the "kept_memory_id" field.
func KeptMemoryIDLT(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldLT(FieldKeptMemoryID, v))
}

// KeptMemoryIDLTE applies the LTE predicate on the "kept_memory_id" field.
func KeptMemoryIDLTE(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldLTE(FieldKeptMemoryID, v))
}

// KeptMemoryIDContains applies the Contains predicate on the "kept_memory_id" field.
func KeptMemoryIDContains(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldContains(FieldKeptMemoryID, v))
}

// KeptMemoryIDHasPrefix applies the HasPrefix predicate on the "kept_memory_id" field.
func KeptMemoryIDHasPrefix(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldHasPrefix(FieldKeptMemoryID, v))
}

// KeptMemoryIDHasSuffix applies the HasSuffix predicate on the "kept_memory_id" field.
func KeptMemoryIDHasSuffix(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldHasSuffix(FieldKeptMemoryID, v))
}

// KeptMemoryIDEqualFold applies the EqualFold predicate on the "kept_memory_id" field.
func KeptMemoryIDEqualFold(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEqualFold(FieldKeptMemoryID, v))
}

// KeptMemoryIDContainsFold applies the ContainsFold predicate on the "kept_memory_id" field.
func KeptMemoryIDContainsFold(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldContainsFold(FieldKeptMemoryID, v))
}

// NewMemoryContentEQ applies the EQ predicate on the "new_memory_content" field.
func NewMemoryContentEQ(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEQ(FieldNewMemoryContent, v))
}

// NewMemoryContentNEQ applies the NEQ predicate on the "new_memory_content" field.
func NewMemoryContentNEQ(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNEQ(FieldNewMemoryContent, v))
}

// NewMemoryContentIn applies the In predicate on the "new_memory_content" field.
func NewMemoryContentIn(vs ...string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldIn(FieldNewMemoryContent, vs...))
}

// NewMemoryContentNotIn applies the NotIn predicate on the "new_memory_content" field.
func NewMemoryContentNotIn(vs ...string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNotIn(FieldNewMemoryContent, vs...))
}

// NewMemoryContentGT applies the GT predicate on the "new_memory_content" field.
func NewMemoryContentGT(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldGT(FieldNewMemoryContent, v))
}

// NewMemoryContentGTE applies the GTE predicate on the "new_memory_content" field.
func NewMemoryContentGTE(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldGTE(FieldNewMemoryContent, v))
}

// NewMemoryContentLT applies the LT predicate on the "new_memory_content" field.
func NewMemoryContentLT(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldLT(FieldNewMemoryContent, v))
}

// NewMemoryContentLTE applies the LTE predicate on the "new_memory_content" field.
func NewMemoryContentLTE(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldLTE(FieldNewMemoryContent, v))
}

// NewMemoryContentContains applies the Contains predicate on the "new_memory_content" field.
func NewMemoryContentContains(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldContains(FieldNewMemoryContent, v))
}

// NewMemoryContentHasPrefix applies the HasPrefix predicate on the "new_memory_content" field.
func NewMemoryContentHasPrefix(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldHasPrefix(FieldNewMemoryContent, v))
}

// NewMemoryContentHasSuffix applies the HasSuffix predicate on the "new_memory_content" field.
func NewMemoryContentHasSuffix(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldHasSuffix(FieldNewMemoryContent, v))
}

// NewMemoryContentEqualFold applies the EqualFold predicate on the "new_memory_content" field.
func NewMemoryContentEqualFold(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEqualFold(FieldNewMemoryContent, v))
}

// NewMemoryContentContainsFold applies the ContainsFold predicate on the "new_memory_content" field.
func NewMemoryContentContainsFold(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldContainsFold(FieldNewMemoryContent, v))
}

// NewMemoryTypeEQ applies the EQ predicate on the "new_memory_type" field.
func NewMemoryTypeEQ(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEQ(FieldNewMemoryType, v))
}

// NewMemoryTypeNEQ applies the NEQ predicate on the "new_memory_type" field.
func NewMemoryTypeNEQ(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNEQ(FieldNewMemoryType, v))
}

// NewMemoryTypeIn applies the In predicate on the "new_memory_type" field.
func NewMemoryTypeIn(vs ...string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldIn(FieldNewMemoryType, vs...))
}

// NewMemoryTypeNotIn applies the NotIn predicate on the "new_memory_type" field.
func NewMemoryTypeNotIn(vs ...string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNotIn(FieldNewMemoryType, vs...))
}

// NewMemoryTypeGT applies the GT predicate on the "new_memory_type" field.
func NewMemoryTypeGT(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldGT(FieldNewMemoryType, v))
}

// NewMemoryTypeGTE applies the GTE predicate on the "new_memory_type" field.
func NewMemoryTypeGTE(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldGTE(FieldNewMemoryType, v))
}

// NewMemoryTypeLT applies the LT predicate on the "new_memory_type" field.
func NewMemoryTypeLT(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldLT(FieldNewMemoryType, v))
}

// NewMemoryTypeLTE applies the LTE predicate on the "new_memory_type" field.
func NewMemoryTypeLTE(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldLTE(FieldNewMemoryType, v))
}

// NewMemoryTypeContains applies the Contains predicate on the "new_memory_type" field.
func NewMemoryTypeContains(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldContains(FieldNewMemoryType, v))
}

// NewMemoryTypeHasPrefix applies the HasPrefix predicate on the "new_memory_type" field.
func NewMemoryTypeHasPrefix(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldHasPrefix(FieldNewMemoryType, v))
}

// NewMemoryTypeHasSuffix applies the HasSuffix predicate on the "new_memory_type" field.
func NewMemoryTypeHasSuffix(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldHasSuffix(FieldNewMemoryType, v))
}

// NewMemoryTypeEqualFold applies the EqualFold predicate on the "new_memory_type" field.
func NewMemoryTypeEqualFold(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEqualFold(FieldNewMemoryType, v))
}

// NewMemoryTypeContainsFold applies the ContainsFold predicate on the "new_memory_type" field.
func NewMemoryTypeContainsFold(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldContainsFold(FieldNewMemoryType, v))
}

// NewMemoryMetadataIsNil applies the IsNil predicate on the "new_memory_metadata" field.
func NewMemoryMetadataIsNil() predicate.DedupLog {
	return predicate.DedupLog(sql.FieldIsNull(FieldNewMemoryMetadata))
}

// NewMemoryMetadataNotNil applies the NotNil predicate on the "new_memory_metadata" field.
func NewMemoryMetadataNotNil() predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNotNull(FieldNewMemoryMetadata))
}

// KeptMemoryContentEQ applies the EQ predicate on the "kept_memory_content" field.
func KeptMemoryContentEQ(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEQ(FieldKeptMemoryContent, v))
}

// KeptMemoryContentNEQ applies the NEQ predicate on the "kept_memory_content" field.
func KeptMemoryContentNEQ(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNEQ(FieldKeptMemoryContent, v))
}

// KeptMemoryContentIn applies the In predicate on the "kept_memory_content" field.
func KeptMemoryContentIn(vs ...string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldIn(FieldKeptMemoryContent, vs...))
}

// KeptMemoryContentNotIn applies the NotIn predicate on the "kept_memory_content" field.
func KeptMemoryContentNotIn(vs ...string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNotIn(FieldKeptMemoryContent, vs...))
}

// KeptMemoryContentGT applies the GT predicate on the "kept_memory_content" field.
func KeptMemoryContentGT(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldGT(FieldKeptMemoryContent, v))
}

// KeptMemoryContentGTE applies the GTE predicate on the "kept_memory_content" field.
func KeptMemoryContentGTE(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldGTE(FieldKeptMemoryContent, v))
}

// KeptMemoryContentLT applies the LT predicate on the "kept_memory_content" field.
func KeptMemoryContentLT(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldLT(FieldKeptMemoryContent, v))
}

// KeptMemoryContentLTE applies the LTE predicate on the "kept_memory_content" field.
func KeptMemoryContentLTE(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldLTE(FieldKeptMemoryContent, v))
}

// KeptMemoryContentContains applies the Contains predicate on the "kept_memory_content" field.
func KeptMemoryContentContains(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldContains(FieldKeptMemoryContent, v))
}

// KeptMemoryContentHasPrefix applies the HasPrefix predicate on the "kept_memory_content" field.
func KeptMemoryContentHasPrefix(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldHasPrefix(FieldKeptMemoryContent, v))
}

// KeptMemoryContentHasSuffix applies the HasSuffix predicate on the "kept_memory_content" field.
func KeptMemoryContentHasSuffix(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldHasSuffix(FieldKeptMemoryContent, v))
}

// KeptMemoryContentIsNil applies the IsNil predicate on the "kept_memory_content" field.
func KeptMemoryContentIsNil() predicate.DedupLog {
	return predicate.DedupLog(sql.FieldIsNull(FieldKeptMemoryContent))
}

// KeptMemoryContentNotNil applies the NotNil predicate on the "kept_memory_content" field.
func KeptMemoryContentNotNil() predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNotNull(FieldKeptMemoryContent))
}

// KeptMemoryContentEqualFold applies the EqualFold predicate on the "kept_memory_content" field.
func KeptMemoryContentEqualFold(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEqualFold(FieldKeptMemoryContent, v))
}

// KeptMemoryContentContainsFold applies the ContainsFold predicate on the "kept_memory_content" field.
func KeptMemoryContentContainsFold(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldContainsFold(FieldKeptMemoryContent, v))
}

// VectorDistanceEQ applies the EQ predicate on the "vector_distance" field.
func VectorDistanceEQ(v float64) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEQ(FieldVectorDistance, v))
}

// VectorDistanceNEQ applies the NEQ predicate on the "vector_distance" field.
func VectorDistanceNEQ(v float64) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNEQ(FieldVectorDistance, v))
}

// VectorDistanceIn applies the In predicate on the "vector_distance" field.
func VectorDistanceIn(vs ...float64) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldIn(FieldVectorDistance, vs...))
}

// VectorDistanceNotIn applies the NotIn predicate on the "vector_distance" field.
func VectorDistanceNotIn(vs ...float64) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNotIn(FieldVectorDistance, vs...))
}

// VectorDistanceGT applies the GT predicate on the "vector_distance" field.
func VectorDistanceGT(v float64) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldGT(FieldVectorDistance, v))
}

// VectorDistanceGTE applies the GTE predicate on the "vector_distance" field.
func VectorDistanceGTE(v float64) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldGTE(FieldVectorDistance, v))
}

// VectorDistanceLT applies the LT predicate on the "vector_distance" field.
func VectorDistanceLT(v float64) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldLT(FieldVectorDistance, v))
}

// VectorDistanceLTE applies the LTE predicate on the "vector_distance" field.
func VectorDistanceLTE(v float64) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldLTE(FieldVectorDistance, v))
}

// LlmReasoningEQ applies the EQ predicate on the "llm_reasoning" field.
func LlmReasoningEQ(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEQ(FieldLlmReasoning, v))
}

// LlmReasoningNEQ applies the NEQ predicate on the "llm_reasoning" field.
func LlmReasoningNEQ(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNEQ(FieldLlmReasoning, v))
}

// LlmReasoningIn applies the In predicate on the "llm_reasoning" field.
func LlmReasoningIn(vs ...string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldIn(FieldLlmReasoning, vs...))
}

// LlmReasoningNotIn applies the NotIn predicate on the "llm_reasoning" field.
func LlmReasoningNotIn(vs ...string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNotIn(FieldLlmReasoning, vs...))
}

// LlmReasoningGT applies the GT predicate on the "llm_reasoning" field.
func LlmReasoningGT(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldGT(FieldLlmReasoning, v))
}

// LlmReasoningGTE applies the GTE predicate on the "llm_reasoning" field.
func LlmReasoningGTE(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldGTE(FieldLlmReasoning, v))
}

// LlmReasoningLT applies the LT predicate on the "llm_reasoning" field.
func LlmReasoningLT(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldLT(FieldLlmReasoning, v))
}

// LlmReasoningLTE applies the LTE predicate on the "llm_reasoning" field.
func LlmReasoningLTE(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldLTE(FieldLlmReasoning, v))
}

// LlmReasoningContains applies the Contains predicate on the "llm_reasoning" field.
func LlmReasoningContains(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldContains(FieldLlmReasoning, v))
}

// LlmReasoningHasPrefix applies the HasPrefix predicate on the "llm_reasoning" field.
func LlmReasoningHasPrefix(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldHasPrefix(FieldLlmReasoning, v))
}

// LlmReasoningHasSuffix applies the HasSuffix predicate on the "llm_reasoning" field.
func LlmReasoningHasSuffix(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldHasSuffix(FieldLlmReasoning, v))
}

// LlmReasoningEqualFold applies the EqualFold predicate on the "llm_reasoning" field.
func LlmReasoningEqualFold(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEqualFold(FieldLlmReasoning, v))
}

// LlmReasoningContainsFold applies the ContainsFold predicate on the "llm_reasoning" field.
func LlmReasoningContainsFold(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldContainsFold(FieldLlmReasoning, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.DedupLog {
	return predicate.DedupLog(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldContainsFold(FieldUserID, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDIsNil applies the IsNil predicate on the "group_id" field.
func GroupIDIsNil() predicate.DedupLog {
	return predicate.DedupLog(sql.FieldIsNull(FieldGroupID))
}

// GroupIDNotNil applies the NotNil predicate on the "group_id" field.
func GroupIDNotNil() predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNotNull(FieldGroupID))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldContainsFold(FieldGroupID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldLTE(FieldCreatedAt, v))
}

// RolledBackEQ applies the EQ predicate on the "rolled_back" field.
func RolledBackEQ(v bool) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldEQ(FieldRolledBack, v))
}

// RolledBackNEQ applies the NEQ predicate on the "rolled_back" field.
func RolledBackNEQ(v bool) predicate.DedupLog {
	return predicate.DedupLog(sql.FieldNEQ(FieldRolledBack, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DedupLog) predicate.DedupLog {
	return predicate.DedupLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DedupLog) predicate.DedupLog {
	return predicate.DedupLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DedupLog) predicate.DedupLog {
	return predicate.DedupLog(sql.NotPredicates(p))
}
