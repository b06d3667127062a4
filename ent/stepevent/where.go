// Code generated by ent, DO NOT EDIT.

package stepevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/learno/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldSessionID, v))
}

// StepKind applies equality check predicate on the "step_kind" field. It's identical to StepKindEQ.
func StepKind(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldStepKind, v))
}

// LessonPhase applies equality check predicate on the "lesson_phase" field. It's identical to LessonPhaseEQ.
func LessonPhase(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldLessonPhase, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldConceptID, v))
}

// QuestionNumber applies equality check predicate on the "question_number" field. It's identical to QuestionNumberEQ.
func QuestionNumber(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldQuestionNumber, v))
}

// HasImage applies equality check predicate on the "has_image" field. It's identical to HasImageEQ.
func HasImage(v bool) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldHasImage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// StepKindEQ applies the EQ predicate on the "step_kind" field.
func StepKindEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldStepKind, v))
}

// StepKindNEQ applies the NEQ predicate on the "step_kind" field.
func StepKindNEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldStepKind, v))
}

// StepKindIn applies the In predicate on the "step_kind" field.
func StepKindIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldStepKind, vs...))
}

// StepKindNotIn applies the NotIn predicate on the "step_kind" field.
func StepKindNotIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldStepKind, vs...))
}

// StepKindGT applies the GT predicate on the "step_kind" field.
func StepKindGT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldStepKind, v))
}

// StepKindGTE applies the GTE predicate on the "step_kind" field.
func StepKindGTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldStepKind, v))
}

// StepKindLT applies the LT predicate on the "step_kind" field.
func StepKindLT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldStepKind, v))
}

// StepKindLTE applies the LTE predicate on the "step_kind" field.
func StepKindLTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldStepKind, v))
}

// StepKindContains applies the Contains predicate on the "step_kind" field.
func StepKindContains(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContains(FieldStepKind, v))
}

// StepKindHasPrefix applies the HasPrefix predicate on the "step_kind" field.
func StepKindHasPrefix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasPrefix(FieldStepKind, v))
}

// StepKindHasSuffix applies the HasSuffix predicate on the "step_kind" field.
func StepKindHasSuffix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasSuffix(FieldStepKind, v))
}

// StepKindEqualFold applies the EqualFold predicate on the "step_kind" field.
func StepKindEqualFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEqualFold(FieldStepKind, v))
}

// StepKindContainsFold applies the ContainsFold predicate on the "step_kind" field.
func StepKindContainsFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContainsFold(FieldStepKind, v))
}

// LessonPhaseEQ applies the EQ predicate on the "lesson_phase" field.
func LessonPhaseEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldLessonPhase, v))
}

// LessonPhaseNEQ applies the NEQ predicate on the "lesson_phase" field.
func LessonPhaseNEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldLessonPhase, v))
}

// LessonPhaseIn applies the In predicate on the "lesson_phase" field.
func LessonPhaseIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldLessonPhase, vs...))
}

// LessonPhaseNotIn applies the NotIn predicate on the "lesson_phase" field.
func LessonPhaseNotIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldLessonPhase, vs...))
}

// LessonPhaseGT applies the GT predicate on the "lesson_phase" field.
func LessonPhaseGT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldLessonPhase, v))
}

// LessonPhaseGTE applies the GTE predicate on the "lesson_phase" field.
func LessonPhaseGTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldLessonPhase, v))
}

// LessonPhaseLT applies the LT predicate on the "lesson_phase" field.
func LessonPhaseLT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldLessonPhase, v))
}

// LessonPhaseLTE applies the LTE predicate on the "lesson_phase" field.
func LessonPhaseLTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldLessonPhase, v))
}

// LessonPhaseContains applies the Contains predicate on the "lesson_phase" field.
func LessonPhaseContains(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContains(FieldLessonPhase, v))
}

// LessonPhaseHasPrefix applies the HasPrefix predicate on the "lesson_phase" field.
func LessonPhaseHasPrefix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasPrefix(FieldLessonPhase, v))
}

// LessonPhaseHasSuffix applies the HasSuffix predicate on the "lesson_phase" field.
func LessonPhaseHasSuffix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasSuffix(FieldLessonPhase, v))
}

// LessonPhaseEqualFold applies the EqualFold predicate on the "lesson_phase" field.
func LessonPhaseEqualFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEqualFold(FieldLessonPhase, v))
}

// LessonPhaseContainsFold applies the ContainsFold predicate on the "lesson_phase" field.
func LessonPhaseContainsFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContainsFold(FieldLessonPhase, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContainsFold(FieldConceptID, v))
}

// QuestionNumberEQ applies the EQ predicate on the "question_number" field.
func QuestionNumberEQ(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldQuestionNumber, v))
}

// QuestionNumberNEQ applies the NEQ predicate on the "question_number" field.
func QuestionNumberNEQ(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldQuestionNumber, v))
}

// QuestionNumberIn applies the In predicate on the "question_number" field.
func QuestionNumberIn(vs ...int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldQuestionNumber, vs...))
}

// QuestionNumberNotIn applies the NotIn predicate on the "question_number" field.
func QuestionNumberNotIn(vs ...int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldQuestionNumber, vs...))
}

// QuestionNumberGT applies the GT predicate on the "question_number" field.
func QuestionNumberGT(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldQuestionNumber, v))
}

// QuestionNumberGTE applies the GTE predicate on the "question_number" field.
func QuestionNumberGTE(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldQuestionNumber, v))
}

// QuestionNumberLT applies the LT predicate on the "question_number" field.
func QuestionNumberLT(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldQuestionNumber, v))
}

// QuestionNumberLTE applies the LTE predicate on the "question_number" field.
func QuestionNumberLTE(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldQuestionNumber, v))
}

// HasImageEQ applies the EQ predicate on the "has_image" field.
func HasImageEQ(v bool) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldHasImage, v))
}

// HasImageNEQ applies the NEQ predicate on the "has_image" field.
func HasImageNEQ(v bool) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldHasImage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StepEvent) predicate.StepEvent {
	return predicate.StepEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StepEvent) predicate.StepEvent {
	return predicate.StepEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StepEvent) predicate.StepEvent {
	return predicate.StepEvent(sql.NotPredicates(p))
}
