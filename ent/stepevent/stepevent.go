// Code generated by ent, DO NOT EDIT.

package stepevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the stepevent type in the database.
	Label = "step_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStepKind holds the string denoting the step_kind field in the database.
	FieldStepKind = "step_kind"
	// FieldLessonPhase holds the string denoting the lesson_phase field in the database.
	FieldLessonPhase = "lesson_phase"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldQuestionNumber holds the string denoting the question_number field in the database.
	FieldQuestionNumber = "question_number"
	// FieldHasImage holds the string denoting the has_image field in the database.
	FieldHasImage = "has_image"
	// Table holds the table name of the stepevent in the database.
	Table = "step_events"
)

// Columns holds all SQL columns for stepevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldStepKind,
	FieldLessonPhase,
	FieldConceptID,
	FieldQuestionNumber,
	FieldHasImage,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// StepKindValidator is a validator for the "step_kind" field. It is called by the builders before save.
	StepKindValidator func(string) error
	// LessonPhaseValidator is a validator for the "lesson_phase" field. It is called by the builders before save.
	LessonPhaseValidator func(string) error
	// DefaultConceptID holds the default value on creation for the "concept_id" field.
	DefaultConceptID string
	// DefaultQuestionNumber holds the default value on creation for the "question_number" field.
	DefaultQuestionNumber int
	// DefaultHasImage holds the default value on creation for the "has_image" field.
	DefaultHasImage bool
)

// OrderOption defines the ordering options for the StepEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStepKind orders the results by the step_kind field.
func ByStepKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepKind, opts...).ToFunc()
}

// ByLessonPhase orders the results by the lesson_phase field.
func ByLessonPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonPhase, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByQuestionNumber orders the results by the question_number field.
func ByQuestionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionNumber, opts...).ToFunc()
}

// ByHasImage orders the results by the has_image field.
func ByHasImage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasImage, opts...).ToFunc()
}
