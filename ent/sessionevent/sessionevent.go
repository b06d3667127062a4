// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldLesson holds the string denoting the lesson field in the database.
	FieldLesson = "lesson"
	// FieldConceptsCompleted holds the string denoting the concepts_completed field in the database.
	FieldConceptsCompleted = "concepts_completed"
	// FieldTotalCorrect holds the string denoting the total_correct field in the database.
	FieldTotalCorrect = "total_correct"
	// FieldTotalWrong holds the string denoting the total_wrong field in the database.
	FieldTotalWrong = "total_wrong"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldAction,
	FieldStudentID,
	FieldGrade,
	FieldSubject,
	FieldLesson,
	FieldConceptsCompleted,
	FieldTotalCorrect,
	FieldTotalWrong,
	FieldCompleted,
	FieldDurationSecs,
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
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultStudentID holds the default value on creation for the "student_id" field.
	DefaultStudentID string
	// DefaultGrade holds the default value on creation for the "grade" field.
	DefaultGrade int
	// DefaultSubject holds the default value on creation for the "subject" field.
	DefaultSubject string
	// DefaultLesson holds the default value on creation for the "lesson" field.
	DefaultLesson string
	// DefaultConceptsCompleted holds the default value on creation for the "concepts_completed" field.
	DefaultConceptsCompleted int
	// DefaultTotalCorrect holds the default value on creation for the "total_correct" field.
	DefaultTotalCorrect int
	// DefaultTotalWrong holds the default value on creation for the "total_wrong" field.
	DefaultTotalWrong int
	// DefaultCompleted holds the default value on creation for the "completed" field.
	DefaultCompleted bool
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
)

// OrderOption defines the ordering options for the SessionEvent queries.
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

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByLesson orders the results by the lesson field.
func ByLesson(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLesson, opts...).ToFunc()
}

// ByConceptsCompleted orders the results by the concepts_completed field.
func ByConceptsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptsCompleted, opts...).ToFunc()
}

// ByTotalCorrect orders the results by the total_correct field.
func ByTotalCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCorrect, opts...).ToFunc()
}

// ByTotalWrong orders the results by the total_wrong field.
func ByTotalWrong(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalWrong, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}
