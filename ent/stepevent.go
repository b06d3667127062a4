// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/learno/ent/stepevent"
)

// StepEvent is the model entity for the StepEvent schema.
type StepEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing sequence number, global across event types
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to SessionEvent
	SessionID string `json:"session_id,omitempty"`
	// welcome, concept_introduction, explanation, visual_example, guided_practice, independent_practice, mastery_check, chapter_review, celebration
	StepKind string `json:"step_kind,omitempty"`
	// Lesson phase after the step was committed
	LessonPhase string `json:"lesson_phase,omitempty"`
	// Concept the step taught, empty for welcome/review/celebration
	ConceptID string `json:"concept_id,omitempty"`
	// 1-based question position for practice and review steps
	QuestionNumber int `json:"question_number,omitempty"`
	// Whether an illustration accompanied the step
	HasImage     bool `json:"has_image,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StepEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stepevent.FieldHasImage:
			values[i] = new(sql.NullBool)
		case stepevent.FieldID, stepevent.FieldSequence, stepevent.FieldQuestionNumber:
			values[i] = new(sql.NullInt64)
		case stepevent.FieldSessionID, stepevent.FieldStepKind, stepevent.FieldLessonPhase, stepevent.FieldConceptID:
			values[i] = new(sql.NullString)
		case stepevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StepEvent fields.
func (_m *StepEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stepevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case stepevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case stepevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case stepevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case stepevent.FieldStepKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_kind", values[i])
			} else if value.Valid {
				_m.StepKind = value.String
			}
		case stepevent.FieldLessonPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_phase", values[i])
			} else if value.Valid {
				_m.LessonPhase = value.String
			}
		case stepevent.FieldConceptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				_m.ConceptID = value.String
			}
		case stepevent.FieldQuestionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_number", values[i])
			} else if value.Valid {
				_m.QuestionNumber = int(value.Int64)
			}
		case stepevent.FieldHasImage:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_image", values[i])
			} else if value.Valid {
				_m.HasImage = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StepEvent.
// This includes values selected through modifiers, order, etc.
func (_m *StepEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StepEvent.
// Note that you need to call StepEvent.Unwrap() before calling this method if this StepEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StepEvent) Update() *StepEventUpdateOne {
	return NewStepEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StepEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StepEvent) Unwrap() *StepEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StepEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StepEvent) String() string {
	var builder strings.Builder
	builder.WriteString("StepEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("step_kind=")
	builder.WriteString(_m.StepKind)
	builder.WriteString(", ")
	builder.WriteString("lesson_phase=")
	builder.WriteString(_m.LessonPhase)
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(_m.ConceptID)
	builder.WriteString(", ")
	builder.WriteString("question_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionNumber))
	builder.WriteString(", ")
	builder.WriteString("has_image=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasImage))
	builder.WriteByte(')')
	return builder.String()
}

// StepEvents is a parsable slice of StepEvent.
type StepEvents []*StepEvent
