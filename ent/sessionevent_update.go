// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learno/ent/predicate"
	"github.com/abhisek/learno/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *SessionEventUpdate) SetStudentID(v string) *SessionEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableStudentID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *SessionEventUpdate) SetGrade(v int) *SessionEventUpdate {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableGrade(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *SessionEventUpdate) AddGrade(v int) *SessionEventUpdate {
	_u.mutation.AddGrade(v)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *SessionEventUpdate) SetSubject(v string) *SessionEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSubject(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetLesson sets the "lesson" field.
func (_u *SessionEventUpdate) SetLesson(v string) *SessionEventUpdate {
	_u.mutation.SetLesson(v)
	return _u
}

// SetNillableLesson sets the "lesson" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableLesson(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetLesson(*v)
	}
	return _u
}

// SetConceptsCompleted sets the "concepts_completed" field.
func (_u *SessionEventUpdate) SetConceptsCompleted(v int) *SessionEventUpdate {
	_u.mutation.ResetConceptsCompleted()
	_u.mutation.SetConceptsCompleted(v)
	return _u
}

// SetNillableConceptsCompleted sets the "concepts_completed" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableConceptsCompleted(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetConceptsCompleted(*v)
	}
	return _u
}

// AddConceptsCompleted adds value to the "concepts_completed" field.
func (_u *SessionEventUpdate) AddConceptsCompleted(v int) *SessionEventUpdate {
	_u.mutation.AddConceptsCompleted(v)
	return _u
}

// SetTotalCorrect sets the "total_correct" field.
func (_u *SessionEventUpdate) SetTotalCorrect(v int) *SessionEventUpdate {
	_u.mutation.ResetTotalCorrect()
	_u.mutation.SetTotalCorrect(v)
	return _u
}

// SetNillableTotalCorrect sets the "total_correct" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableTotalCorrect(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetTotalCorrect(*v)
	}
	return _u
}

// AddTotalCorrect adds value to the "total_correct" field.
func (_u *SessionEventUpdate) AddTotalCorrect(v int) *SessionEventUpdate {
	_u.mutation.AddTotalCorrect(v)
	return _u
}

// SetTotalWrong sets the "total_wrong" field.
func (_u *SessionEventUpdate) SetTotalWrong(v int) *SessionEventUpdate {
	_u.mutation.ResetTotalWrong()
	_u.mutation.SetTotalWrong(v)
	return _u
}

// SetNillableTotalWrong sets the "total_wrong" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableTotalWrong(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetTotalWrong(*v)
	}
	return _u
}

// AddTotalWrong adds value to the "total_wrong" field.
func (_u *SessionEventUpdate) AddTotalWrong(v int) *SessionEventUpdate {
	_u.mutation.AddTotalWrong(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *SessionEventUpdate) SetCompleted(v bool) *SessionEventUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableCompleted(v *bool) *SessionEventUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdate) SetDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableDurationSecs(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdate) AddDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(sessionevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(sessionevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(sessionevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(sessionevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lesson(); ok {
		_spec.SetField(sessionevent.FieldLesson, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptsCompleted(); ok {
		_spec.SetField(sessionevent.FieldConceptsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConceptsCompleted(); ok {
		_spec.AddField(sessionevent.FieldConceptsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCorrect(); ok {
		_spec.SetField(sessionevent.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCorrect(); ok {
		_spec.AddField(sessionevent.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalWrong(); ok {
		_spec.SetField(sessionevent.FieldTotalWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalWrong(); ok {
		_spec.AddField(sessionevent.FieldTotalWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(sessionevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *SessionEventUpdateOne) SetStudentID(v string) *SessionEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableStudentID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *SessionEventUpdateOne) SetGrade(v int) *SessionEventUpdateOne {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableGrade(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *SessionEventUpdateOne) AddGrade(v int) *SessionEventUpdateOne {
	_u.mutation.AddGrade(v)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *SessionEventUpdateOne) SetSubject(v string) *SessionEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSubject(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetLesson sets the "lesson" field.
func (_u *SessionEventUpdateOne) SetLesson(v string) *SessionEventUpdateOne {
	_u.mutation.SetLesson(v)
	return _u
}

// SetNillableLesson sets the "lesson" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableLesson(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetLesson(*v)
	}
	return _u
}

// SetConceptsCompleted sets the "concepts_completed" field.
func (_u *SessionEventUpdateOne) SetConceptsCompleted(v int) *SessionEventUpdateOne {
	_u.mutation.ResetConceptsCompleted()
	_u.mutation.SetConceptsCompleted(v)
	return _u
}

// SetNillableConceptsCompleted sets the "concepts_completed" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableConceptsCompleted(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetConceptsCompleted(*v)
	}
	return _u
}

// AddConceptsCompleted adds value to the "concepts_completed" field.
func (_u *SessionEventUpdateOne) AddConceptsCompleted(v int) *SessionEventUpdateOne {
	_u.mutation.AddConceptsCompleted(v)
	return _u
}

// SetTotalCorrect sets the "total_correct" field.
func (_u *SessionEventUpdateOne) SetTotalCorrect(v int) *SessionEventUpdateOne {
	_u.mutation.ResetTotalCorrect()
	_u.mutation.SetTotalCorrect(v)
	return _u
}

// SetNillableTotalCorrect sets the "total_correct" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableTotalCorrect(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetTotalCorrect(*v)
	}
	return _u
}

// AddTotalCorrect adds value to the "total_correct" field.
func (_u *SessionEventUpdateOne) AddTotalCorrect(v int) *SessionEventUpdateOne {
	_u.mutation.AddTotalCorrect(v)
	return _u
}

// SetTotalWrong sets the "total_wrong" field.
func (_u *SessionEventUpdateOne) SetTotalWrong(v int) *SessionEventUpdateOne {
	_u.mutation.ResetTotalWrong()
	_u.mutation.SetTotalWrong(v)
	return _u
}

// SetNillableTotalWrong sets the "total_wrong" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableTotalWrong(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetTotalWrong(*v)
	}
	return _u
}

// AddTotalWrong adds value to the "total_wrong" field.
func (_u *SessionEventUpdateOne) AddTotalWrong(v int) *SessionEventUpdateOne {
	_u.mutation.AddTotalWrong(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *SessionEventUpdateOne) SetCompleted(v bool) *SessionEventUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableCompleted(v *bool) *SessionEventUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdateOne) SetDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableDurationSecs(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdateOne) AddDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(sessionevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(sessionevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(sessionevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(sessionevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lesson(); ok {
		_spec.SetField(sessionevent.FieldLesson, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptsCompleted(); ok {
		_spec.SetField(sessionevent.FieldConceptsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConceptsCompleted(); ok {
		_spec.AddField(sessionevent.FieldConceptsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCorrect(); ok {
		_spec.SetField(sessionevent.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCorrect(); ok {
		_spec.AddField(sessionevent.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalWrong(); ok {
		_spec.SetField(sessionevent.FieldTotalWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalWrong(); ok {
		_spec.AddField(sessionevent.FieldTotalWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(sessionevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
