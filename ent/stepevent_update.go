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
	"github.com/abhisek/learno/ent/stepevent"
)

// StepEventUpdate is the builder for updating StepEvent entities.
type StepEventUpdate struct {
	config
	hooks    []Hook
	mutation *StepEventMutation
}

// Where appends a list predicates to the StepEventUpdate builder.
func (_u *StepEventUpdate) Where(ps ...predicate.StepEvent) *StepEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *StepEventUpdate) SetSessionID(v string) *StepEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StepEventUpdate) SetNillableSessionID(v *string) *StepEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStepKind sets the "step_kind" field.
func (_u *StepEventUpdate) SetStepKind(v string) *StepEventUpdate {
	_u.mutation.SetStepKind(v)
	return _u
}

// SetNillableStepKind sets the "step_kind" field if the given value is not nil.
func (_u *StepEventUpdate) SetNillableStepKind(v *string) *StepEventUpdate {
	if v != nil {
		_u.SetStepKind(*v)
	}
	return _u
}

// SetLessonPhase sets the "lesson_phase" field.
func (_u *StepEventUpdate) SetLessonPhase(v string) *StepEventUpdate {
	_u.mutation.SetLessonPhase(v)
	return _u
}

// SetNillableLessonPhase sets the "lesson_phase" field if the given value is not nil.
func (_u *StepEventUpdate) SetNillableLessonPhase(v *string) *StepEventUpdate {
	if v != nil {
		_u.SetLessonPhase(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *StepEventUpdate) SetConceptID(v string) *StepEventUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *StepEventUpdate) SetNillableConceptID(v *string) *StepEventUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *StepEventUpdate) SetQuestionNumber(v int) *StepEventUpdate {
	_u.mutation.ResetQuestionNumber()
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *StepEventUpdate) SetNillableQuestionNumber(v *int) *StepEventUpdate {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// AddQuestionNumber adds value to the "question_number" field.
func (_u *StepEventUpdate) AddQuestionNumber(v int) *StepEventUpdate {
	_u.mutation.AddQuestionNumber(v)
	return _u
}

// SetHasImage sets the "has_image" field.
func (_u *StepEventUpdate) SetHasImage(v bool) *StepEventUpdate {
	_u.mutation.SetHasImage(v)
	return _u
}

// SetNillableHasImage sets the "has_image" field if the given value is not nil.
func (_u *StepEventUpdate) SetNillableHasImage(v *bool) *StepEventUpdate {
	if v != nil {
		_u.SetHasImage(*v)
	}
	return _u
}

// Mutation returns the StepEventMutation object of the builder.
func (_u *StepEventUpdate) Mutation() *StepEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := stepevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StepEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepKind(); ok {
		if err := stepevent.StepKindValidator(v); err != nil {
			return &ValidationError{Name: "step_kind", err: fmt.Errorf(`ent: validator failed for field "StepEvent.step_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonPhase(); ok {
		if err := stepevent.LessonPhaseValidator(v); err != nil {
			return &ValidationError{Name: "lesson_phase", err: fmt.Errorf(`ent: validator failed for field "StepEvent.lesson_phase": %w`, err)}
		}
	}
	return nil
}

func (_u *StepEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stepevent.Table, stepevent.Columns, sqlgraph.NewFieldSpec(stepevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(stepevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepKind(); ok {
		_spec.SetField(stepevent.FieldStepKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonPhase(); ok {
		_spec.SetField(stepevent.FieldLessonPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(stepevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(stepevent.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNumber(); ok {
		_spec.AddField(stepevent.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HasImage(); ok {
		_spec.SetField(stepevent.FieldHasImage, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepEventUpdateOne is the builder for updating a single StepEvent entity.
type StepEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *StepEventUpdateOne) SetSessionID(v string) *StepEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StepEventUpdateOne) SetNillableSessionID(v *string) *StepEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStepKind sets the "step_kind" field.
func (_u *StepEventUpdateOne) SetStepKind(v string) *StepEventUpdateOne {
	_u.mutation.SetStepKind(v)
	return _u
}

// SetNillableStepKind sets the "step_kind" field if the given value is not nil.
func (_u *StepEventUpdateOne) SetNillableStepKind(v *string) *StepEventUpdateOne {
	if v != nil {
		_u.SetStepKind(*v)
	}
	return _u
}

// SetLessonPhase sets the "lesson_phase" field.
func (_u *StepEventUpdateOne) SetLessonPhase(v string) *StepEventUpdateOne {
	_u.mutation.SetLessonPhase(v)
	return _u
}

// SetNillableLessonPhase sets the "lesson_phase" field if the given value is not nil.
func (_u *StepEventUpdateOne) SetNillableLessonPhase(v *string) *StepEventUpdateOne {
	if v != nil {
		_u.SetLessonPhase(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *StepEventUpdateOne) SetConceptID(v string) *StepEventUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *StepEventUpdateOne) SetNillableConceptID(v *string) *StepEventUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *StepEventUpdateOne) SetQuestionNumber(v int) *StepEventUpdateOne {
	_u.mutation.ResetQuestionNumber()
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *StepEventUpdateOne) SetNillableQuestionNumber(v *int) *StepEventUpdateOne {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// AddQuestionNumber adds value to the "question_number" field.
func (_u *StepEventUpdateOne) AddQuestionNumber(v int) *StepEventUpdateOne {
	_u.mutation.AddQuestionNumber(v)
	return _u
}

// SetHasImage sets the "has_image" field.
func (_u *StepEventUpdateOne) SetHasImage(v bool) *StepEventUpdateOne {
	_u.mutation.SetHasImage(v)
	return _u
}

// SetNillableHasImage sets the "has_image" field if the given value is not nil.
func (_u *StepEventUpdateOne) SetNillableHasImage(v *bool) *StepEventUpdateOne {
	if v != nil {
		_u.SetHasImage(*v)
	}
	return _u
}

// Mutation returns the StepEventMutation object of the builder.
func (_u *StepEventUpdateOne) Mutation() *StepEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the StepEventUpdate builder.
func (_u *StepEventUpdateOne) Where(ps ...predicate.StepEvent) *StepEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepEventUpdateOne) Select(field string, fields ...string) *StepEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StepEvent entity.
func (_u *StepEventUpdateOne) Save(ctx context.Context) (*StepEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepEventUpdateOne) SaveX(ctx context.Context) *StepEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := stepevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StepEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepKind(); ok {
		if err := stepevent.StepKindValidator(v); err != nil {
			return &ValidationError{Name: "step_kind", err: fmt.Errorf(`ent: validator failed for field "StepEvent.step_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonPhase(); ok {
		if err := stepevent.LessonPhaseValidator(v); err != nil {
			return &ValidationError{Name: "lesson_phase", err: fmt.Errorf(`ent: validator failed for field "StepEvent.lesson_phase": %w`, err)}
		}
	}
	return nil
}

func (_u *StepEventUpdateOne) sqlSave(ctx context.Context) (_node *StepEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stepevent.Table, stepevent.Columns, sqlgraph.NewFieldSpec(stepevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StepEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stepevent.FieldID)
		for _, f := range fields {
			if !stepevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stepevent.FieldID {
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
		_spec.SetField(stepevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepKind(); ok {
		_spec.SetField(stepevent.FieldStepKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonPhase(); ok {
		_spec.SetField(stepevent.FieldLessonPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(stepevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(stepevent.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNumber(); ok {
		_spec.AddField(stepevent.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HasImage(); ok {
		_spec.SetField(stepevent.FieldHasImage, field.TypeBool, value)
	}
	_node = &StepEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
