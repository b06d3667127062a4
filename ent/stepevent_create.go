// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learno/ent/stepevent"
)

// StepEventCreate is the builder for creating a StepEvent entity.
type StepEventCreate struct {
	config
	mutation *StepEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *StepEventCreate) SetSequence(v int64) *StepEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *StepEventCreate) SetTimestamp(v time.Time) *StepEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *StepEventCreate) SetNillableTimestamp(v *time.Time) *StepEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *StepEventCreate) SetSessionID(v string) *StepEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStepKind sets the "step_kind" field.
func (_c *StepEventCreate) SetStepKind(v string) *StepEventCreate {
	_c.mutation.SetStepKind(v)
	return _c
}

// SetLessonPhase sets the "lesson_phase" field.
func (_c *StepEventCreate) SetLessonPhase(v string) *StepEventCreate {
	_c.mutation.SetLessonPhase(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *StepEventCreate) SetConceptID(v string) *StepEventCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_c *StepEventCreate) SetNillableConceptID(v *string) *StepEventCreate {
	if v != nil {
		_c.SetConceptID(*v)
	}
	return _c
}

// SetQuestionNumber sets the "question_number" field.
func (_c *StepEventCreate) SetQuestionNumber(v int) *StepEventCreate {
	_c.mutation.SetQuestionNumber(v)
	return _c
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_c *StepEventCreate) SetNillableQuestionNumber(v *int) *StepEventCreate {
	if v != nil {
		_c.SetQuestionNumber(*v)
	}
	return _c
}

// SetHasImage sets the "has_image" field.
func (_c *StepEventCreate) SetHasImage(v bool) *StepEventCreate {
	_c.mutation.SetHasImage(v)
	return _c
}

// SetNillableHasImage sets the "has_image" field if the given value is not nil.
func (_c *StepEventCreate) SetNillableHasImage(v *bool) *StepEventCreate {
	if v != nil {
		_c.SetHasImage(*v)
	}
	return _c
}

// Mutation returns the StepEventMutation object of the builder.
func (_c *StepEventCreate) Mutation() *StepEventMutation {
	return _c.mutation
}

// Save creates the StepEvent in the database.
func (_c *StepEventCreate) Save(ctx context.Context) (*StepEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepEventCreate) SaveX(ctx context.Context) *StepEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := stepevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		v := stepevent.DefaultConceptID
		_c.mutation.SetConceptID(v)
	}
	if _, ok := _c.mutation.QuestionNumber(); !ok {
		v := stepevent.DefaultQuestionNumber
		_c.mutation.SetQuestionNumber(v)
	}
	if _, ok := _c.mutation.HasImage(); !ok {
		v := stepevent.DefaultHasImage
		_c.mutation.SetHasImage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "StepEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "StepEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "StepEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := stepevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StepEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepKind(); !ok {
		return &ValidationError{Name: "step_kind", err: errors.New(`ent: missing required field "StepEvent.step_kind"`)}
	}
	if v, ok := _c.mutation.StepKind(); ok {
		if err := stepevent.StepKindValidator(v); err != nil {
			return &ValidationError{Name: "step_kind", err: fmt.Errorf(`ent: validator failed for field "StepEvent.step_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonPhase(); !ok {
		return &ValidationError{Name: "lesson_phase", err: errors.New(`ent: missing required field "StepEvent.lesson_phase"`)}
	}
	if v, ok := _c.mutation.LessonPhase(); ok {
		if err := stepevent.LessonPhaseValidator(v); err != nil {
			return &ValidationError{Name: "lesson_phase", err: fmt.Errorf(`ent: validator failed for field "StepEvent.lesson_phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "StepEvent.concept_id"`)}
	}
	if _, ok := _c.mutation.QuestionNumber(); !ok {
		return &ValidationError{Name: "question_number", err: errors.New(`ent: missing required field "StepEvent.question_number"`)}
	}
	if _, ok := _c.mutation.HasImage(); !ok {
		return &ValidationError{Name: "has_image", err: errors.New(`ent: missing required field "StepEvent.has_image"`)}
	}
	return nil
}

func (_c *StepEventCreate) sqlSave(ctx context.Context) (*StepEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StepEventCreate) createSpec() (*StepEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &StepEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stepevent.Table, sqlgraph.NewFieldSpec(stepevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(stepevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(stepevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(stepevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.StepKind(); ok {
		_spec.SetField(stepevent.FieldStepKind, field.TypeString, value)
		_node.StepKind = value
	}
	if value, ok := _c.mutation.LessonPhase(); ok {
		_spec.SetField(stepevent.FieldLessonPhase, field.TypeString, value)
		_node.LessonPhase = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(stepevent.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.QuestionNumber(); ok {
		_spec.SetField(stepevent.FieldQuestionNumber, field.TypeInt, value)
		_node.QuestionNumber = value
	}
	if value, ok := _c.mutation.HasImage(); ok {
		_spec.SetField(stepevent.FieldHasImage, field.TypeBool, value)
		_node.HasImage = value
	}
	return _node, _spec
}

// StepEventCreateBulk is the builder for creating many StepEvent entities in bulk.
type StepEventCreateBulk struct {
	config
	err      error
	builders []*StepEventCreate
}

// Save creates the StepEvent entities in the database.
func (_c *StepEventCreateBulk) Save(ctx context.Context) ([]*StepEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StepEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StepEventCreateBulk) SaveX(ctx context.Context) []*StepEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
