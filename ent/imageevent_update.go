// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learno/ent/imageevent"
	"github.com/abhisek/learno/ent/predicate"
)

// ImageEventUpdate is the builder for updating ImageEvent entities.
type ImageEventUpdate struct {
	config
	hooks    []Hook
	mutation *ImageEventMutation
}

// Where appends a list predicates to the ImageEventUpdate builder.
func (_u *ImageEventUpdate) Where(ps ...predicate.ImageEvent) *ImageEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ImageEventUpdate) SetSessionID(v string) *ImageEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ImageEventUpdate) SetNillableSessionID(v *string) *ImageEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ImageEventUpdate) SetDescription(v string) *ImageEventUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ImageEventUpdate) SetNillableDescription(v *string) *ImageEventUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ImageEventUpdate) SetURL(v string) *ImageEventUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ImageEventUpdate) SetNillableURL(v *string) *ImageEventUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ImageEventUpdate) SetSuccess(v bool) *ImageEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ImageEventUpdate) SetNillableSuccess(v *bool) *ImageEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImageEventUpdate) SetErrorMessage(v string) *ImageEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImageEventUpdate) SetNillableErrorMessage(v *string) *ImageEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ImageEventUpdate) SetLatencyMs(v int64) *ImageEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ImageEventUpdate) SetNillableLatencyMs(v *int64) *ImageEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ImageEventUpdate) AddLatencyMs(v int64) *ImageEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the ImageEventMutation object of the builder.
func (_u *ImageEventUpdate) Mutation() *ImageEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImageEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImageEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImageEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImageEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImageEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := imageevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ImageEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := imageevent.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "ImageEvent.description": %w`, err)}
		}
	}
	return nil
}

func (_u *ImageEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(imageevent.Table, imageevent.Columns, sqlgraph.NewFieldSpec(imageevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(imageevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(imageevent.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(imageevent.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(imageevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(imageevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(imageevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(imageevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{imageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImageEventUpdateOne is the builder for updating a single ImageEvent entity.
type ImageEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImageEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ImageEventUpdateOne) SetSessionID(v string) *ImageEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ImageEventUpdateOne) SetNillableSessionID(v *string) *ImageEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ImageEventUpdateOne) SetDescription(v string) *ImageEventUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ImageEventUpdateOne) SetNillableDescription(v *string) *ImageEventUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ImageEventUpdateOne) SetURL(v string) *ImageEventUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ImageEventUpdateOne) SetNillableURL(v *string) *ImageEventUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ImageEventUpdateOne) SetSuccess(v bool) *ImageEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ImageEventUpdateOne) SetNillableSuccess(v *bool) *ImageEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImageEventUpdateOne) SetErrorMessage(v string) *ImageEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImageEventUpdateOne) SetNillableErrorMessage(v *string) *ImageEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ImageEventUpdateOne) SetLatencyMs(v int64) *ImageEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ImageEventUpdateOne) SetNillableLatencyMs(v *int64) *ImageEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ImageEventUpdateOne) AddLatencyMs(v int64) *ImageEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the ImageEventMutation object of the builder.
func (_u *ImageEventUpdateOne) Mutation() *ImageEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ImageEventUpdate builder.
func (_u *ImageEventUpdateOne) Where(ps ...predicate.ImageEvent) *ImageEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImageEventUpdateOne) Select(field string, fields ...string) *ImageEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ImageEvent entity.
func (_u *ImageEventUpdateOne) Save(ctx context.Context) (*ImageEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImageEventUpdateOne) SaveX(ctx context.Context) *ImageEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImageEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImageEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImageEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := imageevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ImageEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := imageevent.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "ImageEvent.description": %w`, err)}
		}
	}
	return nil
}

func (_u *ImageEventUpdateOne) sqlSave(ctx context.Context) (_node *ImageEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(imageevent.Table, imageevent.Columns, sqlgraph.NewFieldSpec(imageevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImageEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, imageevent.FieldID)
		for _, f := range fields {
			if !imageevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != imageevent.FieldID {
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
		_spec.SetField(imageevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(imageevent.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(imageevent.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(imageevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(imageevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(imageevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(imageevent.FieldLatencyMs, field.TypeInt64, value)
	}
	_node = &ImageEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{imageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
