package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records lesson session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("student_id").
			Default("").
			Comment("Client-supplied student identifier"),
		field.Int("grade").
			Default(0).
			Comment("Grade level requested"),
		field.String("subject").
			Default("").
			Comment("Subject requested, e.g. Math"),
		field.String("lesson").
			Default("").
			Comment("Lesson topic requested, e.g. Counting"),
		field.Int("concepts_completed").
			Default(0).
			Comment("Concepts finished (on end only)"),
		field.Int("total_correct").
			Default(0).
			Comment("Correct answers (on end only)"),
		field.Int("total_wrong").
			Default(0).
			Comment("Wrong answers (on end only)"),
		field.Bool("completed").
			Default(false).
			Comment("Whether the whole chapter was finished (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Session duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
