package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HintEvent records that a hint or nudge was spoken to the child.
type HintEvent struct {
	ent.Schema
}

func (HintEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (HintEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("concept_id").Default(""),
		field.String("question_text").Default(""),
		field.String("hint_text").NotEmpty(),
		field.Int("attempts").
			Default(0).
			Comment("Attempts on the pending question when the hint was given"),
		field.String("intensity").
			Default("").
			Comment("gentle, clearer, or very helpful"),
		field.Bool("silence").
			Default(false).
			Comment("Hint was triggered by silence rather than a wrong answer"),
		field.Bool("extra_help").
			Default(false).
			Comment("Child had three or more wrong answers in a row"),
	}
}

func (HintEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("concept_id"),
	}
}
