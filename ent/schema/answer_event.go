package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one evaluated answer within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("concept_id").
			Default("").
			Comment("Concept being practiced, empty during chapter review"),
		field.String("phase").
			NotEmpty().
			Comment("Where the question came from: guided_practice, independent_practice, concept_check, chapter_review"),
		field.String("question_text").
			NotEmpty().
			Comment("The question asked"),
		field.String("expected_answer").
			Default("").
			Comment("The canonical correct answer"),
		field.String("transcript").
			Default("").
			Comment("What the child said"),
		field.Bool("correct").
			Comment("Whether the answer was accepted"),
		field.Int("attempts").
			Default(0).
			Comment("Attempts on this question including this one"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("concept_id"),
		index.Fields("correct"),
	}
}
