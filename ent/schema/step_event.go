package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StepEvent records one teaching step delivered to the child.
type StepEvent struct {
	ent.Schema
}

func (StepEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StepEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("step_kind").
			NotEmpty().
			Comment("welcome, concept_introduction, explanation, visual_example, guided_practice, independent_practice, mastery_check, chapter_review, celebration"),
		field.String("lesson_phase").
			NotEmpty().
			Comment("Lesson phase after the step was committed"),
		field.String("concept_id").
			Default("").
			Comment("Concept the step taught, empty for welcome/review/celebration"),
		field.Int("question_number").
			Default(0).
			Comment("1-based question position for practice and review steps"),
		field.Bool("has_image").
			Default(false).
			Comment("Whether an illustration accompanied the step"),
	}
}

func (StepEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("step_kind"),
	}
}
