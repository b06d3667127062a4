package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ImageEvent records an illustration request, successful or not.
type ImageEvent struct {
	ent.Schema
}

func (ImageEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ImageEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("description").
			NotEmpty().
			Comment("What was asked for, as extracted from the marker"),
		field.String("url").
			Default("").
			Comment("Hosted image URL, empty on failure"),
		field.Bool("success").
			Comment("Whether a URL was produced"),
		field.String("error_message").
			Default("").
			Comment("Error message if failed"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the generation call"),
	}
}

func (ImageEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("success"),
	}
}
