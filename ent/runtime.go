// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/learno/ent/answerevent"
	"github.com/abhisek/learno/ent/hintevent"
	"github.com/abhisek/learno/ent/imageevent"
	"github.com/abhisek/learno/ent/llmrequestevent"
	"github.com/abhisek/learno/ent/schema"
	"github.com/abhisek/learno/ent/sessionevent"
	"github.com/abhisek/learno/ent/stepevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescConceptID is the schema descriptor for concept_id field.
	answereventDescConceptID := answereventFields[1].Descriptor()
	// answerevent.DefaultConceptID holds the default value on creation for the concept_id field.
	answerevent.DefaultConceptID = answereventDescConceptID.Default.(string)
	// answereventDescPhase is the schema descriptor for phase field.
	answereventDescPhase := answereventFields[2].Descriptor()
	// answerevent.PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	answerevent.PhaseValidator = answereventDescPhase.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[3].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescExpectedAnswer is the schema descriptor for expected_answer field.
	answereventDescExpectedAnswer := answereventFields[4].Descriptor()
	// answerevent.DefaultExpectedAnswer holds the default value on creation for the expected_answer field.
	answerevent.DefaultExpectedAnswer = answereventDescExpectedAnswer.Default.(string)
	// answereventDescTranscript is the schema descriptor for transcript field.
	answereventDescTranscript := answereventFields[5].Descriptor()
	// answerevent.DefaultTranscript holds the default value on creation for the transcript field.
	answerevent.DefaultTranscript = answereventDescTranscript.Default.(string)
	// answereventDescAttempts is the schema descriptor for attempts field.
	answereventDescAttempts := answereventFields[7].Descriptor()
	// answerevent.DefaultAttempts holds the default value on creation for the attempts field.
	answerevent.DefaultAttempts = answereventDescAttempts.Default.(int)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescSessionID is the schema descriptor for session_id field.
	hinteventDescSessionID := hinteventFields[0].Descriptor()
	// hintevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	hintevent.SessionIDValidator = hinteventDescSessionID.Validators[0].(func(string) error)
	// hinteventDescConceptID is the schema descriptor for concept_id field.
	hinteventDescConceptID := hinteventFields[1].Descriptor()
	// hintevent.DefaultConceptID holds the default value on creation for the concept_id field.
	hintevent.DefaultConceptID = hinteventDescConceptID.Default.(string)
	// hinteventDescQuestionText is the schema descriptor for question_text field.
	hinteventDescQuestionText := hinteventFields[2].Descriptor()
	// hintevent.DefaultQuestionText holds the default value on creation for the question_text field.
	hintevent.DefaultQuestionText = hinteventDescQuestionText.Default.(string)
	// hinteventDescHintText is the schema descriptor for hint_text field.
	hinteventDescHintText := hinteventFields[3].Descriptor()
	// hintevent.HintTextValidator is a validator for the "hint_text" field. It is called by the builders before save.
	hintevent.HintTextValidator = hinteventDescHintText.Validators[0].(func(string) error)
	// hinteventDescAttempts is the schema descriptor for attempts field.
	hinteventDescAttempts := hinteventFields[4].Descriptor()
	// hintevent.DefaultAttempts holds the default value on creation for the attempts field.
	hintevent.DefaultAttempts = hinteventDescAttempts.Default.(int)
	// hinteventDescIntensity is the schema descriptor for intensity field.
	hinteventDescIntensity := hinteventFields[5].Descriptor()
	// hintevent.DefaultIntensity holds the default value on creation for the intensity field.
	hintevent.DefaultIntensity = hinteventDescIntensity.Default.(string)
	// hinteventDescSilence is the schema descriptor for silence field.
	hinteventDescSilence := hinteventFields[6].Descriptor()
	// hintevent.DefaultSilence holds the default value on creation for the silence field.
	hintevent.DefaultSilence = hinteventDescSilence.Default.(bool)
	// hinteventDescExtraHelp is the schema descriptor for extra_help field.
	hinteventDescExtraHelp := hinteventFields[7].Descriptor()
	// hintevent.DefaultExtraHelp holds the default value on creation for the extra_help field.
	hintevent.DefaultExtraHelp = hinteventDescExtraHelp.Default.(bool)
	imageeventMixin := schema.ImageEvent{}.Mixin()
	imageeventMixinFields0 := imageeventMixin[0].Fields()
	_ = imageeventMixinFields0
	imageeventFields := schema.ImageEvent{}.Fields()
	_ = imageeventFields
	// imageeventDescTimestamp is the schema descriptor for timestamp field.
	imageeventDescTimestamp := imageeventMixinFields0[1].Descriptor()
	// imageevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	imageevent.DefaultTimestamp = imageeventDescTimestamp.Default.(func() time.Time)
	// imageeventDescSessionID is the schema descriptor for session_id field.
	imageeventDescSessionID := imageeventFields[0].Descriptor()
	// imageevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	imageevent.SessionIDValidator = imageeventDescSessionID.Validators[0].(func(string) error)
	// imageeventDescDescription is the schema descriptor for description field.
	imageeventDescDescription := imageeventFields[1].Descriptor()
	// imageevent.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	imageevent.DescriptionValidator = imageeventDescDescription.Validators[0].(func(string) error)
	// imageeventDescURL is the schema descriptor for url field.
	imageeventDescURL := imageeventFields[2].Descriptor()
	// imageevent.DefaultURL holds the default value on creation for the url field.
	imageevent.DefaultURL = imageeventDescURL.Default.(string)
	// imageeventDescErrorMessage is the schema descriptor for error_message field.
	imageeventDescErrorMessage := imageeventFields[4].Descriptor()
	// imageevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	imageevent.DefaultErrorMessage = imageeventDescErrorMessage.Default.(string)
	// imageeventDescLatencyMs is the schema descriptor for latency_ms field.
	imageeventDescLatencyMs := imageeventFields[5].Descriptor()
	// imageevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	imageevent.DefaultLatencyMs = imageeventDescLatencyMs.Default.(int64)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescStudentID is the schema descriptor for student_id field.
	sessioneventDescStudentID := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultStudentID holds the default value on creation for the student_id field.
	sessionevent.DefaultStudentID = sessioneventDescStudentID.Default.(string)
	// sessioneventDescGrade is the schema descriptor for grade field.
	sessioneventDescGrade := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultGrade holds the default value on creation for the grade field.
	sessionevent.DefaultGrade = sessioneventDescGrade.Default.(int)
	// sessioneventDescSubject is the schema descriptor for subject field.
	sessioneventDescSubject := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultSubject holds the default value on creation for the subject field.
	sessionevent.DefaultSubject = sessioneventDescSubject.Default.(string)
	// sessioneventDescLesson is the schema descriptor for lesson field.
	sessioneventDescLesson := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultLesson holds the default value on creation for the lesson field.
	sessionevent.DefaultLesson = sessioneventDescLesson.Default.(string)
	// sessioneventDescConceptsCompleted is the schema descriptor for concepts_completed field.
	sessioneventDescConceptsCompleted := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultConceptsCompleted holds the default value on creation for the concepts_completed field.
	sessionevent.DefaultConceptsCompleted = sessioneventDescConceptsCompleted.Default.(int)
	// sessioneventDescTotalCorrect is the schema descriptor for total_correct field.
	sessioneventDescTotalCorrect := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultTotalCorrect holds the default value on creation for the total_correct field.
	sessionevent.DefaultTotalCorrect = sessioneventDescTotalCorrect.Default.(int)
	// sessioneventDescTotalWrong is the schema descriptor for total_wrong field.
	sessioneventDescTotalWrong := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultTotalWrong holds the default value on creation for the total_wrong field.
	sessionevent.DefaultTotalWrong = sessioneventDescTotalWrong.Default.(int)
	// sessioneventDescCompleted is the schema descriptor for completed field.
	sessioneventDescCompleted := sessioneventFields[9].Descriptor()
	// sessionevent.DefaultCompleted holds the default value on creation for the completed field.
	sessionevent.DefaultCompleted = sessioneventDescCompleted.Default.(bool)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[10].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	stepeventMixin := schema.StepEvent{}.Mixin()
	stepeventMixinFields0 := stepeventMixin[0].Fields()
	_ = stepeventMixinFields0
	stepeventFields := schema.StepEvent{}.Fields()
	_ = stepeventFields
	// stepeventDescTimestamp is the schema descriptor for timestamp field.
	stepeventDescTimestamp := stepeventMixinFields0[1].Descriptor()
	// stepevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	stepevent.DefaultTimestamp = stepeventDescTimestamp.Default.(func() time.Time)
	// stepeventDescSessionID is the schema descriptor for session_id field.
	stepeventDescSessionID := stepeventFields[0].Descriptor()
	// stepevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	stepevent.SessionIDValidator = stepeventDescSessionID.Validators[0].(func(string) error)
	// stepeventDescStepKind is the schema descriptor for step_kind field.
	stepeventDescStepKind := stepeventFields[1].Descriptor()
	// stepevent.StepKindValidator is a validator for the "step_kind" field. It is called by the builders before save.
	stepevent.StepKindValidator = stepeventDescStepKind.Validators[0].(func(string) error)
	// stepeventDescLessonPhase is the schema descriptor for lesson_phase field.
	stepeventDescLessonPhase := stepeventFields[2].Descriptor()
	// stepevent.LessonPhaseValidator is a validator for the "lesson_phase" field. It is called by the builders before save.
	stepevent.LessonPhaseValidator = stepeventDescLessonPhase.Validators[0].(func(string) error)
	// stepeventDescConceptID is the schema descriptor for concept_id field.
	stepeventDescConceptID := stepeventFields[3].Descriptor()
	// stepevent.DefaultConceptID holds the default value on creation for the concept_id field.
	stepevent.DefaultConceptID = stepeventDescConceptID.Default.(string)
	// stepeventDescQuestionNumber is the schema descriptor for question_number field.
	stepeventDescQuestionNumber := stepeventFields[4].Descriptor()
	// stepevent.DefaultQuestionNumber holds the default value on creation for the question_number field.
	stepevent.DefaultQuestionNumber = stepeventDescQuestionNumber.Default.(int)
	// stepeventDescHasImage is the schema descriptor for has_image field.
	stepeventDescHasImage := stepeventFields[5].Descriptor()
	// stepevent.DefaultHasImage holds the default value on creation for the has_image field.
	stepevent.DefaultHasImage = stepeventDescHasImage.Default.(bool)
}
