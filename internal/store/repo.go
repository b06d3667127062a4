package store

import (
	"context"
	"time"

	"github.com/abhisek/learno/ent"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID string
	Action    string // "start" or "end"
	StudentID string
	Grade     int
	Subject   string
	Lesson    string

	// End-only fields.
	ConceptsCompleted int
	TotalCorrect      int
	TotalWrong        int
	Completed         bool
	DurationSecs      int
}

// StepEventData captures one delivered teaching step.
type StepEventData struct {
	SessionID      string
	StepKind       string
	LessonPhase    string
	ConceptID      string
	QuestionNumber int
	HasImage       bool
}

// AnswerEventData captures one evaluated answer.
type AnswerEventData struct {
	SessionID      string
	ConceptID      string
	Phase          string
	QuestionText   string
	ExpectedAnswer string
	Transcript     string
	Correct        bool
	Attempts       int
}

// HintEventData captures a hint or silence nudge.
type HintEventData struct {
	SessionID    string
	ConceptID    string
	QuestionText string
	HintText     string
	Attempts     int
	Intensity    string
	Silence      bool
	ExtraHelp    bool
}

// ImageEventData captures an illustration request.
type ImageEventData struct {
	SessionID    string
	Description  string
	URL          string
	Success      bool
	ErrorMessage string
	LatencyMs    int64
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// SessionSummaryRecord is one finished session as reported by stats.
type SessionSummaryRecord struct {
	SessionID         string
	Timestamp         time.Time
	Lesson            string
	ConceptsCompleted int
	TotalCorrect      int
	TotalWrong        int
	Completed         bool
	DurationSecs      int
	HintCount         int
}

// LessonStats aggregates the journal for the stats command.
type LessonStats struct {
	SessionsStarted   int
	SessionsEnded     int
	SessionsCompleted int
	StepsDelivered    int
	AnswersTotal      int
	AnswersCorrect    int
	HintsGiven        int
	SilenceNudges     int
	ImagesGenerated   int
	ImagesFailed      int
}

// EventRepo provides append and query access to the lesson journal.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendStepEvent records a delivered teaching step.
	AppendStepEvent(ctx context.Context, data StepEventData) error

	// AppendAnswerEvent records an evaluated answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendHintEvent records a hint or silence nudge.
	AppendHintEvent(ctx context.Context, data HintEventData) error

	// AppendImageEvent records an illustration request.
	AppendImageEvent(ctx context.Context, data ImageEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*ent.LLMRequestEvent, error)

	// GetLLMEvent returns one LLM request event by ID, or nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*ent.LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// QuerySessionSummaries returns finished sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// Stats aggregates the whole journal.
	Stats(ctx context.Context) (*LessonStats, error)
}
