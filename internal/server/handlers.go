package server

import (
	"github.com/gin-gonic/gin"
)

// POST /api/v1/session/start
func (s *Server) startLesson(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, badRequest("invalid request body"))
		return
	}
	in, err := req.validate()
	if err != nil {
		s.fail(c, err)
		return
	}

	turn, err := s.tutor.StartLesson(c.Request.Context(), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, "Lesson started successfully", turn)
}

// POST /api/v1/lesson/continue
func (s *Server) continueTeaching(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, badRequest("invalid request body"))
		return
	}
	id, err := req.validate()
	if err != nil {
		s.fail(c, err)
		return
	}

	turn, err := s.tutor.ContinueTeaching(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, "Teaching continued", turn)
}

// POST /api/v1/lesson/respond
func (s *Server) respond(c *gin.Context) {
	var req respondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, badRequest("invalid request body"))
		return
	}
	id, transcript, err := req.validate()
	if err != nil {
		s.fail(c, err)
		return
	}

	turn, err := s.tutor.SubmitAnswer(c.Request.Context(), id, transcript)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, "Response processed", turn)
}

// POST /api/v1/lesson/silence
func (s *Server) silence(c *gin.Context) {
	var req silenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, badRequest("invalid request body"))
		return
	}
	id, seconds, err := req.validate()
	if err != nil {
		s.fail(c, err)
		return
	}

	turn, err := s.tutor.NotifySilence(c.Request.Context(), id, seconds)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, "Hint provided", turn)
}

// POST /api/v1/session/end
func (s *Server) endLesson(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, badRequest("invalid request body"))
		return
	}
	id, err := req.validate()
	if err != nil {
		s.fail(c, err)
		return
	}

	summary, err := s.tutor.EndLesson(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, summary.Message, summary)
}

// GET /
func (s *Server) banner(c *gin.Context) {
	s.ok(c, "Welcome to the Learno educational backend", gin.H{
		"service": "learno",
		"version": s.version,
		"status":  "ok",
	})
}

// GET /health
func (s *Server) health(c *gin.Context) {
	s.ok(c, "Service is healthy", gin.H{
		"status":          "healthy",
		"service":         "learno",
		"active_sessions": s.sessions.Count(),
	})
}

// GET /api/v1/teaching-flow
func (s *Server) teachingFlow(c *gin.Context) {
	s.ok(c, "Teaching flow", gin.H{
		"overview": "Learno teaches complete chapters, one concept at a time.",
		"flow": gin.H{
			"1_start":    "POST /api/v1/session/start - begin a lesson, get the welcome",
			"2_continue": "POST /api/v1/lesson/continue - advance through teaching steps",
			"3_respond":  "POST /api/v1/lesson/respond - answer the pending question",
			"4_silence":  "POST /api/v1/lesson/silence - nudge a quiet child",
			"5_end":      "POST /api/v1/session/end - finish and get the summary",
		},
		"phases_per_concept": []string{
			"introduction", "explanation", "visual_example",
			"guided_practice", "independent_practice", "concept_check",
		},
		"chapter_structure": []string{
			"welcome", "teaching", "chapter_review", "celebration",
		},
		"silence_threshold_seconds": s.silenceThreshold,
		"notes": []string{
			"Call /continue after non-question steps.",
			"Call /respond after question steps.",
			"The lesson completes only after the chapter review.",
		},
	})
}
