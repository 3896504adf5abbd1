package server

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidinsights/vidgraph/internal/core"
	"github.com/vidinsights/vidgraph/internal/core/language"
	"github.com/vidinsights/vidgraph/internal/speech"
	"github.com/vidinsights/vidgraph/internal/transcript"
)

type VideoRequest struct {
	VideoURL  string `json:"video_url" binding:"required"`
	Language  string `json:"language"`
	WordCount int    `json:"word_count"`
	Style     string `json:"style"`
}

type VideoResponse struct {
	Success bool   `json:"success"`
	Summary string `json:"summary"`
	Message string `json:"message,omitempty"`
}

type QuestionRequest struct {
	VideoURL     string `json:"video_url" binding:"required"`
	Question     string `json:"question" binding:"required"`
	Language     string `json:"language"`
	QuestionType string `json:"question_type"` // "text" or "speech"
}

type QuestionResponse struct {
	Success bool   `json:"success"`
	Answer  string `json:"answer"`
	Message string `json:"message,omitempty"`
}

type SpeechToTextRequest struct {
	AudioData string `json:"audio_data" binding:"required"`
	Language  string `json:"language"`
}

type TextToSpeechRequest struct {
	Text string `json:"text" binding:"required"`
	Lang string `json:"lang" binding:"required"`
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Hello from VidInsights API!",
		"status":  "online",
		"version": "1.0.0",
	})
}

func (s *Server) ProcessVideo(c *gin.Context) {
	var req VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	videoID, err := transcript.ExtractVideoID(req.VideoURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video URL"})
		return
	}

	// A client disconnect must not abort in-flight extraction or generation:
	// a build canceled between document create and triple merge would leave an
	// empty graph that later no-op builds never repopulate.
	ctx := context.WithoutCancel(c.Request.Context())

	segments, err := s.Transcripts.Fetch(ctx, videoID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not fetch video transcript: " + err.Error()})
		return
	}
	text := transcript.Join(segments)

	if err := s.Pipeline.BuildGraph(ctx, videoID, text); err != nil {
		s.fail(c, "build knowledge graph", err)
		return
	}

	summary, err := s.Pipeline.Summarize(ctx, videoID, req.Style, req.WordCount, req.Language)
	if err != nil {
		s.fail(c, "generate summary", err)
		return
	}

	c.JSON(http.StatusOK, VideoResponse{
		Success: true,
		Summary: summary,
		Message: "Video processed successfully",
	})
}

func (s *Server) AskQuestion(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	videoID, err := transcript.ExtractVideoID(req.VideoURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video URL"})
		return
	}

	// Same disconnect policy as ProcessVideo: generation runs to completion.
	ctx := context.WithoutCancel(c.Request.Context())

	question := req.Question
	if req.QuestionType == "speech" {
		question, err = s.transcribe(c, req.Question, req.Language)
		if err != nil {
			return // response already written
		}
	}

	answer, err := s.Pipeline.Answer(ctx, videoID, question, req.Language)
	if err != nil {
		s.fail(c, "answer question", err)
		return
	}

	c.JSON(http.StatusOK, QuestionResponse{
		Success: true,
		Answer:  answer,
		Message: "Question answered successfully",
	})
}

func (s *Server) SpeechToText(c *gin.Context) {
	var req SpeechToTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	text, err := s.transcribe(c, req.AudioData, req.Language)
	if err != nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"text":    text,
	})
}

// transcribe decodes and transcribes base64 audio, enforcing the requested
// language on the result. On failure it writes the error response itself.
func (s *Server) transcribe(c *gin.Context, audioData, lang string) (string, error) {
	audio, err := speech.DecodeAudio(audioData)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error processing audio: " + err.Error()})
		return "", err
	}

	text, err := s.Transcriber.Transcribe(c.Request.Context(), audio)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error transcribing audio: " + err.Error()})
		return "", err
	}

	if lang != "" && !language.IsDefault(lang) {
		text, err = s.Enforcer.Enforce(c.Request.Context(), text, lang)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error translating transcription: " + err.Error()})
			return "", err
		}
	}

	return text, nil
}

func (s *Server) TextToSpeech(c *gin.Context) {
	var req TextToSpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	audio, err := s.Synthesizer.Synthesize(c.Request.Context(), req.Text, req.Lang)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"audioContent": base64.StdEncoding.EncodeToString(audio),
	})
}

func (s *Server) fail(c *gin.Context, step string, err error) {
	s.Log.Error(step, "err", err, "request_id", c.GetString("request_id"))

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, core.ErrInvalidInput):
		status = http.StatusBadRequest
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
