package server

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vidinsights/vidgraph/internal/config"
	"github.com/vidinsights/vidgraph/internal/core"
	"github.com/vidinsights/vidgraph/internal/core/language"
	"github.com/vidinsights/vidgraph/internal/driver"
	"github.com/vidinsights/vidgraph/internal/llm"
	"github.com/vidinsights/vidgraph/internal/speech"
	"github.com/vidinsights/vidgraph/internal/transcript"
)

// Insights is the slice of the core pipeline the transport consumes.
type Insights interface {
	BuildGraph(ctx context.Context, documentID, text string) error
	Summarize(ctx context.Context, documentID, style string, wordCount int, lang string) (string, error)
	Answer(ctx context.Context, documentID, question, lang string) (string, error)
}

type Server struct {
	Pipeline    Insights
	Driver      driver.GraphDriver
	Transcripts transcript.Source
	Transcriber speech.Transcriber
	Synthesizer speech.Synthesizer
	Enforcer    *language.Enforcer
	Log         *log.Logger
}

func NewServer(cfg *config.Config) (*Server, error) {
	d, err := driver.NewNeo4jDriver(cfg.Neo4j.URI, cfg.Neo4j.User, cfg.Neo4j.Password)
	if err != nil {
		return nil, fmt.Errorf("connect to Neo4j: %w", err)
	}

	if err := d.BuildIndices(context.Background()); err != nil {
		return nil, fmt.Errorf("build indices: %w", err)
	}

	llmClient, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("initialize LLM client: %w", err)
	}

	sttBaseURL := cfg.LLM.BaseURL
	if sttBaseURL == "" {
		sttBaseURL = llm.GroqBaseURL
	}

	return &Server{
		Pipeline:    core.NewPipeline(d, llmClient, cfg),
		Driver:      d,
		Transcripts: transcript.NewTimedTextSource(),
		Transcriber: speech.NewWhisperTranscriber(cfg.LLM.APIKey, cfg.Speech.TranscriptionModel, sttBaseURL),
		Synthesizer: speech.NewTranslateSynthesizer(cfg.Speech.TTSBaseURL),
		Enforcer:    language.NewEnforcer(llmClient),
		Log:         log.Default().With("component", "server"),
	}, nil
}

// Close releases the graph store connection. Call at process shutdown.
func (s *Server) Close(ctx context.Context) error {
	if s.Driver == nil {
		return nil
	}
	return s.Driver.Close(ctx)
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/", s.Health)
	r.POST("/process-video", s.ProcessVideo)
	r.POST("/ask-question", s.AskQuestion)
	r.POST("/speech-to-text", s.SpeechToText)
	r.POST("/text-to-speech", s.TextToSpeech)

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)

		start := time.Now()
		c.Next()

		s.Log.Info("request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
