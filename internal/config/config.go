package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	Port string `toml:"port"`
}

type Neo4jConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type SpeechConfig struct {
	TranscriptionModel string `toml:"transcription_model"`
	TTSBaseURL         string `toml:"tts_base_url"`
}

// Prompts are fmt.Sprintf templates. Extraction takes the transcript and the
// triple limit; Summary takes style, word count, entity list, relationship
// list, transcript and style again; Answer takes the question, relationship
// list and transcript.
type Prompts struct {
	Extraction string `toml:"extraction"`
	Summary    string `toml:"summary"`
	Answer     string `toml:"answer"`
}

type Limits struct {
	MaxTriples         int `toml:"max_triples"`
	MaxRelations       int `toml:"max_relations"`
	ContextTokenBudget int `toml:"context_token_budget"`
}

type Config struct {
	Server  ServerConfig `toml:"server"`
	Neo4j   Neo4jConfig  `toml:"neo4j"`
	LLM     LLMConfig    `toml:"llm"`
	Speech  SpeechConfig `toml:"speech"`
	Prompts Prompts      `toml:"prompts"`
	Limits  Limits       `toml:"limits"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// Default returns a config with working limits and prompt templates so the
// pipeline can run even when the TOML file omits sections.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8000"},
		Neo4j:  Neo4jConfig{URI: "bolt://localhost:7687"},
		LLM: LLMConfig{
			Provider: "openai",
			Model:    "llama-3.3-70b-versatile",
		},
		Speech: SpeechConfig{
			TranscriptionModel: "distil-whisper-large-v3-en",
			TTSBaseURL:         "https://translate.google.com/translate_tts",
		},
		Prompts: Prompts{
			Extraction: DefaultExtractionPrompt,
			Summary:    DefaultSummaryPrompt,
			Answer:     DefaultAnswerPrompt,
		},
		Limits: Limits{
			MaxTriples:         10,
			MaxRelations:       50,
			ContextTokenBudget: 6000,
		},
	}
}

// ApplyEnv overrides file-sourced settings with environment variables when
// present. Credentials normally arrive this way rather than through the TOML.
func (c *Config) ApplyEnv() {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	set(&c.Server.Port, "PORT")
	set(&c.Neo4j.URI, "NEO4J_URI")
	set(&c.Neo4j.User, "NEO4J_USERNAME")
	set(&c.Neo4j.Password, "NEO4J_PASSWORD")
	set(&c.LLM.Provider, "LLM_PROVIDER")
	set(&c.LLM.Model, "LLM_MODEL")
	set(&c.LLM.APIKey, "LLM_API_KEY")
	set(&c.LLM.BaseURL, "LLM_BASE_URL")

	// GROQ_API_KEY is accepted as an alias so deployments carried over from
	// the Groq-only era keep working.
	if c.LLM.APIKey == "" {
		set(&c.LLM.APIKey, "GROQ_API_KEY")
	}
}

const DefaultExtractionPrompt = `Analyze this video transcript and identify key entities (people, places, concepts, events) and their relationships.
Format the output as a list of triples (entity1, relationship, entity2).
Keep it focused on the most important relationships.

Transcript:
%s

Output only the triples in this format (maximum %d relationships):
entity1|relationship|entity2`

const DefaultSummaryPrompt = `Generate a %s summary of approximately %d words for this video.
Use the knowledge graph information to structure the summary.

Key entities: %s

Key relationships:
%s

Full transcript:
%s

Focus on the main topics and their relationships, ensuring the summary is %s in nature.`

const DefaultAnswerPrompt = `Answer this question based on the video content and knowledge graph: %s

Use these relationships from the knowledge graph to provide context:
%s

Full transcript:
%s

Provide a clear and concise answer, using the knowledge graph relationships to support your response.`
