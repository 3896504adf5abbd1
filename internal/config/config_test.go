package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
port = "9000"

[llm]
provider = "groq"
model = "llama-3.3-70b-versatile"

[limits]
max_triples = 5
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "groq", cfg.LLM.Provider)
	assert.Equal(t, 5, cfg.Limits.MaxTriples)

	// Omitted sections keep their defaults.
	assert.Equal(t, 50, cfg.Limits.MaxRelations)
	assert.Contains(t, cfg.Prompts.Extraction, "entity1|relationship|entity2")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("NEO4J_URI", "neo4j+s://example.databases.neo4j.io")
	t.Setenv("NEO4J_USERNAME", "neo4j")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "gsk-test")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "neo4j+s://example.databases.neo4j.io", cfg.Neo4j.URI)
	assert.Equal(t, "neo4j", cfg.Neo4j.User)
	// GROQ_API_KEY works as a fallback alias.
	assert.Equal(t, "gsk-test", cfg.LLM.APIKey)
}
