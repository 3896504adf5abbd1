package core

import (
	"context"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
)

type executedQuery struct {
	Query  string
	Params map[string]interface{}
}

// MockDriver matches each query against the registered fragments and returns
// the first matching canned result. Every execution is recorded.
type MockDriver struct {
	Results  map[string]neo4j.EagerResult
	Errs     map[string]error
	Executed []executedQuery
}

func newMockDriver() *MockDriver {
	return &MockDriver{
		Results: map[string]neo4j.EagerResult{},
		Errs:    map[string]error{},
	}
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	m.Executed = append(m.Executed, executedQuery{Query: query, Params: params})

	for fragment, err := range m.Errs {
		if strings.Contains(query, fragment) {
			return neo4j.EagerResult{}, err
		}
	}
	for fragment, result := range m.Results {
		if strings.Contains(query, fragment) {
			return result, nil
		}
	}
	return neo4j.EagerResult{}, nil
}

func (m *MockDriver) BuildIndices(ctx context.Context) error {
	return nil
}

func (m *MockDriver) Close(ctx context.Context) error {
	return nil
}

func (m *MockDriver) executedMatching(fragment string) []executedQuery {
	var out []executedQuery
	for _, q := range m.Executed {
		if strings.Contains(q.Query, fragment) {
			out = append(out, q)
		}
	}
	return out
}

func record(keys []string, values []interface{}) *db.Record {
	return &db.Record{Keys: keys, Values: values}
}

func singleRecordResult(keys []string, values []interface{}) neo4j.EagerResult {
	return neo4j.EagerResult{
		Keys:    keys,
		Records: []*db.Record{record(keys, values)},
	}
}

type MockLLM struct {
	Response      string
	ResponseQueue []string
	Err           error
	Prompts       []string
	Temperatures  []float32
}

func (m *MockLLM) Generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	m.Temperatures = append(m.Temperatures, temperature)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.ResponseQueue) > 0 {
		resp := m.ResponseQueue[0]
		m.ResponseQueue = m.ResponseQueue[1:]
		return resp, nil
	}
	return m.Response, nil
}
