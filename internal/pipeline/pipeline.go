// Package pipeline sequences the agent roles over the matter store:
// question -> SQL -> execution -> summary, plus the gated chat variant.
package pipeline

import (
	"context"
	"fmt"

	"github.com/lexhaven/lexa/internal/agent"
	"github.com/lexhaven/lexa/internal/llm"
	"github.com/lexhaven/lexa/internal/store"
)

// FallbackSQL is executed when the generated query yields nothing, so
// the analyst always has at least a total to talk about.
const FallbackSQL = "SELECT COUNT(*) AS total FROM matters"

// Executor runs SQL against the matter store, absorbing failures into
// an empty result. *store.Store satisfies it.
type Executor interface {
	Execute(sql string) []store.Row
}

// Answer is the result of a query-mode run.
type Answer struct {
	Text string `json:"answer"`
	SQL  string `json:"sql"`
	Rows int    `json:"rows"`
}

// Assistant orchestrates the role agents over the store.
type Assistant struct {
	db  Executor
	llm llm.Provider
}

// New creates an Assistant over the given store and completion provider.
func New(db Executor, provider llm.Provider) *Assistant {
	return &Assistant{db: db, llm: provider}
}

// Query answers a natural-language question through the two-agent
// pipeline: generate SQL, execute it (with the fixed fallback when it
// yields nothing), then summarize the results. Completion failures
// propagate to the caller.
func (a *Assistant) Query(ctx context.Context, question string) (Answer, error) {
	raw, err := a.llm.Complete(ctx, agent.SQLGenerator.System(), agent.SQLTask(question))
	if err != nil {
		return Answer{}, fmt.Errorf("generating SQL: %w", err)
	}

	sqlQuery := agent.CleanSQL(raw)
	results := a.db.Execute(sqlQuery)

	if len(results) == 0 {
		sqlQuery = FallbackSQL
		results = a.db.Execute(sqlQuery)
	}

	text, err := a.llm.Complete(ctx, agent.DataAnalyst.System(), agent.AnalysisTask(question, sqlQuery, results))
	if err != nil {
		return Answer{}, fmt.Errorf("analyzing results: %w", err)
	}

	return Answer{Text: text, SQL: sqlQuery, Rows: len(results)}, nil
}

// Chat answers a conversational message. A gating step first asks the
// SQL role whether the message needs data at all; on the no-query
// sentinel, a gate failure, or an empty result, the chat role answers
// from the caller-owned history alone.
func (a *Assistant) Chat(ctx context.Context, message string, history []agent.Exchange) (string, error) {
	dbContext := ""

	// Gate failures degrade to conversational-only rather than erroring.
	if raw, err := a.llm.Complete(ctx, agent.SQLGenerator.System(), agent.ClassifyTask(message)); err == nil {
		sqlQuery := agent.CleanSQL(raw)
		if sqlQuery != "" && !agent.IsNoQuery(sqlQuery) {
			if results := a.db.Execute(sqlQuery); len(results) > 0 {
				dbContext = agent.DatabaseContext(sqlQuery, results)
			}
		}
	}

	reply, err := a.llm.Complete(ctx, agent.ChatAssistant.System(), agent.ChatTask(message, history, dbContext))
	if err != nil {
		return "", fmt.Errorf("generating chat reply: %w", err)
	}

	return reply, nil
}
