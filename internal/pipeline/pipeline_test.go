package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lexhaven/lexa/internal/agent"
	"github.com/lexhaven/lexa/internal/store"
)

// stubProvider replays scripted completions and records the prompts it
// was asked for.
type stubProvider struct {
	replies []string
	errs    []error
	calls   int
	systems []string
	prompts []string
}

func (p *stubProvider) Complete(_ context.Context, system, prompt string) (string, error) {
	i := p.calls
	p.calls++
	p.systems = append(p.systems, system)
	p.prompts = append(p.prompts, prompt)

	if i < len(p.errs) && p.errs[i] != nil {
		return "", p.errs[i]
	}
	if i < len(p.replies) {
		return p.replies[i], nil
	}
	return "", errors.New("stub exhausted")
}

func (p *stubProvider) ModelName() string { return "stub" }

// stubExecutor maps SQL strings to canned rows and records executions.
type stubExecutor struct {
	results  map[string][]store.Row
	executed []string
}

func (e *stubExecutor) Execute(sql string) []store.Row {
	e.executed = append(e.executed, sql)
	return e.results[sql]
}

func TestQuery(t *testing.T) {
	db := &stubExecutor{results: map[string][]store.Row{
		"SELECT COUNT(*) AS count FROM matters WHERE Record_Type_Name = 'Personal Injury'": {{"count": "9"}},
	}}
	provider := &stubProvider{replies: []string{
		"```sql\nSELECT COUNT(*) AS count FROM matters WHERE Record_Type_Name = 'Personal Injury'\n```",
		"We have 9 personal injury cases.",
	}}

	answer, err := New(db, provider).Query(context.Background(), "How many PI cases?")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}

	if answer.Text != "We have 9 personal injury cases." {
		t.Errorf("Text = %q", answer.Text)
	}
	if answer.SQL != "SELECT COUNT(*) AS count FROM matters WHERE Record_Type_Name = 'Personal Injury'" {
		t.Errorf("SQL = %q", answer.SQL)
	}
	if answer.Rows != 1 {
		t.Errorf("Rows = %d, want 1", answer.Rows)
	}

	if len(db.executed) != 1 {
		t.Errorf("executed %d queries, want 1", len(db.executed))
	}
}

func TestQuery_FallbackOnEmptyResults(t *testing.T) {
	db := &stubExecutor{results: map[string][]store.Row{
		FallbackSQL: {{"total": "10"}},
	}}
	provider := &stubProvider{replies: []string{
		"SELECT * FROM matters WHERE Status = 'No Such Status'",
		"There are 10 matters in total.",
	}}

	answer, err := New(db, provider).Query(context.Background(), "Show impossible matters")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}

	if len(db.executed) != 2 {
		t.Fatalf("executed %d queries, want 2 (original plus fallback)", len(db.executed))
	}
	if db.executed[1] != FallbackSQL {
		t.Errorf("second execution = %q, want fallback", db.executed[1])
	}
	if answer.SQL != FallbackSQL {
		t.Errorf("answer.SQL = %q, want fallback", answer.SQL)
	}

	// The analyst prompt is built from the fallback results.
	if !strings.Contains(provider.prompts[1], `"total":"10"`) {
		t.Errorf("analysis prompt missing fallback results: %q", provider.prompts[1])
	}
}

func TestQuery_GenerationErrorPropagates(t *testing.T) {
	db := &stubExecutor{}
	provider := &stubProvider{errs: []error{errors.New("model offline")}}

	_, err := New(db, provider).Query(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected completion error to propagate in query mode")
	}
	if len(db.executed) != 0 {
		t.Errorf("executed %d queries, want 0", len(db.executed))
	}
}

func TestChat_SentinelSkipsExecution(t *testing.T) {
	db := &stubExecutor{}
	provider := &stubProvider{replies: []string{
		"NO_QUERY_NEEDED",
		"Hi! How can I help with your legal data?",
	}}

	history := []agent.Exchange{{User: "hello", Assistant: "hi there"}}
	reply, err := New(db, provider).Chat(context.Background(), "Hello", history)
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if len(db.executed) != 0 {
		t.Errorf("sentinel classification still executed %d queries", len(db.executed))
	}
	if reply != "Hi! How can I help with your legal data?" {
		t.Errorf("reply = %q", reply)
	}

	// Answer is built from history alone: prior turns present, no
	// database section.
	chatPrompt := provider.prompts[1]
	if !strings.Contains(chatPrompt, "User: hello") {
		t.Error("chat prompt missing conversation history")
	}
	if strings.Contains(chatPrompt, "Database Results") {
		t.Error("chat prompt should not contain database context")
	}
}

func TestChat_QueryResultsFoldedIntoContext(t *testing.T) {
	db := &stubExecutor{results: map[string][]store.Row{
		"SELECT COUNT(*) FROM matters": {{"COUNT(*)": "10"}},
	}}
	provider := &stubProvider{replies: []string{
		"SELECT COUNT(*) FROM matters",
		"We have 10 matters.",
	}}

	reply, err := New(db, provider).Chat(context.Background(), "How many cases?", nil)
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply != "We have 10 matters." {
		t.Errorf("reply = %q", reply)
	}

	chatPrompt := provider.prompts[1]
	if !strings.Contains(chatPrompt, "Database Results:") {
		t.Error("chat prompt missing database context")
	}
	if !strings.Contains(chatPrompt, "SQL Used: SELECT COUNT(*) FROM matters") {
		t.Error("chat prompt missing SQL used line")
	}
}

func TestChat_GateFailureDegradesToConversation(t *testing.T) {
	db := &stubExecutor{}
	provider := &stubProvider{
		replies: []string{"", "Happy to help, though I couldn't check the data."},
		errs:    []error{errors.New("classification failed"), nil},
	}

	reply, err := New(db, provider).Chat(context.Background(), "How many cases?", nil)
	if err != nil {
		t.Fatalf("Chat should absorb gate failures, got %v", err)
	}
	if reply == "" {
		t.Error("expected a conversational reply")
	}
	if len(db.executed) != 0 {
		t.Errorf("gate failure still executed %d queries", len(db.executed))
	}
}

func TestChat_EmptyResultsOmitContext(t *testing.T) {
	// Query produced but returns nothing; chat proceeds without context.
	db := &stubExecutor{}
	provider := &stubProvider{replies: []string{
		"SELECT * FROM matters WHERE Status = 'Nope'",
		"I didn't find anything matching that.",
	}}

	_, err := New(db, provider).Chat(context.Background(), "Any Nope cases?", nil)
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if len(db.executed) != 1 {
		t.Fatalf("executed %d queries, want 1", len(db.executed))
	}
	if strings.Contains(provider.prompts[1], "Database Results") {
		t.Error("empty results should not be folded into chat context")
	}
}

func TestChat_AnswerErrorPropagates(t *testing.T) {
	db := &stubExecutor{}
	provider := &stubProvider{
		replies: []string{"NO_QUERY_NEEDED", ""},
		errs:    []error{nil, errors.New("model offline")},
	}

	_, err := New(db, provider).Chat(context.Background(), "Hello", nil)
	if err == nil {
		t.Fatal("expected chat answer error to propagate")
	}
}
