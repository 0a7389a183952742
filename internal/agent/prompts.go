package agent

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lexhaven/lexa/internal/store"
)

// NoQuerySentinel is the classification reply meaning a chat message
// needs no database lookup.
const NoQuerySentinel = "NO_QUERY_NEEDED"

// historyWindow is how many recent exchanges are folded into the chat
// prompt.
const historyWindow = 3

// Exchange is one (user message, assistant answer) pair of caller-owned
// conversation history.
type Exchange struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

// schemaFacts describes the table for task prompts. Kept separate from
// the role backstory so both stay self-contained.
const schemaFacts = `Database Information:
- Table name: matters
- Available columns: Id, Display_Name, Client_Name, Client_Full_Name, Record_Type_Name, Case_Type, Status, Case_Stage, Open_Date, Closed_Date, Attorney_Name, Assistant_Name

Common values in the database:
- Record_Type_Name: 'Personal Injury', 'Billable Matter', 'Workers Compensation'
- Case_Type: 'PI AUTO-IN-HOUSE', 'WC WC-IN-HOUSE', 'PI AUTO-IN-HOUSE MINOR'
- Status: 'Closed', 'Active', 'Open'
- Case_Stage: 'Active', 'Closed', 'Pre-Lit Settlement'
- Dates are in MM/DD/YY format (like '7/21/23')`

// SQLTask builds the query-mode prompt that turns a question into SQL.
func SQLTask(question string) string {
	return fmt.Sprintf(`Convert this natural language question to a SQL query for the legal matters database:

Question: %q

%s

Query Guidelines:
- Use COUNT(*) for counting questions
- Use GROUP BY for breakdown/distribution questions
- Use ORDER BY ... DESC LIMIT N for "top" or "most" questions
- Use LIKE '%%/23' for year 2023 queries
- Use WHERE column_name != '' to exclude empty values
- For personal injury: WHERE Record_Type_Name = 'Personal Injury'
- For attorneys: WHERE Attorney_Name != ''

Examples:
- "How many personal injury cases?" -> SELECT COUNT(*) FROM matters WHERE Record_Type_Name = 'Personal Injury'
- "Top attorneys by cases?" -> SELECT Attorney_Name, COUNT(*) FROM matters WHERE Attorney_Name != '' GROUP BY Attorney_Name ORDER BY COUNT(*) DESC LIMIT 5
- "Case breakdown by stage?" -> SELECT Case_Stage, COUNT(*) FROM matters WHERE Case_Stage != '' GROUP BY Case_Stage

Return ONLY the SQL query, no explanations.`, question, schemaFacts)
}

// AnalysisTask builds the prompt that summarizes query results.
func AnalysisTask(question, sqlUsed string, results []store.Row) string {
	return fmt.Sprintf(`Analyze these legal database results and provide a SHORT, DIRECT answer:

Original Question: %q
SQL Query Used: %s
Database Results: %s

IMPORTANT RESPONSE GUIDELINES:
1. Keep the response SHORT (2-4 sentences maximum)
2. Start with a DIRECT answer to the user's question
3. Provide 1-2 key insights briefly
4. Be professional but conversational
5. Use exact numbers from the database results
6. Don't provide lengthy analysis or bullet points

Stay concise and direct.`, question, sqlUsed, FormatResults(results))
}

// ClassifyTask builds the chat-mode gating prompt: reply with a SQL
// query, or the sentinel when no lookup is needed.
func ClassifyTask(message string) string {
	return fmt.Sprintf(`Determine if this is a question about the legal database and generate a SQL query if needed:

User Message: %q

%s

If this is a database question, return ONLY a SQL query.
If this is NOT a database question (greetings, general advice, etc.), return: %s

Examples:
- "How many cases?" -> SELECT COUNT(*) FROM matters
- "Who handles most cases?" -> SELECT Attorney_Name, COUNT(*) FROM matters WHERE Attorney_Name != '' GROUP BY Attorney_Name ORDER BY COUNT(*) DESC LIMIT 1
- "Hello" -> %s
- "What's a good practice tip?" -> %s`,
		message, schemaFacts, NoQuerySentinel, NoQuerySentinel, NoQuerySentinel)
}

// ChatTask builds the conversational prompt. dbContext is empty when
// the gating step decided no lookup was needed (or the lookup failed).
func ChatTask(message string, history []Exchange, dbContext string) string {
	var b strings.Builder
	b.WriteString("Respond to this user message in a SHORT, DIRECT, conversational way:\n\n")

	if len(history) > 0 {
		recent := history
		if len(recent) > historyWindow {
			recent = recent[len(recent)-historyWindow:]
		}
		b.WriteString("Recent conversation:\n")
		for _, ex := range recent {
			fmt.Fprintf(&b, "User: %s\nAssistant: %s\n\n", ex.User, ex.Assistant)
		}
	}

	fmt.Fprintf(&b, "Current User Message: %q\n", message)
	if dbContext != "" {
		b.WriteString(dbContext)
		b.WriteString("\n")
	}

	b.WriteString(`
IMPORTANT RESPONSE GUIDELINES:
1. Keep answers SHORT (1-3 sentences maximum)
2. Be DIRECT and answer exactly what was asked
3. Use a conversational tone but stay focused
4. If database results are provided, use them to give exact answers
5. Never invent figures that are not present in the supplied results
6. For greetings or general questions, respond briefly and ask how you can help with the firm's legal data`)

	return b.String()
}

// DatabaseContext renders executed-query results for the chat prompt.
func DatabaseContext(sqlUsed string, results []store.Row) string {
	return fmt.Sprintf("Database Results: %s\nSQL Used: %s", FormatResults(results), sqlUsed)
}

// FormatResults renders result rows as compact JSON for embedding in a
// prompt. Malformed rows degrade to an empty list rather than failing
// the prompt build.
func FormatResults(results []store.Row) string {
	if len(results) == 0 {
		return "[]"
	}
	data, err := json.Marshal(results)
	if err != nil {
		return "[]"
	}
	return string(data)
}
