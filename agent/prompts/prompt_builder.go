package prompts

import "fmt"

// PromptBuilder constructs the prompts sent to the language model. The
// station mappings are injected at startup so every prompt carries the same
// catalog the resolver uses.
type PromptBuilder struct {
	schemaContext   string
	stationMappings string
}

// NewPromptBuilder creates a PromptBuilder for the given station mappings
// (one "- NAME: CODE" line per site).
func NewPromptBuilder(stationMappings string) *PromptBuilder {
	return &PromptBuilder{
		schemaContext:   SchemaContext,
		stationMappings: stationMappings,
	}
}

// BuildIntentPrompt creates the intent-classification prompt. The response
// must be the bare JSON object, nothing else.
func (pb *PromptBuilder) BuildIntentPrompt(question string) string {
	return fmt.Sprintf(`You are a query intent classifier for a weather station database.
Analyze the query to determine if it needs location processing.

The database contains weather stations across Illinois with specific station codes.

Output must be valid JSON with this exact format and no other text:
{
    "needs_location": boolean,
    "location_terms": string[],
    "query_type": "location_specific" | "general" | "comparison"
}

Examples:
Input: "What's the temperature in Champaign?"
Output: {
    "needs_location": true,
    "location_terms": ["Champaign"],
    "query_type": "location_specific"
}

Input: "Show me all stations with temperature above 75"
Output: {
    "needs_location": false,
    "location_terms": [],
    "query_type": "general"
}

Input: "Compare rainfall between Peoria and Springfield"
Output: {
    "needs_location": true,
    "location_terms": ["Peoria", "Springfield"],
    "query_type": "comparison"
}

Input: %q
Output:`, question)
}

// BuildQueryPrompt creates the SQL-generation prompt. The SELECT-only rule is
// a textual instruction; nothing downstream re-checks the statement type.
func (pb *PromptBuilder) BuildQueryPrompt(question string) string {
	return fmt.Sprintf(`You are an expert with PostgreSQL. Your role is to help users retrieve information from a database.

Important Rules:
1. You can ONLY generate SELECT queries
2. You cannot perform any INSERT, UPDATE, DELETE, DROP, or other data modification operations
3. If a user requests any data modification, politely explain that you can only help with reading data
4. Always explain the PostgreSQL query you're using in simple terms
5. When users mention Illinois locations, map them to their corresponding station codes:
%s
6. For locations not in the list, I will provide the nearest available station.

%s

You must respond in the following JSON format and no other text:
{
    "explanation": "A plain English explanation of what the query does",
    "sql_query": "The SQL query to execute",
    "suggested_actions": ["Optional list of follow-up actions or warnings"]
}

Example Response:
{
    "explanation": "This query finds the average temperature at the Champaign station for the past week",
    "sql_query": "SELECT AVG(avg_temp) FROM weather_data WHERE station_code = 'CMI' AND obs_date >= CURRENT_DATE - 7",
    "suggested_actions": ["Consider comparing with historical averages", "Check for missing data points"]
}

Question: %s`, pb.stationMappings, pb.schemaContext, question)
}

// BuildFallbackPrompt creates the instruction for the tool-using schema
// agent. The agent explores the database itself, so this prompt stays thin.
func (pb *PromptBuilder) BuildFallbackPrompt(question string) string {
	return fmt.Sprintf(`You are a database assistant with read access to an Illinois weather station database.
Use the available tools to inspect the schema and run SELECT queries until you can
answer the user's question. Known station codes:
%s

Rules:
1. Only SELECT statements are allowed; the run_query tool rejects anything else
2. Inspect tables with list_tables and describe_table before querying
3. When you have an answer, reply in plain English and include the final SQL
   you used inside a fenced sql code block

Question: %s`, pb.stationMappings, question)
}
