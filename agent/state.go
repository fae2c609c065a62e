package agent

// QueryIntent is the classifier's view of a question: whether it mentions
// Illinois locations, which terms, and the overall query category.
type QueryIntent struct {
	NeedsLocation bool     `json:"needs_location"`
	LocationTerms []string `json:"location_terms"`
	QueryType     string   `json:"query_type"` // location_specific | general | comparison
}

// SQLResponse is the synthesizer's structured output. SQLQuery is executed
// verbatim; no statement-type check happens downstream.
type SQLResponse struct {
	Explanation      string   `json:"explanation"`
	SQLQuery         string   `json:"sql_query"`
	SuggestedActions []string `json:"suggested_actions"`
}

// Field is a single named value in a result row.
type Field struct {
	Name  string
	Value interface{}
}

// Row is one result row with its columns in result-set order.
type Row []Field

// Get returns the value of the named column, if present.
func (r Row) Get(name string) (interface{}, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// AgentState is the pipeline's working record. Stages never mutate the state
// they receive; each returns a copy extended with its own updates via the
// with* helpers, so a field set by an earlier stage is never dropped.
type AgentState struct {
	Question          string
	Intent            *QueryIntent
	ProcessedQuestion string
	SQLResponse       *SQLResponse
	Results           []Row
	Err               string
}

func (s AgentState) withIntent(intent *QueryIntent) AgentState {
	s.Intent = intent
	return s
}

func (s AgentState) withProcessedQuestion(q string) AgentState {
	s.ProcessedQuestion = q
	return s
}

func (s AgentState) withSQLResponse(resp *SQLResponse) AgentState {
	s.SQLResponse = resp
	return s
}

func (s AgentState) withResults(rows []Row) AgentState {
	s.Results = rows
	return s
}

func (s AgentState) withError(msg string) AgentState {
	s.Err = msg
	return s
}
