package agent

import (
	"context"
	"fmt"

	"github.com/cloudfx/journal"
	"github.com/cloudfx/journal/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Function is one capability exposed to the analyst as a Gemini tool.
type Function interface {
	// Declare this function
	Declaration() *genai.FunctionDeclaration
	// Call this function
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// Analyst is a chat with a trading-performance expert that can read the
// user's journal through its function library.
type Analyst struct {
	ModelName string
	Config    *genai.GenerateContentConfig
	functions []Function
	chat      *genai.Chat
}

// NewAnalyst builds the analyst over one loaded snapshot and its analytics.
// The snapshot is the one the session loaded; the analyst never writes.
func NewAnalyst(s *journal.Snapshot, a *journal.Analytics) *Analyst {
	functions := []Function{
		&jsonDumpFunc{snapshot: s},
		&statsFunc{snapshot: s, analytics: a},
	}
	declarations := make([]*genai.FunctionDeclaration, 0, len(functions))
	for _, f := range functions {
		declarations = append(declarations, f.Declaration())
	}
	return &Analyst{
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: declarations},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert forex trading coach reviewing the user's trading journal.
			The journal records every trade: direction, timeframe, planned and realized
			risk-reward, profit in USD, the setup that triggered the entry, and notes.

			Use the available tools to read the journal:
			  - the full journal as JSON
			  - the derived performance statistics (win rate, equity curve, totals)

			Ground every observation in the actual records. Look for patterns: setups
			that win, timeframes that lose, risk-reward discipline. Be direct and
			specific, quote record ids when pointing at trades.
		`}}},
		},
		functions: functions,
	}
}

// Start creates the underlying chat session.
func (e *Analyst) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask sends parts to the analyst, serving its function calls until a text
// response comes back.
func (e *Analyst) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from the analyst")
	}
	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		fresp := e.call(ctx, part0.FunctionCall)
		// Ask again with the response it asked for, until a real response.
		return e.Ask(ctx, &genai.Part{FunctionResponse: fresp})
	}
	return resp.Candidates[0].Content, nil
}

func (e *Analyst) call(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
	for _, f := range e.functions {
		if f.Declaration().Name == call.Name {
			return f.Call(ctx, call.ID, call.Args)
		}
	}
	return &genai.FunctionResponse{
		ID:   call.ID,
		Name: call.Name,
		Response: map[string]any{
			"error": fmt.Sprintf("unknown function %s", call.Name),
		},
	}
}

// jsonDumpFunc exposes the lossless JSON dump of the journal.
type jsonDumpFunc struct {
	snapshot *journal.Snapshot
}

func (f *jsonDumpFunc) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "journal_dump",
		Description: "Returns the full trading journal as a JSON array, one object per trade.",
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The journal records as JSON.",
		},
	}
}

func (f *jsonDumpFunc) Call(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{ID: id, Name: "journal_dump"}
	dump, err := journal.DumpJSON(f.snapshot)
	if err != nil {
		fresp.Response = map[string]any{"error": err.Error()}
		return fresp
	}
	fresp.Response = map[string]any{"output": string(dump)}
	return fresp
}

// statsFunc exposes the derived performance report.
type statsFunc struct {
	snapshot  *journal.Snapshot
	analytics *journal.Analytics
}

func (f *statsFunc) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "journal_stats",
		Description: "Returns the derived performance report: trade count, win rate, total profit and the equity curve.",
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The performance report as markdown.",
		},
	}
}

func (f *statsFunc) Call(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: "journal_stats",
		Response: map[string]any{
			"output": renderer.Report(f.snapshot, f.analytics),
		},
	}
}
