package agent

import (
	"context"
	"fmt"

	"github.com/teecush/tracker"
	"github.com/teecush/tracker/docs"
	"github.com/teecush/tracker/insight"
	"github.com/teecush/tracker/renderer"
	"google.golang.org/genai"
)

// Tables returns the current transaction table.
type Tables func(ctx context.Context) (tracker.Table, error)

// NewAnalyst returns the expert answering questions about the user's portfolio.
// Its functions read the table from tables on every call, and describe it with g.
func NewAnalyst(model string, tables Tables, g insight.Generator) *Expert {
	if model == "" {
		model = DefaultModel
	}
	lib := []Function{
		metricsFunc(tables),
		transactionsFunc(tables),
		insightsFunc(tables, g),
	}
	return &Expert{
		Name:        "Analyst",
		Description: "The Analyst reads the user's investment records and computes figures about them.",
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a financial analyst in charge of the user's investment records.
				Each record is a dated contribution together with the total balance of the portfolio on that day.
				Use the available tools to get information about the user's portfolio:
				  - the summary metrics
				  - the transaction log
				  - the automatic insights
				Answer concisely in markdown. Never invent figures that the tools did not give you.

				` + must(docs.GetTopic("metrics")),
			}}},
		},
		Library: NewLibrary(lib),
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func metricsFunc(tables Tables) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Metrics",
			Description: "Metrics computes the total invested, the current balance, the total earnings, the average monthly earnings and the number of months invested.",
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown list of the metrics.",
			},
		},
		Func: func(ctx context.Context, _ map[string]any) (string, error) {
			t, err := tables(ctx)
			if err != nil {
				return "", fmt.Errorf("could not load transactions: %w", err)
			}
			return renderer.Metrics(tracker.ComputeMetrics(t)), nil
		},
	}
}

func transactionsFunc(tables Tables) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Transactions",
			Description: "Transactions lists the recorded transactions, newest first.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"limit": {
						Type:        genai.TypeInteger,
						Description: "The maximum number of transactions to list. All of them by default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of transactions with their date, investment, total balance, account type and notes.",
			},
		},
		Func: func(ctx context.Context, args map[string]any) (string, error) {
			limit, err := intArg(args, "limit")
			if err != nil {
				return "", err
			}
			t, err := tables(ctx)
			if err != nil {
				return "", fmt.Errorf("could not load transactions: %w", err)
			}
			return renderer.Transactions(t, limit), nil
		},
	}
}

func insightsFunc(tables Tables, g insight.Generator) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Insights",
			Description: "Insights returns short observations about performance, growth, account concentration, projection and the current month.",
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "One insight per paragraph.",
			},
		},
		Func: func(ctx context.Context, _ map[string]any) (string, error) {
			t, err := tables(ctx)
			if err != nil {
				return "", fmt.Errorf("could not load transactions: %w", err)
			}
			return insight.Text(ctx, g, t, tracker.ComputeMetrics(t)), nil
		},
	}
}

// intArg reads an optional integer argument, 0 when absent.
// Arguments decoded from JSON are float64.
func intArg(args map[string]any, name string) (int, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	}
	return 0, fmt.Errorf("argument %q is not a number as expected but %T", name, v)
}
