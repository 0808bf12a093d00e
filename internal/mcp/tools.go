package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/bodythrive/onerm/internal/calculator"
	"github.com/bodythrive/onerm/internal/onerm"
	"github.com/mark3labs/mcp-go/mcp"
)

var toolEstimate = mcp.NewTool("estimate_one_rep_max",
	mcp.WithDescription("Estimate a one-rep max from one set. Returns the 1RM, its display string and the 90%..20% training table."),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Weight lifted in kg, greater than 0")),
	mcp.WithNumber("reps", mcp.Required(), mcp.Description("Repetitions performed, 1 to 20"), mcp.Min(1), mcp.Max(20)),
	mcp.WithString("formula", mcp.Description("Estimation formula. Defaults to Epley."), mcp.Enum("Epley", "Brzycki", "Lombardi")),
)

var toolCompare = mcp.NewTool("compare_formulas",
	mcp.WithDescription("Estimate the one-rep max of one set with every formula side by side."),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Weight lifted in kg, greater than 0")),
	mcp.WithNumber("reps", mcp.Required(), mcp.Description("Repetitions performed, 1 to 20"), mcp.Min(1), mcp.Max(20)),
)

var toolPercentageTable = mcp.NewTool("percentage_table",
	mcp.WithDescription("Training weights at 90% down to 20% of a known one-rep max, rounded to 0.1 kg."),
	mcp.WithNumber("one_rm", mcp.Required(), mcp.Description("Known one-rep max in kg")),
)

var toolListFormulas = mcp.NewTool("list_formulas",
	mcp.WithDescription("List the available 1RM formulas and their expressions."),
)

// requireInput reads and range-checks weight and reps.
func requireInput(req mcp.CallToolRequest) (float64, int, *mcp.CallToolResult) {
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return 0, 0, mcp.NewToolResultError("weight parameter is required")
	}
	reps, err := req.RequireFloat("reps")
	if err != nil {
		return 0, 0, mcp.NewToolResultError("reps parameter is required")
	}
	if !(reps >= onerm.MinReps && reps <= onerm.MaxReps) {
		return 0, 0, mcp.NewToolResultError(fmt.Sprintf("%v: reps must be between %d and %d", onerm.ErrInvalidInput, onerm.MinReps, onerm.MaxReps))
	}
	if reps != float64(int(reps)) {
		return 0, 0, mcp.NewToolResultError("reps must be a whole number")
	}
	return weight, int(reps), nil
}

func (h *handlers) estimate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weight, reps, bad := requireInput(req)
	if bad != nil {
		return bad, nil
	}

	f := calculator.DefaultFormula
	if name := req.GetString("formula", ""); name != "" {
		parsed, err := onerm.ParseFormula(name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		f = parsed
	}

	view, err := h.ds.Estimate(ctx, weight, reps, f)
	if err != nil {
		return h.failed("estimate_one_rep_max", err), nil
	}

	result, err := mcp.NewToolResultJSON(view)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) compare(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weight, reps, bad := requireInput(req)
	if bad != nil {
		return bad, nil
	}

	views, err := h.ds.Compare(ctx, weight, reps)
	if err != nil {
		return h.failed("compare_formulas", err), nil
	}

	result, err := mcp.NewToolResultJSON(views)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) percentageTable(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	oneRM, err := req.RequireFloat("one_rm")
	if err != nil {
		return mcp.NewToolResultError("one_rm parameter is required"), nil
	}
	if err := onerm.ValidateWeight(oneRM); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"one_rm": oneRM,
		"table":  onerm.BuildTable(oneRM),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listFormulas(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	formulas, err := h.ds.Formulas(ctx)
	if err != nil {
		return h.failed("list_formulas", err), nil
	}

	result, err := mcp.NewToolResultJSON(formulas)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// failed turns an error into a tool error. Input errors are expected and
// not logged.
func (h *handlers) failed(tool string, err error) *mcp.CallToolResult {
	if errors.Is(err, onerm.ErrInvalidInput) || errors.Is(err, onerm.ErrUnknownFormula) {
		return mcp.NewToolResultError(err.Error())
	}
	h.log.Error("mcp "+tool, "error", err)
	return mcp.NewToolResultError("query failed: " + err.Error())
}
