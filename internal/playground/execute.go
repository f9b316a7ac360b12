package playground

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"rregexd/internal/engine"
	"rregexd/pkg/types"
)

// Engine operation exports.
const (
	OpSyntax       = "syntax"
	OpFindAll      = "find_all"
	OpReplaceAll   = "replace_all"
	OpCaptureNames = "capture_names"
)

// Caller invokes an engine operation. *engine.Module satisfies it.
type Caller interface {
	Call(ctx context.Context, name string, input []byte) ([]byte, error)
}

// Result is the outcome of running a State against an engine build.
type Result struct {
	Matches   []types.Match
	Segments  []string
	Syntax    json.RawMessage
	Shortcuts []string
	Replaced  *string
	// Error carries an engine-reported problem with the input (bad regex,
	// bad template). It is not a transport failure.
	Error string
}

type opInput struct {
	Regex   string  `json:"regex"`
	Text    *string `json:"text,omitempty"`
	Replace *string `json:"replace,omitempty"`
}

// Execute compiles st.Regex in the engine and runs st.Method. Problems with
// the user's input are reported in Result.Error; only failures to talk to the
// engine are returned as err.
func Execute(ctx context.Context, c Caller, st State) (Result, error) {
	var res Result

	var syntax json.RawMessage
	if err := callJSON(ctx, c, OpSyntax, opInput{Regex: st.Regex}, &syntax); err != nil {
		return inputError(err)
	}

	text := st.Text
	var matches []types.Match
	if err := callJSON(ctx, c, OpFindAll, opInput{Regex: st.Regex, Text: &text}, &matches); err != nil {
		return inputError(err)
	}

	shortcuts, err := captureShortcuts(ctx, c, st.Regex)
	if err != nil {
		return inputError(err)
	}

	if ParseMethod(string(st.Method)) == MethodReplace {
		replace := st.Replace
		var replaced string
		if err := callJSON(ctx, c, OpReplaceAll, opInput{Regex: st.Regex, Text: &text, Replace: &replace}, &replaced); err != nil {
			return inputError(err)
		}
		res.Replaced = &replaced
	}

	res.Syntax = syntax
	res.Matches = matches
	res.Segments = Split(st.Text, matches)
	res.Shortcuts = shortcuts
	return res, nil
}

// exportChecker is implemented by callers that know their exports up front,
// such as *engine.Module.
type exportChecker interface {
	HasExport(name string) bool
}

// supports reports whether c can serve op. Callers that cannot tell are
// assumed to, and a missing export surfaces from Call instead.
func supports(c Caller, op string) bool {
	if ec, ok := c.(exportChecker); ok {
		return ec.HasExport(op)
	}
	return true
}

// captureShortcuts lists replacement shortcuts: $name for every named group,
// then $0..$n-1. Builds without capture_names yield none.
func captureShortcuts(ctx context.Context, c Caller, regex string) ([]string, error) {
	if !supports(c, OpCaptureNames) {
		return nil, nil
	}
	var names []*string
	err := callJSON(ctx, c, OpCaptureNames, opInput{Regex: regex}, &names)
	if engine.IsMissingExport(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, 2*len(names))
	for _, n := range names {
		if n != nil && *n != "" {
			out = append(out, "$"+*n)
		}
	}
	for i := range names {
		out = append(out, "$"+strconv.Itoa(i))
	}
	return out, nil
}

func inputError(err error) (Result, error) {
	var ge *engine.GuestError
	if errors.As(err, &ge) {
		return Result{Error: ge.Msg}, nil
	}
	return Result{}, err
}

func callJSON(ctx context.Context, c Caller, name string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s: encode input: %w", name, err)
	}
	raw, err := c.Call(ctx, name, b)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode result: %w", name, err)
	}
	return nil
}
