package playground

import (
	"context"
	"encoding/json"
	"fmt"

	"rregexd/internal/engine"
	"rregexd/pkg/types"
)

// OpMetadata reports the build's package and crate versions. It is optional.
const OpMetadata = "metadata"

// ReadMetadata asks the engine build to describe itself. Builds without the
// metadata export yield an empty value.
func ReadMetadata(ctx context.Context, c Caller) (types.EngineMetadata, error) {
	var md types.EngineMetadata
	if !supports(c, OpMetadata) {
		return md, nil
	}
	raw, err := c.Call(ctx, OpMetadata, nil)
	if engine.IsMissingExport(err) {
		return md, nil
	}
	if err != nil {
		return md, err
	}
	if err := json.Unmarshal(raw, &md); err != nil {
		return types.EngineMetadata{}, fmt.Errorf("%s: decode result: %w", OpMetadata, err)
	}
	return md, nil
}

// Links builds documentation links for version. Crate links follow md and
// fall back to latest.
func Links(version string, md types.EngineMetadata) types.DocLinks {
	return types.DocLinks{
		RRegex:      RRegexDocs(version),
		Regex:       RustRegexDocs(md.Regex),
		RegexSyntax: RustRegexSyntaxDocs(md.RegexSyntax),
	}
}

// Documentation links for a given crate version; an empty version means latest.

func RRegexDocs(version string) string {
	return "https://tsdocs.dev/docs/rregex/" + orLatest(version)
}

func RustRegexDocs(version string) string {
	return "https://docs.rs/regex/" + orLatest(version) + "/regex/"
}

func RustRegexSyntaxDocs(version string) string {
	return "https://docs.rs/regex-syntax/" + orLatest(version) + "/regex_syntax/"
}

func orLatest(v string) string {
	if v == "" {
		return "latest"
	}
	return v
}
