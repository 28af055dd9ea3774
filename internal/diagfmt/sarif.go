package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"natlint/internal/diag"
	"natlint/internal/driver"
	"natlint/internal/rules"
)

const (
	sarifSchema  = "https://json.schemastore.org/sarif-2.1.0.json"
	sarifVersion = "2.1.0"
)

type sarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool        sarifTool         `json:"tool"`
	Invocations []sarifInvocation `json:"invocations,omitempty"`
	Results     []sarifResult     `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version,omitempty"`
	InformationURI string      `json:"informationUri,omitempty"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifInvocation struct {
	Arguments           []string            `json:"arguments,omitempty"`
	ExecutionSuccessful bool                `json:"executionSuccessful"`
	Notifications       []sarifNotification `json:"toolExecutionNotifications,omitempty"`
}

type sarifNotification struct {
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	RuleIndex int             `json:"ruleIndex"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           *sarifRegion          `json:"region,omitempty"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   uint32 `json:"startLine"`
	StartColumn uint32 `json:"startColumn"`
	EndLine     uint32 `json:"endLine,omitempty"`
	EndColumn   uint32 `json:"endColumn,omitempty"`
}

// SarifRuleID qualifies a rule name with its kind, since names such as
// MissingNotice exist for several kinds.
func SarifRuleID(kind, rule string) string { return kind + "/" + rule }

// Sarif writes the result as a SARIF 2.1.0 log. Every rule of the catalog
// is listed in the driver; findings reference it by index.
func Sarif(w io.Writer, res *driver.Result, meta SarifRunMeta) error {
	catalog := rules.All()
	index := make(map[string]int, len(catalog))
	sRules := lo.Map(catalog, func(r rules.Rule, i int) sarifRule {
		id := SarifRuleID(r.Target().String(), r.Name())
		index[id] = i
		return sarifRule{ID: id, Name: r.Name(), ShortDescription: sarifMessage{Text: r.Description()}}
	})

	results := make([]sarifResult, 0, len(res.Findings))
	for _, f := range res.Findings {
		id := SarifRuleID(f.Kind.String(), f.Rule)
		ruleIndex, ok := index[id]
		if !ok {
			ruleIndex = -1
		}
		results = append(results, sarifResult{
			RuleID:    id,
			RuleIndex: ruleIndex,
			Level:     diag.SevWarning.SarifLevel(),
			Message:   sarifMessage{Text: f.Message},
			Locations: []sarifLocation{{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifactLocation{URI: findingPath(res.FileSet, f, PathModeAuto)},
					Region: &sarifRegion{
						StartLine:   f.Start.Line,
						StartColumn: f.Start.Col,
						EndLine:     f.End.Line,
						EndColumn:   f.End.Col,
					},
				},
			}},
		})
	}

	invocation := sarifInvocation{
		Arguments:           meta.InvocationArgs,
		ExecutionSuccessful: len(res.Errors) == 0,
		Notifications: lo.Map(res.Errors, func(fe driver.FileError, _ int) sarifNotification {
			return sarifNotification{
				Level:   diag.SevError.SarifLevel(),
				Message: sarifMessage{Text: fe.Err.Error()},
				Locations: []sarifLocation{{
					PhysicalLocation: sarifPhysicalLocation{ArtifactLocation: sarifArtifactLocation{URI: fe.Path}},
				}},
			}
		}),
	}

	log := sarifLog{
		Schema:  sarifSchema,
		Version: sarifVersion,
		Runs: []sarifRun{{
			Tool: sarifTool{Driver: sarifDriver{
				Name:           lo.CoalesceOrEmpty(meta.ToolName, "natlint"),
				Version:        meta.ToolVersion,
				InformationURI: meta.InformationURI,
				Rules:          sRules,
			}},
			Invocations: []sarifInvocation{invocation},
			Results:     results,
		}},
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(log), "failed to encode SARIF output")
}
