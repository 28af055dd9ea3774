package diagfmt_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"natlint/internal/diagfmt"
	"natlint/internal/driver"
)

const vault = `/// @title Vault
/// @notice Holds assets
contract Vault {
    function deposit(uint256 amount) external {}
}
`

func run(t *testing.T, files map[string]string) *driver.Result {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o600))
	}
	res, err := driver.Run(context.Background(), driver.Options{Root: root, Jobs: 1})
	require.NoError(t, err)
	return res
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"pretty", "short", "json", "sarif", "JSON"} {
		f, err := diagfmt.ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(name), f.String())
	}
	_, err := diagfmt.ParseFormat("xml")
	require.ErrorIs(t, err, diagfmt.ErrUnknownFormat)
}

func TestShort(t *testing.T) {
	res := run(t, map[string]string{"Vault.sol": vault, "Broken.sol": "contract C {\n"})

	var buf bytes.Buffer
	require.NoError(t, diagfmt.Short(&buf, res, diagfmt.PathModeAuto))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Vault.sol:4:5: [MissingInheritdoc] Missing a @inheritdoc comment", lines[0])
	assert.Equal(t, "Vault.sol:4:5: [MissingNotice] Missing a @notice comment", lines[1])
	assert.Equal(t, "Vault.sol:4:5: [MissingParams] Missing a @param comment", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "Broken.sol: error: "), lines[3])
}

func TestPretty(t *testing.T) {
	res := run(t, map[string]string{"Vault.sol": vault})

	var buf bytes.Buffer
	require.NoError(t, diagfmt.Pretty(&buf, res, diagfmt.PrettyOpts{Summary: true, ShowDescription: true}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Vault.sol\n"), out)
	assert.Contains(t, out, "  [MissingNotice] 4:5: Missing a @notice comment\n")
	assert.Contains(t, out, "  Functions must have a notice or an inheritdoc comment.")
	assert.Contains(t, out, "  4 |     function deposit(uint256 amount) external {}\n")
	assert.Contains(t, out, "    |     ^^^^")
	assert.Contains(t, out, "Found 3 natspec violations in 1 files.\n")
	assert.NotContains(t, out, "\x1b[")
}

func TestPrettyContextAndColor(t *testing.T) {
	res := run(t, map[string]string{"Vault.sol": vault})

	var buf bytes.Buffer
	require.NoError(t, diagfmt.Pretty(&buf, res, diagfmt.PrettyOpts{Context: 1, Color: true}))
	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "contract Vault {")
	assert.Contains(t, out, "}")

	buf.Reset()
	require.NoError(t, diagfmt.Pretty(&buf, res, diagfmt.PrettyOpts{Context: -1}))
	assert.NotContains(t, buf.String(), " | ")
}

func TestPrettyClean(t *testing.T) {
	res := run(t, map[string]string{"Clean.sol": "/// @title C\n/// @notice N\ncontract C {}\n"})

	var buf bytes.Buffer
	require.NoError(t, diagfmt.Pretty(&buf, res, diagfmt.PrettyOpts{Summary: true}))
	assert.Equal(t, "No natspec violations found!\n", buf.String())
}

func TestJSON(t *testing.T) {
	res := run(t, map[string]string{"Vault.sol": vault, "Broken.sol": "contract C {\n"})

	var buf bytes.Buffer
	require.NoError(t, diagfmt.JSON(&buf, res, diagfmt.JSONOpts{IncludeSource: true, Max: 2}))

	var report diagfmt.ReportJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, 3, report.Count)
	assert.Equal(t, 2, report.Files)
	require.Len(t, report.Findings, 2)

	f := report.Findings[0]
	assert.Equal(t, "MissingInheritdoc", f.Rule)
	assert.Equal(t, "function", f.Kind)
	assert.Equal(t, "Vault.sol", f.Location.File)
	assert.Equal(t, uint32(4), f.Location.StartLine)
	assert.Equal(t, "    function deposit(uint256 amount) external {}", f.Source)

	require.Len(t, report.Errors, 1)
	assert.Equal(t, "Broken.sol", report.Errors[0].File)
	assert.NotEmpty(t, report.Errors[0].Syntax)
}

func TestSarif(t *testing.T) {
	res := run(t, map[string]string{"Vault.sol": vault})

	var buf bytes.Buffer
	require.NoError(t, diagfmt.Sarif(&buf, res, diagfmt.SarifRunMeta{ToolVersion: "1.0.0"}))

	var log struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name  string `json:"name"`
					Rules []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID    string `json:"ruleId"`
				RuleIndex int    `json:"ruleIndex"`
				Level     string `json:"level"`
				Locations []struct {
					PhysicalLocation struct {
						ArtifactLocation struct {
							URI string `json:"uri"`
						} `json:"artifactLocation"`
						Region struct {
							StartLine int `json:"startLine"`
						} `json:"region"`
					} `json:"physicalLocation"`
				} `json:"locations"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &log))
	assert.Equal(t, "2.1.0", log.Version)
	require.Len(t, log.Runs, 1)
	first := log.Runs[0]
	assert.Equal(t, "natlint", first.Tool.Driver.Name)
	require.Len(t, first.Results, 3)

	r := first.Results[1]
	assert.Equal(t, "function/MissingNotice", r.RuleID)
	assert.Equal(t, "warning", r.Level)
	require.GreaterOrEqual(t, r.RuleIndex, 0)
	assert.Equal(t, r.RuleID, first.Tool.Driver.Rules[r.RuleIndex].ID)
	assert.Equal(t, "Vault.sol", r.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, 4, r.Locations[0].PhysicalLocation.Region.StartLine)
}
