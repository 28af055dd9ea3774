package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"natlint/internal/config"
	"natlint/internal/driver"
	"natlint/internal/lint"
	"natlint/internal/observ"
)

const vault = `/// @title Vault
/// @notice Holds assets
contract Vault {
    /// @notice Emitted on deposit
    /// @param who Depositor
    event Deposit(address who);

    function deposit(uint256 amount) external {}

    /// @inheritdoc IVault
    function withdraw(uint256 amount) external override returns (uint256) {}
}
`

const clean = `/// @title Clean
/// @notice Nothing to report
contract Clean {}
`

const suppressed = `/// @title D
/// @notice N
contract D {
    // natlint-disable-next-line MissingNotice
    function f() external {}
}
`

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return root
}

func project(t *testing.T) string {
	return writeTree(t, map[string]string{
		"a/Vault.sol":      vault,
		"b/Clean.sol":      clean,
		"Broken.sol":       "contract C {\n",
		"skip/Ignored.sol": "contract Ignored {}\n",
		"notes.txt":        "not solidity",
	})
}

func TestDiscover(t *testing.T) {
	root := project(t)

	got, err := driver.Discover(root, nil, nil, []string{"skip/**"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "Broken.sol"),
		filepath.Join(root, "a", "Vault.sol"),
		filepath.Join(root, "b", "Clean.sol"),
	}, got)
}

func TestDiscoverExplicitPaths(t *testing.T) {
	root := project(t)
	notes := filepath.Join(root, "notes.txt")

	got, err := driver.Discover(root, []string{notes, filepath.Join(root, "b"), notes}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "b", "Clean.sol"), notes}, got)

	_, err = driver.Discover(root, []string{filepath.Join(root, "missing")}, nil, nil)
	require.Error(t, err)
}

func TestDiscoverBadPattern(t *testing.T) {
	_, err := driver.Discover(t.TempDir(), nil, []string{"[a"}, nil)
	require.ErrorIs(t, err, driver.ErrBadPattern)
}

func TestRun(t *testing.T) {
	root := project(t)
	timer := observ.NewTimer()

	res, err := driver.Run(context.Background(), driver.Options{
		Root:    root,
		Exclude: []string{"skip/**"},
		Jobs:    2,
		Timer:   timer,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Broken.sol", "a/Vault.sol", "b/Clean.sol"}, res.Files)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Broken.sol", res.Errors[0].Path)
	assert.True(t, errors.Is(res.Errors[0].Err, lint.ErrParse))

	var rules []string
	for _, f := range res.Findings {
		assert.Equal(t, "a/Vault.sol", f.Path)
		assert.Equal(t, uint32(8), f.Start.Line)
		assert.Equal(t, uint32(5), f.Start.Col)
		rules = append(rules, f.Rule)
	}
	assert.Equal(t, []string{"MissingInheritdoc", "MissingNotice", "MissingParams"}, rules)
	assert.Equal(t, "Missing a @notice comment", res.Findings[1].Message)
	assert.True(t, res.Failed())

	report := timer.Report()
	var phases []string
	for _, p := range report.Phases {
		phases = append(phases, p.Name)
	}
	assert.Equal(t, []string{"discover", "load", "lint", "report"}, phases)
}

func TestRunUsesConfigFiles(t *testing.T) {
	root := project(t)
	cfg := config.Default()
	cfg.Files = config.Files{Include: []string{"b/**/*.sol"}}

	res, err := driver.Run(context.Background(), driver.Options{Root: root, Config: cfg})
	require.NoError(t, err)
	assert.Equal(t, []string{"b/Clean.sol"}, res.Files)
	assert.False(t, res.Failed())
}

func TestRunDisabledRule(t *testing.T) {
	root := writeTree(t, map[string]string{"Vault.sol": vault})
	cfg, err := config.Parse("[function_rules]\nmissing_notice = false\nmissing_inheritdoc = false\n")
	require.NoError(t, err)

	res, err := driver.Run(context.Background(), driver.Options{Root: root, Config: cfg})
	require.NoError(t, err)
	require.Len(t, res.Findings, 1)
	assert.Equal(t, "MissingParams", res.Findings[0].Rule)
}

func TestRunDirective(t *testing.T) {
	root := writeTree(t, map[string]string{"D.sol": suppressed})

	res, err := driver.Run(context.Background(), driver.Options{Root: root})
	require.NoError(t, err)
	require.Len(t, res.Findings, 1)
	assert.Equal(t, "MissingInheritdoc", res.Findings[0].Rule)
	assert.Equal(t, uint32(5), res.Findings[0].Start.Line)
	assert.Equal(t, 1, res.Suppressed)
}

func TestRunCache(t *testing.T) {
	root := project(t)
	cache, err := driver.OpenCacheDir(t.TempDir())
	require.NoError(t, err)
	opts := driver.Options{Root: root, Exclude: []string{"skip/**"}, Cache: cache}

	first, err := driver.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Zero(t, first.CacheHits)

	second, err := driver.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 2, second.CacheHits)
	assert.Equal(t, first.Findings, second.Findings)
	assert.Len(t, second.Errors, 1)

	require.NoError(t, cache.DropAll())
	third, err := driver.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Zero(t, third.CacheHits)
}

func TestRunCancelled(t *testing.T) {
	root := project(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := driver.Run(ctx, driver.Options{Root: root})
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Empty(t, res.Findings)
}

func TestRunProgress(t *testing.T) {
	root := writeTree(t, map[string]string{"Vault.sol": vault, "Clean.sol": clean})

	var (
		mu     sync.Mutex
		events []driver.Event
	)
	sink := driver.SinkFunc(func(evt driver.Event) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, evt)
	})
	_, err := driver.Run(context.Background(), driver.Options{Root: root, Progress: sink})
	require.NoError(t, err)

	done := map[string]int{}
	for _, evt := range events {
		if evt.Stage == driver.StageLint && evt.Status == driver.StatusDone {
			done[evt.File] = evt.Findings
		}
	}
	assert.Equal(t, map[string]int{"Clean.sol": 0, "Vault.sol": 3}, done)
	assert.Equal(t, driver.StageDiscover, events[0].Stage)
}

func TestCacheKey(t *testing.T) {
	var content driver.Digest
	content[0] = 1
	assert.Equal(t, driver.CacheKey(content, "a"), driver.CacheKey(content, "a"))
	assert.NotEqual(t, driver.CacheKey(content, "a"), driver.CacheKey(content, "b"))
}

func TestCacheMiss(t *testing.T) {
	cache, err := driver.OpenCacheDir(t.TempDir())
	require.NoError(t, err)
	payload, ok, err := cache.Get(driver.Digest{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, payload)

	var disabled *driver.Cache
	require.NoError(t, disabled.Put(driver.Digest{}, &driver.CachePayload{}))
	_, ok, err = disabled.Get(driver.Digest{})
	require.NoError(t, err)
	assert.False(t, ok)
}
