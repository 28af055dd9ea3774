// Package driver discovers Solidity files, lints them in parallel and
// collects the resolved findings.
package driver

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"natlint/internal/ast"
	"natlint/internal/config"
	"natlint/internal/directive"
	"natlint/internal/lint"
	"natlint/internal/natspec"
	"natlint/internal/observ"
	"natlint/internal/rules"
	"natlint/internal/source"
)

// Options configure a run.
type Options struct {
	// Root is the project directory; display paths and exclude globs are
	// relative to it.
	Root string
	// Paths are files or directories to lint. Empty means Root.
	Paths []string
	// Include and Exclude override the globs of Config.Files when set.
	Include []string
	Exclude []string
	Config  *config.Config
	// Jobs bounds the number of files linted at once; <= 0 means GOMAXPROCS.
	Jobs     int
	Cache    *Cache
	Progress ProgressSink
	Logger   *log.Logger
	Timer    *observ.Timer
}

type fileResult struct {
	findings []lint.Finding
	cached   bool
	err      error
}

// Run lints every discovered file. File failures are collected in the
// result; the returned error is reserved for discovery problems and
// cancellation. A file already being linted when ctx is cancelled still
// completes.
func Run(ctx context.Context, opts Options) (*Result, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	timer := opts.Timer
	if timer == nil {
		timer = observ.NewTimer()
	}
	root := opts.Root
	if root == "" {
		root = "."
	}
	include := lo.Ternary(len(opts.Include) > 0, opts.Include, cfg.Files.Include)
	exclude := lo.Ternary(len(opts.Exclude) > 0, opts.Exclude, cfg.Files.Exclude)

	phase := timer.Begin("discover")
	emit(opts.Progress, Event{Stage: StageDiscover, Status: StatusWorking})
	paths, err := Discover(root, opts.Paths, include, exclude)
	if err != nil {
		timer.End(phase, "failed")
		emit(opts.Progress, Event{Stage: StageDiscover, Status: StatusError, Err: err})
		return nil, err
	}
	timer.End(phase, fmt.Sprintf("%d files", len(paths)))
	emit(opts.Progress, Event{Stage: StageDiscover, Status: StatusDone})
	logger.Debug("discovered files", "count", len(paths), "root", root)

	res := &Result{FileSet: source.NewFileSetWithBase(root)}

	phase = timer.Begin("load")
	ids := make([]source.FileID, 0, len(paths))
	for _, p := range paths {
		id, err := res.FileSet.Load(p)
		if err != nil {
			logger.Warn("cannot read file", "path", p, "err", err)
			res.Errors = append(res.Errors, FileError{Path: displayPath(p, root), Err: err})
			continue
		}
		ids = append(ids, id)
		emit(opts.Progress, Event{File: displayPath(p, root), Stage: StageLint, Status: StatusQueued})
	}
	timer.End(phase, "")

	phase = timer.Begin("lint")
	engine := lint.NewEngine(cfg.Active())
	fingerprint := cfg.Fingerprint()
	results := make([]fileResult, len(ids))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			file := res.FileSet.Get(id)
			name := displayPath(file.Path, root)
			emit(opts.Progress, Event{File: name, Stage: StageLint, Status: StatusWorking})
			began := time.Now()
			results[i] = lintFile(engine, res.FileSet, id, opts.Cache, fingerprint, logger)
			evt := Event{
				File:     name,
				Stage:    StageLint,
				Status:   StatusDone,
				Elapsed:  time.Since(began),
				Findings: len(results[i].findings),
				Cached:   results[i].cached,
			}
			if results[i].err != nil {
				evt.Status, evt.Err = StatusError, results[i].err
			}
			emit(opts.Progress, evt)
			return nil
		})
	}
	waitErr := g.Wait()
	timer.End(phase, "")

	phase = timer.Begin("report")
	known := rules.Names()
	for i, id := range ids {
		file := res.FileSet.Get(id)
		name := displayPath(file.Path, root)
		res.Files = append(res.Files, name)
		r := results[i]
		if r.err != nil {
			logger.Warn("cannot lint file", "path", name, "err", r.err)
			res.Errors = append(res.Errors, FileError{Path: name, Err: r.err})
			continue
		}
		if r.cached {
			res.CacheHits++
		}
		directives := directive.Scan(file)
		for _, d := range directives.Unknown(known) {
			logger.Warn("directive names an unknown rule", "path", name, "line", d.Line, "rules", d.Rules)
		}
		for _, f := range r.findings {
			start, end := file.Resolve(f.Violation.Loc.Start), file.Resolve(f.Violation.Loc.End)
			if directives.Suppressed(start.Line, f.Violation.RuleName) {
				res.Suppressed++
				continue
			}
			res.Findings = append(res.Findings, Finding{
				Path:        name,
				File:        id,
				Kind:        f.Violation.Kind,
				Rule:        f.Violation.RuleName,
				Description: f.Violation.RuleDescription,
				Message:     f.Violation.Err.Error(),
				Span:        f.Violation.Loc,
				Start:       start,
				End:         end,
			})
		}
	}
	sortFindings(res.Findings)
	timer.End(phase, fmt.Sprintf("%d findings", len(res.Findings)))

	if waitErr != nil {
		return res, errors.Wrap(waitErr, "lint interrupted")
	}
	return res, nil
}

func lintFile(engine *lint.Engine, fs *source.FileSet, id source.FileID, cache *Cache, fingerprint string, logger *log.Logger) fileResult {
	file := fs.Get(id)
	key := CacheKey(file.Hash, fingerprint)
	if payload, ok, err := cache.Get(key); err != nil {
		logger.Debug("cache read failed", "path", file.Path, "err", err)
	} else if ok {
		logger.Debug("cache hit", "path", file.Path)
		return fileResult{findings: fromCache(payload, id), cached: true}
	}

	findings, err := engine.BuildAndCheck(fs, id)
	if err != nil {
		return fileResult{err: err}
	}
	if cache != nil {
		if err := cache.Put(key, toCache(file.Path, findings)); err != nil {
			logger.Debug("cache write failed", "path", file.Path, "err", err)
		}
	}
	return fileResult{findings: findings}
}

func toCache(path string, findings []lint.Finding) *CachePayload {
	return &CachePayload{
		Path: path,
		Findings: lo.Map(findings, func(f lint.Finding, _ int) CachedFinding {
			v := f.Violation
			return CachedFinding{
				Rule:        v.RuleName,
				Description: v.RuleDescription,
				Kind:        uint8(v.Kind),
				Error: CachedError{
					Kind:      uint8(v.Err.Kind),
					Tag:       uint8(v.Err.Tag.Kind),
					CustomTag: v.Err.Tag.Custom,
					Name:      v.Err.Name,
					Msg:       v.Err.Msg,
				},
				Start: v.Loc.Start,
				End:   v.Loc.End,
			}
		}),
	}
}

func fromCache(payload *CachePayload, id source.FileID) []lint.Finding {
	return lo.Map(payload.Findings, func(c CachedFinding, _ int) lint.Finding {
		return lint.Finding{
			Violation: rules.Violation{
				RuleName:        c.Rule,
				RuleDescription: c.Description,
				Kind:            ast.DeclKind(c.Kind),
				Err: rules.ViolationError{
					Kind: rules.ErrorKind(c.Error.Kind),
					Tag:  natspec.CommentTag{Kind: natspec.TagKind(c.Error.Tag), Custom: c.Error.CustomTag},
					Name: c.Error.Name,
					Msg:  c.Error.Msg,
				},
				Loc: source.Span{File: id, Start: c.Start, End: c.End},
			},
			Offset: c.Start,
		}
	})
}

func displayPath(path, root string) string {
	if rel, err := source.RelativePath(path, root); err == nil {
		return rel
	}
	return path
}
