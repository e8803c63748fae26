// Package challscaffold ties the pipeline together: fetch the course page, turn every challenge
// label into a folder, and scaffold a starter project into each folder that did not exist yet.
package challscaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dimasma0305/challscaffold/internal/challscaffold/config"
	"github.com/dimasma0305/challscaffold/internal/challscaffold/errors"
	"github.com/dimasma0305/challscaffold/internal/challscaffold/fileutil"
	"github.com/dimasma0305/challscaffold/internal/challscaffold/project"
	"github.com/dimasma0305/challscaffold/internal/challscaffold/scaffold"
	"github.com/dimasma0305/challscaffold/internal/challscaffold/scraper"
	"github.com/dimasma0305/challscaffold/internal/log"
)

// Fetcher retrieves the raw course page
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Initializer scaffolds one challenge folder. It reports failures in the Outcome only.
type Initializer interface {
	Init(ctx context.Context, dir string) project.Outcome
}

// Report summarises a run for callers; nothing prints it as a table
type Report struct {
	// Discovered counts labels found on the page
	Discovered int
	// Skipped counts labels whose folder already existed or could not be named or created
	Skipped int
	// Dispatched counts folders handed to the initializer
	Dispatched int
	// Outcomes holds one entry per dispatched folder, in completion order
	Outcomes []project.Outcome
}

// Failed returns the number of dispatched folders whose initialization failed
func (r *Report) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.OK() {
			n++
		}
	}
	return n
}

// ChallScaffold runs one scrape-and-create batch
type ChallScaffold struct {
	URL      string
	Selector string
	Root     string
	// Jobs caps concurrent initializations; zero means no cap
	Jobs int

	Fetcher     Fetcher
	Initializer Initializer
}

// New wires the production fetcher and generator from conf
func New(conf *config.Config) (*ChallScaffold, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	root, err := conf.RootDir()
	if err != nil {
		return nil, fmt.Errorf("resolve root directory: %w", err)
	}

	runner := scaffold.NewRunner(conf.Command)
	runner.Shell = conf.Shell

	return &ChallScaffold{
		URL:         conf.URL,
		Selector:    conf.Selector,
		Root:        root,
		Jobs:        conf.Jobs,
		Fetcher:     scraper.NewClient(conf.Timeout),
		Initializer: project.NewInitializer(runner),
	}, nil
}

// Run fetches the page and dispatches one initialization per new challenge folder, then waits for
// all of them. Only a fetch or parse failure is returned; per-folder failures are logged and
// counted in the Report. Once ctx is cancelled no further folder is created, and remaining labels
// count as skipped.
func (c *ChallScaffold) Run(ctx context.Context) (*Report, error) {
	page, err := c.Fetcher.Fetch(ctx, c.URL)
	if err != nil {
		log.Error("Error: %s", err)
		return nil, err
	}

	labels, err := scraper.ExtractLabelsFromBytes(page, c.Selector)
	if err != nil {
		log.Error("Error: %s", err)
		return nil, err
	}
	log.Debug("Found %d challenge labels", len(labels))

	report := &Report{Discovered: len(labels)}
	var mu sync.Mutex

	var g errgroup.Group
	if c.Jobs > 0 {
		g.SetLimit(c.Jobs)
	}

	// existence checks and mkdir stay on this goroutine so a name is claimed before any job runs
	for i, label := range labels {
		if ctx.Err() != nil {
			log.Error("Interrupted: %d challenges left untouched", len(labels)-i)
			mu.Lock()
			report.Skipped += len(labels) - i
			mu.Unlock()
			break
		}

		dir, err := c.claim(label)
		if err != nil {
			log.ErrorH2("Skipping %q: %s", label, err)
		}
		if dir == "" {
			mu.Lock()
			report.Skipped++
			mu.Unlock()
			continue
		}

		mu.Lock()
		report.Dispatched++
		mu.Unlock()
		g.Go(func() error {
			// a job that waited for a slot past cancellation gives its folder back
			if ctx.Err() != nil {
				c.release(dir)
				mu.Lock()
				report.Dispatched--
				report.Skipped++
				mu.Unlock()
				return nil
			}
			out := c.Initializer.Init(ctx, dir)
			mu.Lock()
			report.Outcomes = append(report.Outcomes, out)
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()

	log.Info("Processed %d challenges: %d scaffolded, %d failed, %d skipped",
		report.Discovered, report.Dispatched-report.Failed(), report.Failed(), report.Skipped)
	return report, nil
}

// release removes a claimed folder that never ran, so the next run picks the challenge up again.
// Only an empty folder is removed.
func (c *ChallScaffold) release(dir string) {
	if err := os.Remove(dir); err != nil {
		log.ErrorH2("Could not release %s: %s", dir, err)
		return
	}
	log.DebugH2("Released folder %s", filepath.Base(dir))
}

// claim creates the folder for label and returns its path. It returns "" without error when the
// folder already exists.
func (c *ChallScaffold) claim(label string) (string, error) {
	name := fileutil.FolderName(label)
	if name == "" {
		return "", errors.ErrEmptyFolder
	}

	dir := filepath.Join(c.Root, name)
	exists, err := fileutil.Exists(dir)
	if err != nil {
		return "", err
	}
	if exists {
		log.DebugH2("Folder %s already exists, skipping", name)
		return "", nil
	}

	//nolint:gosec // G301: challenge folders are ordinary source trees
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	log.Info("Created folder: %s", name)
	return dir, nil
}
