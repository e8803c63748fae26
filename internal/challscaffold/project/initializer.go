// Package project turns an empty challenge folder into a scaffolded starter project.
package project

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dimasma0305/challscaffold/internal/challscaffold/errors"
	"github.com/dimasma0305/challscaffold/internal/challscaffold/fileutil"
	"github.com/dimasma0305/challscaffold/internal/challscaffold/scaffold"
	"github.com/dimasma0305/challscaffold/internal/log"
	"github.com/dimasma0305/challscaffold/internal/template"
)

// Outcome describes one initialization. Err has already been logged when it is set; it is carried
// for callers that want to count failures, never to be re-raised.
type Outcome struct {
	Project  string
	Dir      string
	Template string
	Err      error
}

// OK reports whether the project was scaffolded and marked
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Initializer scaffolds a project into a folder and records the template it used
type Initializer struct {
	Scaffolder scaffold.Scaffolder
	Select     template.Selector
}

// NewInitializer returns an Initializer picking templates at random
func NewInitializer(s scaffold.Scaffolder) *Initializer {
	return &Initializer{Scaffolder: s, Select: template.Pick}
}

// Init scaffolds dir, named after its last path segment, from its parent directory.
// Failures are logged and reported in the Outcome; Init itself never fails the batch.
func (i *Initializer) Init(ctx context.Context, dir string) Outcome {
	out := Outcome{
		Project: filepath.Base(dir),
		Dir:     dir,
	}

	sel := i.Select
	if sel == nil {
		sel = template.Pick
	}
	out.Template = sel()

	if err := i.scaffold(ctx, out); err != nil {
		log.Error("Error creating Vite project: %s", err)
		out.Err = err
		return out
	}

	log.Info("Created Vite project: %s with template: %s", out.Project, out.Template)
	return out
}

func (i *Initializer) scaffold(ctx context.Context, out Outcome) error {
	if err := i.Scaffolder.Run(ctx, out.Project, out.Template, filepath.Dir(out.Dir)); err != nil {
		return errors.Wrap(err, out.Project)
	}

	body, err := template.RenderMarker(out.Template)
	if err != nil {
		return errors.Wrap(err, out.Project)
	}
	if err := fileutil.WriteFile(filepath.Join(out.Dir, template.MarkerFile), body); err != nil {
		return fmt.Errorf("%s: %w: %w", out.Project, errors.ErrMarkerWrite, err)
	}
	return nil
}
