// Package hooks runs optional user-provided Tengo scripts after an import
// batch completes, e.g. to trigger a gallery rescan or send a notification.
package hooks

import (
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Common hook errors.
var (
	// ErrHookExecution is returned when a hook script fails to run.
	ErrHookExecution = fmt.Errorf("error executing hook")

	// ErrHookScript is returned when a hook script reports an error.
	ErrHookScript = fmt.Errorf("hook script error")

	// ErrHookLoad is returned when a hook script cannot be loaded.
	ErrHookLoad = fmt.Errorf("failed to load hook")
)

// Context carries the batch outcome passed to the post-import script.
type Context struct {
	Success    int
	Failed     int
	Skipped    int
	Total      int
	LibraryDir string
}

// Runner executes the post-import hook.
type Runner interface {
	// RunPostImport runs the configured script with the batch outcome.
	RunPostImport(ctx Context) error
}

// TengoRunner executes a Tengo script loaded from a file.
type TengoRunner struct {
	script string
}

// NewTengoRunner loads the script at path. An empty path yields a runner
// that does nothing.
func NewTengoRunner(path string) (*TengoRunner, error) {
	if path == "" {
		return &TengoRunner{}, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrHookLoad, path, err)
	}
	return &TengoRunner{script: string(content)}, nil
}

// HasScript reports whether a script is configured.
func (r *TengoRunner) HasScript() bool {
	return r.script != ""
}

// RunPostImport runs the script with the batch counters exposed as globals.
// The script may set an `err` string to report a failure.
func (r *TengoRunner) RunPostImport(ctx Context) error {
	if r.script == "" {
		return nil
	}

	scriptInstance := tengo.NewScript([]byte(r.script))
	scriptInstance.SetImports(stdlib.GetModuleMap("fmt", "os", "strings", "times"))

	globals := map[string]interface{}{
		"success":    ctx.Success,
		"failed":     ctx.Failed,
		"skipped":    ctx.Skipped,
		"total":      ctx.Total,
		"libraryDir": ctx.LibraryDir,
	}
	for name, value := range globals {
		if err := scriptInstance.Add(name, value); err != nil {
			return fmt.Errorf("failed to add variable %q to script: %w", name, err)
		}
	}

	compiled, err := scriptInstance.Run()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHookExecution, err)
	}

	if errVar := compiled.Get("err"); errVar != nil {
		if msg := errVar.String(); msg != "" && errVar.ValueType() == "string" {
			return fmt.Errorf("%w: %s", ErrHookScript, msg)
		}
	}
	return nil
}
