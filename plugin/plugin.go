package plugin

import (
	"fmt"

	"go.uber.org/zap"

	"mdtree/ast"
)

// Transform inspects or rewrites a built tree.
type Transform func(root *ast.Root) error

type Plugin struct {
	Name  string
	Apply Transform
}

// Registry holds plugins and runs them in registration order after a build.
// A failing or panicking plugin is logged and skipped; it never aborts the
// parse or the remaining plugins.
type Registry struct {
	log     *zap.Logger
	plugins []Plugin
}

func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{log: log}
}

func (r *Registry) Register(p Plugin) {
	r.plugins = append(r.plugins, p)
}

// Apply runs every plugin against root and returns the names of those that
// failed.
func (r *Registry) Apply(root *ast.Root) []string {
	var failed []string
	for _, p := range r.plugins {
		if err := r.run(p, root); err != nil {
			failed = append(failed, p.Name)
			r.log.Warn("plugin failed",
				zap.String("plugin", p.Name),
				zap.Error(err))
		}
	}
	return failed
}

func (r *Registry) run(p Plugin, root *ast.Root) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("panic: %v", v)
		}
	}()
	return p.Apply(root)
}
