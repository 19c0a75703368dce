package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// templNode lets a templ.Component be embedded in a gomponents tree.
type templNode struct {
	ctx       context.Context
	component templ.Component
}

func (a templNode) Render(w io.Writer) error {
	return a.component.Render(a.ctx, w)
}

// AdaptTemplToGomponent wraps a templ.Component as a gomponents.Node.
// gomponents does not pass a context while rendering, so the one given here
// is used; nil means context.Background().
func AdaptTemplToGomponent(ctx context.Context, component templ.Component) gomponents.Node {
	if ctx == nil {
		ctx = context.Background()
	}
	return templNode{ctx: ctx, component: component}
}
