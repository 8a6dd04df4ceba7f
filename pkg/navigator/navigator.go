package navigator

import (
	"go.uber.org/zap"
)

// Target names an anchor in the rendered page, e.g. "servicios"
type Target string

const (
	BehaviorSmooth = "smooth"
	BlockStart     = "start"
)

// ScrollOptions mirrors the options accepted by Element.scrollIntoView
type ScrollOptions struct {
	Behavior string
	Block    string
}

// Element is a rendered node that can be scrolled into the viewport
type Element interface {
	ScrollIntoView(opts ScrollOptions)
}

// Document looks up rendered elements by id
type Document interface {
	ElementByID(id string) (Element, bool)
}

// Navigator scrolls the page to the section named by a Target
type Navigator struct {
	doc    Document
	logger *zap.Logger
}

// New creates a Navigator. A nil doc yields a Navigator whose ScrollTo is a no-op,
// which is what non-browser builds and tests get.
func New(doc Document, logger *zap.Logger) *Navigator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Navigator{
		doc:    doc,
		logger: logger,
	}
}

// ScrollTo brings the element with the target id to the top of the viewport.
// Missing documents and unknown targets are ignored.
func (n *Navigator) ScrollTo(target Target) {
	if n == nil || n.doc == nil {
		return
	}

	el, ok := n.doc.ElementByID(string(target))
	if !ok || el == nil {
		n.logger.Debug("scroll target not found", zap.String("target", string(target)))
		return
	}

	el.ScrollIntoView(ScrollOptions{Behavior: BehaviorSmooth, Block: BlockStart})
}
