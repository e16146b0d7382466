package scroll

import (
	"time"

	"cinematic-landing/internal/utils"
)

// Annotations are the optional numeric values a page element declares.
type Annotations struct {
	Delay    float64
	Rotation float64
}

// Transform is a 2D transform with extra X- and Y-axis rotations in degrees.
type Transform struct {
	TranslateX float64
	TranslateY float64
	Scale      float64
	Rotate     float64
	RotateX    float64
	RotateY    float64
}

func Identity() Transform {
	return Transform{Scale: 1}
}

// Node is a presentational target the engine writes to. Implementations
// must be comparable (pointer types) because timed reveals are keyed by node.
type Node interface {
	Annotations() Annotations
	SetOpacity(v float64)
	SetTransform(t Transform)
	MarkVisible()
	SetVar(name string, v float64)
}

// Document is the page as the engine sees it: layout boxes plus the nodes
// inside each section, in document order.
type Document interface {
	Geometry
	Query(section, target string) []Node
}

// RotationVar is the variable name RotationVar rules publish.
const RotationVar = "rotation"

// SectionStatus is a read-only view of a section after the last pass.
type SectionStatus struct {
	ID       string
	Present  bool
	Progress float64
	InView   bool
}

// Engine turns scroll position into per-section presentation state.
type Engine struct {
	doc      Document
	sections []SectionConfig
	viewport Viewport
	coalesce bool
	pending  bool
	now      time.Duration
	schedule *Schedule
	passes   int
}

type Option func(*Engine)

// WithCoalescing selects between one update per display refresh (true, the
// default) and one update per scroll event.
func WithCoalescing(on bool) Option {
	return func(e *Engine) { e.coalesce = on }
}

func WithViewport(vp Viewport) Option {
	return func(e *Engine) { e.viewport = vp }
}

// New builds an engine and performs the initial render pass.
func New(doc Document, sections []SectionConfig, opts ...Option) *Engine {
	e := &Engine{
		doc:      doc,
		sections: sections,
		coalesce: true,
		schedule: NewSchedule(),
	}
	for _, opt := range opts {
		opt(e)
	}
	utils.Debug("Scroll engine: %d sections, coalescing=%v", len(sections), e.coalesce)
	e.AnimateOnScroll()
	return e
}

func (e *Engine) Viewport() Viewport { return e.viewport }

// Pending reports whether a scroll update is waiting for the next frame.
func (e *Engine) Pending() bool { return e.pending }

// Passes counts AnimateOnScroll runs since construction.
func (e *Engine) Passes() int { return e.passes }

// Scheduled is the number of timed reveals not yet fired.
func (e *Engine) Scheduled() int { return e.schedule.Len() }

// OnScroll records the new offset. With coalescing the update waits for the
// next Frame; without it the update runs immediately.
func (e *Engine) OnScroll(scrollY float64) {
	e.viewport.ScrollY = scrollY
	if !e.coalesce {
		e.AnimateOnScroll()
		return
	}
	e.pending = true
}

// OnResize records the new viewport height. It does not re-animate.
func (e *Engine) OnResize(height float64) {
	e.viewport.Height = height
}

// Frame is the display-refresh tick. now is the host's monotonic clock.
func (e *Engine) Frame(now time.Duration) {
	e.now = now
	if e.pending {
		e.pending = false
		e.AnimateOnScroll()
	}
	e.schedule.Fire(now)
}

// AnimateOnScroll re-applies every configured section.
func (e *Engine) AnimateOnScroll() {
	e.passes++
	for _, cfg := range e.sections {
		ApplySection(e.doc, cfg, e.viewport, e.schedule, e.now)
	}
}

// Status reports progress and visibility for every configured section.
func (e *Engine) Status() []SectionStatus {
	out := make([]SectionStatus, 0, len(e.sections))
	for _, cfg := range e.sections {
		st := SectionStatus{ID: cfg.Section}
		if _, ok := e.doc.BoundingBox(cfg.Section); ok {
			st.Present = true
			st.Progress = SectionProgress(e.doc, cfg, e.viewport)
			st.InView = InView(e.doc, cfg.Section, e.viewport, DefaultThreshold)
		}
		out = append(out, st)
	}
	return out
}

// SectionProgress is the progress value cfg's rules are driven by.
func SectionProgress(g Geometry, cfg SectionConfig, vp Viewport) float64 {
	if cfg.Driver == DriveScroll {
		if vp.Height <= 0 {
			return 0
		}
		return vp.ScrollY / vp.Height
	}
	return ElementProgress(g, cfg.Section, vp)
}

// ApplySection evaluates cfg against vp and writes the result to the nodes
// of doc. Timed reveals are queued on sched relative to now.
func ApplySection(doc Document, cfg SectionConfig, vp Viewport, sched *Schedule, now time.Duration) {
	if doc == nil {
		return
	}
	layout, ok := doc.BoundingBox(cfg.Section)
	if !ok {
		return
	}
	client := vp.ClientRect(layout)
	in := Input{Progress: SectionProgress(doc, cfg, vp), ScrollY: vp.ScrollY}

	for _, rule := range cfg.Rules {
		if rule.Gate != nil && !Visible(client, vp.Height, *rule.Gate) {
			continue
		}
		nodes := doc.Query(cfg.Section, rule.Target)
		if len(nodes) == 0 {
			continue
		}
		applyRule(rule, nodes, in, sched, now)
	}
}

func applyRule(rule Rule, nodes []Node, in Input, sched *Schedule, now time.Duration) {
	switch rule.Kind {
	case KindMotion:
		if rule.Motion == nil {
			return
		}
		for i, n := range nodes {
			if rule.Motion.Opacity != nil {
				n.SetOpacity(rule.Motion.Opacity.Eval(in))
			}
			if rule.Motion.transforms() {
				n.SetTransform(rule.Motion.Transform(in, i, n.Annotations()))
			}
		}

	case KindReveal:
		for _, n := range nodes {
			Reveal(n, rule)
		}

	case KindTimed:
		if sched == nil {
			return
		}
		for i, n := range nodes {
			sched.Add(n, DueAfter(now, rule.Stagger.At(i, n.Annotations())), rule)
		}

	case KindProgress:
		for i, n := range nodes {
			if in.Progress > rule.Stagger.At(i, n.Annotations()) {
				Reveal(n, rule)
			}
		}

	default:
		utils.Warn("Scroll engine: unknown rule kind %q for target %s", rule.Kind, rule.Target)
	}
}

// Reveal marks n visible and applies the rule's reveal side effects.
func Reveal(n Node, rule Rule) {
	n.MarkVisible()
	if rule.RotationVar {
		n.SetVar(RotationVar, n.Annotations().Rotation)
	}
	if rule.Settle {
		n.SetOpacity(1)
		n.SetTransform(Identity())
	}
}
