package scroll

// Driver selects how a section's progress is measured.
type Driver string

const (
	// DriveElement uses ElementProgress of the section box, clamped to [0,1].
	DriveElement Driver = "element"
	// DriveScroll uses scrollY / viewportHeight, unclamped.
	DriveScroll Driver = "scroll"
)

type RuleKind string

const (
	KindMotion   RuleKind = "motion"
	KindReveal   RuleKind = "reveal"
	KindTimed    RuleKind = "timed"
	KindProgress RuleKind = "progress"
)

// SectionConfig describes every animation bound to one page section.
type SectionConfig struct {
	Section string `json:"section"`
	Driver  Driver `json:"driver"`
	Rules   []Rule `json:"rules"`
}

// Rule applies one behaviour to every node matching Target inside the
// section. Gate, when set, is the InView threshold the section must pass
// before the rule does anything.
type Rule struct {
	Kind   RuleKind `json:"kind"`
	Target string   `json:"target"`
	Gate   *float64 `json:"gate,omitempty"`

	Motion  *Motion `json:"motion,omitempty"`
	Stagger Stagger `json:"stagger"`

	// Settle resets opacity to 1 and the transform to identity on reveal.
	Settle bool `json:"settle,omitempty"`
	// RotationVar publishes the node's declared rotation as the "rotation"
	// variable on reveal.
	RotationVar bool `json:"rotationVar,omitempty"`
}

// Input is what continuous channels are evaluated against.
type Input struct {
	Progress float64
	ScrollY  float64
}

// Linear evaluates Base + Progress*p + Scroll*scrollY.
type Linear struct {
	Base     float64 `json:"base"`
	Progress float64 `json:"progress"`
	Scroll   float64 `json:"scroll"`
}

func (l Linear) Eval(in Input) float64 {
	return l.Base + l.Progress*in.Progress + l.Scroll*in.ScrollY
}

// IndexMod scales the translate channels by the node's position in its
// collection: Alternate gives +1/-1 on even/odd indices, Cycle gives
// (index % Cycle) * Step.
type IndexMod struct {
	Alternate bool    `json:"alternate,omitempty"`
	Cycle     int     `json:"cycle,omitempty"`
	Step      float64 `json:"step,omitempty"`
}

func (m IndexMod) Factor(index int) float64 {
	f := 1.0
	if m.Alternate && index%2 != 0 {
		f = -f
	}
	if m.Cycle > 0 {
		f *= float64(index%m.Cycle) * m.Step
	}
	return f
}

// Motion is a continuous transform. Nil channels keep their identity value.
type Motion struct {
	TranslateX *Linear `json:"translateX,omitempty"`
	TranslateY *Linear `json:"translateY,omitempty"`
	Scale      *Linear `json:"scale,omitempty"`
	Rotate     *Linear `json:"rotate,omitempty"`
	RotateY    *Linear `json:"rotateY,omitempty"`
	Opacity    *Linear `json:"opacity,omitempty"`

	Index IndexMod `json:"index"`
	// DeclaredRotation adds the node's declared rotation to Rotate.
	DeclaredRotation bool `json:"declaredRotation,omitempty"`
}

func (m *Motion) transforms() bool {
	return m.TranslateX != nil || m.TranslateY != nil || m.Scale != nil ||
		m.Rotate != nil || m.RotateY != nil || m.DeclaredRotation
}

// Transform evaluates the transform channels for the node at index.
func (m *Motion) Transform(in Input, index int, declared Annotations) Transform {
	t := Identity()
	factor := m.Index.Factor(index)
	if m.TranslateX != nil {
		t.TranslateX = m.TranslateX.Eval(in) * factor
	}
	if m.TranslateY != nil {
		t.TranslateY = m.TranslateY.Eval(in) * factor
	}
	if m.Scale != nil {
		t.Scale = m.Scale.Eval(in)
	}
	if m.Rotate != nil {
		t.Rotate = m.Rotate.Eval(in)
	}
	if m.DeclaredRotation {
		t.Rotate += declared.Rotation
	}
	if m.RotateY != nil {
		t.RotateY = m.RotateY.Eval(in)
	}
	return t
}

// Stagger spaces reveals across a collection. For timed rules the result is
// a delay in seconds, for progress rules a progress threshold.
type Stagger struct {
	Base float64 `json:"base"`
	Step float64 `json:"step"`
}

func (s Stagger) At(index int, declared Annotations) float64 {
	return s.Base + float64(index)*s.Step + declared.Delay
}

// Gate returns a pointer suitable for Rule.Gate.
func Gate(threshold float64) *float64 {
	return &threshold
}

// Const is a Linear with only a base value.
func Const(v float64) *Linear {
	return &Linear{Base: v}
}

// ByProgress is base + k*progress.
func ByProgress(base, k float64) *Linear {
	return &Linear{Base: base, Progress: k}
}

// ByScroll is k*scrollY.
func ByScroll(k float64) *Linear {
	return &Linear{Scroll: k}
}
