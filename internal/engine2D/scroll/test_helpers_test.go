package scroll

type fakeNode struct {
	name       string
	ann        Annotations
	opacity    float64
	opacitySet int
	transform  Transform
	transforms int
	visible    bool
	vars       map[string]float64
}

func newNode(name string) *fakeNode {
	return &fakeNode{name: name, opacity: 1, transform: Identity(), vars: map[string]float64{}}
}

func (n *fakeNode) Annotations() Annotations { return n.ann }
func (n *fakeNode) SetOpacity(v float64)     { n.opacity = v; n.opacitySet++ }
func (n *fakeNode) SetTransform(t Transform) { n.transform = t; n.transforms++ }
func (n *fakeNode) MarkVisible()             { n.visible = true }
func (n *fakeNode) SetVar(name string, v float64) {
	n.vars[name] = v
}

type fakeDoc struct {
	boxes map[string]Rect
	nodes map[string][]Node
}

func newDoc() *fakeDoc {
	return &fakeDoc{boxes: map[string]Rect{}, nodes: map[string][]Node{}}
}

func (d *fakeDoc) BoundingBox(id string) (Rect, bool) {
	r, ok := d.boxes[id]
	return r, ok
}

func (d *fakeDoc) Query(section, target string) []Node {
	return d.nodes[section+"/"+target]
}

func (d *fakeDoc) add(section, target string, n ...*fakeNode) {
	for _, node := range n {
		d.nodes[section+"/"+target] = append(d.nodes[section+"/"+target], node)
	}
}
