package xgbtree

import (
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

// DrawGraph renders the tree rooted at gid as a graphviz graph, one box
// per leaf and one node per split labeled with its feature/threshold.
// Callers render it with (*graphviz.Graphviz).RenderFilename.
func (t *Tree) DrawGraph(gid int) (*graphviz.Graphviz, *cgraph.Graph, error) {
	gv := graphviz.New()
	graph, err := gv.Graph()
	if err != nil {
		return nil, nil, err
	}
	if err := t.drawNode(graph, NodeID(gid), nil); err != nil {
		return nil, nil, err
	}
	return gv, graph, nil
}

func (t *Tree) drawNode(graph *cgraph.Graph, nid NodeID, parent *cgraph.Node) error {
	n := t.Node(nid)
	gn, err := graph.CreateNode(fmt.Sprintf("n%d", nid))
	if err != nil {
		return err
	}
	if n.IsLeaf() {
		gn.Set("label", fmt.Sprintf("weight %.4f", n.Weight))
		gn.Set("shape", "box")
	} else {
		dir := "right"
		if n.DefaultLeft {
			dir = "left"
		}
		gn.Set("label", fmt.Sprintf("f_%d < %.4f\ndefault %s", n.Feature, n.Threshold, dir))
	}
	if parent != nil {
		if _, err := graph.CreateEdge("", parent, gn); err != nil {
			return err
		}
	}
	if !n.IsLeaf() {
		if err := t.drawNode(graph, n.Left, gn); err != nil {
			return err
		}
		if err := t.drawNode(graph, n.Right, gn); err != nil {
			return err
		}
	}
	return nil
}
