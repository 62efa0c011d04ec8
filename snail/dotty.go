package snail

import (
	"fmt"
	"io"
	"strings"
)

type nodeids struct {
	idTable map[Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[Node]int),
		max:     1,
	}
}

func (ids nodeids) find(node Node) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node Node) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the tree structure of a snailfish number in Graphviz DOT format
// (for debugging purposes). Pairs which would explode are highlighted, as are
// regular numbers which would split.
func ToDot(n *Number, w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable()
	walk(n.root, nil, func(node Node, c cursor) bool {
		ID := ids.alloc(node)
		switch x := node.(type) {
		case *Leaf:
			hl := x.Value > splitThreshold
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%d\" %s];\n", ID, x.Value, nodeDotStyles(true, hl))
		case *Pair:
			hl := len(c) >= explodeDepth && x.Left.isLeaf() && x.Right.isLeaf()
			label := c.position()
			if label == "" {
				label = "root"
			}
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\\n%d\" %s];\n", ID, label, magnitude(x), nodeDotStyles(false, hl))
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [label=L];\n", ID, ids.alloc(x.Left))
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [label=R];\n", ID, ids.alloc(x.Right))
		}
		return true
	})
	_, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"+
		nodelist.String()+edgelist.String()+"}\n")
	if err != nil {
		tracer().Errorf("snail DOT: %s", err.Error())
	}
	return err
}

func nodeDotStyles(isleaf bool, highlight bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	if highlight {
		s += ",fillcolor=\"#FF9944\""
	} else if !isleaf {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}
