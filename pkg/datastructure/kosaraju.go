package datastructure

type dfsFrame struct {
	v    Index
	next Index // next position in the adjacency range of v
}

// StronglyConnectedComponents runs kosaraju's algorithm with an explicit stack. returns the
// component id of every vertex and the number of components. ids follow a topological order of
// the condensation: an edge between two components always goes from the lower id to the higher.
func (g *Graph) StronglyConnectedComponents() ([]Index, int) {
	n := g.numVertices

	// reversed adjacency: tails of the in-edges of every vertex
	firstIn := make([]Index, n+1)
	for i := range g.edges {
		firstIn[g.edges[i].to+1]++
	}
	for v := 1; v <= n; v++ {
		firstIn[v] += firstIn[v-1]
	}
	inTails := make([]Index, len(g.edges))
	next := make([]Index, n)
	copy(next, firstIn[:n])
	for i := range g.edges {
		e := &g.edges[i]
		inTails[next[e.to]] = e.from
		next[e.to]++
	}

	// first pass: finish order on the forward graph
	order := make([]Index, 0, n)
	visited := make([]bool, n)
	stack := make([]dfsFrame, 0, 64)
	for s := 0; s < n; s++ {
		if visited[s] {
			continue
		}
		visited[s] = true
		stack = append(stack, dfsFrame{v: Index(s), next: g.firstOut[s]})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == g.firstOut[top.v+1] {
				order = append(order, top.v)
				stack = stack[:len(stack)-1]
				continue
			}
			w := g.edges[g.outEdges[top.next]].to
			top.next++
			if !visited[w] {
				visited[w] = true
				stack = append(stack, dfsFrame{v: w, next: g.firstOut[w]})
			}
		}
	}

	// second pass: reversed graph in decreasing finish time
	comp := make([]Index, n)
	for i := range comp {
		comp[i] = INVALID_VERTEX_ID
	}
	numComponents := 0
	for i := n - 1; i >= 0; i-- {
		s := order[i]
		if comp[s] != INVALID_VERTEX_ID {
			continue
		}
		id := Index(numComponents)
		numComponents++
		comp[s] = id
		stack = append(stack[:0], dfsFrame{v: s, next: firstIn[s]})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == firstIn[top.v+1] {
				stack = stack[:len(stack)-1]
				continue
			}
			w := inTails[top.next]
			top.next++
			if comp[w] == INVALID_VERTEX_ID {
				comp[w] = id
				stack = append(stack, dfsFrame{v: w, next: firstIn[w]})
			}
		}
	}
	return comp, numComponents
}
