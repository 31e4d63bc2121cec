package catalog

// Graph is the dependency graph derived from a model: nodes are objects,
// edges point from an object to the objects it depends on. Edges are stored
// over normalized identifier keys, not live references, so building the
// graph never mutates the model.
type Graph struct {
	model      *Model
	edges      map[string][]string // dependent -> dependencies
	reverse    map[string][]string // dependency -> dependents
	unresolved []Unresolved
}

// BuildGraph derives the dependency graph for the current model state. It is
// deterministic: objects are visited in insertion order and each object's
// declared dependencies in declaration order.
//
// An unqualified reference resolves within the referencing object's own
// namespace first, then falls back to the default namespace (where namespace
// objects themselves live). Qualified references resolve globally. References
// that resolve to the declaring object itself are permitted and produce no
// edge: recursive functions, recursive triggers and self-referencing foreign
// keys must not block ordering. Unresolved references are recorded, never
// silently dropped.
func BuildGraph(m *Model) *Graph {
	g := &Graph{
		model:   m,
		edges:   make(map[string][]string),
		reverse: make(map[string][]string),
	}
	for _, obj := range m.Objects() {
		from := obj.ObjectName()
		fromKey := from.Key()
		seen := make(map[string]bool)
		for _, dep := range obj.DependsOn() {
			target, ok := g.resolve(from, dep)
			if !ok {
				g.unresolved = append(g.unresolved, Unresolved{From: from, To: dep})
				continue
			}
			toKey := target.ObjectName().Key()
			if toKey == fromKey || seen[toKey] {
				continue
			}
			seen[toKey] = true
			g.edges[fromKey] = append(g.edges[fromKey], toKey)
			g.reverse[toKey] = append(g.reverse[toKey], fromKey)
		}
	}
	return g
}

func (g *Graph) resolve(from, dep Identifier) (Object, bool) {
	if dep.Qualified() {
		return g.model.Resolve(dep)
	}
	if from.Qualified() {
		if obj, ok := g.model.Resolve(dep.InSchema(from.Schema)); ok {
			return obj, true
		}
	}
	return g.model.Resolve(dep)
}

// Unresolved returns every declared dependency that did not resolve, in
// declaration order.
func (g *Graph) Unresolved() []Unresolved {
	return g.unresolved
}

// DependenciesOf returns the objects the given object directly depends on.
func (g *Graph) DependenciesOf(id Identifier) []Object {
	return g.lookup(g.edges[id.Key()])
}

// DependentsOf returns the objects that directly depend on the given object.
func (g *Graph) DependentsOf(id Identifier) []Object {
	return g.lookup(g.reverse[id.Key()])
}

func (g *Graph) lookup(keys []string) []Object {
	var result []Object
	for _, key := range keys {
		if pos, ok := g.model.index[key]; ok {
			result = append(result, g.model.objects[pos])
		}
	}
	return result
}

// Cycles returns the dependency cycles in the graph as deterministic
// identifier sequences, one per strongly connected component of two or more
// objects. Self-dependencies never appear: they are excluded when edges are
// built. An acyclic graph yields an empty result.
func (g *Graph) Cycles() []Cycle {
	t := &tarjan{
		graph:   g,
		indices: make(map[string]int),
		lowlink: make(map[string]int),
		onStack: make(map[string]bool),
	}
	for _, obj := range g.model.Objects() {
		key := obj.ObjectName().Key()
		if _, visited := t.indices[key]; !visited {
			t.visit(key)
		}
	}

	var cycles []Cycle
	for _, component := range t.components {
		if len(component) < 2 {
			continue
		}
		cycles = append(cycles, g.orderComponent(component))
	}
	return cycles
}

// orderComponent turns a strongly connected component into a deterministic
// sequence, sorted by (kind priority, insertion order).
func (g *Graph) orderComponent(keys []string) Cycle {
	objs := g.lookup(keys)
	for i := 1; i < len(objs); i++ {
		for j := i; j > 0 && lessByKindAndPosition(g.model, objs[j], objs[j-1]); j-- {
			objs[j], objs[j-1] = objs[j-1], objs[j]
		}
	}
	cycle := make(Cycle, len(objs))
	for i, obj := range objs {
		cycle[i] = obj.ObjectName()
	}
	return cycle
}

func lessByKindAndPosition(m *Model, a, b Object) bool {
	if a.ObjectKind() != b.ObjectKind() {
		return a.ObjectKind().Priority() < b.ObjectKind().Priority()
	}
	return m.position(a.ObjectName().Key()) < m.position(b.ObjectName().Key())
}

// tarjan implements Tarjan's strongly connected components algorithm over
// graph keys.
type tarjan struct {
	graph      *Graph
	counter    int
	indices    map[string]int
	lowlink    map[string]int
	onStack    map[string]bool
	stack      []string
	components [][]string
}

func (t *tarjan) visit(key string) {
	t.indices[key] = t.counter
	t.lowlink[key] = t.counter
	t.counter++
	t.stack = append(t.stack, key)
	t.onStack[key] = true

	for _, next := range t.graph.edges[key] {
		if _, visited := t.indices[next]; !visited {
			t.visit(next)
			if t.lowlink[next] < t.lowlink[key] {
				t.lowlink[key] = t.lowlink[next]
			}
		} else if t.onStack[next] && t.indices[next] < t.lowlink[key] {
			t.lowlink[key] = t.indices[next]
		}
	}

	if t.lowlink[key] == t.indices[key] {
		var component []string
		for {
			top := t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.onStack[top] = false
			component = append(component, top)
			if top == key {
				break
			}
		}
		t.components = append(t.components, component)
	}
}
