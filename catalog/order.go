package catalog

// Plan is the result of order computation. CreateOrder lists every object
// that could be placed, each one strictly after all of its resolved
// dependencies. DropOrder is the exact reverse of CreateOrder, never
// recomputed independently, so creation-then-drop is order-inverse by
// construction. When ordering fails, CreateOrder holds the partial order of
// the resolvable subset and Cycles/Unresolved describe the residue.
type Plan struct {
	CreateOrder []Object
	DropOrder   []Object
	Unresolved  []Unresolved
	Cycles      []Cycle
}

// Complete reports whether every object of the model was placed.
func (p *Plan) Complete() bool {
	return len(p.Unresolved) == 0 && len(p.Cycles) == 0
}

// ComputeOrder runs Kahn's algorithm over the graph. Among the objects whose
// remaining dependency count is zero, the one with the lowest (kind
// priority, insertion order) key is emitted first, which makes the order
// deterministic and reproducible across runs.
//
// An object with an unresolved declared dependency is never ready: it stays
// in the residue together with any object participating in a cycle. In that
// case ComputeOrder returns the partial plan alongside an *OrderingError
// carrying the complete cycle and unresolved-reference sets.
func ComputeOrder(g *Graph) (*Plan, error) {
	objects := g.model.Objects()

	remaining := make(map[string]int, len(objects))
	for _, obj := range objects {
		key := obj.ObjectName().Key()
		remaining[key] = len(g.edges[key])
	}
	for _, u := range g.unresolved {
		remaining[u.From.Key()]++
	}

	done := make(map[string]bool, len(objects))
	order := make([]Object, 0, len(objects))
	for {
		var next Object
		for _, obj := range objects {
			key := obj.ObjectName().Key()
			if done[key] || remaining[key] != 0 {
				continue
			}
			if next == nil || lessByKindAndPosition(g.model, obj, next) {
				next = obj
			}
		}
		if next == nil {
			break
		}
		key := next.ObjectName().Key()
		done[key] = true
		order = append(order, next)
		for _, dependent := range g.reverse[key] {
			remaining[dependent]--
		}
	}

	plan := &Plan{
		CreateOrder: order,
		DropOrder:   reversed(order),
		Unresolved:  g.Unresolved(),
		Cycles:      g.Cycles(),
	}
	if len(order) < len(objects) || !plan.Complete() {
		return plan, &OrderingError{Cycles: plan.Cycles, Unresolved: plan.Unresolved}
	}
	return plan, nil
}

func reversed(objects []Object) []Object {
	result := make([]Object, len(objects))
	for i, obj := range objects {
		result[len(objects)-1-i] = obj
	}
	return result
}
