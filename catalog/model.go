package catalog

// Model is the aggregate root owning the full set of schema objects. It
// preserves insertion order, which together with kind priority drives the
// deterministic tie-break during ordering.
//
// The model is mutably owned by one caller at a time: mutations and plan
// computation must not be interleaved without external synchronization.
// Read-only queries against a model that is no longer mutated are safe to
// run in parallel.
type Model struct {
	objects []Object
	index   map[string]int

	plan    *Plan
	planErr error
	planned bool
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{index: make(map[string]int)}
}

// Add inserts an object into the model. It fails with
// *DuplicateIdentifierError if any object with the same qualified identifier
// already exists, leaving the model unchanged. Dependencies of the object do
// not need to be present yet; forward references are resolved at plan time.
func (m *Model) Add(obj Object) error {
	key := obj.ObjectName().Key()
	if pos, ok := m.index[key]; ok {
		return &DuplicateIdentifierError{
			Identifier: obj.ObjectName(),
			Existing:   m.objects[pos].ObjectKind(),
		}
	}
	m.index[key] = len(m.objects)
	m.objects = append(m.objects, obj)
	m.invalidate()
	return nil
}

// Remove deletes the object with the given identifier and kind. It fails
// with *NotFoundError if the object is absent or has a different kind,
// leaving the model unchanged. Dependents of the removed object are kept;
// their now-dangling references surface as unresolved at the next plan
// computation.
func (m *Model) Remove(id Identifier, kind Kind) error {
	pos, ok := m.index[id.Key()]
	if !ok || m.objects[pos].ObjectKind() != kind {
		return &NotFoundError{Identifier: id, Kind: kind}
	}
	m.objects = append(m.objects[:pos], m.objects[pos+1:]...)
	m.reindex()
	m.invalidate()
	return nil
}

// Replace removes any existing object with the same identifier and inserts
// the given one, supporting the drop/recreate idiom. The replacement takes
// the insertion position of a fresh Add. Dependents are not re-validated
// until the next plan computation.
func (m *Model) Replace(obj Object) error {
	if pos, ok := m.index[obj.ObjectName().Key()]; ok {
		existing := m.objects[pos]
		if err := m.Remove(existing.ObjectName(), existing.ObjectKind()); err != nil {
			return err
		}
	}
	return m.Add(obj)
}

// Resolve returns the object with the given qualified identifier. Callers
// resolving an unqualified reference must qualify it with the referencing
// object's namespace first; see Graph.
func (m *Model) Resolve(id Identifier) (Object, bool) {
	pos, ok := m.index[id.Key()]
	if !ok {
		return nil, false
	}
	return m.objects[pos], true
}

// Objects returns all objects in insertion order. The returned slice must
// not be mutated.
func (m *Model) Objects() []Object {
	return m.objects
}

// ObjectsByKind returns the objects of the given kind in insertion order.
func (m *Model) ObjectsByKind(kind Kind) []Object {
	var result []Object
	for _, obj := range m.objects {
		if obj.ObjectKind() == kind {
			result = append(result, obj)
		}
	}
	return result
}

// Len returns the number of objects in the model.
func (m *Model) Len() int {
	return len(m.objects)
}

// Dependents returns the objects that directly depend on the given
// identifier. Useful for flagging the cascade before dropping a namespace or
// a table.
func (m *Model) Dependents(id Identifier) []Object {
	return BuildGraph(m).DependentsOf(id)
}

// Plan computes the creation and drop order for the current model state,
// caching the result until the next mutation. On failure the returned plan
// still carries the partial order together with the diagnostics.
func (m *Model) Plan() (*Plan, error) {
	if !m.planned {
		m.plan, m.planErr = ComputeOrder(BuildGraph(m))
		m.planned = true
	}
	return m.plan, m.planErr
}

// position returns the insertion position of the object with the given key.
func (m *Model) position(key string) int {
	return m.index[key]
}

func (m *Model) reindex() {
	m.index = make(map[string]int, len(m.objects))
	for pos, obj := range m.objects {
		m.index[obj.ObjectName().Key()] = pos
	}
}

func (m *Model) invalidate() {
	m.plan = nil
	m.planErr = nil
	m.planned = false
}
