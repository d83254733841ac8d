package converter

// State is the conversion state of a named type.
type State int

const (
	// Unseen types have not been reached by the named-types pass.
	Unseen State = iota
	// Pending types are being expanded; occurrences inside their own
	// content must become references.
	Pending
	// Done types have a finished component schema.
	Done
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Done:
		return "done"
	default:
		return "unseen"
	}
}

// Registry records which named types have been promoted to component
// schemas, keyed by cleaned name. It belongs to a single Assembler.
//
// Types declared in the schema are referenced whatever their state; the
// registry decides for names the schema index does not know and tells
// the element pass which names are taken.
type Registry struct {
	states map[string]State
	order  []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{states: map[string]State{}}
}

// State returns the state of name.
func (r *Registry) State(name string) State {
	return r.states[name]
}

// Begin marks name as being expanded.
func (r *Registry) Begin(name string) {
	if r.states[name] == Unseen {
		r.states[name] = Pending
	}
}

// Finish marks name as emitted.
func (r *Registry) Finish(name string) {
	if r.states[name] != Done {
		r.order = append(r.order, name)
	}
	r.states[name] = Done
}

// Names returns the finished names in completion order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}
