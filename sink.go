package quince

import (
	"github.com/networkedplanet/quince/internal/quinceerr"
	"github.com/networkedplanet/quince/term"
)

// UpdateMode selects what a Sink does with each parsed term tuple.
type UpdateMode int

const (
	// Assert inserts the quad.
	Assert UpdateMode = iota
	// Retract removes every quad matching the tuple (positions may be
	// nil to mean wildcard).
	Retract
	// Exists records a precondition failure if the tuple has no match.
	Exists
	// NotExists records a precondition failure if the tuple does have
	// a match.
	NotExists
)

// Sink adapts a nquads.Parser to a Store under a single UpdateMode,
// implementing spec.md §4.9. When Throw is false, precondition
// failures are accumulated in Failures instead of being returned
// immediately from Quad/Triple.
type Sink struct {
	Store *Store
	Mode  UpdateMode
	Throw bool

	// GraphOverride, when non-nil, replaces every parsed quad's graph
	// — used by import's `-g` flag to force everything into one
	// graph regardless of what the source file carries.
	GraphOverride term.Term

	Failures []error
}

// NewSink builds a Sink over store in the given mode.
func NewSink(store *Store, mode UpdateMode, throw bool) *Sink {
	return &Sink{Store: store, Mode: mode, Throw: throw}
}

// Triple treats s, p, o as a quad in the default graph.
func (sk *Sink) Triple(s, p, o term.Term) error {
	return sk.Quad(s, p, o, term.IRI(term.DefaultGraphIRI))
}

// Quad dispatches s, p, o, g per the sink's mode.
func (sk *Sink) Quad(s, p, o, g term.Term) error {
	if sk.GraphOverride != nil {
		g = sk.GraphOverride
	}
	switch sk.Mode {
	case Assert:
		return sk.Store.AssertQuad(s, p, o, g)
	case Retract:
		_, err := sk.Store.RetractQuad(s, p, o, g)
		return err
	case Exists:
		matches, err := sk.Store.Exists(s, p, o, g)
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			return sk.fail(quinceerr.PreconditionExists, s, p, o, g)
		}
		return nil
	case NotExists:
		matches, err := sk.Store.Exists(s, p, o, g)
		if err != nil {
			return err
		}
		if len(matches) > 0 {
			return sk.fail(quinceerr.PreconditionNotExists, s, p, o, g)
		}
		return nil
	default:
		return nil
	}
}

func (sk *Sink) fail(mode quinceerr.PreconditionMode, s, p, o, g term.Term) error {
	err := &quinceerr.PreconditionFailedError{Mode: mode, S: s.N3(), P: p.N3(), O: o.N3(), G: g.N3()}
	if sk.Throw {
		return err
	}
	sk.Failures = append(sk.Failures, err)
	return nil
}
