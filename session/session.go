package session

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mstgen/core"
	"github.com/katalvlaran/mstgen/internal/logger"
	"github.com/katalvlaran/mstgen/internal/metrics"
	"github.com/katalvlaran/mstgen/prim_kruskal"
)

// ErrNonFiniteCoordinate indicates Add was given NaN or ±Inf.
var ErrNonFiniteCoordinate = errors.New("session: non-finite coordinate")

// Option configures a Session before creation.
type Option func(*Session)

// WithLogger sets the entry used for rebuild logs.
func WithLogger(log *logrus.Entry) Option {
	return func(s *Session) { s.log = log }
}

// WithMetrics sets the collectors updated on every Add.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

// WithMethod selects the MST algorithm (prim_kruskal.MethodPrim or MethodKruskal).
func WithMethod(method string) Option {
	return func(s *Session) { s.method = method }
}

// WithValidation enables a spanning-tree check after every rebuild.
func WithValidation(enabled bool) Option {
	return func(s *Session) { s.validate = enabled }
}

// Session owns a PointSet and the edge list of its latest MST.
type Session struct {
	points   *core.PointSet
	edges    []prim_kruskal.Edge
	weight   float64
	method   string
	validate bool
	log      *logrus.Entry
	metrics  *metrics.Metrics
}

// New creates an empty Session. It fails only for an unsupported method.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		points: core.NewPointSet(),
		edges:  []prim_kruskal.Edge{},
		method: prim_kruskal.MethodPrim,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Discard()
	}

	switch s.method {
	case prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal:
	default:
		return nil, fmt.Errorf("%w: %q", prim_kruskal.ErrUnknownMethod, s.method)
	}

	return s, nil
}

// Add appends (x, y), rebuilds the MST over all points and replaces the stored
// edge list. It returns the new point's index and a copy of the new edge list.
//
// Non-finite coordinates are rejected before touching the point set. With
// validation enabled, a rebuild that is not a spanning tree is reported and the
// previous edge list is kept.
func (s *Session) Add(x, y float64) (int, []prim_kruskal.Edge, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		s.metrics.InputRejected()
		return -1, nil, fmt.Errorf("%w: (%v, %v)", ErrNonFiniteCoordinate, x, y)
	}

	idx := s.points.Insert(x, y)
	s.metrics.PointInserted()

	start := time.Now()
	edges, weight, err := prim_kruskal.Compute(s.points, prim_kruskal.WithMethod(s.method))
	elapsed := time.Since(start)
	if err != nil {
		return idx, nil, fmt.Errorf("session: rebuild after point %d: %w", idx, err)
	}

	n := s.points.Len()
	if s.validate {
		if err := prim_kruskal.Validate(n, edges); err != nil {
			s.log.WithFields(logrus.Fields{"index": idx, "error": err}).Error("rebuilt tree failed validation")
			return idx, nil, fmt.Errorf("session: rebuild after point %d: %w", idx, err)
		}
	}

	s.edges = edges
	s.weight = weight
	s.metrics.BuildCompleted(s.method, elapsed, weight, len(edges))

	s.log.WithFields(logrus.Fields{
		"index":   idx,
		"points":  n,
		"edges":   len(edges),
		"weight":  weight,
		"method":  s.method,
		"elapsed": elapsed,
	}).Debug("rebuilt minimum spanning tree")

	return idx, s.Edges(), nil
}

// Edges returns a copy of the latest edge list.
func (s *Session) Edges() []prim_kruskal.Edge {
	out := make([]prim_kruskal.Edge, len(s.edges))
	copy(out, s.edges)

	return out
}

// Points returns a copy of every point added so far.
func (s *Session) Points() []core.Point { return s.points.Points() }

// Len returns the number of points.
func (s *Session) Len() int { return s.points.Len() }

// Weight returns the total weight of the latest edge list.
func (s *Session) Weight() float64 { return s.weight }

// Method returns the MST algorithm in use.
func (s *Session) Method() string { return s.method }
