package navigation

import (
	"go.uber.org/zap"
)

// Service is the single source of truth for which slide is showing and the
// only thing allowed to change it. It is not safe for concurrent use; all
// calls are expected on the UI goroutine.
type Service struct {
	state     *State
	observers []Observer
	logger    *zap.Logger
}

// Option configures a Service
type Option func(*Service)

// WithStart sets the initial slide. Out-of-range values are ignored and
// the service starts at 0.
func WithStart(index int) Option {
	return func(s *Service) {
		if s.inRange(index) {
			s.state.Current = index
		}
	}
}

// WithLogger sets the logger used for transition tracing
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithObserver subscribes o before the service is returned
func WithObserver(o Observer) Option {
	return func(s *Service) {
		s.Subscribe(o)
	}
}

// NewService creates a navigator over total slides
func NewService(total int, opts ...Option) (*Service, error) {
	if total < 1 {
		return nil, ErrEmptyDeck
	}

	s := &Service{
		state: &State{
			Current: 0,
			Total:   total,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Subscribe registers a collaborator. Nil observers are ignored.
func (s *Service) Subscribe(o Observer) {
	if o == nil {
		return
	}
	s.observers = append(s.observers, o)
}

// CurrentIndex returns the index of the slide on display
func (s *Service) CurrentIndex() int {
	return s.state.Current
}

// TotalSlides returns the number of slides in the deck
func (s *Service) TotalSlides() int {
	return s.state.Total
}

// GoTo moves to index and notifies every observer. Requests outside
// [0, TotalSlides) are dropped without notification. Re-entering the
// current slide is a transition and notifies like any other.
func (s *Service) GoTo(index int) bool {
	if !s.inRange(index) {
		s.logger.Debug("ignoring out-of-range slide request",
			zap.Int("index", index),
			zap.Int("total", s.state.Total))
		return false
	}

	from := s.state.Current
	s.state.Current = index
	s.logger.Debug("slide transition", zap.Int("from", from), zap.Int("to", index))

	for _, o := range s.observers {
		o.SlideChanged(index)
	}
	for _, o := range s.observers {
		o.SlideEntered(index)
	}
	for _, o := range s.observers {
		o.ScrollReset(index)
	}
	return true
}

// Next advances one slide. It does not wrap.
func (s *Service) Next() bool {
	if s.state.Current+1 >= s.state.Total {
		return false
	}
	return s.GoTo(s.state.Current + 1)
}

// Previous goes back one slide
func (s *Service) Previous() bool {
	if s.state.Current <= 0 {
		return false
	}
	return s.GoTo(s.state.Current - 1)
}

// First jumps to the opening slide
func (s *Service) First() bool {
	return s.GoTo(0)
}

// Last jumps to the closing slide
func (s *Service) Last() bool {
	return s.GoTo(s.state.Total - 1)
}

// Dispatch executes an inbound command
func (s *Service) Dispatch(cmd Command) bool {
	switch cmd.Kind {
	case KindGoTo:
		return s.GoTo(cmd.Index)
	case KindNext:
		return s.Next()
	case KindPrevious:
		return s.Previous()
	case KindFirst, KindRestart:
		return s.First()
	case KindLast:
		return s.Last()
	case KindAdvance:
		return s.Dispatch(Command{Kind: s.Controls().AdvanceCommand})
	}
	s.logger.Warn("unknown navigation command", zap.String("kind", string(cmd.Kind)))
	return false
}

func (s *Service) inRange(index int) bool {
	return index >= 0 && index < s.state.Total
}
