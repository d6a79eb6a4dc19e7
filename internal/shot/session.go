package shot

import (
	"errors"
	"image"
	"log"
)

// Session is one editing session: the current source, the current style
// and the last successfully rendered output. Every change re-renders.
//
// A Session has a single owner and is not safe for concurrent use.
type Session struct {
	compositor Compositor
	source     *Source
	style      Style
	output     *image.RGBA
	onRender   func(*image.RGBA)
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithCompositor overrides the compositor (and therefore its pixel budget).
func WithCompositor(c Compositor) SessionOption {
	return func(s *Session) { s.compositor = c }
}

// WithStyle sets the initial style instead of DefaultStyle.
func WithStyle(style Style) SessionOption {
	return func(s *Session) { s.style = style }
}

// OnRender registers a callback invoked with every freshly rendered buffer.
func OnRender(fn func(*image.RGBA)) SessionOption {
	return func(s *Session) { s.onRender = fn }
}

// NewSession starts an empty session.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{style: DefaultStyle()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load decodes data and, on success, replaces the source and re-renders.
//
// Payloads that are not images are ignored: Load returns (false, nil) and
// the session is unchanged. A decode failure returns the error and also
// leaves the session unchanged.
func (s *Session) Load(data []byte) (bool, error) {
	src, err := Decode(data)
	if errors.Is(err, ErrUnsupportedType) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	s.source = src
	return true, s.render()
}

// SetSource replaces the source with an already decoded one and re-renders.
// A nil src clears the source and the previous output.
func (s *Session) SetSource(src *Source) error {
	s.source = src
	if src == nil {
		s.output = nil
		return nil
	}
	return s.render()
}

// SetStyle replaces the style and re-renders.
func (s *Session) SetStyle(style Style) error {
	s.style = style
	return s.render()
}

// Reset drops the source and any rendered output. The style is kept.
func (s *Session) Reset() {
	s.source = nil
	s.output = nil
}

// Source returns the current source, or nil.
func (s *Session) Source() *Source { return s.source }

// Style returns the current style.
func (s *Session) Style() Style { return s.style }

// Output returns the last successfully rendered buffer, or nil.
func (s *Session) Output() *image.RGBA { return s.output }

// render replaces the output with a fresh render. A failed render keeps
// whatever was displayed before.
func (s *Session) render() error {
	out, err := s.compositor.Render(s.source, s.style)
	if err != nil {
		log.Printf("[shot] render skipped: %v", err)
		return err
	}
	if out == nil {
		return nil
	}
	s.output = out
	if s.onRender != nil {
		s.onRender(out)
	}
	return nil
}
