package respack

import "log/slog"

// Option configures a Pack.
type Option func(*Pack)

// WithLogger sets the logger used for malformed-name warnings during
// namespace discovery and enumeration. By default warnings are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pack) {
		p.logger = logger
	}
}

// WithCloser sets the teardown action run by [Pack.Close], typically
// releasing whatever backs the pack's directory tree (an archive mount, a
// temporary extraction). The default is a no-op.
func WithCloser(closer func() error) Option {
	return func(p *Pack) {
		p.closer = closer
	}
}
