package bridge

import "github.com/sirupsen/logrus"

// Option is a function that configures the bridge.
type Option func(b *Bridge)

// WithBaseURL sets the process-wide upstream base URL used when a request
// does not carry its own.
func WithBaseURL(baseURL string) Option {
	return func(b *Bridge) {
		b.baseURL = baseURL
	}
}

// WithIDGenerator overrides the correlation id generator, mainly for tests.
func WithIDGenerator(generator IDGenerator) Option {
	return func(b *Bridge) {
		b.nextID = generator
	}
}

// WithLogger sets the bridge logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(b *Bridge) {
		b.logger = logger
	}
}
