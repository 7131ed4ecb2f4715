package guarded

import "context"

// DefaultBufferSize is the channel capacity of a subscription if not
// configured otherwise.
const DefaultBufferSize = 64

type options struct {
	ctx      context.Context
	capacity uint
}

func defaultOptions() options {
	return options{
		ctx:      context.Background(),
		capacity: DefaultBufferSize,
	}
}

// Option configures a guarded Tree.
type Option func(*options)

// WithContext ties the change broadcaster to ctx. Once ctx is done, no more
// changes are delivered.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithBufferSize sets the channel capacity of subscriptions.
func WithBufferSize(n uint) Option {
	return func(o *options) {
		o.capacity = n
	}
}
