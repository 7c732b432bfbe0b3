package services

import "time"

const defaultStorageTimeout = 5 * time.Second

type serviceOptions struct {
	timeout time.Duration
	now     func() time.Time
}

// Option configures a service.
type Option func(*serviceOptions)

// WithStorageTimeout bounds every storage call made by the service.
func WithStorageTimeout(d time.Duration) Option {
	return func(o *serviceOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *serviceOptions) {
		if now != nil {
			o.now = now
		}
	}
}

func newOptions(opts []Option) serviceOptions {
	o := serviceOptions{timeout: defaultStorageTimeout, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
