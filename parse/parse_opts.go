package parse

import "fmt"

type parseOpts struct {
	comments bool
	filename string
}

func newParseOpts(opts []Option) *parseOpts {
	pOpts := &parseOpts{comments: true}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

func (o *parseOpts) wrap(err error) error {
	if o.filename == "" {
		return err
	}
	return fmt.Errorf("%s: %w", o.filename, err)
}

type Option func(*parseOpts)

// KeepComments controls whether comment lines are attached to the
// records that follow them. It defaults to true.
func KeepComments(v bool) Option {
	return func(o *parseOpts) { o.comments = v }
}

// WithFilename names the input source in error messages.
func WithFilename(name string) Option {
	return func(o *parseOpts) { o.filename = name }
}
