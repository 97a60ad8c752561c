// SPDX-License-Identifier: MIT

package hill

// Option configures a Cipher.
type Option func(*cipherOptions)

type cipherOptions struct {
	src Source
}

func defaultOptions() cipherOptions {
	return cipherOptions{src: CryptoSource{}}
}

// WithSource sets the padding Source. A nil src keeps the default CryptoSource.
func WithSource(src Source) Option {
	return func(o *cipherOptions) {
		if src != nil {
			o.src = src
		}
	}
}

// WithSeed pads from NewSeededSource(seed), giving reproducible ciphertext.
func WithSeed(seed int64) Option {
	return func(o *cipherOptions) {
		o.src = NewSeededSource(seed)
	}
}
