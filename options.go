package friendnet

import (
	"fmt"
	"math"

	"github.com/opd-ai/friendnet/compress"
	"github.com/opd-ai/friendnet/crypto"
)

// Options configures a Messenger.
type Options struct {
	// Keys controls keypairs generated for people who have none.
	Keys crypto.KeyOptions

	// Lossiness is used by SendCompressedDefault.
	Lossiness float64
}

// NewOptions returns the default options.
func NewOptions() *Options {
	return &Options{
		Keys:      crypto.DefaultKeyOptions(),
		Lossiness: compress.DefaultLossiness,
	}
}

func (o *Options) validate() error {
	if err := o.Keys.Validate(); err != nil {
		return fmt.Errorf("invalid key options: %w", err)
	}
	if math.IsNaN(o.Lossiness) || o.Lossiness < 0 || o.Lossiness > 1 {
		return fmt.Errorf("%w: got %v", compress.ErrInvalidLossiness, o.Lossiness)
	}
	return nil
}
