// Package compress implements lossy spectral compression of message text.
//
// The text's code points are treated as a signal, transformed with an FFT,
// and all but the largest-magnitude coefficients are zeroed. The inverse
// transform is rounded and clipped into printable ASCII, so the result has
// the same length as the input but generally differs from it.
package compress

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/dsp/fourier"
)

// AlgorithmFFT is the metadata tag for FFT-compressed bodies.
const AlgorithmFFT = "fft"

// DefaultLossiness is the fraction of coefficients discarded when callers
// do not choose one.
const DefaultLossiness = 0.5

// Printable ASCII bounds for reconstructed characters.
const (
	minPrintable = 32
	maxPrintable = 126
)

// ErrInvalidLossiness is returned for a lossiness outside [0, 1].
var ErrInvalidLossiness = errors.New("lossiness must be within [0, 1]")

// Metadata describes how a compressed body was produced.
type Metadata struct {
	Algorithm      string  `json:"compression"`
	OriginalLength int     `json:"original_length"`
	Lossiness      float64 `json:"lossiness"`
}

// Map renders the metadata as a message metadata record.
func (m Metadata) Map() map[string]any {
	return map[string]any{
		"compression":     m.Algorithm,
		"original_length": m.OriginalLength,
		"lossiness":       m.Lossiness,
	}
}

// Compress keeps max(1, floor(n*(1-lossiness))) of the n spectral
// coefficients of message and returns the reconstructed text. Among
// coefficients of equal magnitude the lower index is kept.
func Compress(message string, lossiness float64) (string, Metadata, error) {
	if math.IsNaN(lossiness) || lossiness < 0 || lossiness > 1 {
		return "", Metadata{}, fmt.Errorf("%w: got %v", ErrInvalidLossiness, lossiness)
	}

	runes := []rune(message)
	n := len(runes)
	meta := Metadata{
		Algorithm:      AlgorithmFFT,
		OriginalLength: n,
		Lossiness:      lossiness,
	}
	if n == 0 {
		return "", meta, nil
	}

	seq := make([]complex128, n)
	for i, r := range runes {
		seq[i] = complex(float64(r), 0)
	}

	fft := fourier.NewCmplxFFT(n)
	coeffs := fft.Coefficients(nil, seq)

	keep := int(float64(n) * (1 - lossiness))
	if keep < 1 {
		keep = 1
	}
	truncate(coeffs, keep)

	// Sequence is unnormalized; divide by n to invert Coefficients.
	recon := fft.Sequence(nil, coeffs)

	var sb strings.Builder
	sb.Grow(n)
	for _, v := range recon {
		sb.WriteRune(rune(clip(math.Round(real(v) / float64(n)))))
	}

	logrus.WithFields(logrus.Fields{
		"function":        "Compress",
		"original_length": n,
		"lossiness":       lossiness,
		"kept":            keep,
	}).Debug("Message compressed")

	return sb.String(), meta, nil
}

// truncate zeroes every coefficient outside the keep largest by magnitude.
func truncate(coeffs []complex128, keep int) {
	order := make([]int, len(coeffs))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ma, mb := cmplx.Abs(coeffs[order[a]]), cmplx.Abs(coeffs[order[b]])
		if ma != mb {
			return ma < mb
		}
		return order[a] > order[b]
	})
	for _, idx := range order[:len(coeffs)-keep] {
		coeffs[idx] = 0
	}
}

func clip(v float64) int {
	if v < minPrintable {
		return minPrintable
	}
	if v > maxPrintable {
		return maxPrintable
	}
	return int(v)
}
