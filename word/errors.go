package word

import "errors"

// ErrNilExponent indicates a syllable constructed by hand with a nil
// exponent reached an evaluation.
var ErrNilExponent = errors.New("word: syllable has nil exponent")
