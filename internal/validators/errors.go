package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyCipher       = errors.New("cipher is required")
	ErrInvalidOperation  = errors.New("operation must be encrypt or decrypt")
	ErrUnexpectedFile    = errors.New("text mode must not carry a file")
	ErrEmptyTransposeKey = errors.New("column key is required for the super cipher")
	ErrEmptySuperKey     = errors.New("vigenere key is required for the super cipher")
	ErrAffineNotCoprime  = errors.New("affine a must be coprime with 26")
	ErrInvalidHillMatrix = errors.New("hill matrix must be a non-empty square matrix")
)
