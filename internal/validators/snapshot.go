package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cipher-desk/internal/capability"
	"github.com/MKhiriev/go-cipher-desk/models"
)

// Field name constants used to restrict validation of a
// [models.FormSnapshot] to a subset of its parts.
const (
	// FieldCipher targets the cipher identifier.
	FieldCipher = "cipher"

	// FieldOperation targets the transform direction.
	FieldOperation = "operation"

	// FieldPayload rejects a file carried in text mode. File mode without a
	// file is left for the service to report.
	FieldPayload = "payload"

	// FieldSuper targets the two keys of the super cipher.
	FieldSuper = "super"

	// FieldAffine targets the affine coefficients.
	FieldAffine = "affine"

	// FieldHill targets the Hill key matrix.
	FieldHill = "hill"
)

// alphabetSize is the modulus of the letters-only ciphers.
const alphabetSize = 26

// SnapshotValidator implements the Validator interface for
// [models.FormSnapshot]. Parameter groups are only checked when present
// on the snapshot.
type SnapshotValidator struct {
}

// NewSnapshotValidator constructs a new SnapshotValidator and returns it as
// the Validator interface.
func NewSnapshotValidator() Validator {
	return &SnapshotValidator{}
}

// Validate accepts models.FormSnapshot or *models.FormSnapshot. With no
// fields every part is validated.
func (v *SnapshotValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FormSnapshot:
		return v.validateSnapshot(ctx, value, fields...)
	case *models.FormSnapshot:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSnapshot(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SnapshotValidator) validateSnapshot(_ context.Context, s models.FormSnapshot, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCipher, FieldOperation, FieldPayload, FieldSuper, FieldAffine, FieldHill}
	}

	for _, f := range fields {
		switch f {
		case FieldCipher:
			if strings.TrimSpace(s.CipherID.String()) == "" {
				return ErrEmptyCipher
			}
		case FieldOperation:
			if s.Operation != models.OperationEncrypt && s.Operation != models.OperationDecrypt {
				return ErrInvalidOperation
			}
		case FieldPayload:
			if s.Mode == models.ModeText && s.File != nil {
				return ErrUnexpectedFile
			}
		case FieldSuper:
			if s.CipherID != capability.Super {
				continue
			}
			if strings.TrimSpace(s.Key) == "" {
				return ErrEmptySuperKey
			}
			if strings.TrimSpace(s.Key2) == "" {
				return ErrEmptyTransposeKey
			}
		case FieldAffine:
			if s.Affine != nil && gcd(s.Affine.A, alphabetSize) != 1 {
				return fmt.Errorf("%w: a=%d", ErrAffineNotCoprime, s.Affine.A)
			}
		case FieldHill:
			if s.Hill != nil {
				if err := validateSquare(s.Hill.Matrix); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateSquare(matrix [][]int) error {
	if len(matrix) == 0 {
		return ErrInvalidHillMatrix
	}
	for i, row := range matrix {
		if len(row) != len(matrix) {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrInvalidHillMatrix, i, len(row), len(matrix))
		}
	}
	return nil
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
