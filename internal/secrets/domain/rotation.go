package domain

import (
	"github.com/sindri-dev/secrets/internal/errors"
)

// KeyState is the rotation state of the stored records.
type KeyState string

const (
	// KeyStateActive means every record is wrapped for exactly one master key.
	KeyStateActive KeyState = "active"
	// KeyStateDualActive means records are readable by both the old and new keys.
	KeyStateDualActive KeyState = "dual_active"
)

var (
	// ErrRotationValidationFailed indicates the new key could not decrypt a rotated record.
	ErrRotationValidationFailed = errors.New("rotation validation failed")

	// ErrRotationIncomplete indicates some records could not be rotated.
	ErrRotationIncomplete = errors.New("rotation incomplete")

	// ErrRotationInProgress indicates another rotation holds the lock.
	ErrRotationInProgress = errors.Wrap(errors.ErrConflict, "rotation already in progress")
)

// RotationResult reports what a rotation did.
type RotationResult struct {
	State KeyState
	// ActiveKey is the public key every record is wrapped for after a completed rotation.
	ActiveKey string
	Rotated   []string
	Failed    map[string]error
}

// NewRotationResult returns an empty result in the given state.
func NewRotationResult(state KeyState) *RotationResult {
	return &RotationResult{State: state, Rotated: []string{}, Failed: map[string]error{}}
}
