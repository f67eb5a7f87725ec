package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/yukikurage/family-task-api/internal/constants"
)

// NewWorkspaceCode returns a random UUID identifying a new workspace.
func NewWorkspaceCode() string {
	return uuid.NewString()
}

// NewPasscode generates an uppercase alphanumeric join secret.
// A non-positive length falls back to constants.DefaultPasscodeLength.
func NewPasscode(length int) (string, error) {
	if length <= 0 {
		length = constants.DefaultPasscodeLength
	}

	alphabet := constants.PasscodeAlphabet
	max := big.NewInt(int64(len(alphabet)))

	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate passcode: %w", err)
		}
		code[i] = alphabet[n.Int64()]
	}

	return string(code), nil
}
