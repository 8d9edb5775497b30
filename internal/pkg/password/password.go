package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidHash marks a stored hash that bcrypt cannot parse at all,
// as opposed to a hash that simply does not match the plaintext.
var ErrInvalidHash = errors.New("invalid password hash")

func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plain matches hashed. A mismatch is (false, nil);
// the only error case is a stored hash bcrypt cannot decode.
func Verify(plain, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, ErrInvalidHash
	}
}
