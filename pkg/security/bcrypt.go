// Package security contains everything related to the security of user data
package security

import "golang.org/x/crypto/bcrypt"

// Well-formed hash of a throwaway password. Compared against when a login
// hits an unknown email so both failure paths cost about the same.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type Bcrypt struct {
	Cost int
}

func New() *Bcrypt {
	return &Bcrypt{
		Cost: 10,
	}
}

func (b *Bcrypt) GenerateFromPassword(p string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(p), b.Cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPasswd compares a password p with the stored encoded hash e
func (b *Bcrypt) VerifyPasswd(p, e string) (ok bool, err error) {
	err = bcrypt.CompareHashAndPassword([]byte(e), []byte(p))
	if err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// DummyVerify burns one hash comparison and always reports a mismatch
func (b *Bcrypt) DummyVerify(p string) {
	bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(p))
}
