package security

import "golang.org/x/crypto/bcrypt"

const hashCost = 12

// dummyHash is a well-formed bcrypt digest used to equalize the cost of login
// attempts against unknown usernames with attempts against known ones.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifyPassword(plaintext string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// BurnPassword runs a bcrypt comparison against a throwaway digest. Callers
// invoke it on the "user not found" path so that path is not observably
// faster than a failed password check.
func BurnPassword(plaintext string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plaintext))
}
