package utils

import (
	"github.com/matthewhartstonge/argon2"
)

var hashConfig = argon2.DefaultConfig()

// SetHashCost overrides the argon2 cost parameters used for new hashes.
// Zero values keep the library defaults. Existing hashes stay verifiable
// because the parameters are embedded in the encoded form.
func SetHashCost(timeCost, memoryKiB uint32, parallelism uint8) {
	if timeCost > 0 {
		hashConfig.TimeCost = timeCost
	}
	if memoryKiB > 0 {
		hashConfig.MemoryCost = memoryKiB
	}
	if parallelism > 0 {
		hashConfig.Parallelism = parallelism
	}
}

func HashPassword(password string) (string, error) {
	encoded, err := hashConfig.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword returns false with a nil error for a wrong password. An
// error means the stored hash itself could not be decoded.
func VerifyPassword(encodedHash, password string) (bool, error) {
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
	if err != nil {
		return false, err
	}
	return ok, nil
}
