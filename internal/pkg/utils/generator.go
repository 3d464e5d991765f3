package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

func GenerateUUID() string {
	return uuid.NewString()
}

func GenerateDonorCode() (string, error) {
	suffix, err := randomAlphanumeric(8)
	if err != nil {
		return "", err
	}
	return "DNR-" + suffix, nil
}

func GenerateDonationCode(now time.Time) (string, error) {
	suffix, err := randomAlphanumeric(6)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("DON-%s-%s", now.Format("20060102"), suffix), nil
}

func randomAlphanumeric(length int) (string, error) {
	const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	max := big.NewInt(int64(len(charset)))

	out := make([]byte, length)
	for i := range out {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = charset[num.Int64()]
	}
	return string(out), nil
}
