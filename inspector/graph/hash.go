package graph

import (
	"fmt"

	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// Fingerprint returns data hash as fixed width hex
func Fingerprint(data []byte) (string, error) {
	value, err := Hash(data)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", value), nil
}
