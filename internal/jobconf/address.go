package jobconf

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidAddress = errors.New("invalid object address")

const scheme = "s3://"

// Address locates a single object.
type Address struct {
	Bucket string
	Key    string
}

func (a Address) String() string {
	return scheme + a.Bucket + "/" + a.Key
}

// ParseAddress splits "s3://bucket/key" into its bucket and key.
func ParseAddress(s string) (Address, error) {
	rest, ok := strings.CutPrefix(s, scheme)
	if !ok {
		return Address{}, fmt.Errorf("%w: %q must start with %s", ErrInvalidAddress, s, scheme)
	}
	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return Address{}, fmt.Errorf("%w: %q must name a bucket and an object key", ErrInvalidAddress, s)
	}
	return Address{Bucket: bucket, Key: key}, nil
}
