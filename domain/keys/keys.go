package keys

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxCollectionName is used for prefixing collection name cache entries
	PfxCollectionName = "collectionName"
	// PfxTokenMetadata is used for prefixing token metadata cache entries
	PfxTokenMetadata = "tokenMetadata"
)

// MD5 hashes the data with md5
func MD5(data string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(data)))
}

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix extracts the prefix of a key, which is everything before the last component.
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	if len(s) < 2 {
		return ""
	}
	return strings.Join(s[:len(s)-1], ":")
}
