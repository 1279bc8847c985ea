package config

import "fmt"

// CacheKeyStruct builds the Redis key names shared with the identity
// backend. Both services must agree on these formats.
type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// RevokedTokenKey returns the revocation marker key for a JWT ID. The
// identity backend sets this key when a session is terminated early; its
// presence means the token must be rejected.
func (r *CacheKeyStruct) RevokedTokenKey(jti string) string {
	return fmt.Sprintf("auth:revoked:%s", jti)
}

// UserSessionKey returns the active-session key for a user, holding the JTI
// of the most recently issued token.
func (r *CacheKeyStruct) UserSessionKey(userID int) string {
	return fmt.Sprintf("auth:session:%d", userID)
}

var CacheKey = NewCacheKeyStruct()
