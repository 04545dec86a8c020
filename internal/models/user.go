// Package models defines the persisted credential types.
package models

// CredentialRecord is what the store keeps for a single user: the salt and
// the hex SHA-256 of password+salt.
type CredentialRecord struct {
	Salt         string `json:"salt"`
	PasswordHash string `json:"password_hash"`
}

// UserStore maps a username to its credential record. It is serialized as a
// single flat JSON object.
type UserStore map[string]CredentialRecord

// Has reports whether username is present.
func (s UserStore) Has(username string) bool {
	_, ok := s[username]
	return ok
}
