// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CredentialOrigin identifies which credential source produced a [Credential].
type CredentialOrigin int

const (
	OriginUnknown CredentialOrigin = iota
	OriginSecureStore
	OriginPrompt
	OriginStatic
)

func (o CredentialOrigin) String() string {
	switch o {
	case OriginSecureStore:
		return "secure-store"
	case OriginPrompt:
		return "prompt"
	case OriginStatic:
		return "static"
	default:
		return "unknown"
	}
}

// Credential is a transient username/password pair. It is consumed by exactly
// one login attempt and is never written to disk by this module.
type Credential struct {
	Username string
	Password string
	Origin   CredentialOrigin
}

// Empty reports whether either half of the pair is missing.
func (c Credential) Empty() bool {
	return c.Username == "" || c.Password == ""
}

// String implements fmt.Stringer without exposing the password.
func (c Credential) String() string {
	return c.Username + " (" + c.Origin.String() + ")"
}
