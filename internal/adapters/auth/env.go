// Package auth provides the credential source consulted before dynamic
// route initialization.
package auth

import "os"

// EnvToken is the environment variable holding the session credential.
const EnvToken = "ROUTEFLOW_TOKEN"

// Env reads the credential from the process environment. It satisfies
// ports.CredentialSource.
type Env struct{}

// Token returns the credential and whether one is present.
func (Env) Token() (string, bool) {
	token := os.Getenv(EnvToken)
	return token, token != ""
}

// Static is a fixed credential source, mainly for tests and embedding.
type Static struct {
	Value string
}

// Token returns the fixed credential and whether it is non-empty.
func (s Static) Token() (string, bool) {
	return s.Value, s.Value != ""
}
