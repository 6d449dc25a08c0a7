// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginOutcome is the result of one login attempt: either a new [Session]
// or the reason the attempt failed.
type LoginOutcome struct {
	Session Session
	Reason  error
}

// LoginSucceeded builds a successful outcome.
func LoginSucceeded(session Session) LoginOutcome {
	return LoginOutcome{Session: session}
}

// LoginFailed builds a failed outcome carrying reason.
func LoginFailed(reason error) LoginOutcome {
	return LoginOutcome{Reason: reason}
}

// Succeeded reports whether the attempt produced a session.
func (o LoginOutcome) Succeeded() bool {
	return o.Reason == nil
}
