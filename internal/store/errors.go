// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors of the session store. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrSessionNotFound means no session has been saved under the storage
	// location yet. It is the normal first-run condition, not a failure.
	ErrSessionNotFound = errors.New("session not found")

	// ErrCorruptSession is returned when session.json exists but cannot be
	// decoded. The file is left untouched for the operator to inspect.
	ErrCorruptSession = errors.New("session file is corrupt")

	// ErrStorageUnwritable is returned when the storage directory or the
	// session file cannot be created or replaced.
	ErrStorageUnwritable = errors.New("storage location is not writable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
