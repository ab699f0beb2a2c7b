// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by stores and repositories to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrKeyNotFound is returned by [KVStore.Get] when the key has never been
	// written.
	ErrKeyNotFound = errors.New("key not found")

	// ErrBookmarkNotFound is returned when a bookmark id is unknown for the
	// owner.
	ErrBookmarkNotFound = errors.New("bookmark was not found")

	// ErrInvalidBookmark is returned when the database rejects a bookmark
	// because it violates a check or not-null constraint.
	ErrInvalidBookmark = errors.New("bookmark violates a storage constraint")

	// ErrTransient is returned when the database failure is classified as
	// retryable (connection loss, serialization failure, deadlock).
	ErrTransient = errors.New("transient database error")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
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
	ErrScanningRows = errors.New("failed to scan bookmark rows")

	// ErrEncodingValue is returned when a value cannot be serialised for
	// storage or decoded after reading it back.
	ErrEncodingValue = errors.New("failed to encode stored value")
)
