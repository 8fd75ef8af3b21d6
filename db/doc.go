// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db provides schema creation and the SQL-backed session store.

# Schema

CreateSchema creates the night table (idempotent):

	if err := db.CreateSchema(conn); err != nil { ... }

A night is one row: the token as primary key plus a JSON payload column
holding the full session document. The engine enforces every invariant in
memory under a per-token lock, so the database only needs durability and
token uniqueness.

# Store

Store implements engine.Backend:

	store := engine.NewStore(db.NewStore(conn))

Insert uses ON CONFLICT DO NOTHING and reports a token collision through
engine.ErrTokenCollision; Put is a plain upsert. The SQL sticks to the
dialect both lib/pq and modernc.org/sqlite understand ($n placeholders,
ON CONFLICT), so DATABASE_TYPE switches drivers without code changes.
*/
package db
