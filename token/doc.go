// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package token generates night access tokens.

# Tokens

A token is a 5-character base62 string drawn from crypto/rand:

	tok, err := token.Generate()  // e.g. "x7Kq2"

Tokens are the only credential for a movie night: whoever has the token can
join, propose, and vote. They identify a night, they do not authenticate a
person.

# Collisions

62^5 tokens is enough for the expected volume, but generation is not
guaranteed unique. Callers that persist tokens must check for an existing
night and regenerate on collision (see engine.Store).

# Validation

Valid performs a cheap shape check before hitting storage:

	if !token.Valid(tok) { ... }
*/
package token
