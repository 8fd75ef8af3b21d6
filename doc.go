// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Movie Night API server.

Movie Night coordinates a shared movie-picking session: a host creates a
night and shares its token, friends join under a display name, propose
movies, and vote within per-night limits while the server keeps a live
ranking.

# Starting the Server

The in-memory store needs no configuration:

	go run .

With a database:

	DATABASE_TYPE=sqlite DATABASE_URL=movie-night.db go run .
	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

A .env file in the working directory is loaded automatically.

# Configuration

Optional settings:

  - PORT (-p): server port (default: 3319)
  - DATABASE_TYPE (-t): memory, sqlite or postgres (default: memory)
  - DATABASE_URL (-d): connection string (required for sqlite/postgres)
  - BASE_URL (-b): public base URL for invite links

# Architecture

The server separates the session engine from HTTP plumbing:

  - engine: session store, membership, proposals, voting, stats
  - db: SQL persistence backend for the engine's store
  - token: night token generation
  - handlers: HTTP request handlers
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: domain and wire types
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
