// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes using Go 1.22+ method/path routing.

# Routes

	GET  /health                        → liveness check
	POST /nights                        → create a movie night
	POST /nights/{token}/join           → join under a username
	GET  /nights/{token}                → night snapshot
	GET  /nights/{token}/users          → participants
	POST /nights/{token}/propose        → propose a movie
	POST /nights/{token}/vote/{movieId} → vote for a proposal
	GET  /nights/{token}/stats          → participation stats
	GET  /                              → service banner

All API routes are wrapped with request logging middleware. CORS is
applied once around the whole mux in main.
*/
package router
