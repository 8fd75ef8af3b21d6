/*
Package cliparse parses CLI flags with environment variable fallback.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Flags take precedence over environment variables:

  - -p / PORT: server port (default 3319)
  - -t / DATABASE_TYPE: memory, sqlite or postgres (default memory)
  - -d / DATABASE_URL: connection string (required unless memory)
  - -b / BASE_URL: public base URL used to build invite links
    (default http://localhost:PORT)

The memory backend keeps nights in process memory only; sqlite and
postgres persist them through the db package.
*/
package cliparse
