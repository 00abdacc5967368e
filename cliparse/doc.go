/*
Package cliparse handles configuration from CLI flags and environment
variables, with a .env file loaded first for local development.

Flags take precedence over environment variables:

	-p / PORT            server port (default 3319)
	-d / DATABASE_URL    database URL, or sqlite file path
	-t / DATABASE_TYPE   sqlite (default) or postgres

With the sqlite default and no -d, state is written to boardgate.db in
the working directory.
*/
package cliparse
