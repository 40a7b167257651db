// Package scaffold generates a FastAPI + SQLite + Alembic project tree from
// embedded templates. It powers the "fastforge new" command, producing the
// directory structure, configuration files, ORM and schema stubs, setup
// scripts, and README for a fresh project. The emitted layout is driven by
// explicit ordered tables in layout.go so the file list stays mechanically
// verifiable against the template set.
package scaffold
