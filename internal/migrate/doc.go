// Package migrate invokes the external migration tool (alembic) inside a
// freshly scaffolded project. The tool is treated as an opaque subprocess:
// only its captured output and exit code matter. Invocations set the child
// process working directory explicitly instead of chdir-ing the whole
// process, so the caller's working directory is never touched.
package migrate
