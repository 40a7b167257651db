// Package blueprint parses and validates project blueprint files: small YAML
// documents that declare the parameters of a project to scaffold (name,
// database URL, version, SQL echo). Blueprints are validated against an
// embedded JSON Schema before any filesystem mutation happens.
package blueprint
