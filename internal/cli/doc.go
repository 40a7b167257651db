// Package cli defines the Cobra command tree for the fastforge CLI. Each file
// in this package registers one top-level command (new, doctor, config,
// version) with the root command. Command implementations delegate to internal
// packages for the scaffolding logic and only handle flag parsing, I/O
// formatting, and user interaction.
package cli
