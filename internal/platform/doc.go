// Package platform provides cross-platform filesystem operations. Permission
// changes use chmod directly on Unix systems and degrade to no-ops on Windows,
// which has no Unix-style permission bits.
package platform
