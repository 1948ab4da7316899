// Package ports defines the interfaces between the dispatch core and its
// pluggable collaborators. Backends are selected at construction time by
// injecting an implementation, never by branching on a mode flag inside the
// engine.
package ports
