// Package domain contains the shared types of the state engine: the State
// and UID scalar values, the Handler contract, and the error taxonomy used
// across the dispatch core and the store adapters.
package domain
