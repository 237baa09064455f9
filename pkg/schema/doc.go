// Package schema identifies amis documents by origin so loaders can read them
// from files, fs.FS entries or URLs without leaking implementation details.
package schema
