// Package catalog serves the product list from a static JSON file.
//
// The file holds an array of products:
//
//	[
//	  {"slug": "go-basics", "title": "Go Basics", "file": "go-basics.pdf"}
//	]
//
// Reads go through an mtime-based cache, so the file is parsed once and
// re-read only after it changes on disk. Listing failures degrade to an
// empty catalog; lookups report ErrProductNotFound for unknown slugs.
package catalog
