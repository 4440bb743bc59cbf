// Package store provides an in-memory configuration backend for scopehint.
//
// MemoryConfig keeps one configuration tree per scope (default, each website,
// each store) together with the website and store directories, and resolves
// values the way the host does: a store inherits from its website, which
// inherits from the default scope. It satisfies scopehint.ConfigReader,
// scopehint.WebsiteDirectory and scopehint.StoreDirectory, which makes it the
// backend for tests, the examples and hosts that mirror their configuration
// into memory.
//
// Deterministic keys:
//
//	Ref.Identifier() yields "default", "websites/<id>" or "stores/<id>".
package store
