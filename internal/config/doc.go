// Package config loads prompt configuration from TOML or YAML files:
// key bindings, completion options, and the optional extension script.
//
// Key bindings are declarative (key spec string to action name); the
// host registers a handler per action name and the binding order in the
// file becomes the dispatch order, so an earlier binding shadows later
// ones that match the same chord.
package config
