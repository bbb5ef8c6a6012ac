// Package config defines the format-agnostic maze model and the Loader
// interface that turns maze files into it.
//
// The `config.Model` is the single source of truth for the `builder`
// package. Concrete loaders for HCL and YAML live in their own packages and
// never reach past the model into the graph.
package config
