// Package hcl provides the HCL implementation of config.Loader. It is
// responsible for file parsing, evaluating child references against the
// declared labels, and translating the schema structs into the
// format-agnostic model.
package hcl
