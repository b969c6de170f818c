// Package hcl provides the concrete HCL implementation for the configuration
// loading interface defined in the `config` package. It is responsible for
// all file parsing, expression evaluation, and HCL-to-model translation.
package hcl
