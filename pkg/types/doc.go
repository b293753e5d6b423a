// Package types defines the Store and Table interfaces, the record types and
// the standard errors of the quantikind kind store.
package types
