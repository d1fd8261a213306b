// Package library holds the named primitive actions a robot can execute.
package library
