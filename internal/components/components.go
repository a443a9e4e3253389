// Package components holds the templ views of the web shell.
package components

//go:generate templ generate
