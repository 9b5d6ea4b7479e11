// Package views renders the admin panel pages as templ components.
//
// Components are plain templ.ComponentFunc values so pages compose without a
// code generation step. Every dynamic value goes through templ.EscapeString.
package views
