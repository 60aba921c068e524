// Package web serves the Inflow marketing site.
//
// It composes the page modules behind one root handler, resolves the visitor's
// auth session for the header call-to-action, and owns the per-visitor contact
// form registry and the optional submission log for the life of the process.
package web
