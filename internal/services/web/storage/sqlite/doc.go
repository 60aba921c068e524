// Package sqlite provides the contact submission log backed by SQLite.
package sqlite
