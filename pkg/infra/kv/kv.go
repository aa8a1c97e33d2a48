// Package kv provides fingerprint store backends: a filesystem store for
// local runs, Firestore and GCS stores for managed deployments, and an
// in-memory store for tests and dry runs. All implement interfaces.Store and
// are interchangeable from the core's perspective.
package kv
