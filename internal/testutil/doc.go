// Package testutil holds fixtures shared by package tests: fixed ids,
// small valid recipe documents and a recording persister.
package testutil
