// Package editor is the host-facing adapter around the position engine.
//
// A Session holds one recipe in edit state. The UI forwards drag-and-drop
// results as DropEvent values and button presses as method calls; the
// session translates them into position, sections and convert operations
// and applies the result. Nothing here interprets pointer or touch input.
//
// Save is the boundary to persistence: it silently repairs position data,
// validates the whole document and only then hands it to a Persister.
//
// A Session is not safe for concurrent use. The host issues one operation
// at a time in response to discrete user gestures.
package editor
