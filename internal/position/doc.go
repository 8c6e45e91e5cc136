// Package position computes ordering for items inside a scope.
//
// A scope is any list whose elements carry a zero-based rank: the flat
// ingredient list, one section's items, or the section list itself. After
// every operation in this package the returned scopes hold ranks exactly
// 0..n-1 with no duplicates and no gaps.
//
// All functions are pure. Inputs are never mutated; results are fresh
// slices whose elements are copies of the inputs with new ranks assigned.
//
// Errors follow two categories:
//
//   - Out-of-range indices passed to ReorderWithinScope (or a bad source
//     index to MoveBetweenScopes) are caller bugs and return *RangeError.
//   - Duplicate, negative or missing ranks in stored data are data-quality
//     problems. They are reported by DetectPositionConflicts and Diagnose,
//     and repaired by AutoCorrectPositions. They are never errors.
package position
