// Package match ranks field names by edit distance.
//
// It backs the "did you mean" hints attached to unresolved paths.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Similarity: normalizes the distance to a 0..1 score
//   - Suggest: picks the closest candidates for a misspelled name
package match
