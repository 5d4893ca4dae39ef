// Package renamer computes and applies the new name of each visited file.
//
// Only the base name is transformed; the extension is reattached
// unchanged. Three modes exist:
//
//	replace        every occurrence of from → to, always renames
//	prefixReplace  leading from → to, only if the base starts with from
//	suffixReplace  trailing from → to, only if the base ends with from
//
// All comparisons are case-sensitive. Files are renamed within their own
// directory. A failed rename is logged, counted in the Report and does
// not stop the batch. When two files map to the same target, the result
// is whatever the host rename primitive does (on POSIX the later rename
// replaces the earlier file).
package renamer
