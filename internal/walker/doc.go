// Package walker visits every file below a root directory, depth-first.
//
// Filesystem access goes through the small FileSystem capability
// (ListChildren and Rename) so that the renamer can be tested against an
// in-memory tree as well as a real temporary directory. OSFileSystem is
// the production implementation backed by the os package.
//
// Design decisions:
//   - Directories are never handed to the visit callback, only recursed into.
//   - A directory that cannot be listed contributes no visits. The failure
//     is logged at debug level and the walk continues with its siblings.
//   - There is no depth limit and no symlink-loop protection. Symlinks are
//     reported by OSFileSystem as non-directories, so they are visited
//     (and renamed) like regular files rather than followed.
package walker
