// Package args turns raw command-line tokens into a validated
// model.Invocation.
//
// The surface syntax is "-key value" pairs in any order, for example:
//
//	replacename -m pr -from report_ -to draft_
//
// The whole command line is lowercased before anything else happens, so
// option names AND values (including -from and -to) reach the renamer in
// lowercase. An uppercase -from value therefore never matches a file name
// that contains uppercase letters.
//
// Tokens are classified against an explicit flag table (name, required,
// arity). Unknown flags are collected into Invocation.Options and
// otherwise ignored.
package args
