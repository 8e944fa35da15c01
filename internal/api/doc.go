// Package api implements the msgfmt HTTP endpoints.
//
// PatternHandler parses and formats ad-hoc patterns through a
// patterncache.Compiler:
//
//	POST /v1/parse           parts, flags and the auto-quoted pattern
//	POST /v1/format          render a pattern with arguments
//	GET  /v1/arguments/{name} check an argument name or number
//
// TranslationHandler renders catalog messages:
//
//	POST /v1/translate       look up and format a catalog key
//
// Parse failures are returned as 422 errors whose body carries the byte
// offset, the error kind and the pattern excerpt around the failure.
package api
