// Package wiki is the transformation core for wiki publishing: it rewrites
// relative intra-repository markdown links and image paths into the flat
// page-name convention GitHub wikis use, leaving all other content
// untouched.
//
// The package is pure string manipulation. It performs no I/O, keeps no
// state between calls, and is safe to call concurrently. Malformed markdown
// (unterminated fences, unmatched backticks or brackets) degrades to a
// skipped rewrite, never to an error or corrupted output.
package wiki
