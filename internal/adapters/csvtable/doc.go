// Package csvtable reads and writes header-driven CSV tables
//
// Design choices:
//   - Columns are resolved by header name once, so input column order is free
//     and extra columns are ignored. A missing required column fails at open.
//   - Every record must have as many fields as the header; anything else is a
//     decode error, never skipped.
//   - The writer streams rows and Close always flushes, so a run that fails
//     midway still leaves a well-formed (if short) file.
package csvtable
