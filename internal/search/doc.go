// Package search finds rows in CSV files that contain any of a list of terms.
//
// A Searcher discovers every ".csv" file under a root (see package fileutil),
// reads each one with encoding/csv, treats the first record as the header and
// tests every later record against the terms. A record's search text is its
// cells joined with single spaces; each term is a plain substring test, folded
// to lower case unless the request is case-sensitive. Terms are tried in order
// and the first hit wins, so a row is reported at most once.
//
// Files are processed one at a time. A file that cannot be opened, decoded or
// parsed is reported as a *models.FileError and contributes no matches; the
// scan always moves on to the next file.
package search
