// Package file provides file-backed implementations of the driven
// storage ports. Corpus documents are JSON files produced by an
// external build step; reference documents are plain text served
// verbatim. Both are read-only for the life of the process.
package file
