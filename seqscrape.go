// Package seqscrape archives the text of numbered article series. Given one
// example URL such as https://site.com/article/7.html it derives the whole
// sequence, fetches every page, extracts the article body and writes the
// results as a single plain-text document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package seqscrape
