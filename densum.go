// Package densum extracts the main content of HTML news articles with the
// density-sum algorithm. Every element below <body> is scored on a
// composite text density that rewards prose and penalises markup and link
// text, and a variance-minimising split of the scores separates article
// content from navigation, ads and link lists.
//
// This package contains domain types, interfaces and the library-free
// numeric core. Implementations live in subdirectories named after their
// primary dependency (e.g., goquery/, bluemonday/, sqlite/).
package densum
