// Package services implements the core business logic for readocs.
//
// Services implement the driving port interfaces and depend on the
// driven port interfaces for infrastructure. The package holds the
// lookup engine, the search engine, the query router that dispatches
// generic (corpus, operation) requests to them, and the reference
// document service.
package services
