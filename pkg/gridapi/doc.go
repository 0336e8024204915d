// Package gridapi provides types, interfaces, and helpers for working with
// the Grid People API.
//
// # Overview
//
// The gridapi package defines the domain types (e.g., Employee, Department,
// LeaveRequest, PayrollRun) and the interfaces for resource-oriented clients
// (e.g., EmployeesClient, LeaveRequestsClient). A concrete implementation of
// these clients is provided by the gridclient package, which wires
// configuration, transport, and authentication. Most consumers should import
// gridclient to construct a client and then interact with the resource client
// interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/peoplegrid/gridapi/pkg/gridapi"
//	  "github.com/peoplegrid/gridapi/pkg/gridclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := gridclient.New(&gridapi.Config{
//	    APIEndpoint: "https://api.peoplegrid.dev",
//	    APIToken:    "grid_live_...",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of employees
//	  employees, err := cli.Employees().List(ctx, gridapi.NewListOptions().WithLimit(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = employees
//	}
//
// # Cursor pagination
//
// List endpoints return one page at a time along with an opaque next_cursor
// token. The PageIterator converts any page-fetching operation into a lazy
// sequence of items that fetches subsequent pages on demand:
//
//	it := cli.Employees().ListAll(ctx, gridapi.NewListOptions().WithFilter("status", "active"))
//	for it.HasNext() {
//	  employee, err := it.Next()
//	  if err != nil { break }
//	  _ = employee
//	}
//
// or collect everything at once:
//
//	all, err := it.All()
//
// Page fetches are strictly sequential and happen only when the consumer
// keeps pulling; abandoning an iterator mid-listing issues no further
// requests. Any page fetch failure ends the sequence after being returned
// once; items from earlier pages remain valid.
//
// # Errors
//
// API errors are represented by APIError. Helpers such as IsNotFound,
// IsUnauthorized, and IsForbidden make it easy to branch on common cases.
//
// # Interceptors and caching
//
// The package includes request/response interceptors (for logging, custom
// headers, client-side rate limiting) and a pluggable Cache abstraction with
// in-memory and NATS KV backends. The gridclient package composes these
// pieces for a sensible default client.
package gridapi
