// Package apiclient provides a typed REST client for the remote shop API:
// product catalog reads, admin product CRUD, and the login / register /
// profile endpoints.
//
// # Usage
//
//	client, err := apiclient.New("https://shop.example.com/v1")
//	if err != nil {
//	    // handle error
//	}
//
//	products, err := client.ListProducts(ctx)
//
//	result, err := client.Login(ctx, apiclient.Credentials{
//	    Email:    "user@example.com",
//	    Password: "secret",
//	})
//
// # Error Handling
//
// Failures are classified at the boundary:
//
//   - ErrUnreachable    – transport-level failure, the API never answered
//   - *APIError         – non-success HTTP status with the best-effort
//     message extracted from the body ("message" or "error" field)
//   - ErrInvalidPayload – the response decoded but failed schema validation
//   - validator.ValidationErrors – local form validation rejected the input
//     before any network call was made
//
// Admin endpoints require a bearer token and fail fast with ErrMissingToken
// when none is supplied.
package apiclient
