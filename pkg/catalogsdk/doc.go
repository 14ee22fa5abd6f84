/*
Package catalogsdk is a Go client for the democat catalog service.

An SDKClient covers the public endpoints and logs in; a Session carries the
resulting bearer token for everything else:

	client := catalogsdk.NewSDKClient("http://localhost:8080")

	// One-time setup of the first admin
	admin, err := client.Bootstrap(ctx, bootstrapToken, catalogsdk.BootstrapRequest{...})

	session, err := client.Login(ctx, "ana@example.com", "secret")

	// Admin: review the renewal queue
	pending, err := session.PendingRequests(ctx)
	decision, err := session.ApproveRequest(ctx, pending.Requests[0].ID, "")

	// Viewer: ask for more time
	req, err := session.CreateRequest(ctx, catalogsdk.CreateRequestRequest{})

# Errors

Non-2xx responses come back as *APIError. Use errors.Is with the package
sentinels to branch on the kind:

	if errors.Is(err, catalogsdk.ErrConflict) {
		// e.g. the request was already decided
	}

Sessions check scopes locally before sending a request unless
SDKClient.CheckScopes is false.
*/
package catalogsdk
