// Package sofascore is a minimal client for the SofaScore team image
// endpoint, GET /api/v1/team/{id}/image.
//
// Requests carry browser-like User-Agent, Referer and Accept headers and are
// bounded by a per-request timeout (15s by default). Errors are returned as
// *errors.Error values so callers can tell HTTP failures, which carry a
// status code, from transport failures and timeouts, which carry code 0.
//
// Usage:
//
//	client := sofascore.NewClient(15*time.Second, log)
//	data, err := client.FetchTeamImage(ctx, 17)
package sofascore
