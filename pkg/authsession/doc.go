// Package authsession manages the CRM client's single bearer credential:
// acquisition through the auth endpoints, local validity checks, identity
// lookup and invalidation.
//
// The manager holds no state of its own — the credential lives in a
// sessionstore.Store shared with the resource gateway. Check never makes
// a network call: it decodes the token's embedded expiry claim locally so
// route guards can gate rendering without a loading flash, and evicts the
// stored credential the moment it is found expired or malformed.
//
// A configured guest email gets special treatment on login: the session
// is marked Restricted and the redirect target becomes /profile instead
// of the dashboard. The mark is advisory UI state only; the server must
// enforce any actual restriction.
//
// Every failure is surfaced as a *apierr.Error whose message is suitable
// for direct display. The manager never retries.
package authsession
