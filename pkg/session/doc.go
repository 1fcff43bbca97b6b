// Package session provides cookie-backed visitor sessions with pluggable
// storage and transport.
//
// Sessions are anonymous key/value bags identified by a random token. The
// token travels in a signed cookie; session state lives server-side in a
// Store (in-memory by default).
//
// Basic usage:
//
//	cookieMgr, _ := cookie.New([]string{secret})
//	manager := session.New(session.WithCookieManager(cookieMgr))
//	defer manager.Close()
//
//	r.Use(manager.EnsureSession)
//
// Handlers read the session from the request context:
//
//	sess := session.MustFromContext(r.Context())
//	sess.Set("username", "alice")
//	manager.Update(r.Context(), sess)
package session
