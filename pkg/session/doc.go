// Package session manages the authenticated identity of the current
// application user: the bearer token and the profile record, both persisted
// through a kv.Store so the session survives process restarts.
//
// A Manager is the sole writer of its persisted keys. Consumers construct
// one at startup, call Restore before rendering anything session-dependent,
// and read through User / Token / IsAuthenticated afterwards.
//
//	store, _ := kv.NewFileStore(statePath)
//	manager := session.New(store,
//	    session.WithResolver(session.ResolverFunc(func(ctx context.Context, token string) (session.User, error) {
//	        u, err := api.Me(ctx, token)
//	        if err != nil {
//	            return session.User{}, err
//	        }
//	        return session.User{ID: u.ID, Name: u.Name, Email: u.Email}, nil
//	    })),
//	)
//	manager.Restore(ctx)
//
// # Failure Semantics
//
// The manager favors availability over strict durability. Storage write
// failures are logged and the in-memory state stays committed; register a
// persist-error handler to observe them. A profile that cannot be resolved
// remotely degrades to a fixed placeholder identity rather than tearing the
// session down, so the session still reports authenticated in that case.
package session
