// Package diary holds the client-side state machine of the diary view.
//
// A Controller combines the session store and the note service. It loads
// the note snapshot when activated, refetches after every create or delete,
// logs the user out on a 401, and owns the year/month filter selection.
// Filter and Years are the pure derivations applied to the snapshot.
package diary
