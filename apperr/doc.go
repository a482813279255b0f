/*
Package apperr defines the error taxonomy shared across layers.

Three sentinel errors classify failures the API reports distinctly:

  - ErrValidation: malformed or out-of-constraint input, rejected at the
    boundary before any store mutation (HTTP 400)
  - ErrNotFound: a referenced entity does not exist (HTTP 404)
  - ErrConflict: a uniqueness-constraint collision that could not be
    resolved by re-reading state (HTTP 409)

Callers classify with errors.Is; any error wrapping none of the sentinels
is a storage or server failure and surfaces as HTTP 500.
*/
package apperr
