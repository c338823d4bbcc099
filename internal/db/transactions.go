package db

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	txMaxAttempts    = 4 // includes the first execution
	txInitialBackoff = 100 * time.Millisecond
)

// txWithRetries runs fn inside a session transaction and retries it on
// transient failures with exponential backoff. The transaction function must
// be safe to rerun from scratch.
func (db *Database) txWithRetries(
	ctx context.Context,
	fn func(sessCtx mongo.SessionContext) (interface{}, error),
) (interface{}, error) {
	var result interface{}
	err := retry.Do(
		func() error {
			session, err := db.Client.StartSession()
			if err != nil {
				return err
			}
			defer session.EndSession(ctx)

			res, err := session.WithTransaction(ctx, fn)
			if err != nil {
				return err
			}
			result = res
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(txMaxAttempts),
		retry.Delay(txInitialBackoff),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransientTxError),
		retry.OnRetry(func(attempt uint, err error) {
			log.Ctx(ctx).Warn().Err(err).
				Uint("attempt", attempt+1).
				Msg("retrying db transaction after transient error")
		}),
	)
	return result, err
}

// Network and timeout failures, write conflicts and aborted transactions are
// transient and safe to rerun. Anything else, duplicate keys included, is not.
func isTransientTxError(err error) bool {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return true
	}
	return IsWriteConflictError(err) || IsTransactionAbortedError(err)
}
