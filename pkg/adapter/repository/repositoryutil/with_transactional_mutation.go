package repositoryutil

import (
	"context"

	"todo-backend/pkg/infrastructure/datastore"

	"github.com/hashicorp/go-multierror"
)

// WithTransactionalMutation runs fn against a Gateway bound to a new
// transaction. The transaction commits when fn returns nil and rolls back
// otherwise, including on panic.
func WithTransactionalMutation(
	ctx context.Context,
	g *datastore.Gateway,
	fn func(tx *datastore.Gateway) error,
) error {
	tx, err := g.BeginTx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()

	if err := fn(tx.Gateway()); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return multierror.Append(err, rerr)
		}
		return err
	}

	return tx.Commit()
}
