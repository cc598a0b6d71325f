package engine

import (
	"context"
	"database/sql"

	"tend/internal/storage"
)

// DeleteItem removes an item and cascades: any other item whose trigger
// references the deleted id becomes trigger-less (never deleted), in
// the same transaction so no dangling reference is ever observable.
// Unknown ids are a no-op.
func (s *Service) DeleteItem(ctx context.Context, id string) error {
	return storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		items := storage.NewItemRepo(tx)
		rec, err := items.Get(ctx, id)
		if err != nil {
			return err
		}
		if rec == nil {
			return nil
		}
		if err := items.ClearTriggersReferencing(ctx, id); err != nil {
			return err
		}
		return items.Delete(ctx, id)
	})
}

// DeleteTask removes a one-off task. Unknown ids are a no-op.
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	return storage.NewTaskRepo(s.db).Delete(ctx, id)
}
