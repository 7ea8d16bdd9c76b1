package repository

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// dbFrom returns the transaction bound to ctx, or the base handle when
// no transaction is open. All repositories in this package share the
// same key, so one WithTx spans order and cart writes.
func dbFrom(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return base.WithContext(ctx)
}

func withTx(ctx context.Context, base *gorm.DB, fn func(ctx context.Context) error) error {
	return base.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
