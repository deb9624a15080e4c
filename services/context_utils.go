package services

import (
	"context"

	"gorm.io/gorm"
)

func persistentContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return context.WithoutCancel(ctx)
}

// inTx runs fn in one transaction bound to ctx. gorm commits when fn returns
// nil and rolls back on error or panic.
func inTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	err := db.WithContext(ctx).Transaction(fn)
	return translateStorageError(err)
}
