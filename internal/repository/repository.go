package repository

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/locacare/backend/internal/logger"
)

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		logger.Log.Error("failed to close rows", zap.Error(err))
	}
}

func rollbackTx(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		logger.Log.Error("rollback error", zap.Error(err))
	}
}
