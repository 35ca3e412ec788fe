package booking

import (
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/dbmetrics"
)

// DB interfaces shared with dbmetrics so the repository works with *sql.DB,
// the metrics wrapper and an open transaction alike.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
