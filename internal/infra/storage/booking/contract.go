package booking

import (
	"github.com/m04kA/SMC-VenueBooking/pkg/txmanager"
)

// DBExecutor *sql.DB или *sql.Tx
type DBExecutor = txmanager.DBExecutor
