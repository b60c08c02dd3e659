package appointment

import (
	"github.com/m04kA/MBL-AppointmentService/pkg/dbmetrics"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics.
// Поддерживает *sql.DB и *dbmetrics.DB; внутри транзакции фактический
// исполнитель подменяется через контекст (dbmetrics.GetExecutor).
type DBExecutor = dbmetrics.DBExecutor
