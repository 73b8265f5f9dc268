package minister

import "github.com/m04kA/SMC-MinisterSchedule/pkg/dbmetrics"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
