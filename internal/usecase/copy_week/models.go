package copy_week

import (
	"time"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
)

// Request модель запроса копирования недели
// Нулевые даты: исходная - текущая неделя, целевая - следующая за исходной
type Request struct {
	SourceWeekStart time.Time
	TargetWeekStart time.Time
}

// Response созданные разовые службы
type Response struct {
	SourceWeekStart time.Time
	TargetWeekStart time.Time
	Created         []*domain.ServiceTime
}
