package build_schedule

import (
	"time"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
)

// Settings параметры диапазона расписания из конфигурации
type Settings struct {
	DefaultDays int
	MaxDays     int
	Location    *time.Location // часовой пояс прихода для "сегодня"
}

// Request модель запроса расписания
type Request struct {
	StartDate    time.Time // нулевое значение - сегодня
	NumberOfDays int       // 0 - значение по умолчанию
	MinisterID   *string   // если задан, остаются только слоты этого служителя
}

// Response расписание по дням и по неделям
type Response struct {
	StartDate time.Time
	Today     time.Time
	Days      []domain.DayView
	Weeks     []domain.Week
}
