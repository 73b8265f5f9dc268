package telegram

import "github.com/m04kA/SMC-MinisterSchedule/internal/domain"

const (
	msgServiceTimeAdded   = "В календарь добавлена новая служба. Откройте расписание и выберите свое место."
	msgServiceTimeDeleted = "Служба удалена из календаря. Проверьте свои назначения."
	msgWeekCopied         = "Службы следующей недели добавлены в календарь. Свободные места ждут служителей."
	msgSlotReleased       = "Освободилось место служителя. Сможете заменить?"
	msgCalendarReset      = "Администратор очистил календарь."
)

// Тексты сообщений по причинам изменений
// Назначения слотов не анонсируются
var messages = map[string]string{
	domain.ReasonServiceTimeAdded:   msgServiceTimeAdded,
	domain.ReasonServiceTimeDeleted: msgServiceTimeDeleted,
	domain.ReasonWeekCopied:         msgWeekCopied,
	domain.ReasonSlotReleased:       msgSlotReleased,
	domain.ReasonCalendarReset:      msgCalendarReset,
}
