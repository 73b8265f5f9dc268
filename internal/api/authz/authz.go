// Package authz политика доступа вызывающего пользователя к слотам
// Движок назначений ее не применяет; ее применяют обработчики HTTP
package authz

import (
	"errors"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
)

var (
	// ErrForbidden возвращается, когда пользователь не может выполнить действие
	ErrForbidden = errors.New("authz: forbidden")

	// ErrSlotTaken возвращается, когда служитель пытается занять чужой слот
	ErrSlotTaken = errors.New("authz: slot is taken by another minister")
)

// CanRelease администратор или служитель, занимающий слот
// caller - служитель, привязанный к пользователю (nil, если привязки нет)
func CanRelease(user *domain.User, caller *domain.Minister, slot *domain.MinisterSlot) error {
	if user == nil {
		return ErrForbidden
	}
	if user.IsAdmin() {
		return nil
	}
	if caller != nil && caller.IsLinkedTo(user.ID) && slot.IsAssignedTo(caller.ID) {
		return nil
	}
	return ErrForbidden
}

// CanAssign администратор назначает кого угодно куда угодно
// Служитель может записать только себя и только в свободный слот
func CanAssign(user *domain.User, caller *domain.Minister, slot *domain.MinisterSlot, ministerID string) error {
	if user == nil {
		return ErrForbidden
	}
	if user.IsAdmin() {
		return nil
	}
	if caller == nil || !caller.IsLinkedTo(user.ID) || caller.ID != ministerID {
		return ErrForbidden
	}
	if !slot.IsOpen() && !slot.IsAssignedTo(caller.ID) {
		return ErrSlotTaken
	}
	return nil
}
