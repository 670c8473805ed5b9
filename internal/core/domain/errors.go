package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrSessionNotFound = errors.New("session not found")
var ErrForbidden = errors.New("access forbidden")

var ErrRoomNotFound = errors.New("room not found")
var ErrRoomFull = errors.New("room is at capacity")
var ErrRoomVacant = errors.New("room has no occupants")
var ErrDuplicateRoom = errors.New("room already exists")

var ErrResidentNotFound = errors.New("resident not found")
var ErrResidentInactive = errors.New("resident already checked out")

var ErrPaymentNotFound = errors.New("payment not found")
var ErrPaymentAlreadyPaid = errors.New("payment already marked paid")

var ErrMenuDayNotFound = errors.New("menu day not found")

var ErrNotificationNotFound = errors.New("notification not found")

var ErrThreadNotFound = errors.New("message thread not found")

var ErrPropertyNotFound = errors.New("property not found")
var ErrDuplicateProperty = errors.New("property already exists")
