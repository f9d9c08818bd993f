package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	id        uuid.UUID
	userID    uuid.UUID
	title     string
	message   string
	read      bool
	createdAt time.Time
}

func NewNotification(userID uuid.UUID, title, message string, now time.Time) *Notification {
	return &Notification{
		id:        uuid.New(),
		userID:    userID,
		title:     title,
		message:   message,
		createdAt: now,
	}
}

func (n *Notification) ID() uuid.UUID        { return n.id }
func (n *Notification) UserID() uuid.UUID    { return n.userID }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) Read() bool           { return n.read }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

func BookingApproved(userID, bookingID uuid.UUID, quantity int, now time.Time) *Notification {
	return NewNotification(userID, "Booking approved",
		fmt.Sprintf("Your booking %s for %d cylinder(s) was approved.", bookingID, quantity), now)
}

func BookingRejected(userID, bookingID uuid.UUID, quantity int, now time.Time) *Notification {
	return NewNotification(userID, "Booking rejected",
		fmt.Sprintf("Your booking %s for %d cylinder(s) was rejected.", bookingID, quantity), now)
}

func RejectionUndone(userID, bookingID uuid.UUID, now time.Time) *Notification {
	return NewNotification(userID, "Booking back under review",
		fmt.Sprintf("The rejection of booking %s was withdrawn; it is pending again.", bookingID), now)
}

func PaymentRefunded(userID, paymentID uuid.UUID, amountCents int64, now time.Time) *Notification {
	return NewNotification(userID, "Payment refunded",
		fmt.Sprintf("Payment %s of %d.%02d was refunded.", paymentID, amountCents/100, amountCents%100), now)
}
