package notice

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrInvalidMessage = errors.New("notice message must be 1-2000 characters")
	ErrInvalidType    = errors.New("notice type must be general or important")
	ErrEmptyUpdate    = errors.New("notice update has no fields")
)

const maxMessageLength = 2000

type Type string

const (
	TypeGeneral   Type = "general"
	TypeImportant Type = "important"
)

func (t Type) String() string { return string(t) }

// ParseType treats an empty string as TypeGeneral.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case "", TypeGeneral:
		return TypeGeneral, nil
	case TypeImportant:
		return TypeImportant, nil
	default:
		return "", ErrInvalidType
	}
}

type Message struct {
	value string
}

func NewMessage(s string) (Message, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > maxMessageLength {
		return Message{}, ErrInvalidMessage
	}
	return Message{value: s}, nil
}

func (m Message) Value() string { return m.value }

type Notice struct {
	id        uuid.UUID
	message   Message
	typ       Type
	createdBy uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewNotice(message Message, typ Type, createdBy uuid.UUID, now time.Time) *Notice {
	return &Notice{
		id:        uuid.New(),
		message:   message,
		typ:       typ,
		createdBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructNotice(id uuid.UUID, message Message, typ Type, createdBy uuid.UUID, createdAt, updatedAt time.Time) *Notice {
	return &Notice{id: id, message: message, typ: typ, createdBy: createdBy, createdAt: createdAt, updatedAt: updatedAt}
}

func (n *Notice) ID() uuid.UUID        { return n.id }
func (n *Notice) Message() Message     { return n.message }
func (n *Notice) Type() Type           { return n.typ }
func (n *Notice) CreatedBy() uuid.UUID { return n.createdBy }
func (n *Notice) CreatedAt() time.Time { return n.createdAt }
func (n *Notice) UpdatedAt() time.Time { return n.updatedAt }

// Apply overwrites only the fields that are set.
func (n *Notice) Apply(message *Message, typ *Type, now time.Time) error {
	if message == nil && typ == nil {
		return ErrEmptyUpdate
	}
	if message != nil {
		n.message = *message
	}
	if typ != nil {
		n.typ = *typ
	}
	n.updatedAt = now
	return nil
}
