package payment

type Status string

const (
	StatusRecorded Status = "recorded"
	StatusRefunded Status = "refunded"
)

func (s Status) String() string { return string(s) }

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusRecorded, StatusRefunded:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
