package visualizer

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange       = errors.New("index out of range")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrUnderflow        = errors.New("sequence is empty")
	ErrNotFound         = errors.New("value not found")
	ErrInvalidNumber    = errors.New("invalid number")
)

// Kind names the structure a sequence is simulating. It selects the
// wording of failure messages.
type Kind int

const (
	KindArray Kind = iota
	KindStack
	KindQueue
	KindList
)

// Message renders err as the Arabic inline notice shown under a widget.
// It returns "" for a nil error.
func Message(kind Kind, err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrOutOfRange):
		return fmt.Sprintf("يرجى إدخال مؤشر صالح بين 0 و %d", Capacity-1)
	case errors.Is(err, ErrInvalidNumber):
		return "الرجاء إدخال رقم صالح."
	case errors.Is(err, ErrNotFound):
		return "العقدة غير موجودة!"
	case errors.Is(err, ErrCapacityExceeded):
		switch kind {
		case KindStack:
			return "المكدس ممتلئ! (Stack Overflow)"
		case KindQueue:
			return "الطابور ممتلئ! (Queue Overflow)"
		default:
			return fmt.Sprintf("لا يمكن إضافة أكثر من %d عناصر.", Capacity)
		}
	case errors.Is(err, ErrUnderflow):
		switch kind {
		case KindStack:
			return "المكدس فارغ! (Stack Underflow)"
		case KindQueue:
			return "الطابور فارغ! (Queue Underflow)"
		default:
			return "القائمة فارغة!"
		}
	default:
		return err.Error()
	}
}
