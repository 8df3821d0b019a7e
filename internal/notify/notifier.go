package notify

import (
	"gorm.io/gorm"

	"github.com/markeugine/atelier-backend/internal/models"
)

// Event is one notification to fan out. A nil ReceiverID routes to the
// shop's admin account (first superuser by ascending id).
type Event struct {
	ReceiverID *uint
	Header     string
	Message    string
	Link       string
	IsSystem   bool
}

// Notifier is what the use cases see; the async Dispatcher implements it,
// tests substitute a recorder.
type Notifier interface {
	Dispatch(ev Event)
}

type Writer struct {
	db *gorm.DB
}

func NewWriter(db *gorm.DB) *Writer {
	return &Writer{db: db}
}

func (w *Writer) Write(ev Event) error {
	receiverID := ev.ReceiverID

	if receiverID == nil {
		var admin models.User
		if err := w.db.
			Where("is_superuser = ?", true).
			Order("id ASC").
			First(&admin).Error; err != nil {
			return err
		}
		receiverID = &admin.ID
	}

	n := models.Notification{
		ReceiverID: receiverID,
		Header:     ev.Header,
		Message:    ev.Message,
		Link:       ev.Link,
		IsSystem:   ev.IsSystem,
	}

	return w.db.Create(&n).Error
}
