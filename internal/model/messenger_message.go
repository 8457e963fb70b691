package model

import "time"

// MessengerMessage is a row of the durable message queue table. The table is
// provisioned with the rest of the schema; nothing produces or consumes it yet.
type MessengerMessage struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Body        string     `json:"body" gorm:"type:text;not null"`
	Headers     string     `json:"headers" gorm:"type:text;not null"`
	QueueName   string     `json:"queueName" gorm:"size:190;not null;index"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"autoCreateTime:false"`
	AvailableAt time.Time  `json:"availableAt" gorm:"not null;index"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty" gorm:"index"`
}

// TableName pins the shared table name.
func (MessengerMessage) TableName() string {
	return "messenger_messages"
}

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&Category{},
		&Course{},
		&User{},
		&MessengerMessage{},
	}
}
