package model

import (
	"time"

	"github.com/google/uuid"

	bookModel "bookswap_backend/internals/features/books/book/model"
	userModel "bookswap_backend/internals/features/users/user/model"
)

// RequestType: how the requester wants to take the book.
type RequestType string

const (
	RequestTypeBuy      RequestType = "buy"
	RequestTypeExchange RequestType = "exchange"
)

func (t RequestType) Valid() bool {
	return t == RequestTypeBuy || t == RequestTypeExchange
}

// RequestStatus state machine:
// pending → accepted (terminal), pending → rejected (terminal).
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)

// Terminal reports whether no further transition is defined.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusAccepted || s == RequestStatusRejected
}

// RequestModel links a book, its requester and its owner. The owner is
// denormalized from the book at creation time and never changes.
type RequestModel struct {
	RequestID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:request_id" json:"id"`

	RequestBookID uuid.UUID            `gorm:"type:uuid;not null;index;column:request_book_id" json:"bookId"`
	Book          *bookModel.BookModel `gorm:"foreignKey:RequestBookID;references:BookID"      json:"-"`

	RequestRequesterID uuid.UUID            `gorm:"type:uuid;not null;index;column:request_requester_id" json:"requesterId"`
	Requester          *userModel.UserModel `gorm:"foreignKey:RequestRequesterID;references:ID"          json:"-"`

	RequestOwnerID uuid.UUID            `gorm:"type:uuid;not null;index;column:request_owner_id" json:"ownerId"`
	Owner          *userModel.UserModel `gorm:"foreignKey:RequestOwnerID;references:ID"          json:"-"`

	RequestType    RequestType   `gorm:"type:varchar(10);not null;column:request_type"                     json:"type"`
	RequestMessage *string       `gorm:"type:text;column:request_message"                                  json:"message,omitempty"`
	RequestStatus  RequestStatus `gorm:"type:varchar(20);not null;default:'pending';column:request_status" json:"status"`

	RequestCreatedAt time.Time `gorm:"column:request_created_at;autoCreateTime" json:"createdAt"`
	RequestUpdatedAt time.Time `gorm:"column:request_updated_at;autoUpdateTime" json:"updatedAt"`
}

func (RequestModel) TableName() string { return "book_requests" }
