package model

import (
	"time"

	"github.com/google/uuid"

	userModel "bookswap_backend/internals/features/users/user/model"
)

// BookStatus is the listing lifecycle:
// available → requested → exchanged | sold.
type BookStatus string

const (
	BookStatusAvailable BookStatus = "available"
	BookStatusRequested BookStatus = "requested"
	BookStatusExchanged BookStatus = "exchanged"
	BookStatusSold      BookStatus = "sold"
)

func (s BookStatus) Valid() bool {
	switch s {
	case BookStatusAvailable, BookStatusRequested, BookStatusExchanged, BookStatusSold:
		return true
	}
	return false
}

// ParseBookStatus falls back to "available" on anything unknown, the way
// listings always did on creation.
func ParseBookStatus(raw string) BookStatus {
	s := BookStatus(raw)
	if !s.Valid() {
		return BookStatusAvailable
	}
	return s
}

type BookModel struct {
	BookID      uuid.UUID            `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:book_id"   json:"id"`
	BookOwnerID uuid.UUID            `gorm:"type:uuid;not null;index;column:book_owner_id"                   json:"ownerId"`
	Owner       *userModel.UserModel `gorm:"foreignKey:BookOwnerID;references:ID"                            json:"-"`

	BookTitle       string  `gorm:"type:text;not null;column:book_title"        json:"title"`
	BookAuthor      string  `gorm:"type:text;not null;column:book_author"       json:"author"`
	BookCategory    string  `gorm:"type:varchar(50);not null;column:book_category" json:"category"`
	BookDescription *string `gorm:"type:text;column:book_description"           json:"description,omitempty"`
	BookEdition     *string `gorm:"type:text;column:book_edition"               json:"edition,omitempty"`
	BookISBN        *string `gorm:"type:text;column:book_isbn"                  json:"isbn,omitempty"`
	BookCondition   *string `gorm:"type:text;column:book_condition"             json:"condition,omitempty"`
	BookDepartment  *string `gorm:"type:text;column:book_department"            json:"department,omitempty"`
	BookYear        *int    `gorm:"column:book_year_of_publication"             json:"yearOfPublication,omitempty"`

	BookRate   float64    `gorm:"not null;default:0;column:book_rate"                       json:"rate"`
	BookStatus BookStatus `gorm:"type:varchar(20);not null;default:'available';column:book_status" json:"status"`

	BookImageData []byte  `gorm:"type:bytea;column:book_image_data" json:"-"`
	BookImageType *string `gorm:"type:text;column:book_image_type"  json:"imageType,omitempty"`
	BookImageURL  *string `gorm:"type:text;column:book_image_url"   json:"imageUrl,omitempty"`

	BookCreatedAt time.Time `gorm:"column:book_created_at;autoCreateTime" json:"createdAt"`
	BookUpdatedAt time.Time `gorm:"column:book_updated_at;autoUpdateTime" json:"updatedAt"`
}

func (BookModel) TableName() string { return "books" }
