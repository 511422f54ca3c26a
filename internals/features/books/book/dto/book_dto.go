// internals/features/books/book/dto/book_dto.go
package dto

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"bookswap_backend/internals/features/books/book/model"
)

// ======================================================
// REQUEST
// ======================================================

// BookCreateRequest carries the listing form. The client submits
// everything as multipart text fields, so numerics land here as strings
// and get coerced in ToModel.
type BookCreateRequest struct {
	Title             string `json:"title" form:"title"`
	Author            string `json:"author" form:"author"`
	Category          string `json:"category" form:"category"`
	Description       string `json:"description" form:"description"`
	Edition           string `json:"edition" form:"edition"`
	ISBN              string `json:"isbn" form:"isbn"`
	Condition         string `json:"condition" form:"condition"`
	YearOfPublication string `json:"yearOfPublication" form:"yearOfPublication"`
	Department        string `json:"department" form:"department"`
	Rate              string `json:"rate" form:"rate"`
	Status            string `json:"status" form:"status"`
}

func (r *BookCreateRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
	r.Category = strings.TrimSpace(r.Category)
	r.Description = strings.TrimSpace(r.Description)
	r.Edition = strings.TrimSpace(r.Edition)
	r.ISBN = strings.TrimSpace(r.ISBN)
	r.Condition = strings.TrimSpace(r.Condition)
	r.YearOfPublication = strings.TrimSpace(r.YearOfPublication)
	r.Department = strings.TrimSpace(r.Department)
	r.Rate = strings.TrimSpace(r.Rate)
	r.Status = strings.TrimSpace(r.Status)
}

// ToModel builds the persistable record. Numeric text is coerced; an
// unknown status silently becomes "available" (unlike update, where a bad
// status is an error).
func (r *BookCreateRequest) ToModel(ownerID uuid.UUID) (*model.BookModel, error) {
	m := &model.BookModel{
		BookOwnerID:  ownerID,
		BookTitle:    r.Title,
		BookAuthor:   r.Author,
		BookCategory: r.Category,
		BookStatus:   model.ParseBookStatus(r.Status),
	}

	m.BookDescription = optStr(r.Description)
	m.BookEdition = optStr(r.Edition)
	m.BookISBN = optStr(r.ISBN)
	m.BookCondition = optStr(r.Condition)
	m.BookDepartment = optStr(r.Department)

	if r.YearOfPublication != "" {
		year, err := strconv.Atoi(r.YearOfPublication)
		if err != nil {
			return nil, errors.New("Invalid year of publication")
		}
		m.BookYear = &year
	}
	if r.Rate != "" {
		rate, err := strconv.ParseFloat(r.Rate, 64)
		if err != nil || rate < 0 {
			return nil, errors.New("Invalid rate")
		}
		m.BookRate = rate
	}
	return m, nil
}

// BookUpdateRequest patches only the fields present in the payload,
// hence the pointers.
type BookUpdateRequest struct {
	Title             *string `json:"title" form:"title"`
	Author            *string `json:"author" form:"author"`
	Category          *string `json:"category" form:"category"`
	Description       *string `json:"description" form:"description"`
	Edition           *string `json:"edition" form:"edition"`
	ISBN              *string `json:"isbn" form:"isbn"`
	Condition         *string `json:"condition" form:"condition"`
	YearOfPublication *string `json:"yearOfPublication" form:"yearOfPublication"`
	Department        *string `json:"department" form:"department"`
	Rate              *string `json:"rate" form:"rate"`
	Status            *string `json:"status" form:"status"`
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ======================================================
// RESPONSE
// ======================================================

// OwnerSummary is what list endpoints populate next to each book.
type OwnerSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Department  string    `json:"department"`
	YearOfStudy int       `json:"yearOfStudy"`
}

// BookResponse is a book without its raw image bytes. The cover is
// fetched separately via GET /api/books/:id/image.
type BookResponse struct {
	ID                uuid.UUID        `json:"id"`
	Owner             *OwnerSummary    `json:"owner,omitempty"`
	OwnerID           uuid.UUID        `json:"ownerId"`
	Title             string           `json:"title"`
	Author            string           `json:"author"`
	Category          string           `json:"category"`
	Description       *string          `json:"description,omitempty"`
	Edition           *string          `json:"edition,omitempty"`
	ISBN              *string          `json:"isbn,omitempty"`
	Condition         *string          `json:"condition,omitempty"`
	Department        *string          `json:"department,omitempty"`
	YearOfPublication *int             `json:"yearOfPublication,omitempty"`
	Rate              float64          `json:"rate"`
	Status            model.BookStatus `json:"status"`
	ImageType         *string          `json:"imageType,omitempty"`
	ImageURL          *string          `json:"imageUrl,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

func ToBookResponse(m *model.BookModel) BookResponse {
	resp := BookResponse{
		ID:                m.BookID,
		OwnerID:           m.BookOwnerID,
		Title:             m.BookTitle,
		Author:            m.BookAuthor,
		Category:          m.BookCategory,
		Description:       m.BookDescription,
		Edition:           m.BookEdition,
		ISBN:              m.BookISBN,
		Condition:         m.BookCondition,
		Department:        m.BookDepartment,
		YearOfPublication: m.BookYear,
		Rate:              m.BookRate,
		Status:            m.BookStatus,
		ImageType:         m.BookImageType,
		ImageURL:          m.BookImageURL,
		CreatedAt:         m.BookCreatedAt,
		UpdatedAt:         m.BookUpdatedAt,
	}
	if m.Owner != nil {
		resp.Owner = &OwnerSummary{
			ID:          m.Owner.ID,
			Name:        m.Owner.Name,
			Department:  m.Owner.Department,
			YearOfStudy: m.Owner.YearOfStudy,
		}
	}
	return resp
}

func ToBookResponses(models []model.BookModel) []BookResponse {
	out := make([]BookResponse, 0, len(models))
	for i := range models {
		out = append(out, ToBookResponse(&models[i]))
	}
	return out
}
