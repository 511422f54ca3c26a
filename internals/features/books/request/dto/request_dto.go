// internals/features/books/request/dto/request_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	bookDTO "bookswap_backend/internals/features/books/book/dto"
	"bookswap_backend/internals/features/books/request/model"
)

// ======================================================
// REQUEST
// ======================================================

type RequestCreateBody struct {
	Type    string `json:"type" form:"type"`
	Message string `json:"message" form:"message"`
}

func (r *RequestCreateBody) Normalize() {
	r.Type = strings.TrimSpace(strings.ToLower(r.Type))
	r.Message = strings.TrimSpace(r.Message)
}

// ======================================================
// RESPONSE
// ======================================================

// CounterpartSummary: the "other" user as shown in sent/received lists.
type CounterpartSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type RequestResponse struct {
	ID        uuid.UUID             `json:"id"`
	BookID    uuid.UUID             `json:"bookId"`
	Book      *bookDTO.BookResponse `json:"book,omitempty"`
	Requester *CounterpartSummary   `json:"requester,omitempty"`
	Owner     *CounterpartSummary   `json:"owner,omitempty"`
	Type      model.RequestType     `json:"type"`
	Message   *string               `json:"message,omitempty"`
	Status    model.RequestStatus   `json:"status"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

func ToRequestResponse(m *model.RequestModel) RequestResponse {
	resp := RequestResponse{
		ID:        m.RequestID,
		BookID:    m.RequestBookID,
		Type:      m.RequestType,
		Message:   m.RequestMessage,
		Status:    m.RequestStatus,
		CreatedAt: m.RequestCreatedAt,
		UpdatedAt: m.RequestUpdatedAt,
	}
	if m.Book != nil {
		book := bookDTO.ToBookResponse(m.Book)
		resp.Book = &book
	}
	if m.Requester != nil {
		resp.Requester = &CounterpartSummary{ID: m.Requester.ID, Name: m.Requester.Name}
	}
	if m.Owner != nil {
		resp.Owner = &CounterpartSummary{ID: m.Owner.ID, Name: m.Owner.Name}
	}
	return resp
}

func ToRequestResponses(models []model.RequestModel) []RequestResponse {
	out := make([]RequestResponse, 0, len(models))
	for i := range models {
		out = append(out, ToRequestResponse(&models[i]))
	}
	return out
}
