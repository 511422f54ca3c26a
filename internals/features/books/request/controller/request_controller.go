// internals/features/books/request/controller/request_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	bookDTO "bookswap_backend/internals/features/books/book/dto"
	bookModel "bookswap_backend/internals/features/books/book/model"
	dto "bookswap_backend/internals/features/books/request/dto"
	model "bookswap_backend/internals/features/books/request/model"
	helper "bookswap_backend/internals/helpers"
)

type RequestController struct {
	DB *gorm.DB
}

func counterpartSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}

func bookWithoutImage(db *gorm.DB) *gorm.DB {
	return db.Omit("BookImageData")
}

/* =========================================================
   CREATE - POST /api/books/:id/request
   Creating the request also flips the book to "requested".
   Both writes run in one transaction.
   ========================================================= */
func (h *RequestController) Create(c *fiber.Ctx) error {
	requesterID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.RequestCreateBody
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()

	reqType := model.RequestType(body.Type)
	if !reqType.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request type")
	}

	bookID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Book not found")
	}

	var book bookModel.BookModel
	if err := h.DB.Omit("BookImageData").First(&book, "book_id = ?", bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Book not found")
		}
		return helper.JsonServerError(c, "create request book lookup", err)
	}

	if book.BookOwnerID == requesterID {
		return helper.JsonError(c, fiber.StatusBadRequest, "You cannot request your own book")
	}

	request := model.RequestModel{
		RequestBookID:      book.BookID,
		RequestRequesterID: requesterID,
		RequestOwnerID:     book.BookOwnerID,
		RequestType:        reqType,
		RequestStatus:      model.RequestStatusPending,
	}
	if body.Message != "" {
		request.RequestMessage = &body.Message
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&request).Error; err != nil {
			return err
		}
		return tx.Model(&bookModel.BookModel{}).
			Where("book_id = ?", book.BookID).
			Update("book_status", bookModel.BookStatusRequested).Error
	}); err != nil {
		return helper.JsonServerError(c, "create request", err)
	}

	return helper.JsonCreated(c, fiber.Map{
		"message": "Request sent successfully",
		"request": dto.ToRequestResponse(&request),
	})
}

/* =========================================================
   SENT - GET /api/books/requests/sent
   ========================================================= */
func (h *RequestController) Sent(c *fiber.Ctx) error {
	requesterID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var requests []model.RequestModel
	if err := h.DB.
		Preload("Book", bookWithoutImage).
		Preload("Owner", counterpartSummary).
		Where("request_requester_id = ?", requesterID).
		Order("request_created_at DESC").
		Find(&requests).Error; err != nil {
		return helper.JsonServerError(c, "list sent requests", err)
	}

	return helper.JsonOK(c, fiber.Map{
		"requests": dto.ToRequestResponses(requests),
	})
}

/* =========================================================
   RECEIVED - GET /api/books/requests/received
   ========================================================= */
func (h *RequestController) Received(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var requests []model.RequestModel
	if err := h.DB.
		Preload("Book", bookWithoutImage).
		Preload("Requester", counterpartSummary).
		Where("request_owner_id = ?", ownerID).
		Order("request_created_at DESC").
		Find(&requests).Error; err != nil {
		return helper.JsonServerError(c, "list received requests", err)
	}

	return helper.JsonOK(c, fiber.Map{
		"requests": dto.ToRequestResponses(requests),
	})
}

/* =========================================================
   ACCEPT - PATCH /api/books/requests/:id/accept
   Request → accepted and book → sold/exchanged commit together
   or not at all. A book deleted in the meantime is skipped,
   the accept itself still goes through.
   ========================================================= */
func (h *RequestController) Accept(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	request, resp := h.findOwnedPending(c, callerID)
	if request == nil {
		return resp
	}

	targetStatus := bookModel.BookStatusExchanged
	if request.RequestType == model.RequestTypeBuy {
		targetStatus = bookModel.BookStatusSold
	}

	var book *bookModel.BookModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(request).
			Update("request_status", model.RequestStatusAccepted).Error; err != nil {
			return err
		}

		var b bookModel.BookModel
		if err := tx.Omit("BookImageData").First(&b, "book_id = ?", request.RequestBookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // book gone, accept still succeeds
			}
			return err
		}
		if err := tx.Model(&bookModel.BookModel{}).
			Where("book_id = ?", b.BookID).
			Update("book_status", targetStatus).Error; err != nil {
			return err
		}
		b.BookStatus = targetStatus
		book = &b
		return nil
	}); err != nil {
		return helper.JsonServerError(c, "accept request", err)
	}
	request.RequestStatus = model.RequestStatusAccepted

	payload := fiber.Map{
		"request": dto.ToRequestResponse(request),
		"book":    nil,
	}
	if book != nil {
		payload["book"] = bookDTO.ToBookResponse(book)
	}
	return helper.JsonOK(c, payload)
}

/* =========================================================
   REJECT - PATCH /api/books/requests/:id/reject
   The book keeps whatever status it had.
   ========================================================= */
func (h *RequestController) Reject(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	request, resp := h.findOwnedPending(c, callerID)
	if request == nil {
		return resp
	}

	if err := h.DB.Model(request).
		Update("request_status", model.RequestStatusRejected).Error; err != nil {
		return helper.JsonServerError(c, "reject request", err)
	}
	request.RequestStatus = model.RequestStatusRejected

	return helper.JsonOK(c, fiber.Map{
		"request": dto.ToRequestResponse(request),
	})
}

/* =========================================================
   shared guards
   ========================================================= */

// findOwnedPending loads the request and runs the accept/reject guards:
// 404 unknown id, 403 caller is not the owner, 409 already terminal.
// A nil request means a guard fired and the response is already written;
// callers return the accompanying error as-is (JsonError yields nil once
// the body is flushed, so the request pointer is the signal, not the error).
func (h *RequestController) findOwnedPending(c *fiber.Ctx, callerID uuid.UUID) (*model.RequestModel, error) {
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Request not found")
	}

	var request model.RequestModel
	if err := h.DB.First(&request, "request_id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Request not found")
		}
		return nil, helper.JsonServerError(c, "request lookup", err)
	}

	if request.RequestOwnerID != callerID {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "Not authorized")
	}
	if request.RequestStatus.Terminal() {
		return nil, helper.JsonError(c, fiber.StatusConflict,
			fmt.Sprintf("Request already %s", request.RequestStatus))
	}
	return &request, nil
}
