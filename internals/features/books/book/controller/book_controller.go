// internals/features/books/book/controller/book_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bookswap_backend/internals/constants"
	dto "bookswap_backend/internals/features/books/book/dto"
	model "bookswap_backend/internals/features/books/book/model"
	helper "bookswap_backend/internals/helpers"
)

type BookController struct {
	DB *gorm.DB
}

// ownerSummary limits the preloaded owner to the public columns.
func ownerSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "department", "year_of_study")
}

/* =========================================================
   CREATE - POST /api/books (multipart)
   ========================================================= */
func (h *BookController) Create(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.BookCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()

	if req.Title == "" || req.Author == "" || req.Category == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Title, author and category are required")
	}
	if !constants.IsValidCategory(req.Category) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category")
	}

	book, err := req.ToModel(ownerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if fileHeader, ferr := c.FormFile("image"); ferr == nil && fileHeader != nil {
		cover, cerr := helper.ReadCoverImage(fileHeader)
		if cerr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Could not read image upload")
		}
		book.BookImageData = cover.Data
		book.BookImageType = &cover.ContentType
	}

	if err := h.DB.Create(book).Error; err != nil {
		return helper.JsonServerError(c, "add book", err)
	}

	return helper.JsonCreated(c, fiber.Map{
		"message": "Book added successfully",
		"book":    dto.ToBookResponse(book),
	})
}

/* =========================================================
   LIST AVAILABLE - GET /api/books/available
   Everyone else's listings that are still open.
   ========================================================= */
func (h *BookController) ListAvailable(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var books []model.BookModel
	if err := h.DB.
		Preload("Owner", ownerSummary).
		Omit("BookImageData").
		Where("book_status = ? AND book_owner_id <> ?", model.BookStatusAvailable, userID).
		Order("book_created_at DESC").
		Find(&books).Error; err != nil {
		return helper.JsonServerError(c, "list available books", err)
	}

	return helper.JsonOK(c, fiber.Map{
		"success": true,
		"books":   dto.ToBookResponses(books),
	})
}

/* =========================================================
   LIST MINE - GET /api/books
   ========================================================= */
func (h *BookController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var books []model.BookModel
	if err := h.DB.
		Preload("Owner", ownerSummary).
		Omit("BookImageData").
		Where("book_owner_id = ?", userID).
		Order("book_created_at DESC").
		Find(&books).Error; err != nil {
		return helper.JsonServerError(c, "list my books", err)
	}

	return helper.JsonOK(c, fiber.Map{
		"success": true,
		"books":   dto.ToBookResponses(books),
	})
}

/* =========================================================
   UPDATE - PUT /api/books/:id (multipart)
   ========================================================= */
func (h *BookController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	bookID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Book not found")
	}

	var book model.BookModel
	if err := h.DB.First(&book, "book_id = ?", bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Book not found")
		}
		return helper.JsonServerError(c, "update book lookup", err)
	}
	if book.BookOwnerID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized")
	}

	var req dto.BookUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["book_title"] = *req.Title
	}
	if req.Author != nil {
		updates["book_author"] = *req.Author
	}
	if req.Category != nil {
		if !constants.IsValidCategory(*req.Category) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category")
		}
		updates["book_category"] = *req.Category
	}
	if req.Description != nil {
		updates["book_description"] = *req.Description
	}
	if req.Edition != nil {
		updates["book_edition"] = *req.Edition
	}
	if req.ISBN != nil {
		updates["book_isbn"] = *req.ISBN
	}
	if req.Condition != nil {
		updates["book_condition"] = *req.Condition
	}
	if req.Department != nil {
		updates["book_department"] = *req.Department
	}
	if req.Status != nil {
		status := model.BookStatus(*req.Status)
		if !status.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status")
		}
		updates["book_status"] = status
	}
	if req.YearOfPublication != nil {
		year, convErr := strconv.Atoi(*req.YearOfPublication)
		if convErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid year of publication")
		}
		updates["book_year_of_publication"] = year
	}
	if req.Rate != nil {
		rate, convErr := strconv.ParseFloat(*req.Rate, 64)
		if convErr != nil || rate < 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid rate")
		}
		updates["book_rate"] = rate
	}

	if fileHeader, ferr := c.FormFile("image"); ferr == nil && fileHeader != nil {
		cover, cerr := helper.ReadCoverImage(fileHeader)
		if cerr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Could not read image upload")
		}
		updates["book_image_data"] = cover.Data
		updates["book_image_type"] = cover.ContentType
	}

	if len(updates) > 0 {
		if err := h.DB.Model(&book).Updates(updates).Error; err != nil {
			return helper.JsonServerError(c, "update book", err)
		}
	}

	// Re-read so the response reflects what was stored.
	if err := h.DB.Omit("BookImageData").First(&book, "book_id = ?", bookID).Error; err != nil {
		return helper.JsonServerError(c, "update book reload", err)
	}

	return helper.JsonOK(c, fiber.Map{
		"message": "Book updated successfully",
		"book":    dto.ToBookResponse(&book),
	})
}

/* =========================================================
   DELETE - DELETE /api/books/:id
   Hard delete; requests pointing at the book stay behind.
   ========================================================= */
func (h *BookController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	bookID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Book not found")
	}

	var book model.BookModel
	if err := h.DB.Select("book_id", "book_owner_id").First(&book, "book_id = ?", bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Book not found")
		}
		return helper.JsonServerError(c, "delete book lookup", err)
	}
	if book.BookOwnerID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized")
	}

	if err := h.DB.Delete(&model.BookModel{}, "book_id = ?", bookID).Error; err != nil {
		return helper.JsonServerError(c, "delete book", err)
	}

	return helper.JsonOK(c, fiber.Map{
		"message": "Book deleted successfully",
	})
}

/* =========================================================
   IMAGE - GET /api/books/:id/image (no auth, covers are
   treated as publicly linkable)
   ========================================================= */
func (h *BookController) GetImage(c *fiber.Ctx) error {
	bookID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Image not found")
	}

	var book model.BookModel
	if err := h.DB.
		Select("book_id", "book_image_data", "book_image_type").
		First(&book, "book_id = ?", bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Image not found")
		}
		return helper.JsonServerError(c, "fetch image", err)
	}
	if len(book.BookImageData) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Image not found")
	}

	contentType := "application/octet-stream"
	if book.BookImageType != nil && *book.BookImageType != "" {
		contentType = *book.BookImageType
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return c.Send(book.BookImageData)
}
