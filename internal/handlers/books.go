package handlers

import (
	"errors"
	"net/http"

	"bookslist/internal/models"
	"bookslist/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTO for creating a book. Status is omitted on purpose: new books
// always start at ToRead.
type createBookRequest struct {
	Title  string   `json:"title" binding:"required"`
	Author string   `json:"author" binding:"required"`
	Year   int      `json:"year"`
	Genre  []string `json:"genre"`
}

// Request DTO for the full-replace update.
type updateBookRequest struct {
	Title  string            `json:"title" binding:"required"`
	Author string            `json:"author" binding:"required"`
	Year   int               `json:"year"`
	Genre  []string          `json:"genre"`
	Status models.ReadStatus `json:"status" binding:"required"`
}

type updateStatusRequest struct {
	Status models.ReadStatus `json:"status" binding:"required"`
}

// @Summary      List the authenticated user's books
// @Description  Resolves the caller from the token's identity claim.
// @Tags         books
// @Produce      json
// @Success      200  {array}   models.Book
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /books [get]
// @Security     BearerAuth
func (h *Handler) myBooks(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "missing identity claim"})
		return
	}
	books, err := h.services.Books.ListForUser(c.Request.Context(), id)
	if err != nil {
		// Same inconsistency as /user: the token outlived its account.
		if errors.Is(err, service.ErrNotFound) {
			h.respondError(c, "my_books_user_vanished", errors.New("token user no longer exists"), "user_id", id)
			return
		}
		h.respondError(c, "my_books_failed", err, "user_id", id)
		return
	}
	c.JSON(http.StatusOK, books)
}

// @Summary      List a user's books
// @Tags         books
// @Produce      json
// @Param        userId  path  int  true  "User id"
// @Success      200  {array}   models.Book
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{userId}/books [get]
// @Security     BearerAuth
func (h *Handler) listBooks(c *gin.Context) {
	userID, ok := h.requireSelf(c)
	if !ok {
		return
	}
	books, err := h.services.Books.ListForUser(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, "books_list_failed", err, "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, books)
}

// @Summary      Get one book
// @Tags         books
// @Produce      json
// @Param        userId  path  int  true  "User id"
// @Param        bookId  path  int  true  "Book id"
// @Success      200  {object}  models.Book
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{userId}/books/{bookId} [get]
// @Security     BearerAuth
func (h *Handler) getBook(c *gin.Context) {
	userID, ok := h.requireSelf(c)
	if !ok {
		return
	}
	bookID, ok := pathBookID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}
	b, err := h.services.Books.Get(c.Request.Context(), userID, bookID)
	if err != nil {
		h.respondError(c, "books_get_failed", err, "user_id", userID, "book_id", bookID)
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary      Add a book
// @Description  New books always start with status ToRead.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        userId  path  int                true  "User id"
// @Param        body    body  createBookRequest  true  "Book fields"
// @Success      201  {object}  models.Book
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{userId}/books [post]
// @Security     BearerAuth
func (h *Handler) createBook(c *gin.Context) {
	userID, ok := h.requireSelf(c)
	if !ok {
		return
	}
	var input createBookRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	b, err := h.services.Books.Create(c.Request.Context(), userID, service.BookInput{
		Title:  input.Title,
		Author: input.Author,
		Year:   input.Year,
		Genre:  input.Genre,
	})
	if err != nil {
		h.respondError(c, "books_create_failed", err, "user_id", userID)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// @Summary      Replace a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        userId  path  int                true  "User id"
// @Param        bookId  path  int                true  "Book id"
// @Param        body    body  updateBookRequest  true  "Book fields"
// @Success      200  {object}  models.Book
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{userId}/books/{bookId} [put]
// @Security     BearerAuth
func (h *Handler) updateBook(c *gin.Context) {
	userID, ok := h.requireSelf(c)
	if !ok {
		return
	}
	bookID, ok := pathBookID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}
	var input updateBookRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	b, err := h.services.Books.Update(c.Request.Context(), userID, bookID, service.BookInput{
		Title:  input.Title,
		Author: input.Author,
		Year:   input.Year,
		Genre:  input.Genre,
		Status: input.Status,
	})
	if err != nil {
		h.respondError(c, "books_update_failed", err, "user_id", userID, "book_id", bookID)
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary      Change a book's status
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        userId  path  int                  true  "User id"
// @Param        bookId  path  int                  true  "Book id"
// @Param        body    body  updateStatusRequest  true  "New status"
// @Success      200  {object}  models.Book
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{userId}/books/{bookId}/status [put]
// @Security     BearerAuth
func (h *Handler) updateBookStatus(c *gin.Context) {
	userID, ok := h.requireSelf(c)
	if !ok {
		return
	}
	bookID, ok := pathBookID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}
	var input updateStatusRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	b, err := h.services.Books.UpdateStatus(c.Request.Context(), userID, bookID, input.Status)
	if err != nil {
		h.respondError(c, "books_update_status_failed", err, "user_id", userID, "book_id", bookID)
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary      Delete a book
// @Tags         books
// @Produce      json
// @Param        userId  path  int  true  "User id"
// @Param        bookId  path  int  true  "Book id"
// @Success      204  "No Content"
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{userId}/books/{bookId} [delete]
// @Security     BearerAuth
func (h *Handler) deleteBook(c *gin.Context) {
	userID, ok := h.requireSelf(c)
	if !ok {
		return
	}
	bookID, ok := pathBookID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}
	if err := h.services.Books.Delete(c.Request.Context(), userID, bookID); err != nil {
		h.respondError(c, "books_delete_failed", err, "user_id", userID, "book_id", bookID)
		return
	}
	c.Status(http.StatusNoContent)
}
