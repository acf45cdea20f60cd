package handlers

import (
	"errors"
	"net/http"

	"bookslist/internal/service"

	"github.com/gin-gonic/gin"
)

type updateUserRequest struct {
	Name string `json:"name" binding:"required"`
}

// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   models.User
// @Failure      401  {object}  map[string]string
// @Router       /users [get]
// @Security     BearerAuth
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.Users.List(c.Request.Context())
	if err != nil {
		h.respondError(c, "users_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        userId  path  int  true  "User id"
// @Success      200  {object}  models.User
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{userId} [get]
// @Security     BearerAuth
func (h *Handler) getUser(c *gin.Context) {
	id, ok := pathUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	u, err := h.services.Users.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "users_get_failed", err, "user_id", id)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Get the authenticated user
// @Description  Resolves the caller from the token's identity claim.
// @Tags         users
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /user [get]
// @Security     BearerAuth
func (h *Handler) currentUser(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "missing identity claim"})
		return
	}
	u, err := h.services.Users.Get(c.Request.Context(), id)
	if err != nil {
		// The token names a user that no longer exists; that is a server-side
		// inconsistency, not a client addressing mistake.
		if errors.Is(err, service.ErrNotFound) {
			h.respondError(c, "current_user_vanished", errors.New("token user no longer exists"), "user_id", id)
			return
		}
		h.respondError(c, "current_user_failed", err, "user_id", id)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Rename a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userId  path  int                true  "User id"
// @Param        body    body  updateUserRequest  true  "New name"
// @Success      200  {object}  models.User
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /users/{userId} [put]
// @Security     BearerAuth
func (h *Handler) updateUser(c *gin.Context) {
	id, ok := h.requireSelf(c)
	if !ok {
		return
	}
	var input updateUserRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	u, err := h.services.Users.Update(c.Request.Context(), id, input.Name)
	if err != nil {
		h.respondError(c, "users_update_failed", err, "user_id", id)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Delete a user
// @Description  Owned books are deleted along with the account.
// @Tags         users
// @Produce      json
// @Param        userId  path  int  true  "User id"
// @Success      204  "No Content"
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{userId} [delete]
// @Security     BearerAuth
func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := h.requireSelf(c)
	if !ok {
		return
	}
	if err := h.services.Users.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, "users_delete_failed", err, "user_id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
