package mockapi

import (
	"net/http"

	"motor_seeder/internal/models"

	"github.com/gin-gonic/gin"
)

// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      models.Credentials  true  "username and password"
// @Success      201    {object}  map[string]interface{}  "id"
// @Failure      400    {object}  map[string]string
// @Failure      409    {object}  map[string]string
// @Router       /api/auth/sign-up [post]
func (h *Handler) signUp(c *gin.Context) {
	var input models.Credentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	id, err := h.services.SignUp(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.respondError(c, "auth_sign_up_failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// login answers {data:{token}}.
//
// @Summary      Issue a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      models.Credentials  true  "username and password"
// @Success      200    {object}  map[string]interface{}  "data.token"
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input models.Credentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.log.Infow("auth_login_failed", "username", input.Username, "err", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"token": token}})
}
