package mockapi

import (
	"net/http"

	"motor_seeder/internal/models"

	"github.com/gin-gonic/gin"
)

// @Summary      Create a motor model
// @Tags         motors
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        input  body      models.MotorModel  true  "model"
// @Success      201    {object}  models.MotorModel
// @Failure      400    {object}  map[string]string
// @Failure      409    {object}  map[string]string
// @Router       /api/motor-models [post]
func (h *Handler) createModel(c *gin.Context) {
	var input models.MotorModel
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	m, err := h.services.CreateModel(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, "create_model_failed", err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// @Summary      List motor models
// @Tags         motors
// @Security     BearerAuth
// @Produce      json
// @Param        pageNumber  query     int  false  "page, 1-based"
// @Param        pageSize    query     int  false  "page size"
// @Success      200         {object}  pageResponse
// @Router       /api/motor-models [get]
func (h *Handler) listModels(c *gin.Context) {
	p := pageFromQuery(c)
	items, total, err := h.services.ListModels(c.Request.Context(), p)
	if err != nil {
		h.respondError(c, "list_models_failed", err)
		return
	}
	respondPage(c, items, total, p)
}

// listDevices answers {data:[...]}; devices are not paginated.
//
// @Summary      List registered devices
// @Tags         motors
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "data"
// @Router       /api/devices [get]
func (h *Handler) listDevices(c *gin.Context) {
	devices, err := h.services.ListDevices(c.Request.Context())
	if err != nil {
		h.respondError(c, "list_devices_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": devices})
}

// @Summary      Create a motor instance
// @Tags         instances
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        input  body      models.MotorInstance  true  "instance"
// @Success      201    {object}  models.MotorInstance
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Failure      409    {object}  map[string]string
// @Router       /api/motor-instances [post]
func (h *Handler) createInstance(c *gin.Context) {
	var input models.MotorInstance
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	inst, err := h.services.CreateInstance(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, "create_instance_failed", err)
		return
	}
	c.JSON(http.StatusCreated, inst)
}

// @Summary      List motor instances
// @Tags         instances
// @Security     BearerAuth
// @Produce      json
// @Param        pageNumber  query     int  false  "page, 1-based"
// @Param        pageSize    query     int  false  "page size"
// @Success      200         {object}  pageResponse
// @Router       /api/motor-instances [get]
func (h *Handler) listInstances(c *gin.Context) {
	p := pageFromQuery(c)
	items, total, err := h.services.ListInstances(c.Request.Context(), p)
	if err != nil {
		h.respondError(c, "list_instances_failed", err)
		return
	}
	respondPage(c, items, total, p)
}
