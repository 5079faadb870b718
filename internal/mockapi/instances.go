package mockapi

import (
	"net/http"

	"motor_seeder/internal/models"

	"github.com/gin-gonic/gin"
)

// @Summary      Attach parameter mappings
// @Tags         instances
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id     path      string                    true  "instance id"
// @Param        input  body      []models.ParameterMapping  true  "mappings"
// @Success      200    {object}  models.BatchResult
// @Failure      404    {object}  map[string]string
// @Router       /api/motor-instances/{id}/mappings/batch [post]
func (h *Handler) attachMappings(c *gin.Context) {
	var input []models.ParameterMapping
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	created, err := h.services.AttachMappings(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondError(c, "attach_mappings_failed", err)
		return
	}
	c.JSON(http.StatusOK, models.BatchResult{Created: created})
}

// @Summary      Create an operation mode
// @Tags         instances
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id     path      string                true  "instance id"
// @Param        input  body      models.OperationMode  true  "mode"
// @Success      201    {object}  models.OperationMode
// @Failure      409    {object}  map[string]string
// @Router       /api/motor-instances/{id}/modes [post]
func (h *Handler) createMode(c *gin.Context) {
	var input models.OperationMode
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	mode, err := h.services.CreateMode(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondError(c, "create_mode_failed", err)
		return
	}
	c.JSON(http.StatusCreated, mode)
}

// @Summary      Queue baseline learning for every mode
// @Tags         learning
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id     path      string                 true  "instance id"
// @Param        input  body      models.LearningWindow  true  "window in ms"
// @Success      200    {object}  map[string]interface{}  "started, baselines"
// @Failure      404    {object}  map[string]string
// @Router       /api/motor-instances/{id}/learn-all [post]
func (h *Handler) startLearning(c *gin.Context) {
	var input models.LearningWindow
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	queued, err := h.services.StartLearning(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondError(c, "start_learning_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"started":   true,
		"baselines": queued,
		"startTs":   input.StartTs,
		"endTs":     input.EndTs,
	})
}

// @Summary      Instance detail
// @Tags         instances
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "instance id"
// @Success      200  {object}  InstanceDetail
// @Failure      404  {object}  map[string]string
// @Router       /api/motor-instances/{id}/detail [get]
func (h *Handler) detail(c *gin.Context) {
	d, err := h.services.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "instance_detail_failed", err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// @Summary      Run a diagnosis
// @Tags         learning
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "instance id"
// @Success      200  {object}  DiagnosisReport
// @Failure      400  {object}  map[string]string  "no baseline yet"
// @Failure      404  {object}  map[string]string
// @Router       /api/motor-instances/{id}/diagnose [post]
func (h *Handler) diagnose(c *gin.Context) {
	report, err := h.services.Diagnose(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "diagnose_failed", err)
		return
	}
	c.JSON(http.StatusOK, report)
}
