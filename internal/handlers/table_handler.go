package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/restaurant-api/internal/httperr"
	"github.com/BruksfildServices01/restaurant-api/internal/httpresp"
	"github.com/BruksfildServices01/restaurant-api/internal/middleware"
	ucTable "github.com/BruksfildServices01/restaurant-api/internal/usecase/table"
)

type TableHandler struct {
	createUC       *ucTable.CreateTable
	listUC         *ucTable.ListTables
	capacityUC     *ucTable.UpdateCapacity
	deleteUC       *ucTable.DeleteTable
	availabilityUC *ucTable.GetAvailability
	futureUC       *ucTable.ListFutureAssignments
}

func NewTableHandler(
	createUC *ucTable.CreateTable,
	listUC *ucTable.ListTables,
	capacityUC *ucTable.UpdateCapacity,
	deleteUC *ucTable.DeleteTable,
	availabilityUC *ucTable.GetAvailability,
	futureUC *ucTable.ListFutureAssignments,
) *TableHandler {
	return &TableHandler{
		createUC:       createUC,
		listUC:         listUC,
		capacityUC:     capacityUC,
		deleteUC:       deleteUC,
		availabilityUC: availabilityUC,
		futureUC:       futureUC,
	}
}

// --------- Requests ---------

type CreateTableRequest struct {
	Number   int    `json:"number" binding:"required"`
	Capacity int    `json:"capacity" binding:"required"`
	Location string `json:"location" binding:"required"`
}

// --------- Handlers ---------

func (h *TableHandler) List(c *gin.Context) {
	out, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *TableHandler) Create(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.ErrBadRequest("invalid_body"))
		return
	}

	t, err := h.createUC.Execute(c.Request.Context(), ucTable.CreateTableInput{
		Number:   req.Number,
		Capacity: req.Capacity,
		Location: req.Location,
		ActorID:  middleware.UserID(c),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Mesa criada com sucesso.",
		"tableId": t.ID,
	})
}

func (h *TableHandler) UpdateCapacity(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	capacity, err := strconv.Atoi(c.Param("capacity"))
	if err != nil {
		httperr.Respond(c, httperr.ErrBadRequest("invalid_capacity"))
		return
	}

	if _, err := h.capacityUC.Execute(c.Request.Context(), id, capacity, middleware.UserID(c)); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Capacidade atualizada."})
}

func (h *TableHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	t, err := h.deleteUC.Execute(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, t)
}

func (h *TableHandler) Availability(c *gin.Context) {
	out, err := h.availabilityUC.Execute(c.Request.Context(), c.Param("date"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *TableHandler) Future(c *gin.Context) {
	out, err := h.futureUC.Execute(c.Request.Context(), c.Param("date"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}
