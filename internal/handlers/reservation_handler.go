package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/restaurant-api/internal/domain/reservation"
	"github.com/BruksfildServices01/restaurant-api/internal/httperr"
	"github.com/BruksfildServices01/restaurant-api/internal/httpresp"
	"github.com/BruksfildServices01/restaurant-api/internal/middleware"
	ucReservation "github.com/BruksfildServices01/restaurant-api/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC    *ucReservation.CreateByLocation
	setStatusUC *ucReservation.SetStatus
	deleteUC    *ucReservation.DeleteReservation
	getUC       *ucReservation.GetReservation
	listUC      *ucReservation.ListReservations
	customerUC  *ucReservation.ListCustomerReservations
}

func NewReservationHandler(
	createUC *ucReservation.CreateByLocation,
	setStatusUC *ucReservation.SetStatus,
	deleteUC *ucReservation.DeleteReservation,
	getUC *ucReservation.GetReservation,
	listUC *ucReservation.ListReservations,
	customerUC *ucReservation.ListCustomerReservations,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:    createUC,
		setStatusUC: setStatusUC,
		deleteUC:    deleteUC,
		getUC:       getUC,
		listUC:      listUC,
		customerUC:  customerUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Guests   int    `json:"guests" binding:"required"`
	Status   string `json:"status"`
	UserID   uint   `json:"user_id" binding:"required"`
	Location string `json:"location" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.ErrBadRequest("invalid_body"))
		return
	}

	// só o administrador reserva em nome de outro usuário
	if c.GetString(middleware.ContextUserRole) != middleware.RoleAdmin &&
		req.UserID != middleware.UserID(c) {
		httperr.Write(c, http.StatusForbidden, "forbidden", "Você só pode reservar em seu próprio nome.")
		return
	}

	if req.Status == "" {
		req.Status = string(domain.StatusPending)
	}

	out, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateByLocationInput{
		Date:     req.Date,
		Time:     req.Time,
		Guests:   req.Guests,
		Status:   req.Status,
		UserID:   req.UserID,
		Location: req.Location,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":       "Reserva criada com sucesso.",
		"reservationId": out.Reservation.ID,
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *ReservationHandler) SetStatus(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	res, err := h.setStatusUC.Execute(c.Request.Context(), id, c.Param("status"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Estado da reserva atualizado para " + res.Status + ".",
	})
}

// ======================================================
// DELETE / GET
// ======================================================

func (h *ReservationHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	res, err := h.deleteUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	res, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// LIST
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	f, err := filterFromQuery(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out, err := h.listUC.Execute(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *ReservationHandler) ListCustomer(c *gin.Context) {
	f, err := filterFromQuery(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out, err := h.customerUC.Execute(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}

func filterFromQuery(c *gin.Context) (domain.Filter, error) {
	var (
		f   domain.Filter
		err error
	)

	if f.ID, err = parseOptionalUint(c.Query("id")); err != nil {
		return f, err
	}
	if f.UserID, err = parseOptionalUint(c.Query("user_id")); err != nil {
		return f, err
	}
	guests, err := parseOptionalUint(c.Query("guests"))
	if err != nil {
		return f, err
	}
	f.Guests = int(guests)

	f.Date = c.Query("date")
	f.Time = c.Query("time")
	f.Status = c.Query("status")

	return f, nil
}
