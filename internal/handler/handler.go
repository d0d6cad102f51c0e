package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/ResortDesk/internal/domain"
	"github.com/stpnv0/ResortDesk/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const calendarContentType = "text/calendar; charset=utf-8"

type ReservationSvc interface {
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	Get(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	Confirm(ctx context.Context, id string) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string) (*domain.Reservation, error)
}

type InviteSvc interface {
	Generate(ctx context.Context, reservationID string) (string, error)
	Render(ctx context.Context, reservationID string) ([]byte, error)
	Open(name string) ([]byte, error)
}

type SettingsSvc interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Update(ctx context.Context, s *domain.SiteSettings) (*domain.SiteSettings, error)
}

type AdminSvc interface {
	Create(ctx context.Context, input domain.CreateAdminInput) (*domain.Admin, error)
	List(ctx context.Context) ([]*domain.Admin, error)
	SetStatus(ctx context.Context, id string, status domain.AdminStatus) error
}

type DashboardSvc interface {
	Summary(ctx context.Context, date string) (*domain.DashboardSummary, error)
}

type Handler struct {
	reservationService ReservationSvc
	inviteService      InviteSvc
	settingsService    SettingsSvc
	adminService       AdminSvc
	dashboardService   DashboardSvc
}

func NewHandler(
	reservationService ReservationSvc,
	inviteService InviteSvc,
	settingsService SettingsSvc,
	adminService AdminSvc,
	dashboardService DashboardSvc,
) *Handler {
	return &Handler{
		reservationService: reservationService,
		inviteService:      inviteService,
		settingsService:    settingsService,
		adminService:       adminService,
		dashboardService:   dashboardService,
	}
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	r, err := h.reservationService.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(r))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	r, err := h.reservationService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(r))
}

func (h *Handler) ListReservations(c *ginext.Context) {
	filter := domain.ReservationFilter{
		From:   c.Query("from"),
		To:     c.Query("to"),
		Status: domain.ReservationStatus(c.Query("status")),
	}

	reservations, err := h.reservationService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponses(reservations))
}

func (h *Handler) ConfirmReservation(c *ginext.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	r, err := h.reservationService.Confirm(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(r))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	r, err := h.reservationService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(r))
}

// Calendar invites

func (h *Handler) GenerateInvite(c *ginext.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	filename, err := h.inviteService.Generate(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.InviteResponse{Filename: filename})
}

func (h *Handler) RenderInvite(c *ginext.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	data, err := h.inviteService.Render(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", "reservation_"+id+".ics"))
	c.Data(http.StatusOK, calendarContentType, data)
}

func (h *Handler) DownloadInvite(c *ginext.Context) {
	name := c.Param("filename")

	data, err := h.inviteService.Open(name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, calendarContentType, data)
}

// Settings

func (h *Handler) GetSettings(c *ginext.Context) {
	s, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(s))
}

func (h *Handler) UpdateSettings(c *ginext.Context) {
	var req dto.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	s, err := h.settingsService.Update(c.Request.Context(), req.ToSettings())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(s))
}

// Dashboard

func (h *Handler) Dashboard(c *ginext.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(summary))
}

// Admins

func (h *Handler) CreateAdmin(c *ginext.Context) {
	var req dto.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateAdminInput{
		Username:       req.Username,
		TelegramChatID: req.TelegramChatID,
	}

	admin, err := h.adminService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAdminResponse(admin))
}

func (h *Handler) ListAdmins(c *ginext.Context) {
	admins, err := h.adminService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AdminResponse, 0, len(admins))
	for _, a := range admins {
		resp = append(resp, dto.ToAdminResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SetAdminStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid admin id"})
		return
	}

	var req dto.SetAdminStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.adminService.SetStatus(c.Request.Context(), id, domain.AdminStatus(req.Status)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": req.Status})
}

func reservationID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrAdminNotFound),
		errors.Is(err, domain.ErrSettingsNotFound),
		errors.Is(err, domain.ErrInviteNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrReservationNotPending),
		errors.Is(err, domain.ErrReservationCancelled),
		errors.Is(err, domain.ErrStatusConflict),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAdminDisabled):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInviteEncoding),
		errors.Is(err, domain.ErrInviteStorage):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "could not generate calendar invite"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
