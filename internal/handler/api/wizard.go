package api

import (
	"context"
	"net/http"

	"studio-booking/internal/domain/addon"
	"studio-booking/internal/domain/wizard"
	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"
	"studio-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingUser = errs.New("authenticated user missing from context")

type sessionOp func(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, error)

type WizardHandler struct {
	cmds commands.WizardCommands
	q    queries.WizardQueries
}

func NewWizardHandler(cmds commands.WizardCommands, q queries.WizardQueries) *WizardHandler {
	return &WizardHandler{cmds: cmds, q: q}
}

// @Summary Open booking session
// @Description Start the booking wizard for a class, workshop, retreat or appointment
// @Tags booking-sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenSessionRequest true "Booking target"
// @Success 201 {object} queries.WizardView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/booking-sessions [post]
func (h *WizardHandler) Open(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}
	var req reqdto.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	sess, err := h.cmds.Open(c.Request.Context(), userID, req.TargetID)
	if err != nil {
		abortWizardError(c, err, nil)
		return
	}
	h.respond(c, http.StatusCreated, sess, nil)
}

// @Summary Get booking session
// @Description Current wizard step with everything needed to render it
// @Tags booking-sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} queries.WizardView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/booking-sessions/{id} [get]
func (h *WizardHandler) Get(c *gin.Context) {
	userID, sessionID, ok := identify(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), userID, sessionID)
	if err != nil {
		abortWizardError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Select payment source
// @Tags booking-sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.SelectSourceRequest true "Payment source"
// @Success 200 {object} queries.WizardView
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/booking-sessions/{id}/source [put]
func (h *WizardHandler) SelectSource(c *gin.Context) {
	var req reqdto.SelectSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.run(c, func(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, error) {
		return h.cmds.SelectSource(ctx, userID, sessionID, req.SourceID)
	})
}

// @Summary Continue to confirmation
// @Tags booking-sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} queries.WizardView
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/booking-sessions/{id}/continue [post]
func (h *WizardHandler) Continue(c *gin.Context) {
	h.run(c, h.cmds.Continue)
}

// @Summary Back to payment selection
// @Tags booking-sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} queries.WizardView
// @Failure 409 {object} httperr.Response
// @Router /api/booking-sessions/{id}/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	h.run(c, h.cmds.Back)
}

// @Summary Accept or withdraw the cancellation policy
// @Tags booking-sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.AcceptPolicyRequest true "Acceptance"
// @Success 200 {object} queries.WizardView
// @Failure 409 {object} httperr.Response
// @Router /api/booking-sessions/{id}/policy [put]
func (h *WizardHandler) AcceptPolicy(c *gin.Context) {
	var req reqdto.AcceptPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.run(c, func(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, error) {
		return h.cmds.AcceptPolicy(ctx, userID, sessionID, *req.Accepted)
	})
}

// @Summary Confirm booking
// @Description Submits the booking (or waitlist entry). Blocks until the booking service answers.
// @Tags booking-sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} queries.WizardView
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/booking-sessions/{id}/confirm [post]
func (h *WizardHandler) Confirm(c *gin.Context) {
	h.run(c, h.cmds.Confirm)
}

// @Summary Toggle an add-on
// @Tags booking-sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.ToggleAddOnRequest true "Add-on"
// @Success 200 {object} queries.WizardView
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/booking-sessions/{id}/add-ons/toggle [post]
func (h *WizardHandler) ToggleAddOn(c *gin.Context) {
	var req reqdto.ToggleAddOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.run(c, func(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, error) {
		return h.cmds.ToggleAddOn(ctx, userID, sessionID, req.AddOnID)
	})
}

// @Summary Attach selected add-ons
// @Tags booking-sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} queries.WizardView
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/booking-sessions/{id}/add-ons/attach [post]
func (h *WizardHandler) AttachAddOns(c *gin.Context) {
	h.run(c, h.cmds.AttachAddOns)
}

// @Summary Skip add-ons
// @Tags booking-sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} queries.WizardView
// @Failure 409 {object} httperr.Response
// @Router /api/booking-sessions/{id}/add-ons/skip [post]
func (h *WizardHandler) SkipAddOns(c *gin.Context) {
	h.run(c, h.cmds.SkipAddOns)
}

// @Summary Add booking to calendar
// @Tags booking-sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 409 {object} httperr.Response
// @Router /api/booking-sessions/{id}/calendar [post]
func (h *WizardHandler) AddToCalendar(c *gin.Context) {
	userID, sessionID, ok := identify(c)
	if !ok {
		return
	}
	sess, link, err := h.cmds.AddToCalendar(c.Request.Context(), userID, sessionID)
	if err != nil {
		h.abort(c, sess, err)
		return
	}
	h.respond(c, http.StatusOK, sess, func(view *queries.WizardView) any {
		return resdto.FromCalendarLink(view, link)
	})
}

// @Summary Invite a friend
// @Tags booking-sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.InviteResponse
// @Failure 409 {object} httperr.Response
// @Router /api/booking-sessions/{id}/invite [post]
func (h *WizardHandler) InviteFriend(c *gin.Context) {
	userID, sessionID, ok := identify(c)
	if !ok {
		return
	}
	sess, link, err := h.cmds.InviteFriend(c.Request.Context(), userID, sessionID)
	if err != nil {
		h.abort(c, sess, err)
		return
	}
	h.respond(c, http.StatusOK, sess, func(view *queries.WizardView) any {
		return resdto.FromInviteLink(view, link)
	})
}

// @Summary Finish the wizard
// @Tags booking-sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} queries.WizardView
// @Failure 409 {object} httperr.Response
// @Router /api/booking-sessions/{id}/done [post]
func (h *WizardHandler) Done(c *gin.Context) {
	h.run(c, h.cmds.Done)
}

// @Summary Close the wizard
// @Description Hides the wizard and cancels an in-flight submission. State resets on close/finish.
// @Tags booking-sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} queries.WizardView
// @Router /api/booking-sessions/{id}/close [post]
func (h *WizardHandler) Close(c *gin.Context) {
	h.run(c, h.cmds.Close)
}

// @Summary Close transition finished
// @Tags booking-sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} queries.WizardView
// @Failure 409 {object} httperr.Response
// @Router /api/booking-sessions/{id}/close/finish [post]
func (h *WizardHandler) FinishClose(c *gin.Context) {
	h.run(c, h.cmds.FinishClose)
}

// @Summary Reopen the wizard
// @Tags booking-sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} queries.WizardView
// @Router /api/booking-sessions/{id}/reopen [post]
func (h *WizardHandler) Reopen(c *gin.Context) {
	h.run(c, h.cmds.Reopen)
}

func (h *WizardHandler) run(c *gin.Context, op sessionOp) {
	userID, sessionID, ok := identify(c)
	if !ok {
		return
	}
	sess, err := op(c.Request.Context(), userID, sessionID)
	if err != nil {
		h.abort(c, sess, err)
		return
	}
	h.respond(c, http.StatusOK, sess, nil)
}

func (h *WizardHandler) respond(c *gin.Context, status int, sess *shared.Session, wrap func(*queries.WizardView) any) {
	view, err := queries.BuildWizardView(sess)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking session", nil)
		return
	}
	if wrap != nil {
		c.JSON(status, wrap(view))
		return
	}
	c.JSON(status, view)
}

// abort attaches the current view when the command still returned a session,
// so clients can render the notice without a second request.
func (h *WizardHandler) abort(c *gin.Context, sess *shared.Session, err error) {
	var view *queries.WizardView
	if sess != nil {
		if v, verr := queries.BuildWizardView(sess); verr == nil {
			view = v
		}
	}
	abortWizardError(c, err, view)
}

func identify(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return uuid.Nil, uuid.Nil, false
	}
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, sessionID, true
}

func abortWizardError(c *gin.Context, err error, view *queries.WizardView) {
	var detail any
	if view != nil {
		detail = view
	}

	switch {
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, validationMessage(view), detail)
	case errs.Is(err, errs.ErrSessionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking session not found", nil)
	case errs.Is(err, errs.ErrTargetNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking target not found", nil)
	case errs.Is(err, wizard.ErrSubmissionInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking is already being processed", detail)
	case errs.Is(err, commands.ErrSubmissionCanceled):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking canceled", detail)
	case errs.Is(err, wizard.ErrAddOnsPending):
		httperr.AbortWithError(c, http.StatusConflict, err, "Choose add-ons or skip them first", detail)
	case errs.Is(err, wizard.ErrWizardClosed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking wizard is closed", detail)
	case errs.Is(err, wizard.ErrInvalidTransition), errs.Is(err, addon.ErrOfferClosed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Action not available at this step", detail)
	case errs.Is(err, errs.ErrConcurrentModification):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking session was modified concurrently, please retry", nil)
	case errs.Is(err, errs.ErrSubmissionFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "We couldn't complete your booking", detail)
	case errs.Is(err, commands.ErrAddOnAttachFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to add add-ons", detail)
	case errs.Is(err, commands.ErrLinkFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to build share link", detail)
	case errs.Is(err, errs.ErrProviderFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Booking data unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func validationMessage(view *queries.WizardView) string {
	if view != nil && view.Notice != nil {
		return view.Notice.Title
	}
	return "Validation failed"
}
