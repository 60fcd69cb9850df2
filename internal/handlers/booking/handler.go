package booking

import (
	"net/http"
	"tripseat/infras/otel"
	"tripseat/internal/domains/booking/model"
	"tripseat/internal/domains/booking/model/dto"
	"tripseat/internal/domains/booking/service"
	"tripseat/shared/constant"
	gDto "tripseat/shared/dto"
	"tripseat/shared/validator"
	"tripseat/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/bookings", handler.CreateBooking)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
		routerGroup.Post("/{id}/remaining-request", handler.RequestRemaining)
		routerGroup.Post("/{id}/remaining-payment", handler.InitiateRemaining)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// CreateBooking registers a guest booking and opens the deposit checkout.
// Seats are only committed once the deposit is confirmed by the gateway.
// @Summary Create a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.CreateBookingResponse]
// @Failure 400 {object} response.Error "capacity_exceeded, invalid_coupon or invalid_pricing"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("tripDateID", req.TripDateID).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created " + res.BookingID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings lists bookings.
// @Summary Get all bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param trip_date_id query string false "Filter by trip date"
// @Param status query string false "Filter by status (CREATED, DEPOSIT_PAID, FULLY_PAID, CANCELLED)"
// @Param email query string false "Filter by guest email"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.And()
	filterGroup.Add(model.FieldTripDateID, model.TableName, query.Get(model.FieldTripDateID))
	filterGroup.Add(model.FieldStatus, model.TableName, query.Get(model.FieldStatus))
	filterGroup.Add(model.FieldEmail, model.TableName, query.Get(model.FieldEmail))

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetBookingByID returns a booking with its payment trail.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CancelBooking cancels a booking that is not fully paid, giving back its
// seats when the deposit was already confirmed.
// @Summary Cancel a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admin/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	if err := handler.service.Cancel(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking cancelled by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}

// RequestRemaining sends the remaining balance request to the guest.
// @Summary Request the remaining balance
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 202 {object} response.Data[dto.RequestRemainingResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admin/bookings/{id}/remaining-request [post]
// @Security BearerAuth
func (handler *Handler) RequestRemaining(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestRemaining")
	defer scope.End()

	res, err := handler.service.RequestRemaining(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to request remaining balance")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusAccepted, res)
}

// InitiateRemaining opens a remaining balance checkout on behalf of the guest.
// @Summary Open a remaining balance checkout
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.InitiateRemainingResponse]
// @Failure 400 {object} response.Error "already_paid or nothing_owed"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/admin/bookings/{id}/remaining-payment [post]
// @Security BearerAuth
func (handler *Handler) InitiateRemaining(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".InitiateRemaining")
	defer scope.End()

	res, err := handler.service.InitiateRemaining(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to initiate remaining payment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteBooking removes a booking.
// @Summary Delete a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}
