package tripdate

import (
	"net/http"
	"tripseat/infras/otel"
	"tripseat/internal/domains/tripdate/model"
	"tripseat/internal/domains/tripdate/model/dto"
	"tripseat/internal/domains/tripdate/service"
	"tripseat/shared/constant"
	gDto "tripseat/shared/dto"
	"tripseat/shared/validator"
	"tripseat/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.TripDate
	otel    otel.Otel
}

func New(service service.TripDate, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/trip-dates/{id}/availability", handler.GetAvailability)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/trip-dates", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTripDate)
		routerGroup.Get("/", handler.GetTripDates)
		routerGroup.Get("/{id}", handler.GetTripDateByID)
		routerGroup.Patch("/{id}", handler.UpdateTripDate)
	})
}

// GetAvailability returns the seats still free on a trip date.
// @Summary Get trip date availability
// @Tags TripDate
// @Produce json
// @Param id path string true "Trip date ID"
// @Success 200 {object} response.Data[dto.AvailabilityResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trip-dates/{id}/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	res, err := handler.service.Availability(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateTripDate handles the creation of a bookable trip date.
// @Summary Create a trip date
// @Tags TripDate
// @Accept json
// @Produce json
// @Param request body dto.CreateTripDateRequest true "Create Trip Date Request"
// @Success 201 {object} response.Data[dto.TripDateResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/trip-dates [post]
// @Security BearerAuth
func (handler *Handler) CreateTripDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTripDate")
	defer scope.End()

	req := dto.CreateTripDateRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create trip date")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Trip date created by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetTripDates lists trip dates.
// @Summary Get all trip dates
// @Tags TripDate
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param trip_id query string false "Filter by trip"
// @Param status query string false "Filter by status (OPEN, CLOSED, CANCELLED)"
// @Success 200 {object} response.Data[dto.GetTripDatesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/admin/trip-dates [get]
// @Security BearerAuth
func (handler *Handler) GetTripDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTripDates")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.And()
	filterGroup.Add(model.FieldTripID, model.TableName, r.URL.Query().Get(model.FieldTripID))
	filterGroup.Add(model.FieldStatus, model.TableName, r.URL.Query().Get(model.FieldStatus))

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get trip dates")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetTripDateByID retrieves a trip date.
// @Summary Get a trip date by ID
// @Tags TripDate
// @Produce json
// @Param id path string true "Trip date ID"
// @Success 200 {object} response.Data[dto.TripDateResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/trip-dates/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTripDateByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTripDateByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get trip date")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateTripDate changes price, capacity or status. Capacity cannot drop
// below the seats already reserved.
// @Summary Update a trip date
// @Tags TripDate
// @Accept json
// @Produce json
// @Param id path string true "Trip date ID"
// @Param request body dto.UpdateTripDateRequest true "Update Trip Date Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admin/trip-dates/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTripDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTripDate")
	defer scope.End()

	req := dto.UpdateTripDateRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update trip date")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Trip date updated by user " + user)

	response.WithMessage(w, http.StatusOK, "Trip date updated successfully")
}
