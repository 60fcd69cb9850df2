package coupon

import (
	"net/http"
	"tripseat/infras/otel"
	"tripseat/internal/domains/coupon/model"
	"tripseat/internal/domains/coupon/model/dto"
	"tripseat/internal/domains/coupon/service"
	"tripseat/shared"
	"tripseat/shared/constant"
	gDto "tripseat/shared/dto"
	"tripseat/shared/validator"
	"tripseat/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Coupon
	otel    otel.Otel
}

func New(service service.Coupon, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/coupons/validate", handler.ValidateCoupon)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/coupons", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCoupon)
		routerGroup.Get("/", handler.GetCoupons)
		routerGroup.Get("/{id}", handler.GetCouponByID)
		routerGroup.Patch("/{id}", handler.UpdateCoupon)
	})
}

// ValidateCoupon previews a coupon for a party size without redeeming it.
// @Summary Validate a coupon
// @Tags Coupon
// @Accept json
// @Produce json
// @Param request body dto.ValidateCouponRequest true "Validate Coupon Request"
// @Success 200 {object} response.Data[dto.PreviewResponse]
// @Failure 400 {object} response.Error
// @Router /v1/coupons/validate [post]
func (handler *Handler) ValidateCoupon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ValidateCoupon")
	defer scope.End()

	req := dto.ValidateCouponRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Preview(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateCoupon handles the creation of a coupon.
// @Summary Create a coupon
// @Tags Coupon
// @Accept json
// @Produce json
// @Param request body dto.CreateCouponRequest true "Create Coupon Request"
// @Success 201 {object} response.Data[dto.CouponResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admin/coupons [post]
// @Security BearerAuth
func (handler *Handler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCoupon")
	defer scope.End()

	req := dto.CreateCouponRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create coupon")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Coupon created by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetCoupons lists coupons.
// @Summary Get all coupons
// @Tags Coupon
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param code query string false "Filter by code"
// @Param is_active query boolean false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetCouponsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/admin/coupons [get]
// @Security BearerAuth
func (handler *Handler) GetCoupons(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCoupons")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.And()
	filterGroup.Add(model.FieldCode, model.TableName, dto.NormalizeCode(r.URL.Query().Get(model.FieldCode)))

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get coupons")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// @Summary Get a coupon by ID
// @Tags Coupon
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} response.Data[dto.CouponResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/coupons/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCouponByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCouponByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get coupon")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateCoupon edits a coupon's limits or deactivates it.
// @Summary Update a coupon
// @Tags Coupon
// @Accept json
// @Produce json
// @Param id path string true "Coupon ID"
// @Param request body dto.UpdateCouponRequest true "Update Coupon Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admin/coupons/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCoupon")
	defer scope.End()

	req := dto.UpdateCouponRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update coupon")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Coupon updated by user " + user)

	response.WithMessage(w, http.StatusOK, "Coupon updated successfully")
}
