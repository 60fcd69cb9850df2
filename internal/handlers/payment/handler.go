package payment

import (
	"io"
	"net/http"
	"tripseat/infras/otel"
	bookingService "tripseat/internal/domains/booking/service"
	webhookService "tripseat/internal/domains/webhook/service"
	"tripseat/shared/constant"
	"tripseat/shared/failure"
	"tripseat/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

// Handler serves the guest facing payment endpoints and the gateway webhook.
type Handler struct {
	booking bookingService.Booking
	webhook webhookService.Webhook
	otel    otel.Otel
}

func New(booking bookingService.Booking, webhook webhookService.Webhook, otel otel.Otel) Handler {
	return Handler{
		booking: booking,
		webhook: webhook,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/deposit/{token}", handler.PayDeposit)
		routerGroup.Get("/remaining/{token}", handler.GetRemaining)
		routerGroup.Post("/remaining/{token}", handler.PayRemaining)
		routerGroup.Post("/webhook", handler.Webhook)
	})
}

// PayDeposit reopens the deposit checkout for a booking that is still waiting
// on its deposit.
// @Summary Retry the deposit payment
// @Tags Payment
// @Produce json
// @Param token path string true "Payment token"
// @Success 200 {object} response.Data[dto.InitiateDepositResponse]
// @Failure 400 {object} response.Error "already_paid or cancelled"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/payments/deposit/{token} [post]
func (handler *Handler) PayDeposit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PayDeposit")
	defer scope.End()

	res, err := handler.booking.InitiateDepositByToken(ctx, chi.URLParam(r, constant.RequestParamToken))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to initiate deposit payment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetRemaining shows what is left to pay for the booking behind a payment token.
// @Summary Get the remaining balance
// @Tags Payment
// @Produce json
// @Param token path string true "Payment token"
// @Success 200 {object} response.Data[dto.RemainingView]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/payments/remaining/{token} [get]
func (handler *Handler) GetRemaining(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRemaining")
	defer scope.End()

	res, err := handler.booking.GetRemaining(ctx, chi.URLParam(r, constant.RequestParamToken))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// PayRemaining opens the remaining balance checkout for a payment token.
// @Summary Pay the remaining balance
// @Tags Payment
// @Produce json
// @Param token path string true "Payment token"
// @Success 200 {object} response.Data[dto.InitiateRemainingResponse]
// @Failure 400 {object} response.Error "already_paid or nothing_owed"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/payments/remaining/{token} [post]
func (handler *Handler) PayRemaining(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PayRemaining")
	defer scope.End()

	res, err := handler.booking.InitiateRemainingByToken(ctx, chi.URLParam(r, constant.RequestParamToken))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to initiate remaining payment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Webhook receives gateway events. The raw body is needed to check the
// signature, so it is read before any decoding.
// @Summary Gateway webhook
// @Tags Payment
// @Accept json
// @Produce json
// @Param Gateway-Signature header string true "t=<unix>,v1=<hex hmac>"
// @Success 200 {object} response.Data[dto.HandleResponse]
// @Failure 400 {object} response.Error "invalid_signature"
// @Router /v1/payments/webhook [post]
func (handler *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Webhook")
	defer scope.End()

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, constant.RequestMaxBodyMemory))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read webhook body")

		response.WithError(w, failure.BadRequestFromString("unreadable webhook body"))

		return
	}

	res, err := handler.webhook.Handle(ctx, payload, r.Header.Get(constant.RequestHeaderGatewaySignature))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	scope.SetAttributes(map[string]any{
		"webhook.event_id": res.EventID,
		"webhook.outcome":  res.Outcome,
	})

	response.WithJSON(w, http.StatusOK, res)
}
