package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/payment"

	"github.com/labstack/echo/v4"
)

// InitiatePayment handles POST /api/v1/payments/initiate.
func (s *Server) InitiatePayment(c echo.Context) error {
	var body NewPayment
	if err := c.Bind(&body); err != nil {
		return s.writeError(c, badRequest("Invalid request body", err))
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return s.writeError(c, err)
	}
	gateway, err := payment.ParseGateway(body.Gateway)
	if err != nil {
		return s.writeError(c, err)
	}
	method, err := payment.ParseMethod(body.Method)
	if err != nil {
		return s.writeError(c, err)
	}
	amount, err := kernel.NewMoney(body.Amount)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewInitiatePaymentCommand(actorOf(c), orderID, gateway, method, amount)
	if err != nil {
		return s.writeError(c, err)
	}

	attempt, err := s.commands.InitiatePayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, paymentOf(attempt))
}

// ReportPaymentSuccess handles POST /api/v1/payments/success.
func (s *Server) ReportPaymentSuccess(c echo.Context) error {
	var body PaymentCallback
	if err := c.Bind(&body); err != nil {
		return s.writeError(c, badRequest("Invalid request body", err))
	}

	err := s.reportSuccess(c, body)
	s.metrics.ObservePaymentCallback("success", err)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) reportSuccess(c echo.Context, body PaymentCallback) error {
	ref, err := payment.TransactionRefFromString(body.TransactionID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewReportPaymentSuccessCommand(ref)
	if err != nil {
		return err
	}

	return s.commands.ReportPaymentSuccess.Handle(c.Request().Context(), cmd)
}

// ReportPaymentFailure handles POST /api/v1/payments/failure.
func (s *Server) ReportPaymentFailure(c echo.Context) error {
	var body PaymentCallback
	if err := c.Bind(&body); err != nil {
		return s.writeError(c, badRequest("Invalid request body", err))
	}

	err := s.reportFailure(c, body)
	s.metrics.ObservePaymentCallback("failure", err)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) reportFailure(c echo.Context, body PaymentCallback) error {
	ref, err := payment.TransactionRefFromString(body.TransactionID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewReportPaymentFailureCommand(ref, body.Reason)
	if err != nil {
		return err
	}

	return s.commands.ReportPaymentFailure.Handle(c.Request().Context(), cmd)
}

// RetryPayment handles POST /api/v1/payments/retry.
func (s *Server) RetryPayment(c echo.Context) error {
	var body RetryPayment
	if err := c.Bind(&body); err != nil {
		return s.writeError(c, badRequest("Invalid request body", err))
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewRetryPaymentCommand(actorOf(c), orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	attempt, err := s.commands.RetryPayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, paymentOf(attempt))
}

// RefundPayment handles POST /api/v1/payments/refund.
func (s *Server) RefundPayment(c echo.Context) error {
	var body PaymentCallback
	if err := c.Bind(&body); err != nil {
		return s.writeError(c, badRequest("Invalid request body", err))
	}

	ref, err := payment.TransactionRefFromString(body.TransactionID)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewRefundPaymentCommand(actorOf(c), ref, body.Reason)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.commands.RefundPayment.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListOrderPayments handles GET /api/v1/orders/{orderId}/payments.
func (s *Server) ListOrderPayments(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewListOrderPaymentsQuery(actorOf(c), orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	views, err := s.queries.ListOrderPayments.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	response := make([]Payment, 0, len(views))
	for _, v := range views {
		response = append(response, paymentViewOf(v))
	}
	return c.JSON(http.StatusOK, response)
}
