package cmd

import (
	"log/slog"

	httpadapter "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/ports"
	"foodorder/internal/jobs"
	"foodorder/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.OrderEventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger, m),
		metrics:    m,
		logger:     logger,
	}
}

func (c *CompositionRoot) catalogUoW() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) paymentUoW() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) deliveryUoW() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) reviewUoW() commands.ReviewUoWFactory {
	return FuncReviewUoWFactory(func() commands.ReviewUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) CreateRecomputeVendorRatingCommandHandler() commands.RecomputeVendorRatingCommandHandler {
	return commands.NewRecomputeVendorRatingCommandHandler(c.reviewUoW())
}

func (c *CompositionRoot) CreatePurgeExpiredOrdersCommandHandler() commands.PurgeExpiredOrdersCommandHandler {
	return commands.NewPurgeExpiredOrdersCommandHandler(c.paymentUoW())
}

func (c *CompositionRoot) CommandHandlers() httpadapter.CommandHandlers {
	recomputer := c.CreateRecomputeVendorRatingCommandHandler()

	return httpadapter.CommandHandlers{
		CreateVendor:         commands.NewCreateVendorCommandHandler(c.catalogUoW()),
		AddMenuItem:          commands.NewAddMenuItemCommandHandler(c.catalogUoW()),
		SetMenuItemAvailable: commands.NewSetMenuItemAvailabilityCommandHandler(c.catalogUoW()),
		PlaceOrder:           commands.NewPlaceOrderCommandHandler(c.orderUoW()),
		AdvanceOrderStatus:   commands.NewAdvanceOrderStatusCommandHandler(c.orderUoW()),
		CancelOrder:          commands.NewCancelOrderCommandHandler(c.orderUoW()),
		InitiatePayment:      commands.NewInitiatePaymentCommandHandler(c.paymentUoW()),
		ReportPaymentSuccess: commands.NewReportPaymentSuccessCommandHandler(c.paymentUoW()),
		ReportPaymentFailure: commands.NewReportPaymentFailureCommandHandler(c.paymentUoW()),
		RetryPayment:         commands.NewRetryPaymentCommandHandler(c.paymentUoW()),
		RefundPayment:        commands.NewRefundPaymentCommandHandler(c.paymentUoW()),
		CreateAgent:          commands.NewCreateAgentCommandHandler(c.deliveryUoW()),
		DeleteAgent:          commands.NewDeleteAgentCommandHandler(c.deliveryUoW()),
		UpdateAgentLocation:  commands.NewUpdateAgentLocationCommandHandler(c.deliveryUoW()),
		AssignDelivery:       commands.NewAssignDeliveryCommandHandler(c.deliveryUoW()),
		AcceptDelivery:       commands.NewAcceptDeliveryCommandHandler(c.deliveryUoW()),
		UpdateDeliveryStatus: commands.NewUpdateDeliveryStatusCommandHandler(c.deliveryUoW()),
		SubmitReview:         commands.NewSubmitReviewCommandHandler(c.reviewUoW(), recomputer, c.logger),
		UpdateReview:         commands.NewUpdateReviewCommandHandler(c.reviewUoW(), recomputer, c.logger),
		DeleteReview:         commands.NewDeleteReviewCommandHandler(c.reviewUoW(), recomputer, c.logger),
	}
}

func (c *CompositionRoot) QueryHandlers() httpadapter.QueryHandlers {
	return httpadapter.QueryHandlers{
		GetOrder:          queries.NewGetOrderQueryHandler(c.gormDB),
		ListOrders:        queries.NewListOrdersQueryHandler(c.gormDB),
		ListOrderPayments: queries.NewListOrderPaymentsQueryHandler(c.gormDB),
		DeliveryHistory:   queries.NewDeliveryHistoryQueryHandler(c.gormDB),
		ListVendorReviews: queries.NewListVendorReviewsQueryHandler(c.gormDB),
		ListVendors:       queries.NewListVendorsQueryHandler(c.gormDB),
		GetVendor:         queries.NewGetVendorQueryHandler(c.gormDB),
		ListMenuItems:     queries.NewListMenuItemsQueryHandler(c.gormDB),
		VendorAnalytics:   queries.NewVendorAnalyticsQueryHandler(c.gormDB),
		ListAgents:        queries.NewListAgentsQueryHandler(c.gormDB),
		GetAgent:          queries.NewGetAgentQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(c.CommandHandlers(), c.QueryHandlers(), c.metrics, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	retention := jobs.NewOrderRetentionJob(
		c.CreatePurgeExpiredOrdersCommandHandler(),
		c.config.RetentionSchedule,
		c.config.OrderRetention,
		c.metrics,
		c.logger,
	)
	return jobs.NewJobManager(retention)
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}
