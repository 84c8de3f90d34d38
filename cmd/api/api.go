package api

import (
	"net/http"
	"os"

	authService "github.com/shopcore/commerce-api/auth/service"
	backupHandlers "github.com/shopcore/commerce-api/backup/handlers"
	billingHandlers "github.com/shopcore/commerce-api/billing/handlers"
	"github.com/shopcore/commerce-api/cmd/api/handlers"
	customerHandlers "github.com/shopcore/commerce-api/customer/handlers"
	"github.com/shopcore/commerce-api/framework/connection"
	"github.com/shopcore/commerce-api/framework/mid"
	"github.com/shopcore/commerce-api/framework/web"
	"github.com/shopcore/commerce-api/logger"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
	tokens   *authService.Tokens
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection, tokens *authService.Tokens) *API {
	return &API{
		shutdown,
		logging,
		conn,
		tokens,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics())

	health := handlers.NewHealth()
	customers := customerHandlers.NewCustomers(loggerProvider, a.conn, a.tokens)
	billing := billingHandlers.NewBilling(loggerProvider, a.conn)
	backup := backupHandlers.NewBackup(loggerProvider, a.conn)

	app.Get("/health", health.Check)

	authGroup := web.NewGroup(app, "/auth")
	{
		authGroup.Post("/register", customers.Register)
		authGroup.Post("/login", customers.Login)
	}

	apiGroup := web.NewGroup(app, "/api/v1", mid.AuthRequired(a.tokens))
	{
		apiGroup.Get("/profile", customers.GetProfile)
		apiGroup.Patch("/profile", customers.UpdateProfile)
		apiGroup.Post("/profile-picture", customers.UploadAvatar)
		apiGroup.Get("/profile-picture", customers.GetAvatarURL)
		apiGroup.Delete("/account", customers.DeleteAccount)

		apiGroup.Post("/payments", billing.CreatePayment)
		apiGroup.Post("/payments/items", billing.CreatePaymentWithItems)

		apiGroup.Get("/invoices", billing.ListInvoices)
		apiGroup.Get("/invoices/:invoiceID", billing.GetInvoice,
			mid.ValidatePathParamNotEmpty("invoiceID"))
		apiGroup.Post("/invoices/:invoiceID/send", billing.SendInvoice,
			mid.ValidatePathParamNotEmpty("invoiceID"))

		apiGroup.Get("/payment-methods", billing.ListPaymentMethods)
		apiGroup.Delete("/payment-methods/:paymentMethodID", billing.DetachPaymentMethod,
			mid.ValidatePathParamNotEmpty("paymentMethodID"))
	}

	// Task endpoints are reached by the in-process scheduler and by manual
	// operator runs. They are not part of the customer API surface.
	tasksGroup := web.NewGroup(app, "/tasks")
	{
		tasksGroup.Post("/export-customers", backup.ExportCustomers)
	}

	return app
}
