package mid

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authService "github.com/shopcore/commerce-api/auth/service"
	"github.com/shopcore/commerce-api/framework/web"
	"github.com/shopcore/commerce-api/logger"
)

const (
	// CtxCustomerIDKey is how the authenticated customer id is stored on the request.
	CtxCustomerIDKey = "customerId"

	// CtxEmailKey is how the authenticated email is stored on the request.
	CtxEmailKey = "email"

	bearerPrefix = "Bearer "
)

// AuthRequired middleware that auth requests coming from the client app.
// It verifies the bearer token and stores the customer identity on the request.
func AuthRequired(tokens *authService.Tokens) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			l := logger.FromContext(ctx)

			header := ctx.GetHeader("Authorization")
			if header == "" || !strings.HasPrefix(header, bearerPrefix) {
				return web.RespondError(ctx, web.NewRequestError(authService.ErrTokenMissing, http.StatusUnauthorized))
			}

			claims, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				l.Warningf("token verification failed: %s", err)
				return web.RespondError(ctx, web.NewRequestError(err, http.StatusUnauthorized))
			}

			ctx.Set(CtxCustomerIDKey, claims.CustomerID)
			ctx.Set(CtxEmailKey, claims.Email)

			l.SetLabel(logger.LabelCustomerID, claims.CustomerID)

			return handler(ctx)
		}

		return h
	}

	return f
}
