package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/kampkelly/favourite-things/internal/domain"
	"github.com/kampkelly/favourite-things/pkg/ctxutil"
)

// retryMessage is the only message clients see for unexpected failures.
const retryMessage = "Something went wrong. Please try again!"

// NewErrorPresenter returns a gqlgen error presenter that maps domain errors
// to GraphQL error codes. User-facing errors keep their message verbatim;
// everything unexpected is logged and collapsed into a retry message so
// internals never leak to clients.
func NewErrorPresenter(log *slog.Logger) graphql.ErrorPresenterFunc {
	return func(ctx context.Context, err error) *gqlerror.Error {
		gqlErr := graphql.DefaultErrorPresenter(ctx, err)

		// User-facing errors carry their exact client message.
		var ufe *domain.UserFacingError
		if errors.As(err, &ufe) {
			gqlErr.Message = ufe.Message
			gqlErr.Extensions = map[string]interface{}{"code": codeFor(ufe.Kind)}
			return gqlErr
		}

		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			gqlErr.Message = ve.Error()
			gqlErr.Extensions = map[string]interface{}{
				"code":   "VALIDATION",
				"fields": ve.Errors,
			}
			return gqlErr
		}

		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			gqlErr.Message = "Unauthorized"
			gqlErr.Extensions = map[string]interface{}{"code": "UNAUTHENTICATED"}

		case errors.Is(err, domain.ErrValidation):
			gqlErr.Extensions = map[string]interface{}{"code": "VALIDATION"}

		default:
			requestID := ctxutil.RequestIDFromCtx(ctx)
			log.ErrorContext(ctx, "unexpected GraphQL error",
				slog.String("error", err.Error()),
				slog.String("request_id", requestID),
			)
			gqlErr.Message = retryMessage
			gqlErr.Extensions = map[string]interface{}{"code": "INTERNAL"}
		}

		return gqlErr
	}
}

// codeFor maps a user-facing error kind to a GraphQL extension code.
func codeFor(kind error) string {
	switch {
	case errors.Is(kind, domain.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(kind, domain.ErrAlreadyExists):
		return "ALREADY_EXISTS"
	case errors.Is(kind, domain.ErrValidation):
		return "VALIDATION"
	case errors.Is(kind, domain.ErrUnauthorized):
		return "UNAUTHENTICATED"
	case errors.Is(kind, domain.ErrConflict):
		return "CONFLICT"
	default:
		return "INTERNAL"
	}
}
