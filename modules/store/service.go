package store

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/ebookstore/handler"
	"github.com/dmitrymomot/ebookstore/modules/store/views"
	"github.com/dmitrymomot/ebookstore/pkg/binder"
	"github.com/dmitrymomot/ebookstore/pkg/catalog"
	"github.com/dmitrymomot/ebookstore/pkg/logger"
	"github.com/dmitrymomot/ebookstore/pkg/session"
	"github.com/dmitrymomot/ebookstore/pkg/validator"
)

// ErrDeliveryFailed maps fulfillment failures onto a 502 so the buyer is not
// told their eBook shipped when it did not.
var ErrDeliveryFailed = handler.NewHTTPError(http.StatusBadGateway, "delivery_failed")

// Service wires the storefront routes: landing, catalog listing, purchase
// flow, confirmation, and the session-clearing shortcuts.
type Service struct {
	catalog      *catalog.Loader
	fulfiller    *Fulfiller
	sessionMgr   *session.Manager
	errorHandler handler.ErrorHandler[handler.Context]
	log          *slog.Logger
}

// NewService creates the storefront service.
func NewService(
	catalogLoader *catalog.Loader,
	fulfiller *Fulfiller,
	sessionMgr *session.Manager,
	errorHandler handler.ErrorHandler[handler.Context],
	log *slog.Logger,
) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		catalog:      catalogLoader,
		fulfiller:    fulfiller,
		sessionMgr:   sessionMgr,
		errorHandler: errorHandler,
		log:          log,
	}
}

// Handle returns the storefront router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.landing,
		handler.WithErrorHandler[handler.Context, emptyRequest](s.errorHandler),
	))

	r.Get("/home", handler.Wrap(s.home,
		handler.WithErrorHandler[handler.Context, emptyRequest](s.errorHandler),
	))

	// Buy handles both GET (form) and POST (purchase) for one product.
	r.HandleFunc("/buy/{slug}", handler.Wrap(s.buy,
		handler.WithBinders[handler.Context, BuyRequest](
			binder.Path(chi.URLParam), // Always works
			binder.Form(),             // Skipped for GET, applied for POST
		),
		handler.WithErrorHandler[handler.Context, BuyRequest](s.errorHandler),
	))

	r.Get("/thank-you", handler.Wrap(s.thankYou,
		handler.WithBinders[handler.Context, ThankYouRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, ThankYouRequest](s.errorHandler),
	))

	r.Get("/skip", handler.Wrap(s.clearSession("/home"),
		handler.WithErrorHandler[handler.Context, emptyRequest](s.errorHandler),
	))

	r.Get("/logout", handler.Wrap(s.clearSession("/"),
		handler.WithErrorHandler[handler.Context, emptyRequest](s.errorHandler),
	))

	return r
}

type emptyRequest struct{}

// BuyRequest carries the purchase form. Slug comes from the URL; name and
// email only arrive on POST.
type BuyRequest struct {
	Slug  string `path:"slug"`
	Name  string `form:"name"`
	Email string `form:"email"`
}

// ThankYouRequest carries the confirmation page query parameters.
type ThankYouRequest struct {
	Username string `query:"username"`
	Product  string `query:"product"`
}

func (s *Service) landing(ctx handler.Context, _ emptyRequest) handler.Response {
	return handler.Templ(views.Landing())
}

// home lists the catalog. A missing or broken catalog file renders an empty
// shelf rather than an error page.
func (s *Service) home(ctx handler.Context, _ emptyRequest) handler.Response {
	return handler.Templ(views.Home(s.catalog.All()))
}

func (s *Service) buy(ctx handler.Context, req BuyRequest) handler.Response {
	product, err := s.catalog.Find(req.Slug)
	if err != nil {
		// Unknown slug and unreadable catalog both surface as 404: the
		// product is not purchasable either way.
		if !errors.Is(err, catalog.ErrProductNotFound) {
			s.log.ErrorContext(ctx, "catalog lookup failed",
				logger.ProductSlug(req.Slug),
				logger.Error(err),
				logger.Component("store"),
			)
		}
		return handler.Error(handler.ErrNotFound)
	}

	if ctx.Request().Method != http.MethodPost {
		return handler.Templ(views.BuyForm(product))
	}

	if err := validator.Apply(
		validator.RequiredString("name", req.Name),
		validator.RequiredString("email", req.Email),
		validator.ValidEmail("email", req.Email),
	); err != nil {
		return handler.Error(err)
	}

	if err := s.fulfiller.Fulfill(ctx, req.Name, req.Email, product); err != nil {
		s.log.ErrorContext(ctx, "purchase fulfillment failed",
			logger.ProductSlug(product.Slug),
			logger.Recipient(req.Email),
			logger.Error(err),
			logger.Component("store"),
		)
		return handler.Error(ErrDeliveryFailed)
	}

	s.log.InfoContext(ctx, "purchase fulfilled",
		logger.ProductSlug(product.Slug),
		logger.Recipient(req.Email),
		logger.Component("store"),
	)

	query := url.Values{}
	query.Set("username", req.Name)
	query.Set("product", product.Title)
	return handler.RedirectWithCode("/thank-you?"+query.Encode(), http.StatusFound)
}

func (s *Service) thankYou(ctx handler.Context, req ThankYouRequest) handler.Response {
	username := req.Username
	if username == "" {
		username = "User"
	}
	product := req.Product
	if product == "" {
		product = "your purchase"
	}
	return handler.Templ(views.ThankYou(username, product))
}

// clearSession drops the visitor session and redirects to the given page.
func (s *Service) clearSession(redirectTo string) handler.HandlerFunc[handler.Context, emptyRequest] {
	return func(ctx handler.Context, _ emptyRequest) handler.Response {
		if err := s.sessionMgr.Destroy(ctx, ctx.ResponseWriter(), ctx.Request()); err != nil {
			s.log.WarnContext(ctx, "failed to clear session",
				logger.Error(err),
				logger.Component("store"),
			)
		}
		return handler.RedirectWithCode(redirectTo, http.StatusFound)
	}
}
