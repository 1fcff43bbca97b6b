package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ebookstore/handler"
	"github.com/dmitrymomot/ebookstore/pkg/binder"
)

type greetRequest struct {
	Name string `form:"name"`
}

type textResponse struct {
	body string
}

func (t textResponse) Render(w http.ResponseWriter, r *http.Request) error {
	_, err := w.Write([]byte(t.body))
	return err
}

func TestWrapBindsAndRenders(t *testing.T) {
	t.Parallel()

	h := handler.HandlerFunc[handler.Context, greetRequest](
		func(ctx handler.Context, req greetRequest) handler.Response {
			return textResponse{body: "hello " + req.Name}
		},
	)

	httpHandler := handler.Wrap(h,
		handler.WithBinders[handler.Context, greetRequest](binder.Form()),
	)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=alice"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	httpHandler(rec, req)

	assert.Equal(t, "hello alice", rec.Body.String())
}

func TestWrapSkipsInapplicableBinders(t *testing.T) {
	t.Parallel()

	h := handler.HandlerFunc[handler.Context, greetRequest](
		func(ctx handler.Context, req greetRequest) handler.Response {
			return textResponse{body: "ok"}
		},
	)

	// Form binder is not applicable to GET but must not fail the request.
	httpHandler := handler.Wrap(h,
		handler.WithBinders[handler.Context, greetRequest](binder.Form()),
	)

	rec := httptest.NewRecorder()
	httpHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestWrapNilResponse(t *testing.T) {
	t.Parallel()

	h := handler.HandlerFunc[handler.Context, greetRequest](
		func(ctx handler.Context, req greetRequest) handler.Response {
			return nil
		},
	)

	rec := httptest.NewRecorder()
	handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWrapErrorResponse(t *testing.T) {
	t.Parallel()

	h := handler.HandlerFunc[handler.Context, greetRequest](
		func(ctx handler.Context, req greetRequest) handler.Response {
			return handler.Error(handler.ErrNotFound)
		},
	)

	rec := httptest.NewRecorder()
	handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestWrapDecoratorOrder(t *testing.T) {
	t.Parallel()

	var calls []string
	decorator := func(name string) handler.Decorator[handler.Context, greetRequest] {
		return func(next handler.HandlerFunc[handler.Context, greetRequest]) handler.HandlerFunc[handler.Context, greetRequest] {
			return func(ctx handler.Context, req greetRequest) handler.Response {
				calls = append(calls, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.HandlerFunc[handler.Context, greetRequest](
		func(ctx handler.Context, req greetRequest) handler.Response {
			calls = append(calls, "handler")
			return textResponse{body: "ok"}
		},
	)

	httpHandler := handler.Wrap(h,
		handler.WithDecorators(decorator("outer"), decorator("inner")),
	)

	httpHandler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"outer", "inner", "handler"}, calls)
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	t.Run("default see other", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		err := handler.Redirect("/thank-you").Render(rec, httptest.NewRequest(http.MethodPost, "/buy/x", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/thank-you", rec.Header().Get("Location"))
	})

	t.Run("explicit found", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		err := handler.RedirectWithCode("/", http.StatusFound).Render(rec, httptest.NewRequest(http.MethodGet, "/skip", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})
}
