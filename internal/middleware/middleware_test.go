package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type MiddlewareTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}

func (s *MiddlewareTestSuite) SetupTest() {
	s.echo = echo.New()
}

func (s *MiddlewareTestSuite) TestRequestIDGenerated() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		traceID, ok := c.Get("trace_id").(string)
		s.True(ok)
		s.NotEmpty(traceID)
		return c.NoContent(http.StatusOK)
	})

	s.Require().NoError(handler(c))
	s.NotEmpty(rec.Header().Get(echo.HeaderXRequestID))
}

func (s *MiddlewareTestSuite) TestRequestIDHonorsIncomingHeader() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "caller-supplied-id")
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		s.Equal("caller-supplied-id", c.Get("trace_id"))
		return c.NoContent(http.StatusOK)
	})

	s.Require().NoError(handler(c))
	s.Equal("caller-supplied-id", rec.Header().Get(echo.HeaderXRequestID))
}

func (s *MiddlewareTestSuite) TestRateLimiterAllowsWithinBurst() {
	limiter := NewRateLimiter(10, 3)
	handler := limiter.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		s.Require().NoError(handler(s.echo.NewContext(req, rec)))
		s.Equal(http.StatusOK, rec.Code)
	}
}

func (s *MiddlewareTestSuite) TestRateLimiterRejectsBeyondBurst() {
	limiter := NewRateLimiter(1, 1)
	handler := limiter.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "10.0.0.2:1234"
	firstRec := httptest.NewRecorder()
	s.Require().NoError(handler(s.echo.NewContext(first, firstRec)))
	s.Equal(http.StatusOK, firstRec.Code)

	second := httptest.NewRequest(http.MethodGet, "/", nil)
	second.RemoteAddr = "10.0.0.2:1234"
	secondRec := httptest.NewRecorder()
	s.Require().NoError(handler(s.echo.NewContext(second, secondRec)))
	s.Equal(http.StatusTooManyRequests, secondRec.Code)
}

func (s *MiddlewareTestSuite) TestRateLimiterTracksClientsSeparately() {
	limiter := NewRateLimiter(1, 1)
	handler := limiter.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for _, addr := range []string{"10.0.0.3:1234", "10.0.0.4:1234"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		s.Require().NoError(handler(s.echo.NewContext(req, rec)))
		s.Equal(http.StatusOK, rec.Code, "each client has its own bucket")
	}
}
